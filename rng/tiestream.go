package rng

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/chacha20"
)

// TieCrumb is an audit record of a single random tie-break, emitted by
// LogPick. WordIndex is the stream's word counter *after* the draw that
// produced Pick, so a RunRecord can be replayed and checked byte-for-byte.
type TieCrumb struct {
	Ctx       string
	Pick      string
	WordIndex uint64
}

// Stream is a seeded, deterministic ChaCha20 keystream used only by the
// Random tie policy. The zero value is not usable; construct with New.
type Stream struct {
	cipher         *chacha20.Cipher
	wordsConsumed  uint64
	wordsSaturated bool
}

// New constructs a Stream from a 64-bit seed. The seed occupies the low 8
// bytes of the ChaCha20 key; the remaining key bytes and the nonce are
// zero, since the seed alone is the entire source of entropy this engine
// is permitted to use (spec: "MUST NOT draw from OS entropy or clocks").
func New(seed uint64) *Stream {
	var key [chacha20.KeySize]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	nonce := make([]byte, chacha20.NonceSize)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// Only possible if KeySize/NonceSize constants themselves are
		// wrong, which would be a compile-time-detectable programmer
		// error, not a runtime input problem.
		panic(err)
	}
	return &Stream{cipher: c}
}

// NextU64 advances the stream by one 64-bit word and returns it,
// incrementing the (saturating) words-consumed counter.
func (s *Stream) NextU64() uint64 {
	var zero, out [8]byte
	s.cipher.XORKeyStream(out[:], zero[:])
	s.bumpWords(1)
	return binary.LittleEndian.Uint64(out[:])
}

func (s *Stream) bumpWords(n uint64) {
	if s.wordsSaturated {
		return
	}
	if s.wordsConsumed > math.MaxUint64-n {
		s.wordsConsumed = math.MaxUint64
		s.wordsSaturated = true
		return
	}
	s.wordsConsumed += n
}

// WordsConsumed returns the number of 64-bit words drawn from the stream
// so far.
func (s *Stream) WordsConsumed() uint64 { return s.wordsConsumed }

// GenRange produces an unbiased integer in [0, n) via rejection sampling:
// zone = MaxUint64 - (MaxUint64 mod n); draw until a value falls below
// zone, then return value mod n. Returns (0, false) when n == 0.
func (s *Stream) GenRange(n uint64) (uint64, bool) {
	if n == 0 {
		return 0, false
	}
	zone := math.MaxUint64 - (math.MaxUint64 % n)
	for {
		v := s.NextU64()
		if v < zone {
			return v % n, true
		}
	}
}

// ChooseIndex draws an unbiased index in [0, length) for a slice of the
// given length. Returns (0, false) when length == 0.
func (s *Stream) ChooseIndex(length int) (int, bool) {
	if length <= 0 {
		return 0, false
	}
	idx, ok := s.GenRange(uint64(length))
	if !ok {
		return 0, false
	}
	return int(idx), true
}

// Shuffle performs an in-place Fisher-Yates shuffle, iterating
// i = len-1 .. 1 and drawing j in [0, i].
func Shuffle[T any](s *Stream, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j, ok := s.GenRange(uint64(i + 1))
		if !ok {
			return
		}
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// LogPick builds a TieCrumb for the given context and pick without
// consuming the stream; WordIndex reflects words consumed so far
// (typically called immediately after the draw that produced pick).
func (s *Stream) LogPick(ctx, pick string) TieCrumb {
	return TieCrumb{Ctx: ctx, Pick: pick, WordIndex: s.wordsConsumed}
}
