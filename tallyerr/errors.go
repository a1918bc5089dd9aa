package tallyerr

import (
	"errors"
	"fmt"

	"github.com/opencivic/tallyengine/ids"
)

// Sentinel error kinds, matched via errors.Is. Every concrete error type
// below wraps exactly one of these.
var (
	// ErrUnknownOption: a tally or ballot referenced an option id absent
	// from the unit's canonical option set.
	ErrUnknownOption = errors.New("tally: unknown option")

	// ErrMissingOption: a stricter tabulation variant requires every
	// canonical option to be explicitly present and one was not.
	ErrMissingOption = errors.New("tally: missing option")

	// ErrDuplicateOptionInRegistry: a DivisionRegistry listed the same
	// OptionId twice for one unit.
	ErrDuplicateOptionInRegistry = errors.New("tally: duplicate option in registry")

	// ErrInvalidMagnitude: an allocation method received a seat magnitude
	// its contract does not support (e.g. WTA with magnitude != 1).
	ErrInvalidMagnitude = errors.New("tally: invalid magnitude")

	// ErrOptionVotesExceedValid: a single option's vote count exceeds
	// valid_ballots under a method where that is never legal (plurality).
	ErrOptionVotesExceedValid = errors.New("tally: option votes exceed valid ballots")

	// ErrTallyExceedsValid: the sum of tabulated votes exceeds
	// valid_ballots under a method where sums are bounded by it.
	ErrTallyExceedsValid = errors.New("tally: tabulated votes exceed valid ballots")

	// ErrArithmeticOverflow: a 128-bit-accumulated sum overflowed, or a
	// numeric-layer ZeroDenominator was converted at the core boundary
	// (spec section 7: "converted to ArithmeticOverflow at the core
	// boundary"). No fabricated fields are ever attached (DESIGN.md, Open
	// Question 1) — when the true sum/valid pair is known it is reported
	// via TallyExceedsValid instead.
	ErrArithmeticOverflow = errors.New("tally: arithmetic overflow")

	// ErrMissingFormulaId: ResultDoc composition was asked to proceed
	// without a formula id.
	ErrMissingFormulaId = errors.New("tally: missing formula id")

	// ErrUnsupportedOverhang: an MMP overhang configuration would require
	// a negative top-up; refused rather than silently clamped (DESIGN.md,
	// Open Question 3).
	ErrUnsupportedOverhang = errors.New("tally: unsupported overhang combination")
)

// UnknownOption carries the offending OptionId.
type UnknownOption struct{ OptionId ids.OptionId }

func (e *UnknownOption) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownOption, e.OptionId)
}
func (e *UnknownOption) Unwrap() error { return ErrUnknownOption }

// MissingOption carries the option id that was required but absent.
type MissingOption struct{ OptionId ids.OptionId }

func (e *MissingOption) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingOption, e.OptionId)
}
func (e *MissingOption) Unwrap() error { return ErrMissingOption }

// DuplicateOptionInRegistry carries the duplicated option id.
type DuplicateOptionInRegistry struct{ OptionId ids.OptionId }

func (e *DuplicateOptionInRegistry) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateOptionInRegistry, e.OptionId)
}
func (e *DuplicateOptionInRegistry) Unwrap() error { return ErrDuplicateOptionInRegistry }

// InvalidMagnitude carries the magnitude that was supplied and what the
// method required.
type InvalidMagnitude struct{ Got, Want uint32 }

func (e *InvalidMagnitude) Error() string {
	return fmt.Sprintf("%s: got %d, want %d", ErrInvalidMagnitude, e.Got, e.Want)
}
func (e *InvalidMagnitude) Unwrap() error { return ErrInvalidMagnitude }

// OptionVotesExceedValid carries the offending option and counts.
type OptionVotesExceedValid struct {
	OptionId ids.OptionId
	Votes    uint64
	Valid    uint64
}

func (e *OptionVotesExceedValid) Error() string {
	return fmt.Sprintf("%s: %s has %d votes, valid_ballots=%d", ErrOptionVotesExceedValid, e.OptionId, e.Votes, e.Valid)
}
func (e *OptionVotesExceedValid) Unwrap() error { return ErrOptionVotesExceedValid }

// TallyExceedsValid carries the computed sum and the valid_ballots bound it
// exceeded. Only ever constructed with real, fully-summed values — never
// placeholder zeros (DESIGN.md, Open Question 1).
type TallyExceedsValid struct {
	Sum   uint64
	Valid uint64
}

func (e *TallyExceedsValid) Error() string {
	return fmt.Sprintf("%s: sum=%d valid=%d", ErrTallyExceedsValid, e.Sum, e.Valid)
}
func (e *TallyExceedsValid) Unwrap() error { return ErrTallyExceedsValid }

// UnsupportedOverhang carries the family/policy combination that was
// refused.
type UnsupportedOverhang struct{ Detail string }

func (e *UnsupportedOverhang) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedOverhang, e.Detail)
}
func (e *UnsupportedOverhang) Unwrap() error { return ErrUnsupportedOverhang }
