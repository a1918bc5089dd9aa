package tabulation

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/tallyerr"
	"github.com/opencivic/tallyengine/tiebreak"
)

// CondorcetResult is the outcome of a Condorcet/Schulze count.
type CondorcetResult struct {
	UnitId         ids.UnitId
	Turnout        TallyTotals
	Winner         ids.OptionId
	Pairwise       PairwiseMatrix
	StrongestPaths PairwiseMatrix
	TieCrumb       *rng.TieCrumb
}

// PairwiseMatrix is an n x n matrix indexed by position in the canonical
// option order supplied to Condorcet, stored flat row-major — the same
// representation discipline as the teacher's matrix.Dense, adapted here to
// int64 pairwise vote counts instead of float64 distances.
type PairwiseMatrix struct {
	Order []ids.OptionId
	data  []int64
	n     int
}

func newPairwiseMatrix(order []ids.OptionId) PairwiseMatrix {
	n := len(order)
	return PairwiseMatrix{Order: order, data: make([]int64, n*n), n: n}
}

// At returns the value at (row option index i, column option index j).
func (m PairwiseMatrix) At(i, j int) int64 { return m.data[i*m.n+j] }

func (m PairwiseMatrix) set(i, j int, v int64) { m.data[i*m.n+j] = v }

// Condorcet tabulates a ranked-ballot Condorcet count with Schulze
// completion (spec section 4.3). Ties in the final strongest-path
// ordering are broken by policy.
func Condorcet(
	unitID ids.UnitId,
	ballots []RankedBallot,
	turnout TallyTotals,
	options []ids.OptionItem,
	policy tiebreak.Policy,
	stream *rng.Stream,
) (CondorcetResult, error) {
	known, err := optionSet(options)
	if err != nil {
		return CondorcetResult{}, err
	}
	for _, b := range ballots {
		for _, opt := range b {
			if !known[opt] {
				return CondorcetResult{}, &tallyerr.UnknownOption{OptionId: opt}
			}
		}
	}

	canonical := ids.CanonicalOrder(options)
	order := ids.OptionIds(canonical)
	n := len(order)
	index := make(map[ids.OptionId]int, n)
	for i, id := range order {
		index[id] = i
	}

	pairwise := buildPairwise(ballots, order, index)

	if w, ok := condorcetWinner(pairwise, n); ok {
		return CondorcetResult{
			UnitId: unitID, Turnout: turnout, Winner: order[w],
			Pairwise: pairwise, StrongestPaths: pairwise,
		}, nil
	}

	strongest := schulzeClosure(pairwise, n)

	winners := schulzeWinners(strongest, n)
	if len(winners) == 1 {
		return CondorcetResult{
			UnitId: unitID, Turnout: turnout, Winner: order[winners[0]],
			Pairwise: pairwise, StrongestPaths: strongest,
		}, nil
	}

	tied := make([]ids.OptionId, len(winners))
	for i, w := range winners {
		tied[i] = order[w]
	}
	res := tiebreak.Resolve(tied, canonical, policy, stream)
	var crumb *rng.TieCrumb
	if res.WasRandom && stream != nil {
		c := stream.LogPick("condorcet_schulze_tie", string(res.Winner))
		crumb = &c
	}

	return CondorcetResult{
		UnitId: unitID, Turnout: turnout, Winner: res.Winner,
		Pairwise: pairwise, StrongestPaths: strongest, TieCrumb: crumb,
	}, nil
}

// buildPairwise computes P[a][b] = number of ballots ranking a strictly
// above b. A ballot that ranks a but not b counts as a ranked-above-b
// preference (truncation convention: ranked beats unranked); a ballot
// ranking neither contributes no preference for that pair.
func buildPairwise(ballots []RankedBallot, order []ids.OptionId, index map[ids.OptionId]int) PairwiseMatrix {
	m := newPairwiseMatrix(order)
	n := len(order)

	for _, b := range ballots {
		pos := make(map[ids.OptionId]int, len(b))
		for rank, id := range b {
			if _, dup := pos[id]; !dup {
				pos[id] = rank
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				a, bOpt := order[i], order[j]
				ra, aRanked := pos[a]
				rb, bRanked := pos[bOpt]
				switch {
				case aRanked && bRanked:
					if ra < rb {
						m.set(i, j, m.At(i, j)+1)
					}
				case aRanked && !bRanked:
					m.set(i, j, m.At(i, j)+1)
				}
			}
		}
	}
	return m
}

// condorcetWinner reports the index of the option that beats every other
// option pairwise, if one exists.
func condorcetWinner(p PairwiseMatrix, n int) (int, bool) {
	for i := 0; i < n; i++ {
		beatsAll := true
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if !(p.At(i, j) > p.At(j, i)) {
				beatsAll = false
				break
			}
		}
		if beatsAll {
			return i, true
		}
	}
	return 0, false
}

// schulzeClosure computes the Schulze strongest-path matrix from the
// pairwise matrix. This is a direct adaptation of the teacher's
// matrix.impl_floydwarshall fixed k->i->j loop order over a flat
// row-major buffer, with the min-plus shortest-path semiring replaced by
// the Schulze max-min semiring: S[i][j] = max(S[i][j], min(S[i][k], S[k][j])).
func schulzeClosure(p PairwiseMatrix, n int) PairwiseMatrix {
	s := newPairwiseMatrix(p.Order)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if p.At(i, j) > p.At(j, i) {
				s.set(i, j, p.At(i, j))
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			sik := s.At(i, k)
			if sik == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				if j == i || j == k {
					continue
				}
				skj := s.At(k, j)
				if skj == 0 {
					continue
				}
				cand := sik
				if skj < cand {
					cand = skj
				}
				if cand > s.At(i, j) {
					s.set(i, j, cand)
				}
			}
		}
	}
	return s
}

// schulzeWinners returns the indices whose strongest path beats every
// other option's strongest path back; exactly one in almost all inputs,
// but Schulze admits exact ties which are resolved by tie policy.
func schulzeWinners(s PairwiseMatrix, n int) []int {
	var winners []int
	for i := 0; i < n; i++ {
		beatsAll := true
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if !(s.At(i, j) > s.At(j, i)) {
				beatsAll = false
				break
			}
		}
		if beatsAll {
			winners = append(winners, i)
		}
	}
	return winners
}
