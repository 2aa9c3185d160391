package schedule

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// RecommendationCount is the fixed number of positions in a recommendation result.
const RecommendationCount = 3

// Candidate is a window of consecutive slots on one date that every
// participant can attend.
type Candidate struct {
	Date           Date
	Start          Slot
	End            Slot
	PriorityScore  int
	ParticipantIDs []uuid.UUID
}

// Recommendation is either a Candidate or an explicit empty position.
type Recommendation struct {
	candidate Candidate
	ok        bool
}

func Some(c Candidate) Recommendation {
	return Recommendation{candidate: c, ok: true}
}

func None() Recommendation {
	return Recommendation{}
}

// Candidate returns the wrapped candidate; ok is false for an empty position.
func (r Recommendation) Candidate() (Candidate, bool) {
	return r.candidate, r.ok
}

func (r Recommendation) IsNone() bool {
	return !r.ok
}

// Recommendations always holds RecommendationCount positions in ranked order.
type Recommendations [RecommendationCount]Recommendation

// Candidates returns the non-empty positions, in order.
func (rs Recommendations) Candidates() []Candidate {
	var out []Candidate
	for _, r := range rs {
		if c, ok := r.Candidate(); ok {
			out = append(out, c)
		}
	}
	return out
}

// Recommend finds windows of d slots in which all of participantCount people
// are available in every slot, ranks them by summed priority (ties go to the
// earlier date, then the earlier start) and returns the top three. Windows on
// the same date may overlap.
func Recommend(agg Aggregation, d Duration, participantCount int) (Recommendations, error) {
	var result Recommendations
	if d <= 0 {
		return result, ErrInvalidDuration
	}

	candidates := FullAttendanceWindows(agg, d, participantCount)
	slices.SortStableFunc(candidates, compareCandidates)

	for i := range result {
		if i < len(candidates) {
			result[i] = Some(candidates[i])
		} else {
			result[i] = None()
		}
	}
	return result, nil
}

// FullAttendanceWindows lists every valid window in date, then start order.
func FullAttendanceWindows(agg Aggregation, d Duration, participantCount int) []Candidate {
	if d <= 0 || participantCount <= 0 {
		return nil
	}

	var out []Candidate
	for _, day := range agg.ByDate() {
		for _, first := range day.Blocks {
			end, ok := first.Slot.Add(d)
			if !ok {
				continue
			}
			score, full := windowScore(agg, day.Date, first.Slot, end, participantCount)
			if !full {
				continue
			}
			out = append(out, Candidate{
				Date:           day.Date,
				Start:          first.Slot,
				End:            end,
				PriorityScore:  score,
				ParticipantIDs: slices.Clone(first.ParticipantIDs),
			})
		}
	}
	return out
}

// windowScore sums the priority of [start, end) and reports whether every slot
// in it is fully attended.
func windowScore(agg Aggregation, date Date, start, end Slot, participantCount int) (int, bool) {
	score := 0
	for s := start; s < end; s++ {
		b, ok := agg.Block(date, s)
		if !ok || b.Count() != participantCount {
			return 0, false
		}
		score += b.PrioritySum
	}
	return score, true
}

func compareCandidates(a, b Candidate) int {
	if c := cmp.Compare(b.PriorityScore, a.PriorityScore); c != 0 {
		return c
	}
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.Start, b.Start)
}
