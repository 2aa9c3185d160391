package schedule

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullMarks(date Date, slot Slot, priority int, users ...uuid.UUID) []AvailabilityMark {
	out := make([]AvailabilityMark, 0, len(users))
	for _, u := range users {
		out = append(out, AvailabilityMark{UserID: u, Date: date, Slot: slot, Priority: priority})
	}
	return out
}

func collect(groups ...[]AvailabilityMark) []AvailabilityMark {
	var out []AvailabilityMark
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func assertCandidate(t *testing.T, r Recommendation, date Date, start, end string) Candidate {
	t.Helper()
	c, ok := r.Candidate()
	require.True(t, ok, "expected a candidate, got none")
	assert.Equal(t, date, c.Date)
	assert.Equal(t, start, c.Start.Label())
	assert.Equal(t, end, c.End.Label())
	return c
}

func TestRecommend_ThreeSingleSlotWindows(t *testing.T) {
	marks := collect(
		fullMarks(july10, mustSlot(t, "12:00"), 0, kwy, dsh),
		fullMarks(july10, mustSlot(t, "13:00"), 0, kwy, dsh),
		fullMarks(july10, mustSlot(t, "14:00"), 0, kwy, dsh),
	)

	got, err := Recommend(Aggregate(marks), DurationHalf, 2)
	require.NoError(t, err)

	c := assertCandidate(t, got[0], july10, "12:00", "12:30")
	assert.Equal(t, 0, c.PriorityScore)
	assert.Equal(t, []uuid.UUID{kwy, dsh}, c.ParticipantIDs)
	assertCandidate(t, got[1], july10, "13:00", "13:30")
	assertCandidate(t, got[2], july10, "14:00", "14:30")
}

func TestRecommend_PadsWithNone(t *testing.T) {
	marks := collect(
		fullMarks(july10, mustSlot(t, "12:00"), 0, kwy, dsh),
		fullMarks(july10, mustSlot(t, "13:00"), 0, kwy, dsh),
	)

	got, err := Recommend(Aggregate(marks), DurationHalf, 2)
	require.NoError(t, err)

	assertCandidate(t, got[0], july10, "12:00", "12:30")
	assertCandidate(t, got[1], july10, "13:00", "13:30")
	assert.True(t, got[2].IsNone())
	assert.Len(t, got.Candidates(), 2)
}

func TestRecommend_EmptyInput(t *testing.T) {
	got, err := Recommend(Aggregate(nil), DurationHour, 3)
	require.NoError(t, err)
	for _, r := range got {
		assert.True(t, r.IsNone())
	}
	assert.Empty(t, got.Candidates())
}

func TestRecommend_OverlappingWindows(t *testing.T) {
	var groups [][]AvailabilityMark
	for _, label := range []string{"11:00", "11:30", "12:00", "12:30", "13:00", "13:30", "14:00"} {
		groups = append(groups, fullMarks(july10, mustSlot(t, label), 0, kwy, dsh))
	}

	got, err := Recommend(Aggregate(collect(groups...)), DurationTwoHour, 2)
	require.NoError(t, err)

	assertCandidate(t, got[0], july10, "11:00", "13:00")
	assertCandidate(t, got[1], july10, "11:30", "13:30")
	assertCandidate(t, got[2], july10, "12:00", "14:00")
}

func TestRecommend_GapOrPartialSlotBreaksWindow(t *testing.T) {
	marks := collect(
		// 09:00-10:00 is broken by a missing 09:30 block
		fullMarks(july10, mustSlot(t, "09:00"), 0, kwy, dsh),
		fullMarks(july10, mustSlot(t, "10:00"), 0, kwy, dsh),
		// 15:30 only has one of two
		fullMarks(july10, mustSlot(t, "15:00"), 0, kwy, dsh),
		fullMarks(july10, mustSlot(t, "15:30"), 0, kwy),
		// the only valid hour
		fullMarks(july10, mustSlot(t, "18:00"), 0, kwy, dsh),
		fullMarks(july10, mustSlot(t, "18:30"), 0, kwy, dsh),
	)

	got, err := Recommend(Aggregate(marks), DurationHour, 2)
	require.NoError(t, err)

	assertCandidate(t, got[0], july10, "18:00", "19:00")
	assert.True(t, got[1].IsNone())
	assert.True(t, got[2].IsNone())
}

func TestRecommend_RanksByPriorityThenDateThenStart(t *testing.T) {
	marks := collect(
		fullMarks(july10, mustSlot(t, "09:00"), 1, kwy, dsh),
		fullMarks(july10, mustSlot(t, "10:00"), 3, kwy, dsh),
		fullMarks(july9, mustSlot(t, "16:00"), 1, kwy, dsh),
		fullMarks(july9, mustSlot(t, "08:00"), 0, kwy, dsh),
	)

	got, err := Recommend(Aggregate(marks), DurationHalf, 2)
	require.NoError(t, err)

	c := assertCandidate(t, got[0], july10, "10:00", "10:30")
	assert.Equal(t, 6, c.PriorityScore)
	c = assertCandidate(t, got[1], july9, "16:00", "16:30")
	assert.Equal(t, 2, c.PriorityScore)
	assertCandidate(t, got[2], july10, "09:00", "09:30")
}

func TestRecommend_WindowScoreSumsEverySlot(t *testing.T) {
	marks := collect(
		fullMarks(july10, mustSlot(t, "20:00"), 1, kwy, dsh),
		fullMarks(july10, mustSlot(t, "20:30"), 2, kwy, dsh),
		fullMarks(july10, mustSlot(t, "21:00"), 0, kwy, dsh),
	)

	got, err := Recommend(Aggregate(marks), DurationHourHalf, 2)
	require.NoError(t, err)

	c := assertCandidate(t, got[0], july10, "20:00", "21:30")
	assert.Equal(t, 6, c.PriorityScore)
}

func TestRecommend_WindowMustEndBeforeMidnight(t *testing.T) {
	marks := collect(
		fullMarks(july10, mustSlot(t, "23:00"), 0, kwy),
		fullMarks(july10, mustSlot(t, "23:30"), 0, kwy),
	)

	got, err := Recommend(Aggregate(marks), DurationHour, 1)
	require.NoError(t, err)
	assertCandidate(t, got[0], july10, "23:00", "24:00")
	assert.True(t, got[1].IsNone())
}

func TestRecommend_InvalidDuration(t *testing.T) {
	agg := Aggregate(fullMarks(july10, mustSlot(t, "12:00"), 0, kwy))

	_, err := Recommend(agg, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = Recommend(agg, -2, 1)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestRecommend_NoParticipants(t *testing.T) {
	agg := Aggregate(fullMarks(july10, mustSlot(t, "12:00"), 0, kwy))
	got, err := Recommend(agg, DurationHalf, 0)
	require.NoError(t, err)
	assert.Empty(t, got.Candidates())
}

func TestRecommend_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	users := []uuid.UUID{kwy, dsh, lee}
	dates := []Date{july9, july10, {Year: 2024, Month: 7, Day: 11}}

	for round := 0; round < 200; round++ {
		var marks []AvailabilityMark
		for _, u := range users {
			for _, d := range dates {
				for s := Slot(0); s < SlotCount; s++ {
					if rng.Intn(3) > 0 {
						marks = append(marks, AvailabilityMark{UserID: u, Date: d, Slot: s, Priority: rng.Intn(4)})
					}
				}
			}
		}
		duration := Duration(1 + rng.Intn(int(DurationThreeHour)))
		agg := Aggregate(marks)

		got, err := Recommend(agg, duration, len(users))
		require.NoError(t, err)
		require.Len(t, got, RecommendationCount)

		candidates := got.Candidates()
		seen := make(map[BlockKey]struct{})
		for i, c := range candidates {
			assert.Equal(t, Slot(duration), c.End-c.Start)
			assert.GreaterOrEqual(t, int(c.Start), 0)
			assert.LessOrEqual(t, int(c.End), SlotCount)
			for s := c.Start; s < c.End; s++ {
				b, ok := agg.Block(c.Date, s)
				require.True(t, ok)
				assert.Equal(t, len(users), b.Count())
			}

			key := BlockKey{Date: c.Date, Slot: c.Start}
			assert.NotContains(t, seen, key)
			seen[key] = struct{}{}

			if i > 0 {
				assert.LessOrEqual(t, compareCandidates(candidates[i-1], c), 0)
			}
		}
		// no None before a Candidate
		for i := len(candidates); i < RecommendationCount; i++ {
			assert.True(t, got[i].IsNone())
		}
	}
}
