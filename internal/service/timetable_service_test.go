package service

import (
	"math/rand"
	"testing"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func period(start, end string) model.Period {
	s, err := model.ParseTimeOfDay(start)
	if err != nil {
		panic(err)
	}
	e, err := model.ParseTimeOfDay(end)
	if err != nil {
		panic(err)
	}
	return model.Period{Start: s, End: e}
}

func TestHasConflict_EmptyAndSingle(t *testing.T) {
	assert.False(t, HasConflict(nil))
	assert.False(t, HasConflict([]model.Period{}))
	assert.False(t, HasConflict([]model.Period{period("08:00", "08:45")}))
}

func TestHasConflict_BackToBackIsLegal(t *testing.T) {
	periods := []model.Period{
		period("08:00", "08:45"),
		period("08:45", "09:30"),
		period("09:30", "10:15"),
	}
	assert.False(t, HasConflict(periods), "a period ending exactly when the next starts is not a conflict")
}

func TestHasConflict_Overlap(t *testing.T) {
	periods := []model.Period{
		period("08:00", "09:00"),
		period("08:30", "09:30"),
	}
	assert.True(t, HasConflict(periods))
}

func TestHasConflict_ContainedPeriod(t *testing.T) {
	periods := []model.Period{
		period("08:00", "10:00"),
		period("08:30", "09:00"),
	}
	assert.True(t, HasConflict(periods))
}

func TestHasConflict_IdenticalStarts(t *testing.T) {
	periods := []model.Period{
		period("08:00", "08:45"),
		period("08:00", "09:30"),
	}
	assert.True(t, HasConflict(periods), "two periods sharing a start instant always conflict")
}

func TestHasConflict_OrderIndependent(t *testing.T) {
	sorted := []model.Period{
		period("08:00", "08:45"),
		period("08:45", "09:30"),
		period("10:00", "10:45"),
	}
	reversed := []model.Period{sorted[2], sorted[1], sorted[0]}

	assert.Equal(t, HasConflict(sorted), HasConflict(reversed))

	conflicting := []model.Period{
		period("09:00", "10:00"),
		period("08:00", "09:30"),
	}
	assert.True(t, HasConflict(conflicting), "verdict must not depend on input order")
}

func TestHasConflict_DoesNotMutateInput(t *testing.T) {
	periods := []model.Period{
		period("10:00", "10:45"),
		period("08:00", "08:45"),
	}
	HasConflict(periods)
	assert.Equal(t, period("10:00", "10:45"), periods[0], "input slice order must be preserved")
}

// Shuffling any fixed set of periods must never change the verdict.
func TestHasConflict_ShuffleProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	fixtures := [][]model.Period{
		{period("08:00", "08:45"), period("08:45", "09:30"), period("09:45", "10:30"), period("10:30", "11:15")},
		{period("08:00", "09:00"), period("08:59", "10:00"), period("10:00", "11:00")},
		{period("07:30", "08:15"), period("08:15", "09:00"), period("09:00", "09:45"), period("09:44", "10:30")},
	}

	for i, fixture := range fixtures {
		want := HasConflict(fixture)
		for trial := 0; trial < 20; trial++ {
			shuffled := make([]model.Period, len(fixture))
			copy(shuffled, fixture)
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			assert.Equal(t, want, HasConflict(shuffled), "fixture %d", i)
		}
	}
}
