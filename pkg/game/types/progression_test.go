package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreakMultiplier(t *testing.T) {
	tests := []struct {
		current int
		want    float64
	}{
		{current: -3, want: 1.0},
		{current: 0, want: 1.0},
		{current: 4, want: 1.0},
		{current: 5, want: 1.1},
		{current: 9, want: 1.1},
		{current: 25, want: 1.5},
		{current: 49, want: 1.9},
		{current: 50, want: 2.0},
		{current: 51, want: 2.0},
		{current: 500, want: 2.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, StreakMultiplier(tt.current), 1e-9, "current=%d", tt.current)
	}
}

func TestStreakMultiplier_Monotonic(t *testing.T) {
	previous := StreakMultiplier(0)
	for current := 1; current <= 200; current++ {
		got := StreakMultiplier(current)
		assert.GreaterOrEqual(t, got, previous, "current=%d", current)
		assert.LessOrEqual(t, got, 2.0, "current=%d", current)
		previous = got
	}
}

func TestTierForLevel(t *testing.T) {
	assert.Equal(t, 0, TierForLevel(0))
	assert.Equal(t, 0, TierForLevel(9))
	assert.Equal(t, 1, TierForLevel(10))
	assert.Equal(t, 3, TierForLevel(35))
}

func TestCollectionBook_Record(t *testing.T) {
	book := NewCollectionBook()

	sword := NewWeaponItem(Weapon{ID: "w-1", Name: "Iron Sword", Rarity: RarityRare})
	sameName := NewWeaponItem(Weapon{ID: "w-2", Name: "Iron Sword", Rarity: RarityRare})
	plate := NewArmorItem(Armor{ID: "a-1", Name: "Iron Plate", Rarity: RarityEpic})

	assert.True(t, book.Record(sword))
	assert.False(t, book.Record(sameName))
	assert.True(t, book.Record(plate))

	assert.Equal(t, 1, book.TotalWeaponsFound)
	assert.Equal(t, 1, book.TotalArmorFound)
	assert.Equal(t, 1, book.RarityCounts[RarityRare])
	assert.Equal(t, 1, book.RarityCounts[RarityEpic])
	assert.True(t, book.Weapons["Iron Sword"])
	assert.True(t, book.Armor["Iron Plate"])
}

func TestStatistics_RecordAnswer(t *testing.T) {
	stats := NewStatistics()

	stats.RecordAnswer(true, "science")
	stats.RecordAnswer(false, "science")
	stats.RecordAnswer(true, "")

	assert.Equal(t, 3, stats.TotalQuestionsAnswered)
	assert.Equal(t, 2, stats.CorrectAnswers)
	assert.Equal(t, CategoryStats{Correct: 1, Total: 2}, stats.CategoryStats["science"])
	assert.Len(t, stats.CategoryStats, 1)
}

func TestMode_Valid(t *testing.T) {
	assert.True(t, ModeNormal.Valid())
	assert.True(t, ModeSpeed.Valid())
	assert.True(t, ModeSurvival.Valid())
	assert.False(t, Mode("hardcore").Valid())
}
