package messages

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gametypes "github.com/cbodonnell/quizquest/pkg/game/types"
)

func TestSerializeDeserializeGameState(t *testing.T) {
	unlockedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	state := gametypes.NewGameState()
	state.Coins = 4321
	state.Gems = 77
	state.SetZone(52)
	state.Research = gametypes.Research{Level: 12, Tier: 1, TotalSpent: 1800}
	state.Inventory.Add(gametypes.NewWeaponItem(gametypes.Weapon{
		ID: "w-2", Name: "Runed Axe", Rarity: gametypes.RarityEpic, Level: 3, BaseAtk: 30, UpgradeCost: 45, SellPrice: 172,
	}))
	state.Inventory.EquipWeapon("w-2")
	state.KnowledgeStreak = gametypes.KnowledgeStreak{Current: 7, Best: 12, Multiplier: 1.1}
	state.GameMode = gametypes.GameMode{Current: gametypes.ModeSurvival, SurvivalLives: 2, MaxSurvivalLives: 3}
	state.Statistics.RecordAnswer(true, "history")
	state.Achievements = []gametypes.Achievement{
		{ID: "first_win", Name: "First Blood", Unlocked: true, UnlockedAt: &unlockedAt, Reward: &gametypes.AchievementReward{Coins: 50}},
	}
	state.CurrentEnemy = &gametypes.Enemy{ID: "e-1", Name: "Goblin", HP: 5, MaxHP: 10}
	state.InCombat = true
	state.AppendCombatLog("A wild Goblin appears!")

	b, err := SerializeGameState(state)
	require.NoError(t, err)
	assert.Equal(t, zstdMagic, b[:4])

	got, err := DeserializeGameState(b)
	require.NoError(t, err)

	// combat is never persisted
	assert.Nil(t, got.CurrentEnemy)
	assert.False(t, got.InCombat)

	want := state.Copy()
	want.CurrentEnemy = nil
	want.InCombat = false
	want.CombatLog = got.CombatLog
	assert.Equal(t, want.Coins, got.Coins)
	assert.Equal(t, want.Zone, got.Zone)
	assert.True(t, got.IsPremium)
	assert.Equal(t, want.Research, got.Research)
	assert.Equal(t, want.Inventory, got.Inventory)
	assert.Equal(t, want.KnowledgeStreak, got.KnowledgeStreak)
	assert.Equal(t, want.GameMode, got.GameMode)
	assert.Equal(t, want.CollectionBook, got.CollectionBook)
	assert.Equal(t, want.Statistics.CategoryStats, got.Statistics.CategoryStats)
	require.Len(t, got.Achievements, 1)
	assert.True(t, got.Achievements[0].UnlockedAt.Equal(unlockedAt))
}

func TestDeserializeGameState_PlainJSON(t *testing.T) {
	got, err := DeserializeGameState([]byte(`{"coins": 5, "zone": 3}`))
	require.NoError(t, err)

	assert.Equal(t, 5, got.Coins)
	assert.Equal(t, 3, got.Zone)
	// absent fields keep the defaults of a fresh game
	assert.Equal(t, 10, got.Gems)
	assert.Contains(t, got.Inventory.Weapons, "starter-weapon")
	require.NotNil(t, got.Inventory.CurrentWeaponID)
	assert.Equal(t, "starter-weapon", *got.Inventory.CurrentWeaponID)
	assert.NotNil(t, got.Statistics.CategoryStats)
	assert.NotNil(t, got.Achievements)
	assert.Equal(t, gametypes.ModeNormal, got.GameMode.Current)
}

func TestDeserializeGameState_SavedMapsReplaceDefaults(t *testing.T) {
	saved := map[string]interface{}{
		"inventory": map[string]interface{}{
			"weapons": map[string]interface{}{
				"w-9": map[string]interface{}{"id": "w-9", "name": "Iron Mace", "rarity": "common", "level": 1, "baseAtk": 7},
			},
			"armor":           map[string]interface{}{},
			"currentWeaponId": "w-9",
		},
	}
	b, err := json.Marshal(saved)
	require.NoError(t, err)

	got, err := DeserializeGameState(b)
	require.NoError(t, err)

	assert.Len(t, got.Inventory.Weapons, 1)
	assert.Contains(t, got.Inventory.Weapons, "w-9")
	assert.Empty(t, got.Inventory.Armor)
	assert.Nil(t, got.Inventory.CurrentArmorID)
}

func TestDeserializeGameState_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "garbage", data: []byte("not a save")},
		{name: "truncated zstd", data: append(append([]byte{}, zstdMagic...), 0x00, 0x01)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeserializeGameState(tt.data)
			assert.Error(t, err)
		})
	}
}
