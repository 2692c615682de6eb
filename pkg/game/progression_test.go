package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mocks "github.com/cbodonnell/quizquest/mocks/github.com/cbodonnell/quizquest/pkg/game"
	"github.com/cbodonnell/quizquest/pkg/game/types"
)

func testCatalog() []types.Achievement {
	return []types.Achievement{
		{ID: "first_win", Name: "First Victory", Reward: &types.AchievementReward{Coins: 50, Gems: 5}},
		{ID: "zone_10", Name: "Explorer", Reward: &types.AchievementReward{Coins: 200}},
		{ID: "scholar", Name: "Scholar"},
	}
}

func TestEngine_CheckAchievements(t *testing.T) {
	achievements := mocks.NewAchievementEngine(t)
	achievements.EXPECT().InitializeAchievements().Return(testCatalog())
	// an engine that reports everything satisfied, locked or not
	achievements.EXPECT().CheckAchievements(mock.Anything).Return(testCatalog()[:2])

	e := newTestEngine(newStubContent(), achievements, nil)
	state := e.NewGameState()
	require.Len(t, state.Achievements, 3)

	next, _ := mustApply(t, e, state, types.CheckAchievementsIntent{})

	assert.Equal(t, state.Coins+250, next.Coins)
	assert.Equal(t, state.Gems+5, next.Gems)
	for _, id := range []string{"first_win", "zone_10"} {
		a, ok := next.Achievement(id)
		require.True(t, ok)
		assert.True(t, a.Unlocked)
		require.NotNil(t, a.UnlockedAt)
		assert.True(t, a.UnlockedAt.Equal(testStart))
	}
	scholar, _ := next.Achievement("scholar")
	assert.False(t, scholar.Unlocked)

	// nothing new the second time
	assertNoOp(t, e, next, types.CheckAchievementsIntent{})
}

func TestEngine_CheckAchievements_Feedback(t *testing.T) {
	achievements := mocks.NewAchievementEngine(t)
	achievements.EXPECT().InitializeAchievements().Return(testCatalog())
	achievements.EXPECT().CheckAchievements(mock.Anything).Return(testCatalog()[:1]).Once()

	sink := mocks.NewFeedbackSink(t)
	sink.EXPECT().Enqueue(types.FeedbackEvent{
		Kind:      types.FeedbackKindText,
		Message:   "Achievement unlocked: First Victory! +50 coins, +5 gems",
		StyleHint: types.StyleSuccess,
	}).Return(nil).Once()
	sink.EXPECT().Enqueue(types.FeedbackEvent{Kind: types.FeedbackKindParticles}).Return(nil).Once()

	e := newTestEngine(newStubContent(), achievements, sink)
	mustApply(t, e, e.NewGameState(), types.CheckAchievementsIntent{})
}

func TestEngine_CheckAchievements_NoneSatisfied(t *testing.T) {
	achievements := mocks.NewAchievementEngine(t)
	achievements.EXPECT().InitializeAchievements().Return(testCatalog())
	achievements.EXPECT().CheckAchievements(mock.Anything).Return(nil)

	e := newTestEngine(newStubContent(), achievements, nil)
	assertNoOp(t, e, e.NewGameState(), types.CheckAchievementsIntent{})
}

func TestEngine_SetGameMode(t *testing.T) {
	e := newTestEngine(newStubContent(), nil, nil)
	state := e.NewGameState()

	state, _ = mustApply(t, e, state, types.SetGameModeIntent{Mode: types.ModeSpeed})
	assert.True(t, state.GameMode.SpeedModeActive)

	state, _ = mustApply(t, e, state, types.SetGameModeIntent{Mode: types.ModeSurvival})
	assert.False(t, state.GameMode.SpeedModeActive)
	assert.Equal(t, 3, state.GameMode.SurvivalLives)

	// leaving survival keeps the remaining lives
	state.GameMode.SurvivalLives = 1
	state, _ = mustApply(t, e, state, types.SetGameModeIntent{Mode: types.ModeNormal})
	assert.Equal(t, 1, state.GameMode.SurvivalLives)

	// entering again refills them
	state, _ = mustApply(t, e, state, types.SetGameModeIntent{Mode: types.ModeSurvival})
	assert.Equal(t, 3, state.GameMode.SurvivalLives)

	assertNoOp(t, e, state, types.SetGameModeIntent{Mode: "hardcore"})
}

func TestEngine_Tick(t *testing.T) {
	e := newTestEngine(newStubContent(), nil, nil)
	state := e.NewGameState()

	state, _ = mustApply(t, e, state, types.TickIntent{Seconds: 1})
	state, _ = mustApply(t, e, state, types.TickIntent{Seconds: 2})
	assert.Equal(t, 3, state.Statistics.TotalPlayTime)

	assertNoOp(t, e, state, types.TickIntent{Seconds: 0})
}

func TestEngine_Normalize(t *testing.T) {
	achievements := mocks.NewAchievementEngine(t)
	achievements.EXPECT().InitializeAchievements().Return(testCatalog())

	e := newTestEngine(newStubContent(), achievements, nil)

	unlockedAt := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	state := types.NewGameState()
	state.Zone = 60
	state.IsPremium = false
	state.CurrentEnemy = &types.Enemy{ID: "e"}
	state.InCombat = true
	state.CombatLog = []string{"stale"}
	state.PlayerStats.HP = 1000
	state.Research.Level = 23
	state.Research.Tier = 0
	state.KnowledgeStreak.Current = 12
	state.KnowledgeStreak.Multiplier = 9
	state.GameMode = types.GameMode{Current: "unknown", SpeedModeActive: true, SurvivalLives: 7}
	state.Inventory.Remove("starter-armor")
	state.Inventory.Add(types.NewWeaponItem(types.Weapon{ID: "cheap", Name: "Cheap", Level: 1, UpgradeCost: 1, SellPrice: 1}))
	state.Statistics.SessionStartTime = unlockedAt
	state.Achievements = []types.Achievement{
		{ID: "first_win", Name: "Old Name", Unlocked: true, UnlockedAt: &unlockedAt},
		{ID: "retired", Name: "Retired", Unlocked: true, UnlockedAt: &unlockedAt},
	}

	e.Normalize(state)

	assert.True(t, state.IsPremium)
	assert.Nil(t, state.CurrentEnemy)
	assert.False(t, state.InCombat)
	assert.Empty(t, state.CombatLog)
	assert.Equal(t, 2, state.Research.Tier)
	assert.InDelta(t, 1.2, state.KnowledgeStreak.Multiplier, 1e-9)
	assert.Equal(t, 12, state.KnowledgeStreak.Best)
	assert.Equal(t, types.ModeNormal, state.GameMode.Current)
	assert.False(t, state.GameMode.SpeedModeActive)
	assert.Equal(t, 3, state.GameMode.SurvivalLives)
	assert.Nil(t, state.Inventory.CurrentArmorID)
	cheap := state.Inventory.Weapons["cheap"]
	assert.Equal(t, 5, cheap.UpgradeCost)
	assert.Equal(t, 5, cheap.SellPrice)
	assert.Equal(t, state.PlayerStats.MaxHP, state.PlayerStats.HP)
	assert.Equal(t, 60, state.Statistics.ZonesReached)
	assert.True(t, state.Statistics.SessionStartTime.Equal(testStart))

	require.Len(t, state.Achievements, 4)
	first, _ := state.Achievement("first_win")
	assert.Equal(t, "First Victory", first.Name)
	assert.True(t, first.Unlocked)
	assert.True(t, first.UnlockedAt.Equal(unlockedAt))
	explorer, _ := state.Achievement("zone_10")
	assert.False(t, explorer.Unlocked)
	retired, ok := state.Achievement("retired")
	assert.True(t, ok)
	assert.True(t, retired.Unlocked)
}
