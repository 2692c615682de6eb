package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbodonnell/quizquest/pkg/game/types"
)

func ids(achievements []types.Achievement) []string {
	out := make([]string, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, a.ID)
	}
	return out
}

func TestNewEngine_DefaultCatalog(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	catalog := e.InitializeAchievements()
	require.NotEmpty(t, catalog)
	for _, a := range catalog {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Name)
		assert.False(t, a.Unlocked)
		assert.Nil(t, a.UnlockedAt)
	}

	first := catalog[0]
	assert.Equal(t, "first_victory", first.ID)
	require.NotNil(t, first.Reward)
	assert.Equal(t, types.AchievementReward{Coins: 50, Gems: 2}, *first.Reward)
}

func TestNewEngineFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "malformed", yaml: "achievements: {"},
		{name: "missing id", yaml: "achievements:\n  - name: Nameless\n    condition: {kind: zone_reached, value: 2}\n"},
		{name: "duplicate id", yaml: "achievements:\n  - id: a\n    condition: {kind: zone_reached, value: 2}\n  - id: a\n    condition: {kind: zone_reached, value: 3}\n"},
		{name: "unknown kind", yaml: "achievements:\n  - id: a\n    condition: {kind: dance, value: 2}\n"},
		{name: "zero value", yaml: "achievements:\n  - id: a\n    condition: {kind: zone_reached, value: 0}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngineFromYAML([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestCondition_Satisfied(t *testing.T) {
	state := types.NewGameState()
	state.SetZone(12)
	state.Statistics.TotalQuestionsAnswered = 40
	state.Statistics.CorrectAnswers = 30
	state.KnowledgeStreak.Best = 6
	state.Statistics.ChestsOpened = 2
	state.Research.Level = 3
	state.Statistics.CoinsEarned = 900
	state.Statistics.TotalPlayTime = 60

	tests := []struct {
		condition Condition
		want      bool
	}{
		{condition: Condition{Kind: ConditionZoneReached, Value: 10}, want: true},
		{condition: Condition{Kind: ConditionZoneReached, Value: 13}, want: false},
		{condition: Condition{Kind: ConditionQuestionsAnswered, Value: 40}, want: true},
		{condition: Condition{Kind: ConditionCorrectAnswers, Value: 31}, want: false},
		{condition: Condition{Kind: ConditionBestStreak, Value: 5}, want: true},
		{condition: Condition{Kind: ConditionChestsOpened, Value: 1}, want: true},
		{condition: Condition{Kind: ConditionItemsCollected, Value: 2}, want: true},
		{condition: Condition{Kind: ConditionItemsCollected, Value: 3}, want: false},
		{condition: Condition{Kind: ConditionWeaponsFound, Value: 1}, want: true},
		{condition: Condition{Kind: ConditionWeaponsFound, Value: 2}, want: false},
		{condition: Condition{Kind: ConditionArmorFound, Value: 1}, want: true},
		{condition: Condition{Kind: ConditionArmorFound, Value: 2}, want: false},
		{condition: Condition{Kind: ConditionResearchLevel, Value: 10}, want: false},
		{condition: Condition{Kind: ConditionCoinsEarned, Value: 900}, want: true},
		{condition: Condition{Kind: ConditionPlayTime, Value: 3600}, want: false},
		{condition: Condition{Kind: "dance", Value: 1}, want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.condition.Satisfied(state), "%s >= %d", tt.condition.Kind, tt.condition.Value)
	}
}

func TestEngine_CheckAchievements(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	state := types.NewGameState()
	state.Achievements = e.InitializeAchievements()
	assert.Empty(t, e.CheckAchievements(state))

	state.SetZone(2)
	state.Statistics.ChestsOpened = 1
	got := e.CheckAchievements(state)
	assert.ElementsMatch(t, []string{"first_victory", "treasure_hunter"}, ids(got))

	// unlocked entries are not reported again
	now := time.Now()
	for i, a := range state.Achievements {
		if a.ID == "first_victory" || a.ID == "treasure_hunter" {
			state.Achievements[i].Unlocked = true
			state.Achievements[i].UnlockedAt = &now
		}
	}
	assert.Empty(t, e.CheckAchievements(state))
}

func TestEngine_CheckAchievements_CollectionKinds(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	state := types.NewGameState()
	state.Achievements = e.InitializeAchievements()
	state.CollectionBook.TotalWeaponsFound = 10
	state.CollectionBook.TotalArmorFound = 9

	got := ids(e.CheckAchievements(state))
	assert.Contains(t, got, "weaponsmith")
	assert.NotContains(t, got, "armorer")
}
