package achievements

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cbodonnell/quizquest/pkg/game/types"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type ConditionKind string

const (
	ConditionZoneReached       ConditionKind = "zone_reached"
	ConditionQuestionsAnswered ConditionKind = "questions_answered"
	ConditionCorrectAnswers    ConditionKind = "correct_answers"
	ConditionBestStreak        ConditionKind = "best_streak"
	ConditionChestsOpened      ConditionKind = "chests_opened"
	ConditionItemsCollected    ConditionKind = "items_collected"
	ConditionWeaponsFound      ConditionKind = "weapons_found"
	ConditionArmorFound        ConditionKind = "armor_found"
	ConditionResearchLevel     ConditionKind = "research_level"
	ConditionCoinsEarned       ConditionKind = "coins_earned"
	ConditionPlayTime          ConditionKind = "play_time"
)

// Condition is met once the measured value reaches Value.
type Condition struct {
	Kind  ConditionKind `yaml:"kind"`
	Value int           `yaml:"value"`
}

func (c Condition) measure(state *types.GameState) (int, error) {
	switch c.Kind {
	case ConditionZoneReached:
		return max(state.Zone, state.Statistics.ZonesReached), nil
	case ConditionQuestionsAnswered:
		return state.Statistics.TotalQuestionsAnswered, nil
	case ConditionCorrectAnswers:
		return state.Statistics.CorrectAnswers, nil
	case ConditionBestStreak:
		return state.KnowledgeStreak.Best, nil
	case ConditionChestsOpened:
		return state.Statistics.ChestsOpened, nil
	case ConditionItemsCollected:
		return state.CollectionBook.TotalWeaponsFound + state.CollectionBook.TotalArmorFound, nil
	case ConditionWeaponsFound:
		return state.CollectionBook.TotalWeaponsFound, nil
	case ConditionArmorFound:
		return state.CollectionBook.TotalArmorFound, nil
	case ConditionResearchLevel:
		return state.Research.Level, nil
	case ConditionCoinsEarned:
		return state.Statistics.CoinsEarned, nil
	case ConditionPlayTime:
		return state.Statistics.TotalPlayTime, nil
	}
	return 0, fmt.Errorf("unknown condition kind: %q", c.Kind)
}

// Satisfied reports whether the state meets the condition.
func (c Condition) Satisfied(state *types.GameState) bool {
	v, err := c.measure(state)
	return err == nil && v >= c.Value
}

type Definition struct {
	types.Achievement `yaml:",inline"`
	Condition         Condition `yaml:"condition"`
}

type catalogFile struct {
	Achievements []Definition `yaml:"achievements"`
}

// Engine evaluates a fixed catalog of achievements.
type Engine struct {
	definitions []Definition
}

// NewEngine loads the built-in catalog.
func NewEngine() (*Engine, error) {
	return NewEngineFromYAML(defaultCatalog)
}

// NewEngineFromYAML loads a catalog in the format of catalog.yaml.
func NewEngineFromYAML(data []byte) (*Engine, error) {
	catalog := catalogFile{}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse achievement catalog: %v", err)
	}

	seen := make(map[string]bool, len(catalog.Achievements))
	for _, d := range catalog.Achievements {
		if d.ID == "" {
			return nil, fmt.Errorf("achievement %q has no id", d.Name)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("duplicate achievement id %q", d.ID)
		}
		seen[d.ID] = true
		if _, err := d.Condition.measure(types.NewGameState()); err != nil {
			return nil, fmt.Errorf("achievement %q: %v", d.ID, err)
		}
		if d.Condition.Value <= 0 {
			return nil, fmt.Errorf("achievement %q: condition value must be positive", d.ID)
		}
	}

	return &Engine{
		definitions: catalog.Achievements,
	}, nil
}

// InitializeAchievements returns the catalog with every entry locked.
func (e *Engine) InitializeAchievements() []types.Achievement {
	out := make([]types.Achievement, 0, len(e.definitions))
	for _, d := range e.definitions {
		a := d.Achievement.Copy()
		a.Unlocked = false
		a.UnlockedAt = nil
		out = append(out, a)
	}
	return out
}

// CheckAchievements returns the catalog entries that are still locked in
// the state and whose condition the state meets.
func (e *Engine) CheckAchievements(state *types.GameState) []types.Achievement {
	var out []types.Achievement
	for _, d := range e.definitions {
		if a, ok := state.Achievement(d.ID); ok && a.Unlocked {
			continue
		}
		if d.Condition.Satisfied(state) {
			out = append(out, d.Achievement.Copy())
		}
	}
	return out
}
