package game

import (
	"math/rand"
	"time"

	"github.com/cbodonnell/quizquest/pkg/game/constants"
	"github.com/cbodonnell/quizquest/pkg/game/types"
	"github.com/cbodonnell/quizquest/pkg/log"
)

// ContentGenerator produces the random content the engine consumes.
type ContentGenerator interface {
	GenerateWeapon(highTierAllowed bool) types.Weapon
	GenerateArmor(highTierAllowed bool) types.Armor
	GenerateEnemy(zone int) types.Enemy
	// CalculateResearchBonus returns a percentage, e.g. 7 for +7%.
	CalculateResearchBonus(level int, tier int) float64
}

// AchievementEngine owns the achievement catalog and unlock conditions.
type AchievementEngine interface {
	InitializeAchievements() []types.Achievement
	// CheckAchievements returns the entries that are locked in the given
	// state and whose condition it satisfies.
	CheckAchievements(state *types.GameState) []types.Achievement
}

// FeedbackSink receives presentation cues. It must not block.
type FeedbackSink interface {
	Enqueue(item interface{}) error
}

// Engine applies intents to game states. It never mutates the state it
// is given; every transition works on a copy.
type Engine struct {
	content      ContentGenerator
	achievements AchievementEngine
	feedback     FeedbackSink
	rng          *rand.Rand
	clock        Clock
}

// NewEngineOptions contains options for creating a new Engine.
type NewEngineOptions struct {
	Content      ContentGenerator
	Achievements AchievementEngine
	// Feedback is optional.
	Feedback FeedbackSink
	// Rand drives reward rolls. Defaults to a time seeded source.
	Rand *rand.Rand
	// Clock defaults to the wall clock.
	Clock Clock
}

func NewEngine(opts NewEngineOptions) *Engine {
	e := &Engine{
		content:      opts.Content,
		achievements: opts.Achievements,
		feedback:     opts.Feedback,
		rng:          opts.Rand,
		clock:        opts.Clock,
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.clock == nil {
		e.clock = RealClock{}
	}
	return e
}

// Apply returns the state that results from the intent. When a
// precondition fails the original pointer is returned unchanged and
// Outcome.Applied is false.
func (e *Engine) Apply(state *types.GameState, intent types.Intent) (*types.GameState, types.Outcome) {
	next := state.Copy()
	outcome := types.Outcome{}

	switch in := intent.(type) {
	case types.StartCombatIntent:
		outcome.Applied = e.startCombat(next)
	case types.AttackIntent:
		outcome.Combat = e.attack(next, in)
		outcome.Applied = outcome.Combat != nil
	case types.EquipIntent:
		outcome.Applied = e.equipItem(next, in.ItemID)
	case types.UpgradeItemIntent:
		outcome.Applied = e.upgradeItem(next, in.ItemID)
	case types.SellItemIntent:
		outcome.Applied = e.sellItem(next, in.ItemID)
	case types.UpgradeResearchIntent:
		outcome.Applied = e.upgradeResearch(next)
	case types.OpenChestIntent:
		outcome.Chest = e.openChest(next, in.Cost)
		outcome.Applied = outcome.Chest != nil
	case types.CheckAchievementsIntent:
		outcome.Applied = e.checkAchievements(next)
	case types.SetGameModeIntent:
		outcome.Applied = e.setGameMode(next, in.Mode)
	case types.TickIntent:
		outcome.Applied = e.tick(next, in.Seconds)
	default:
		log.Error("Unhandled intent type: %T", intent)
	}

	if !outcome.Applied {
		return state, outcome
	}
	return next, outcome
}

// NewGameState returns a fresh save with derived fields computed and the
// achievement catalog attached.
func (e *Engine) NewGameState() *types.GameState {
	state := types.NewGameState()
	e.Normalize(state)
	return state
}

// Normalize repairs a freshly restored state in place. Combat is always
// cleared, derived fields are recomputed and the achievement list is
// merged with the current catalog.
func (e *Engine) Normalize(state *types.GameState) {
	if state.Inventory.Weapons == nil {
		state.Inventory.Weapons = make(map[string]types.Weapon)
	}
	if state.Inventory.Armor == nil {
		state.Inventory.Armor = make(map[string]types.Armor)
	}
	for id, w := range state.Inventory.Weapons {
		state.Inventory.Weapons[id] = w.Normalized()
	}
	for id, a := range state.Inventory.Armor {
		state.Inventory.Armor[id] = a.Normalized()
	}
	if _, ok := state.Inventory.CurrentWeapon(); !ok {
		state.Inventory.CurrentWeaponID = nil
	}
	if _, ok := state.Inventory.CurrentArmor(); !ok {
		state.Inventory.CurrentArmorID = nil
	}
	if state.CollectionBook.Weapons == nil {
		state.CollectionBook.Weapons = make(map[string]bool)
	}
	if state.CollectionBook.Armor == nil {
		state.CollectionBook.Armor = make(map[string]bool)
	}
	if state.CollectionBook.RarityCounts == nil {
		state.CollectionBook.RarityCounts = make(map[types.Rarity]int)
	}
	if state.Statistics.CategoryStats == nil {
		state.Statistics.CategoryStats = make(map[string]types.CategoryStats)
	}

	state.Coins = max(state.Coins, 0)
	state.Gems = max(state.Gems, 0)
	state.SetZone(max(state.Zone, constants.StartingZone))

	state.ClearCombat()
	state.CombatLog = []string{}

	state.Research.Level = max(state.Research.Level, 0)
	state.Research.Tier = types.TierForLevel(state.Research.Level)

	mode := &state.GameMode
	if !mode.Current.Valid() {
		mode.Current = types.ModeNormal
	}
	mode.SpeedModeActive = mode.Current == types.ModeSpeed
	mode.MaxSurvivalLives = constants.MaxSurvivalLives
	mode.SurvivalLives = min(max(mode.SurvivalLives, 0), mode.MaxSurvivalLives)

	streak := &state.KnowledgeStreak
	streak.Current = max(streak.Current, 0)
	streak.Best = max(streak.Best, streak.Current)
	streak.Multiplier = types.StreakMultiplier(streak.Current)

	stats := &state.PlayerStats
	if stats.BaseAtk <= 0 {
		stats.BaseAtk = constants.PlayerBaseAtk
	}
	if stats.BaseDef <= 0 {
		stats.BaseDef = constants.PlayerBaseDef
	}
	if stats.BaseHP <= 0 {
		stats.BaseHP = constants.PlayerBaseHp
	}

	state.Statistics.ZonesReached = max(state.Statistics.ZonesReached, state.Zone)
	state.Statistics.SessionStartTime = e.clock.Now()

	state.Achievements = e.mergeAchievements(state.Achievements)

	e.recalculateStats(state)
	stats.HP = max(stats.HP, 0)
}

// mergeAchievements lays saved progress over the current catalog. Catalog
// entries missing from the save start locked; unlocked saved entries keep
// their unlock time. Saved entries no longer in the catalog are kept.
func (e *Engine) mergeAchievements(saved []types.Achievement) []types.Achievement {
	if e.achievements == nil {
		if saved == nil {
			return []types.Achievement{}
		}
		return saved
	}

	savedByID := make(map[string]types.Achievement, len(saved))
	for _, a := range saved {
		savedByID[a.ID] = a
	}

	catalog := e.achievements.InitializeAchievements()
	merged := make([]types.Achievement, 0, len(catalog))
	seen := make(map[string]bool, len(catalog))
	for _, entry := range catalog {
		seen[entry.ID] = true
		if s, ok := savedByID[entry.ID]; ok && s.Unlocked {
			entry.Unlocked = true
			entry.UnlockedAt = s.UnlockedAt
		}
		merged = append(merged, entry.Copy())
	}
	for _, a := range saved {
		if !seen[a.ID] {
			merged = append(merged, a.Copy())
		}
	}
	return merged
}
