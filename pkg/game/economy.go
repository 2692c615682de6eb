package game

import (
	"github.com/cbodonnell/quizquest/pkg/game/constants"
	"github.com/cbodonnell/quizquest/pkg/game/types"
)

func (e *Engine) upgradeResearch(state *types.GameState) bool {
	if state.Coins < constants.ResearchCost {
		return false
	}

	previousTier := state.Research.Tier
	state.Coins -= constants.ResearchCost
	state.Research.Level++
	state.Research.Tier = types.TierForLevel(state.Research.Level)
	state.Research.TotalSpent += constants.ResearchCost

	if state.Research.Tier > previousTier {
		e.emitText(types.StyleInfo, "Research tier %d unlocked!", state.Research.Tier)
	}
	e.recalculateStats(state)
	e.checkAchievements(state)
	return true
}

// openChest buys a chest and returns what it held, or nil when the
// player cannot afford it.
func (e *Engine) openChest(state *types.GameState, cost int) *types.ChestReward {
	if e.content == nil || cost < 0 || state.Coins < cost {
		return nil
	}

	highTier := cost == constants.MythicalChestCost
	count := constants.ChestMinItems + e.rng.Intn(constants.ChestExtraItemsSpread)
	items := make([]types.Item, 0, count)
	for i := 0; i < count; i++ {
		var item types.Item
		if e.rng.Intn(2) == 0 {
			item = types.NewWeaponItem(e.content.GenerateWeapon(highTier))
		} else {
			item = types.NewArmorItem(e.content.GenerateArmor(highTier))
		}
		items = append(items, item)
	}

	streakTenths := types.StreakMultiplierTenths(state.KnowledgeStreak.Current)
	gems := (constants.ChestMinGems + e.rng.Intn(constants.ChestGemsSpread)) * streakTenths / 10

	state.Coins -= cost
	state.Gems += gems
	for _, item := range items {
		state.Inventory.Add(item)
		if state.CollectionBook.Record(item) {
			state.Statistics.ItemsCollected++
		}
	}
	state.Statistics.ChestsOpened++
	state.Statistics.GemsEarned += gems

	e.emit(types.FeedbackEvent{Kind: types.FeedbackKindParticles})
	e.emitText(types.StyleSuccess, "%s opened! %d items, +%d gems", chestLabel(cost), len(items), gems)
	e.checkAchievements(state)

	return &types.ChestReward{
		Type:  chestLabel(cost),
		Items: items,
		Gems:  gems,
	}
}

func chestLabel(cost int) string {
	switch cost {
	case constants.BasicChestCost:
		return "Basic Chest"
	case constants.PremiumChestCost:
		return "Premium Chest"
	case constants.MythicalChestCost:
		return "Mythical Chest"
	}
	return "Chest"
}
