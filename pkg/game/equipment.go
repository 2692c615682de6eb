package game

import (
	"github.com/cbodonnell/quizquest/pkg/game/types"
)

func (e *Engine) equipItem(state *types.GameState, itemID string) bool {
	item, ok := state.Inventory.Find(itemID)
	if !ok {
		return false
	}

	switch item.Kind {
	case types.ItemKindWeapon:
		state.Inventory.EquipWeapon(itemID)
	case types.ItemKindArmor:
		state.Inventory.EquipArmor(itemID)
	default:
		return false
	}
	e.recalculateStats(state)
	return true
}

func (e *Engine) upgradeItem(state *types.GameState, itemID string) bool {
	item, ok := state.Inventory.Find(itemID)
	if !ok {
		return false
	}

	var cost, level int
	var name string
	switch item.Kind {
	case types.ItemKindWeapon:
		cost = item.Weapon.UpgradeCost
		if state.Gems < cost {
			return false
		}
		upgraded := item.Weapon.Upgraded()
		state.Inventory.Weapons[itemID] = upgraded
		level, name = upgraded.Level, upgraded.Name
	case types.ItemKindArmor:
		cost = item.Armor.UpgradeCost
		if state.Gems < cost {
			return false
		}
		upgraded := item.Armor.Upgraded()
		state.Inventory.Armor[itemID] = upgraded
		level, name = upgraded.Level, upgraded.Name
	default:
		return false
	}

	state.Gems -= cost
	e.recalculateStats(state)
	e.emitText(types.StyleSuccess, "%s upgraded to level %d!", name, level)
	return true
}

func (e *Engine) sellItem(state *types.GameState, itemID string) bool {
	item, ok := state.Inventory.Find(itemID)
	if !ok || state.Inventory.IsEquipped(itemID) {
		return false
	}

	price := 0
	switch item.Kind {
	case types.ItemKindWeapon:
		price = item.Weapon.SellPrice
	case types.ItemKindArmor:
		price = item.Armor.SellPrice
	}

	state.Inventory.Remove(itemID)
	state.Coins += price
	return true
}
