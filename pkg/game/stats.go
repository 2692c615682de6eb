package game

import (
	"math"

	"github.com/cbodonnell/quizquest/pkg/game/types"
)

// recalculateStats derives attack, defense and max hitpoints from the base
// stats, the equipped items and the research bonus, then clamps hitpoints.
func (e *Engine) recalculateStats(state *types.GameState) {
	stats := &state.PlayerStats

	weaponAtk := 0
	if w, ok := state.Inventory.CurrentWeapon(); ok {
		weaponAtk = w.Contribution()
	}
	armorDef := 0
	if a, ok := state.Inventory.CurrentArmor(); ok {
		armorDef = a.Contribution()
	}

	bonusPct := 0.0
	if e.content != nil {
		bonusPct = e.content.CalculateResearchBonus(state.Research.Level, state.Research.Tier)
	}

	stats.Atk = applyBonus(stats.BaseAtk+weaponAtk, bonusPct)
	stats.Def = applyBonus(stats.BaseDef+armorDef, bonusPct)
	stats.MaxHP = applyBonus(stats.BaseHP, bonusPct)
	if stats.HP > stats.MaxHP {
		stats.HP = stats.MaxHP
	}
}

// applyBonus returns floor(value * (1 + pct/100)).
func applyBonus(value int, pct float64) int {
	return int(math.Floor(float64(value) * (100 + pct) / 100))
}
