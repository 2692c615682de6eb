package game

import (
	"github.com/google/uuid"

	"github.com/cbodonnell/quizquest/pkg/game/constants"
	"github.com/cbodonnell/quizquest/pkg/game/types"
)

// startCombat replaces any current encounter with a fresh enemy for the
// current zone. Survival carries hitpoints across fights unless the
// player has none left.
func (e *Engine) startCombat(state *types.GameState) bool {
	if e.content == nil {
		return false
	}

	enemy := e.content.GenerateEnemy(state.Zone)
	if enemy.ID == "" {
		enemy.ID = uuid.NewString()
	}
	enemy.HP = min(max(enemy.HP, 1), max(enemy.MaxHP, 1))

	state.CurrentEnemy = &enemy
	state.InCombat = true
	if !state.GameMode.IsSurvival() || state.PlayerStats.IsDead() {
		state.PlayerStats.Restore()
	}

	state.CombatLog = []string{}
	state.AppendCombatLog(e.sprintf("A wild %s (Zone %d) appears!", enemy.Name, state.Zone))
	return true
}

// attack applies one answered question to the current encounter. It
// returns nil when there is no encounter or when the answer belongs to
// an encounter that has already ended.
func (e *Engine) attack(state *types.GameState, in types.AttackIntent) *types.CombatOutcome {
	if !state.InCombat || state.CurrentEnemy == nil {
		return nil
	}
	if in.EncounterID != "" && in.EncounterID != state.CurrentEnemy.ID {
		return nil
	}

	state.Statistics.RecordAnswer(in.Hit, in.Category)
	e.updateStreak(state, in.Hit)

	enemy := state.CurrentEnemy
	outcome := &types.CombatOutcome{
		Result: types.CombatResultContinue,
		Hit:    in.Hit,
	}

	if in.Hit {
		damage := max(1, state.PlayerStats.Atk-enemy.Def)
		enemy.TakeDamage(damage)
		outcome.Damage = damage
		state.AppendCombatLog(e.sprintf("You hit %s for %d damage!", enemy.Name, damage))
		if enemy.IsDead() {
			e.winCombat(state, outcome)
		}
		return outcome
	}

	damage := max(1, enemy.Atk-state.PlayerStats.Def)
	state.PlayerStats.TakeDamage(damage)
	outcome.Damage = damage
	state.AppendCombatLog(e.sprintf("Wrong answer! %s hits you for %d damage.", enemy.Name, damage))
	e.emit(types.FeedbackEvent{Kind: types.FeedbackKindShake})
	if state.PlayerStats.IsDead() {
		e.loseCombat(state, outcome)
	}
	return outcome
}

func (e *Engine) winCombat(state *types.GameState, outcome *types.CombatOutcome) {
	coinPct, gemPct := rewardPercents(state.GameMode.Current)
	streakTenths := types.StreakMultiplierTenths(state.KnowledgeStreak.Current)

	baseCoins := state.Zone*constants.RewardCoinsPerZone + e.rng.Intn(constants.RewardCoinsSpread)
	baseGems := e.rng.Intn(constants.RewardGemsSpread) + 1
	coins := baseCoins * coinPct * streakTenths / 1000
	gems := baseGems * gemPct * streakTenths / 1000

	enemyName := state.CurrentEnemy.Name
	state.Coins += coins
	state.Gems += gems
	state.SetZone(state.Zone + 1)
	state.ClearCombat()

	state.Statistics.ZonesReached = max(state.Statistics.ZonesReached, state.Zone)
	state.Statistics.CoinsEarned += coins
	state.Statistics.GemsEarned += gems

	outcome.Result = types.CombatResultWin
	outcome.Coins = coins
	outcome.Gems = gems

	state.AppendCombatLog(e.sprintf("%s defeated! +%d coins, +%d gems", enemyName, coins, gems))
	e.emitText(types.StyleSuccess, "Victory! +%d coins, +%d gems", coins, gems)
	e.emit(types.FeedbackEvent{Kind: types.FeedbackKindParticles})
}

// loseCombat resolves a fight the player lost. Outside survival nothing
// but the encounter is lost. In survival each loss costs a life and the
// last life resets progression, keeping items, currencies and research.
func (e *Engine) loseCombat(state *types.GameState, outcome *types.CombatOutcome) {
	enemyName := state.CurrentEnemy.Name
	state.ClearCombat()

	if !state.GameMode.IsSurvival() {
		outcome.Result = types.CombatResultLoss
		state.AppendCombatLog(e.sprintf("You were defeated by %s.", enemyName))
		e.emitText(types.StyleDanger, "Defeated! Try again.")
		return
	}

	state.GameMode.SurvivalLives = max(state.GameMode.SurvivalLives-1, 0)
	if state.GameMode.SurvivalLives > 0 {
		outcome.Result = types.CombatResultLifeLost
		state.AppendCombatLog(e.sprintf("You were defeated by %s and lost a life.", enemyName))
		e.emitText(types.StyleWarning, "Life lost! %d lives remaining", state.GameMode.SurvivalLives)
		return
	}

	outcome.Result = types.CombatResultSurvivalReset
	state.SetZone(constants.StartingZone)
	state.GameMode = types.GameMode{
		Current:          types.ModeNormal,
		SurvivalLives:    constants.MaxSurvivalLives,
		MaxSurvivalLives: constants.MaxSurvivalLives,
	}
	state.KnowledgeStreak.Current = 0
	state.KnowledgeStreak.Multiplier = types.StreakMultiplier(0)
	state.PlayerStats.HP = 0
	state.AppendCombatLog(e.sprintf("You were defeated by %s. Survival run over.", enemyName))
	e.emitText(types.StyleDanger, "Survival over! Back to zone %d", constants.StartingZone)
}

// rewardPercents returns the coin and gem multipliers of a mode in percent.
func rewardPercents(mode types.Mode) (int, int) {
	switch mode {
	case types.ModeSpeed:
		return constants.SpeedCoinPct, constants.SpeedGemPct
	case types.ModeSurvival:
		return constants.SurvivalCoinPct, constants.SurvivalGemPct
	}
	return constants.NormalRewardPct, constants.NormalRewardPct
}
