package game

import (
	"github.com/cbodonnell/quizquest/pkg/game/constants"
	"github.com/cbodonnell/quizquest/pkg/game/types"
)

func (e *Engine) updateStreak(state *types.GameState, correct bool) {
	streak := &state.KnowledgeStreak
	if correct {
		streak.Current++
		now := e.clock.Now()
		streak.LastCorrectTime = &now
	} else {
		streak.Current = 0
	}
	streak.Best = max(streak.Best, streak.Current)
	streak.Multiplier = types.StreakMultiplier(streak.Current)

	if streak.Current > 0 && streak.Current%constants.StreakStep == 0 {
		bonusPct := (types.StreakMultiplierTenths(streak.Current) - 10) * 10
		e.emitText(types.StyleStreak, "%d answer streak! +%d%% rewards", streak.Current, bonusPct)
	}
}

// checkAchievements unlocks every newly satisfied achievement and pays
// out the summed rewards. It reports whether anything was unlocked.
func (e *Engine) checkAchievements(state *types.GameState) bool {
	if e.achievements == nil {
		return false
	}

	satisfied := e.achievements.CheckAchievements(state)
	if len(satisfied) == 0 {
		return false
	}

	now := e.clock.Now()
	coins, gems := 0, 0
	names := make([]string, 0, len(satisfied))
	for _, candidate := range satisfied {
		index := -1
		for i, a := range state.Achievements {
			if a.ID == candidate.ID {
				index = i
				break
			}
		}
		if index >= 0 && state.Achievements[index].Unlocked {
			continue
		}

		unlocked := candidate.Copy()
		unlocked.Unlocked = true
		unlockedAt := now
		unlocked.UnlockedAt = &unlockedAt
		if index >= 0 {
			state.Achievements[index] = unlocked
		} else {
			state.Achievements = append(state.Achievements, unlocked)
		}

		if unlocked.Reward != nil {
			coins += unlocked.Reward.Coins
			gems += unlocked.Reward.Gems
		}
		names = append(names, unlocked.Name)
	}

	if len(names) == 0 {
		return false
	}

	state.Coins += coins
	state.Gems += gems

	if len(names) == 1 {
		e.emitText(types.StyleSuccess, "Achievement unlocked: %s! +%d coins, +%d gems", names[0], coins, gems)
	} else {
		e.emitText(types.StyleSuccess, "%d achievements unlocked! +%d coins, +%d gems", len(names), coins, gems)
	}
	e.emit(types.FeedbackEvent{Kind: types.FeedbackKindParticles})
	return true
}

func (e *Engine) setGameMode(state *types.GameState, mode types.Mode) bool {
	if !mode.Valid() {
		return false
	}

	state.GameMode.Current = mode
	state.GameMode.SpeedModeActive = mode == types.ModeSpeed
	state.GameMode.MaxSurvivalLives = constants.MaxSurvivalLives
	if mode == types.ModeSurvival {
		state.GameMode.SurvivalLives = state.GameMode.MaxSurvivalLives
	}
	return true
}

func (e *Engine) tick(state *types.GameState, seconds int) bool {
	if seconds <= 0 {
		return false
	}
	state.Statistics.TotalPlayTime += seconds
	return true
}
