package game

import (
	"github.com/cbodonnell/quizquest/pkg/game/types"
	"github.com/cbodonnell/quizquest/pkg/messages"
)

// SessionUpdateFromState builds the presentation view of a state,
// including the combat fields a save leaves out.
func SessionUpdateFromState(state *types.GameState, intentType types.IntentType, outcome *types.Outcome) *messages.SessionUpdate {
	snapshot := state.Copy()

	combat := &messages.CombatUpdate{
		InCombat: snapshot.InCombat,
		Enemy:    snapshot.CurrentEnemy,
		Log:      snapshot.CombatLog,
	}
	if combat.Log == nil {
		combat.Log = []string{}
	}

	return &messages.SessionUpdate{
		Intent:    string(intentType),
		Outcome:   outcome,
		GameState: snapshot,
		Combat:    combat,
	}
}
