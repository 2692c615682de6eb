package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/quizquest/pkg/game/types"
	"github.com/cbodonnell/quizquest/pkg/log"
	"github.com/cbodonnell/quizquest/pkg/messages"
	"github.com/cbodonnell/quizquest/pkg/repositories"
	"github.com/cbodonnell/quizquest/pkg/state"
	"github.com/cbodonnell/quizquest/pkg/workers"
)

var (
	ErrAlreadyLoaded = errors.New("game state already loaded")
	ErrNotLoaded     = errors.New("game state not loaded")
)

// GameManager owns the authoritative game state. Transitions commit one
// at a time; each commit is published to the state manager, broadcast
// and handed to the save worker.
type GameManager struct {
	lock                 sync.Mutex
	engine               *Engine
	repository           repositories.Repository
	stateManager         state.StateManager
	saveGameStateChan    chan<- workers.SaveGameStateRequest
	broadcastMessageChan chan<- workers.BroadcastMessage
	saveKey              string
	tickInterval         time.Duration
	revealDelay          time.Duration

	gameState *types.GameState
	loaded    bool
	// saving stays off when the stored state could not be read, so it
	// is never overwritten by defaults
	persistDisabled bool

	// the encounter context is cancelled when its enemy leaves the state
	encounterID     string
	encounterCtx    context.Context
	cancelEncounter context.CancelFunc
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Engine       *Engine
	Repository   repositories.Repository
	StateManager state.StateManager
	// SaveGameStateChan receives a snapshot after every commit. Optional.
	SaveGameStateChan chan<- workers.SaveGameStateRequest
	// BroadcastMessageChan receives a session update after every commit
	// except play time ticks. Optional.
	BroadcastMessageChan chan<- workers.BroadcastMessage
	SaveKey              string
	TickInterval         time.Duration
	// RevealDelay is the pause between an answer and its effect.
	RevealDelay time.Duration
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	return &GameManager{
		engine:               opts.Engine,
		repository:           opts.Repository,
		stateManager:         opts.StateManager,
		saveGameStateChan:    opts.SaveGameStateChan,
		broadcastMessageChan: opts.BroadcastMessageChan,
		saveKey:              opts.SaveKey,
		tickInterval:         opts.TickInterval,
		revealDelay:          opts.RevealDelay,
		gameState:            opts.Engine.NewGameState(),
	}
}

// Load restores the saved game state, or starts a fresh one when there
// is none or it cannot be read. It may only run once.
func (gm *GameManager) Load(ctx context.Context) error {
	gm.lock.Lock()
	defer gm.lock.Unlock()

	if gm.loaded {
		return ErrAlreadyLoaded
	}

	gameState, persist := gm.loadGameState(ctx)
	if !persist {
		log.Error("Saving disabled for %s, the stored game state is kept as is", gm.saveKey)
	}
	gm.persistDisabled = !persist
	gm.engine.Normalize(gameState)
	gm.gameState = gameState
	gm.loaded = true

	gm.publish(ctx, "", nil)
	return nil
}

// loadGameState returns the state to play with and whether it may be
// saved over the stored one.
func (gm *GameManager) loadGameState(ctx context.Context) (*types.GameState, bool) {
	if gm.repository == nil {
		return types.NewGameState(), true
	}

	save, err := gm.repository.LoadGameState(ctx, gm.saveKey)
	if err != nil {
		if repositories.IsNotFound(err) {
			log.Info("No saved game state for %s, starting a new game", gm.saveKey)
			return types.NewGameState(), true
		}
		log.Error("Failed to load game state: %v", err)
		return types.NewGameState(), false
	}

	gameState, err := messages.DeserializeGameState(save.Data)
	if err != nil {
		log.Error("Failed to decode saved game state: %v", err)
		return types.NewGameState(), false
	}
	log.Info("Loaded game state %s saved at %s", gm.saveKey, time.UnixMilli(save.UpdatedAt).Format(time.RFC3339))
	return gameState, true
}

// Start runs the play time ticker until the context is done.
func (gm *GameManager) Start(ctx context.Context) error {
	if !gm.isLoaded() {
		return fmt.Errorf("failed to start game loop: %w", ErrNotLoaded)
	}

	ticker := time.NewTicker(gm.tickInterval)
	defer ticker.Stop()
	defer gm.endEncounter()

	playTime := &playTimeCounter{interval: gm.tickInterval}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			seconds := playTime.advance()
			if seconds == 0 {
				continue
			}
			if _, outcome := gm.Dispatch(types.TickIntent{Seconds: seconds}); !outcome.Applied {
				log.Error("Failed to apply play time tick")
			}
		}
	}
}

// Dispatch applies an intent and returns the resulting state. A combat
// that ends, or play time that advances, is followed by a separate
// achievement check once the result has been committed.
func (gm *GameManager) Dispatch(intent types.Intent) (*types.GameState, types.Outcome) {
	gm.lock.Lock()
	outcome := gm.commit(intent)
	gm.lock.Unlock()

	_, isTick := intent.(types.TickIntent)
	if outcome.Combat.Resolved() || (isTick && outcome.Applied) {
		gm.lock.Lock()
		gm.commit(types.CheckAchievementsIntent{})
		gm.lock.Unlock()
	}

	return gm.Snapshot(), outcome
}

// SubmitAnswer schedules the effect of an answer on the current
// encounter after the reveal delay. The answer is dropped if the
// encounter ends first. It reports whether there was an encounter.
func (gm *GameManager) SubmitAnswer(correct bool, category string) bool {
	gm.lock.Lock()
	if !gm.gameState.InCombat || gm.encounterCtx == nil {
		gm.lock.Unlock()
		return false
	}
	ctx := gm.encounterCtx
	intent := types.AttackIntent{
		Hit:         correct,
		Category:    category,
		EncounterID: gm.encounterID,
	}
	gm.lock.Unlock()

	if gm.revealDelay <= 0 {
		gm.Dispatch(intent)
		return true
	}

	go func() {
		timer := time.NewTimer(gm.revealDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			log.Debug("Dropped answer for finished encounter %s", intent.EncounterID)
		case <-timer.C:
			gm.Dispatch(intent)
		}
	}()
	return true
}

// StateManager returns the manager every committed state is published to.
func (gm *GameManager) StateManager() state.StateManager {
	return gm.stateManager
}

// Snapshot returns a copy of the current state.
func (gm *GameManager) Snapshot() *types.GameState {
	gm.lock.Lock()
	defer gm.lock.Unlock()
	return gm.gameState.Copy()
}

func (gm *GameManager) isLoaded() bool {
	gm.lock.Lock()
	defer gm.lock.Unlock()
	return gm.loaded
}

// commit must be called with the lock held.
func (gm *GameManager) commit(intent types.Intent) types.Outcome {
	next, outcome := gm.engine.Apply(gm.gameState, intent)
	if !outcome.Applied {
		log.Trace("Intent %s had no effect", intent.IntentType())
		return outcome
	}

	gm.gameState = next
	gm.trackEncounter()

	gm.publish(context.Background(), intent.IntentType(), &outcome)
	gm.requestSave()
	return outcome
}

func (gm *GameManager) publish(ctx context.Context, intentType types.IntentType, outcome *types.Outcome) {
	if gm.stateManager != nil {
		if err := gm.stateManager.Set(ctx, gm.gameState); err != nil {
			log.Error("Failed to publish game state: %v", err)
		}
	}
	if gm.broadcastMessageChan == nil || intentType == types.IntentTypeTick {
		return
	}

	update := SessionUpdateFromState(gm.gameState, intentType, outcome)
	select {
	case gm.broadcastMessageChan <- workers.BroadcastMessage{Type: messages.MessageTypeServerSessionUpdate, Message: update}:
	default:
		log.Warn("Broadcast channel full, dropped session update")
	}
}

func (gm *GameManager) requestSave() {
	if !gm.loaded || gm.persistDisabled || gm.saveGameStateChan == nil {
		return
	}

	saveRequest := workers.SaveGameStateRequest{
		Timestamp: gm.engine.clock.Now().UnixMilli(),
		Key:       gm.saveKey,
		GameState: gm.gameState.Copy(),
	}
	select {
	case gm.saveGameStateChan <- saveRequest:
	default:
		log.Warn("Save channel full, dropped save request")
	}
}

// trackEncounter must be called with the lock held.
func (gm *GameManager) trackEncounter() {
	enemyID := ""
	if gm.gameState.CurrentEnemy != nil {
		enemyID = gm.gameState.CurrentEnemy.ID
	}
	if enemyID == gm.encounterID {
		return
	}

	if gm.cancelEncounter != nil {
		gm.cancelEncounter()
	}
	gm.encounterID = enemyID
	gm.encounterCtx, gm.cancelEncounter = nil, nil
	if enemyID != "" {
		gm.encounterCtx, gm.cancelEncounter = context.WithCancel(context.Background())
	}
}

func (gm *GameManager) endEncounter() {
	gm.lock.Lock()
	defer gm.lock.Unlock()
	if gm.cancelEncounter != nil {
		gm.cancelEncounter()
	}
}

// playTimeCounter turns ticks of any interval into whole seconds of
// play time, carrying the remainder to the next tick.
type playTimeCounter struct {
	interval time.Duration
	pending  time.Duration
}

func (c *playTimeCounter) advance() int {
	c.pending += c.interval
	seconds := c.pending / time.Second
	c.pending -= seconds * time.Second
	return int(seconds)
}
