package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/quizquest/pkg/game/types"
	"github.com/cbodonnell/quizquest/pkg/log"
	"github.com/cbodonnell/quizquest/pkg/messages"
	"github.com/cbodonnell/quizquest/pkg/repositories"
	"github.com/cbodonnell/quizquest/pkg/repositories/models"
)

const defaultFlushTimeout = 5 * time.Second

type SaveGameStateWorker struct {
	repository        repositories.Repository
	saveGameStateChan <-chan SaveGameStateRequest
	flushTimeout      time.Duration
}

type NewSaveGameStateWorkerOptions struct {
	Repository        repositories.Repository
	SaveGameStateChan <-chan SaveGameStateRequest
	// FlushTimeout bounds the final save on shutdown.
	FlushTimeout time.Duration
}

type SaveGameStateRequest struct {
	Timestamp int64
	Key       string
	GameState *types.GameState
}

// NewSaveGameStateWorker creates a new SaveGameStateWorker.
// The worker writes the snapshots the game manager sends after each
// committed change. Only the newest pending snapshot is written.
func NewSaveGameStateWorker(opts NewSaveGameStateWorkerOptions) *SaveGameStateWorker {
	flushTimeout := opts.FlushTimeout
	if flushTimeout <= 0 {
		flushTimeout = defaultFlushTimeout
	}
	return &SaveGameStateWorker{
		repository:        opts.Repository,
		saveGameStateChan: opts.SaveGameStateChan,
		flushTimeout:      flushTimeout,
	}
}

// Start processes save requests until the context is done, then writes
// any request still pending.
func (w *SaveGameStateWorker) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.flush()
			return nil
		case saveRequest := <-w.saveGameStateChan:
			w.saveGameState(ctx, w.newest(saveRequest))
		}
	}
}

// newest drains the pending requests and returns the most recent one.
func (w *SaveGameStateWorker) newest(saveRequest SaveGameStateRequest) SaveGameStateRequest {
	for {
		select {
		case next := <-w.saveGameStateChan:
			saveRequest = next
		default:
			return saveRequest
		}
	}
}

func (w *SaveGameStateWorker) flush() {
	select {
	case saveRequest := <-w.saveGameStateChan:
		ctx, cancel := context.WithTimeout(context.Background(), w.flushTimeout)
		defer cancel()
		w.saveGameState(ctx, w.newest(saveRequest))
	default:
	}
}

func (w *SaveGameStateWorker) saveGameState(ctx context.Context, saveRequest SaveGameStateRequest) {
	data, err := messages.SerializeGameState(saveRequest.GameState)
	if err != nil {
		log.Error("Failed to serialize game state: %v", err)
		return
	}

	save := &models.GameSave{
		Key:       saveRequest.Key,
		Data:      data,
		UpdatedAt: saveRequest.Timestamp,
	}
	if err := w.repository.SaveGameState(ctx, save); err != nil {
		log.Error("Failed to save game state: %v", err)
		return
	}
	log.Trace("Saved game state %s at %d", saveRequest.Key, saveRequest.Timestamp)
}
