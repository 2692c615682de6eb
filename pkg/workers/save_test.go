package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbodonnell/quizquest/pkg/game/types"
	"github.com/cbodonnell/quizquest/pkg/messages"
	"github.com/cbodonnell/quizquest/pkg/repositories"
)

func loadCoins(t *testing.T, repo repositories.Repository, key string) int {
	t.Helper()
	save, err := repo.LoadGameState(context.Background(), key)
	require.NoError(t, err)
	gameState, err := messages.DeserializeGameState(save.Data)
	require.NoError(t, err)
	return gameState.Coins
}

func TestSaveGameStateWorker_SavesRequests(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	saveChan := make(chan SaveGameStateRequest, 10)
	worker := NewSaveGameStateWorker(NewSaveGameStateWorkerOptions{
		Repository:        repo,
		SaveGameStateChan: saveChan,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	gameState := types.NewGameState()
	gameState.Coins = 250
	saveChan <- SaveGameStateRequest{Timestamp: 1, Key: "slot", GameState: gameState}

	assert.Eventually(t, func() bool {
		save, err := repo.LoadGameState(context.Background(), "slot")
		return err == nil && save.UpdatedAt == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 250, loadCoins(t, repo, "slot"))

	cancel()
	<-done
}

func TestSaveGameStateWorker_FlushesNewestOnShutdown(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	saveChan := make(chan SaveGameStateRequest, 10)
	worker := NewSaveGameStateWorker(NewSaveGameStateWorkerOptions{
		Repository:        repo,
		SaveGameStateChan: saveChan,
	})

	for i := 1; i <= 3; i++ {
		gameState := types.NewGameState()
		gameState.Coins = i * 100
		saveChan <- SaveGameStateRequest{Timestamp: int64(i), Key: "slot", GameState: gameState}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, worker.Start(ctx))

	// whichever path ran, the newest request is what ends up stored
	save, err := repo.LoadGameState(context.Background(), "slot")
	require.NoError(t, err)
	assert.Equal(t, int64(3), save.UpdatedAt)
	assert.Equal(t, 300, loadCoins(t, repo, "slot"))
	assert.Empty(t, saveChan)
}
