package repositories

import (
	"context"
	"sync"

	"github.com/cbodonnell/quizquest/pkg/repositories/models"
)

// MemoryRepository keeps saves in process memory. Nothing survives a restart.
type MemoryRepository struct {
	lock  sync.RWMutex
	saves map[string]models.GameSave
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		saves: make(map[string]models.GameSave),
	}
}

func (r *MemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) SaveGameState(ctx context.Context, save *models.GameSave) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	stored := *save
	stored.Data = append([]byte(nil), save.Data...)
	r.saves[save.Key] = stored
	return nil
}

func (r *MemoryRepository) LoadGameState(ctx context.Context, key string) (*models.GameSave, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	stored, ok := r.saves[key]
	if !ok {
		return nil, &ErrNotFound{}
	}
	save := stored
	save.Data = append([]byte(nil), stored.Data...)
	return &save, nil
}
