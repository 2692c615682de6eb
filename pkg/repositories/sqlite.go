package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cbodonnell/quizquest/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and applies the
// embedded migrations.
func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// sqlite serializes writers; a single connection avoids busy errors
	db.SetMaxOpenConns(1)

	migrations, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveGameState(ctx context.Context, save *models.GameSave) error {
	q := `
	INSERT OR REPLACE INTO game_saves (save_key, data, updated_at)
	VALUES (?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, save.Key, save.Data, save.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save game state: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadGameState(ctx context.Context, key string) (*models.GameSave, error) {
	q := `
	SELECT data, updated_at FROM game_saves WHERE save_key = ?;
	`
	save := &models.GameSave{Key: key}
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&save.Data, &save.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan game save: %v", err)
	}

	return save, nil
}
