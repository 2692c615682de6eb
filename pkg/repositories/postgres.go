package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cbodonnell/quizquest/pkg/log"
	"github.com/cbodonnell/quizquest/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	// pgx.Conn is not safe for concurrent use
	lock sync.Mutex
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and applies the
// embedded migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	migrations, err := readMigrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for i, migration := range migrations {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveGameState(ctx context.Context, save *models.GameSave) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	INSERT INTO game_saves (save_key, data, updated_at) VALUES ($1, $2, $3)
	ON CONFLICT (save_key) DO UPDATE SET data = $2, updated_at = $3;
	`
	_, err := r.conn.Exec(ctx, q, save.Key, save.Data, save.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save game state: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadGameState(ctx context.Context, key string) (*models.GameSave, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	SELECT data, updated_at FROM game_saves WHERE save_key = $1;
	`
	save := &models.GameSave{Key: key}
	if err := r.conn.QueryRow(ctx, q, key).Scan(&save.Data, &save.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan game save: %v", err)
	}

	return save, nil
}
