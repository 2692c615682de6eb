package repositories

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"sort"

	"github.com/cbodonnell/quizquest/pkg/repositories/models"
)

// Repository stores encoded game saves by key.
// Implementations must be safe for use by the load path and the save
// worker at the same time.
type Repository interface {
	Close(ctx context.Context) error
	// LoadGameState returns the save stored under key, or ErrNotFound.
	LoadGameState(ctx context.Context, key string) (*models.GameSave, error)
	// SaveGameState inserts or replaces the save stored under save.Key.
	SaveGameState(ctx context.Context, save *models.GameSave) error
}

//go:embed migrations
var migrationsFS embed.FS

// NewRepositoryFromURL opens the repository named by a database url:
// sqlite://path, postgres:// or postgresql:// and memory://.
func NewRepositoryFromURL(ctx context.Context, databaseURL string) (Repository, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		dbPath := u.Host + u.Path
		if dbPath == "" {
			return nil, fmt.Errorf("sqlite database url is missing a path")
		}
		return NewSQLiteRepository(ctx, dbPath)
	case "postgres", "postgresql":
		return NewPostgresRepository(ctx, databaseURL)
	case "memory":
		return NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme: %q", u.Scheme)
	}
}

// readMigrations returns the migration scripts of a dialect in name order.
func readMigrations(dialect string) ([]string, error) {
	dir := path.Join("migrations", dialect)
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var scripts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		migrationPath := path.Join(dir, entry.Name())
		migration, err := fs.ReadFile(migrationsFS, migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}
		scripts = append(scripts, string(migration))
	}
	return scripts, nil
}
