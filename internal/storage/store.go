package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/studyplan/internal/model"
)

var (
	ErrMalformed      = errors.New("storage: malformed schedule data")
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Store is the load/save boundary for the persisted schedule.
// Save always writes the whole table.
type Store interface {
	Load(ctx context.Context) (model.Schedule, error)
	Save(ctx context.Context, s model.Schedule) error
	Close() error
}

type Config struct {
	Backend string
	Path    string
}

func Open(cfg Config) (Store, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, errors.New("storage: path is required")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendCSV:
		return NewCSVStore(path), nil
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
