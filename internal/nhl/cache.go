package nhl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCacheMiss signals that a game has no cached document.
var ErrCacheMiss = errors.New("box score not in cache")

// Cache stores raw box-score documents keyed by game id. The fetcher reuses
// cached documents only for finished games, so implementations never need
// invalidation logic.
type Cache interface {
	Get(ctx context.Context, gameID int) ([]byte, error)
	Put(ctx context.Context, gameID int, raw []byte) error
}

// FileCache keeps one JSON file per game under a directory. This is the
// default backend; the directory doubles as the on-disk game database the
// schedule view is rebuilt from between runs.
type FileCache struct {
	dir string
}

func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) path(gameID int) string {
	return filepath.Join(c.dir, fmt.Sprintf("%d.json", gameID))
}

func (c *FileCache) Get(_ context.Context, gameID int) ([]byte, error) {
	raw, err := os.ReadFile(c.path(gameID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return raw, nil
}

func (c *FileCache) Put(_ context.Context, gameID int, raw []byte) error {
	return os.WriteFile(c.path(gameID), raw, 0o644)
}
