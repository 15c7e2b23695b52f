package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/knadh/koanf/providers/file"

	"github.com/dantte-lp/goribd/internal/config"
	"github.com/dantte-lp/goribd/internal/rib"
)

// FileStore serves the interfaces and routes sections of the daemon
// configuration file.
type FileStore struct {
	path   string
	logger *slog.Logger

	mu   sync.Mutex
	last *rib.ConfigSnapshot
}

// NewFileStore creates a store backed by the YAML file at path.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.With(slog.String("component", "store.file")),
	}
}

// Load reads and validates the file and returns its snapshot. The snapshot
// becomes the baseline for the next Reload.
func (s *FileStore) Load(ctx context.Context) (*rib.ConfigSnapshot, error) {
	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.last = snap
	s.mu.Unlock()

	s.logger.Info("configuration loaded",
		slog.String("path", s.path),
		slog.Int("interfaces", len(snap.Interfaces)),
		slog.Int("routes", len(snap.Routes)),
	)
	return snap, nil
}

func (s *FileStore) read(ctx context.Context) (*rib.ConfigSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(s.path)
	if err != nil {
		return nil, err
	}
	snap, err := cfg.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", s.path, err)
	}
	return snap, nil
}

// Reload re-reads the file and submits the difference to the previously
// loaded snapshot. A file that fails to parse or validate leaves the
// running configuration untouched.
func (s *FileStore) Reload(ctx context.Context, sub Submitter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return ErrNotLoaded
	}

	next, err := s.read(ctx)
	if err != nil {
		return fmt.Errorf("reload %s: %w", s.path, err)
	}

	applied, err := submitDiff(ctx, sub, s.last, next, s.logger)
	if err != nil {
		return fmt.Errorf("reload %s: %w", s.path, err)
	}
	s.last = next

	s.logger.Info("configuration reloaded",
		slog.String("path", s.path),
		slog.Int("changes", applied),
	)
	return nil
}

// Watch reloads the store whenever the file changes on disk, until ctx is
// cancelled. Reload failures are logged and the previous configuration
// stays in effect.
func (s *FileStore) Watch(ctx context.Context, sub Submitter) error {
	changed := make(chan struct{}, 1)

	fp := file.Provider(s.path)
	err := fp.Watch(func(_ any, err error) {
		if err != nil {
			s.logger.Warn("file watch error", slog.String("error", err.Error()))
			return
		}
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", s.path, err)
	}
	defer func() {
		if err := fp.Unwatch(); err != nil {
			s.logger.Warn("stop file watch", slog.String("error", err.Error()))
		}
	}()

	s.logger.Info("watching configuration file", slog.String("path", s.path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			if err := s.Reload(ctx, sub); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				s.logger.Error("configuration reload failed", slog.String("error", err.Error()))
			}
		}
	}
}
