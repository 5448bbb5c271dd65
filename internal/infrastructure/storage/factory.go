package storage

import (
	"context"
	"fmt"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/catalog"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewSnapshotStore builds the snapshot store selected by cfg.Driver
func NewSnapshotStore(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (catalog.SnapshotStore, error) {
	switch cfg.Driver {
	case config.StorageS3:
		store, err := NewS3SnapshotStore(ctx, cfg, WithLogger(logger))
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageLocal, "":
		return NewLocalSnapshotStore(cfg.LocalDir, cfg.SnapshotKey)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
