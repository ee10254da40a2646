package storage

import (
	"context"
	"fmt"

	"github.com/cheflinkhq/chef-marketplace/internal/config"
)

// Backend persists uploaded files (identity documents, menu images) and
// returns the path they will be served back under.
type Backend interface {
	// Save writes data under name and returns the public path.
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// FromConfig builds the upload backend. Local disk is the default; S3 is
// opt-in; noop exists for tests that do not care about files.
func FromConfig(cfg *config.Config) (Backend, error) {
	switch cfg.StorageBackend {
	case "", "local":
		local, err := NewLocalBackend(cfg.UploadDir)
		if err != nil {
			return nil, fmt.Errorf("storage: local backend: %w", err)
		}
		return local, nil
	case "s3":
		s3b, err := NewS3Backend(cfg)
		if err != nil {
			return nil, fmt.Errorf("storage: s3 backend: %w", err)
		}
		return s3b, nil
	case "noop":
		return NewNoopBackend(), nil
	default:
		return nil, fmt.Errorf("storage: unsupported backend %q", cfg.StorageBackend)
	}
}
