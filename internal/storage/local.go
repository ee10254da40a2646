package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type LocalBackend struct {
	dir string
}

func NewLocalBackend(dir string) (*LocalBackend, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalBackend{dir: dir}, nil
}

func (b *LocalBackend) Save(_ context.Context, name string, data []byte) (string, error) {
	// name comes from our own filename generator, but never trust a path
	name = filepath.Base(name)

	full := filepath.Join(b.dir, name)
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", full, err)
	}

	// Served by the static /uploads route.
	return "/uploads/" + name, nil
}
