package storage

import "context"

// NoopBackend discards uploads; used in tests.
type NoopBackend struct{}

func NewNoopBackend() *NoopBackend {
	return &NoopBackend{}
}

func (b *NoopBackend) Save(_ context.Context, name string, _ []byte) (string, error) {
	return "/uploads/" + name, nil
}
