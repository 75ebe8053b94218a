package keyval

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the slot was never written.
var ErrNotFound = errors.New("keyval: slot not found")

// Store is a durable named-slot store. Each slot holds one serialized value;
// Set fully overwrites prior content. Implementations do not interpret the
// payload.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
