// Package session holds transient navigation state: data that rides a single
// page transition and is never persisted. Records live in Redis under a
// prefix-scoped uuid token with a short TTL; confirmation records are
// one-shot — taking one deletes it, so a reload or direct URL entry finds
// nothing and the caller redirects.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a token resolves to no record: never stored,
// expired, or already consumed.
var ErrNotFound = errors.New("session: not found")

// Store is the transient state store. Put creates a record under a fresh
// token; Take is the one-shot read (get then delete). Acquire/Release back
// single-flight guards such as the promo-apply lock.
type Store interface {
	Put(ctx context.Context, prefix string, ttl time.Duration, v any) (string, error)
	Get(ctx context.Context, prefix, token string, v any) error
	Save(ctx context.Context, prefix, token string, ttl time.Duration, v any) error
	Take(ctx context.Context, prefix, token string, v any) error
	Delete(ctx context.Context, prefix, token string) error

	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
