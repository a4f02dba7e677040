package client

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"
)

type ctxKey struct{}

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex
)

// WithClient returns a context whose GetClient resolves to c instead of the global client.
func WithClient(ctx context.Context, c *asynq.Client) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// GetClient returns the queue client carried by ctx, falling back to the global one.
// It returns nil when neither is set.
func GetClient(ctx context.Context) *asynq.Client {
	if c, ok := ctx.Value(ctxKey{}).(*asynq.Client); ok && c != nil {
		return c
	}

	globalMu.RLock()
	defer globalMu.RUnlock()

	return globalClient
}

// SetClient replaces the global client and returns a func restoring the previous one.
func SetClient(c *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = c
	globalMu.Unlock()

	return func() { SetClient(prev) }
}
