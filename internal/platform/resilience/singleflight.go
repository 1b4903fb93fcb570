package resilience

import (
	"context"
	"sync"
)

// SingleFlight deduplicates concurrent calls for the same key. Callers that
// arrive while a call is running share its result.
type SingleFlight[T any] struct {
	mu    sync.Mutex
	calls map[string]*call[T]
}

type call[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Do runs fn once per key at a time. The bool reports whether the result was
// shared with another caller.
func (g *SingleFlight[T]) Do(key string, fn func() (T, error)) (T, error, bool) {
	c, shared := g.join(key, fn)
	<-c.done
	return c.val, c.err, shared
}

// DoContext is Do for calls that take a context. The shared call runs on a
// context detached from any single caller's cancellation; each caller stops
// waiting when its own ctx is done and gets ctx.Err().
func (g *SingleFlight[T]) DoContext(ctx context.Context, key string, fn func(context.Context) (T, error)) (T, error, bool) {
	detached := context.WithoutCancel(ctx)
	c, shared := g.join(key, func() (T, error) {
		return fn(detached)
	})

	select {
	case <-c.done:
		return c.val, c.err, shared
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err(), shared
	}
}

func (g *SingleFlight[T]) join(key string, fn func() (T, error)) (*call[T], bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call[T])
	}

	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		return c, true
	}

	c := &call[T]{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	go func() {
		defer func() {
			g.mu.Lock()
			delete(g.calls, key)
			g.mu.Unlock()
			close(c.done)
		}()

		c.val, c.err = fn()
	}()

	return c, false
}
