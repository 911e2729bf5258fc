package inflight

import (
	"context"
	"sync"
	"time"
)

type memoryGuard struct {
	mu   sync.Mutex
	now  func() time.Time
	held map[string]memoryLease
	seq  uint64
}

type memoryLease struct {
	id      uint64
	expires time.Time
}

// NewMemoryGuard returns a process-local Guard, used when no Redis is configured.
func NewMemoryGuard() Guard {
	return &memoryGuard{now: time.Now, held: map[string]memoryLease{}}
}

func (g *memoryGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if cur, ok := g.held[key]; ok && now.Before(cur.expires) {
		return nil, ErrBusy
	}
	g.seq++
	lease := memoryLease{id: g.seq, expires: now.Add(ttl)}
	g.held[key] = lease

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			// An expired lease may have been taken over; only drop our own.
			if cur, ok := g.held[key]; ok && cur.id == lease.id {
				delete(g.held, key)
			}
		})
	}, nil
}
