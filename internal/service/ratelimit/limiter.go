package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum interval between successive calls, across
// goroutines. Callers Wait before each upstream request; the aggregate call
// rate never exceeds one per interval even with parallel workers.
type Pacer struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Wait blocks until this caller's slot arrives or ctx is cancelled.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.interval <= 0 {
		return ctx.Err()
	}

	p.mu.Lock()
	now := time.Now()
	if p.next.Before(now) {
		p.next = now
	}
	wait := p.next.Sub(now)
	p.next = p.next.Add(p.interval)
	p.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
