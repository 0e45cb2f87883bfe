package debounce

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultDelay is the quiet period used when none is configured
const DefaultDelay = 300 * time.Millisecond

// ErrSuperseded is returned to a caller whose wait was replaced by a newer
// call with the same key
var ErrSuperseded = errors.New("superseded by a newer call")

type call struct {
	timer      *time.Timer
	fired      chan struct{}
	superseded chan struct{}
}

// Debouncer lets only the last of a burst of calls sharing a key proceed.
// A call proceeds once no newer call with the same key arrived within the
// delay.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	calls map[string]*call
}

func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{
		delay: delay,
		calls: make(map[string]*call),
	}
}

// Delay returns the quiet period
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Wait blocks until the quiet period for key elapsed. It returns
// ErrSuperseded when a newer call with the same key arrived first and
// ctx.Err() when ctx is done.
func (d *Debouncer) Wait(ctx context.Context, key string) error {
	c := &call{
		fired:      make(chan struct{}),
		superseded: make(chan struct{}),
	}

	d.mu.Lock()
	if prev, ok := d.calls[key]; ok {
		if prev.timer.Stop() {
			close(prev.superseded)
		}
	}
	d.calls[key] = c
	c.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.calls[key] == c {
			delete(d.calls, key)
		}
		d.mu.Unlock()
		close(c.fired)
	})
	d.mu.Unlock()

	select {
	case <-c.fired:
		return nil
	case <-c.superseded:
		return ErrSuperseded
	case <-ctx.Done():
		d.mu.Lock()
		if c.timer.Stop() && d.calls[key] == c {
			delete(d.calls, key)
		}
		d.mu.Unlock()
		return ctx.Err()
	}
}

// Do runs fn after the quiet period if this call is the last of its burst.
func (d *Debouncer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if err := d.Wait(ctx, key); err != nil {
		return err
	}
	return fn(ctx)
}

// Pending returns the number of keys with a call waiting
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}
