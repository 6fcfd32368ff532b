package client

import (
	"sync"
	"time"
)

// Clock abstracts wall time so the countdown can be driven by a fake in
// tests instead of real waits.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// RealClock returns the wall clock.
func RealClock() Clock { return realClock{} }

// Countdown drives the round timer. It is the only autonomous process on the
// client: when it reaches zero it fires OnExpire exactly once, forcing a
// submission with whatever state currently exists. It is decoupled from
// rendering entirely.
type Countdown struct {
	clock    Clock
	duration time.Duration
	onExpire func()

	mu       sync.Mutex
	deadline time.Time
	stopCh   chan struct{}
	running  bool
	fired    bool
}

func NewCountdown(clock Clock, duration time.Duration, onExpire func()) *Countdown {
	return &Countdown{
		clock:    clock,
		duration: duration,
		onExpire: onExpire,
	}
}

// Start begins the countdown. Starting an already running countdown is a
// no-op.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return
	}

	c.running = true
	c.fired = false
	c.deadline = c.clock.Now().Add(c.duration)
	c.stopCh = make(chan struct{})

	expired := c.clock.After(c.duration)
	stop := c.stopCh

	go func() {
		select {
		case <-expired:
			c.fire()
		case <-stop:
		}
	}()
}

func (c *Countdown) fire() {
	c.mu.Lock()
	if c.fired || !c.running {
		c.mu.Unlock()
		return
	}
	c.fired = true
	c.running = false
	c.mu.Unlock()

	c.onExpire()
}

// Stop cancels the countdown without firing the callback. Stopping an
// expired or never-started countdown is a no-op.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	c.running = false
	close(c.stopCh)
}

// Remaining reports how much time is left, never negative.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.deadline.IsZero() {
		return c.duration
	}
	remaining := c.deadline.Sub(c.clock.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the countdown has fired.
func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fired
}
