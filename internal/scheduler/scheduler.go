// Package scheduler runs delayed callbacks that can be cancelled.
package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Token cancels one scheduled callback.
type Token interface {
	// Cancel stops the callback. It reports false if the callback already ran
	// or was cancelled before.
	Cancel() bool
}

// Scheduler runs fn once after delay.
type Scheduler interface {
	After(delay time.Duration, fn func()) Token
}

// New returns a Scheduler backed by the runtime timer.
func New() Scheduler {
	return timerScheduler{}
}

type timerScheduler struct{}

func (timerScheduler) After(delay time.Duration, fn func()) Token {
	return timerToken{t: time.AfterFunc(delay, fn)}
}

type timerToken struct {
	t *time.Timer
}

func (t timerToken) Cancel() bool {
	return t.t.Stop()
}

// Manual is a Scheduler driven by Advance instead of wall time.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	nextID  int
	pending []*manualTask
}

type manualTask struct {
	id        int
	due       time.Duration
	fn        func()
	owner     *Manual
	cancelled bool
	fired     bool
}

// NewManual creates a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) After(delay time.Duration, fn func()) Token {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	task := &manualTask{id: m.nextID, due: m.now + delay, fn: fn, owner: m}
	m.pending = append(m.pending, task)
	return task
}

func (t *manualTask) Cancel() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.cancelled || t.fired {
		return false
	}
	t.cancelled = true
	return true
}

// Advance moves the clock forward and runs every callback that falls due,
// in due order. Callbacks run without the scheduler lock held.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	due := make([]*manualTask, 0)
	rest := m.pending[:0]
	for _, t := range m.pending {
		switch {
		case t.cancelled:
		case t.due <= m.now:
			t.fired = true
			due = append(due, t)
		default:
			rest = append(rest, t)
		}
	}
	m.pending = rest
	m.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].id < due[j].id
		}
		return due[i].due < due[j].due
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending is the number of callbacks that have neither run nor been cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.pending {
		if !t.cancelled {
			n++
		}
	}
	return n
}
