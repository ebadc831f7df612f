// Package workerx is the updater goroutine harness shared by every
// streaming source: spawn-with-panic-recovery and cooperative join.
// It has no re-entrancy guard of its own; Source serializes refills
// behind its own mutex.
package workerx

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-aural/aural/utils/errorx"
)

// Updater drives fn on a fixed period until fn returns an error or
// Stop is called, the Go analogue of the original's update() pthread
// body (poll state, call seal_update_src, sleep 50ms, repeat).
type Updater struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
	active atomic.Bool
}

// Run spawns the updater goroutine, which calls fn every period until
// fn returns a non-nil error or the Updater is stopped. lastErr, if
// non-nil, receives the terminating error so a caller can poll it
// later via Source.LastUpdateErr (see DESIGN.md open question 1: the
// original swallows updater errors entirely, this engine exposes them
// through a pollable slot instead).
func Run(period time.Duration, fn func() error, lastErr *atomic.Value) *Updater {
	ctx, cancel := context.WithCancel(context.Background())
	u := &Updater{cancel: cancel}
	u.active.Store(true)

	u.wg.Add(1)
	errorx.Go(func() {
		defer u.wg.Done()
		defer u.active.Store(false)

		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := fn(); err != nil {
					if lastErr != nil {
						lastErr.Store(err)
					}
					return
				}
			}
		}
	}, true)

	return u
}

// Stop cancels the updater and blocks until its goroutine has
// returned, the equivalent of wait4updater's _seal_join_thread call.
// Safe to call on an already-stopped Updater.
func (u *Updater) Stop() {
	if u == nil {
		return
	}
	u.cancel()
	u.wg.Wait()
}

// Running reports whether the updater goroutine is still executing.
func (u *Updater) Running() bool {
	return u != nil && u.active.Load()
}
