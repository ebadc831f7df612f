package workerx

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCallsFnRepeatedlyUntilStop(t *testing.T) {
	var calls atomic.Int32
	u := Run(5*time.Millisecond, func() error {
		calls.Add(1)
		return nil
	}, nil)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	assert.True(t, u.Running())

	u.Stop()
	assert.False(t, u.Running())

	n := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, calls.Load(), "no further calls after Stop")
}

func TestRunStopsWhenFnReturnsErrorAndStoresIt(t *testing.T) {
	wantErr := errors.New("boom")
	var lastErr atomic.Value
	u := Run(5*time.Millisecond, func() error {
		return wantErr
	}, &lastErr)

	require.Eventually(t, func() bool { return !u.Running() }, time.Second, time.Millisecond)

	got, ok := lastErr.Load().(error)
	require.True(t, ok)
	assert.Equal(t, wantErr, got)
}

func TestStopIsSafeOnNilUpdater(t *testing.T) {
	var u *Updater
	u.Stop()
	assert.False(t, u.Running())
}

func TestStopIsIdempotent(t *testing.T) {
	u := Run(5*time.Millisecond, func() error { return nil }, nil)
	u.Stop()
	u.Stop()
	assert.False(t, u.Running())
}
