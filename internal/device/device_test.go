package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsUnstarted(t *testing.T) {
	d := New()
	assert.False(t, d.Started())
	assert.Nil(t, d.EFX())
	assert.Equal(t, 0, d.EffectsPerSource())
}

func TestNewIDAllocatesUniqueSequenceTaggedWithKind(t *testing.T) {
	d := New()
	a := d.NewID(KindSource)
	b := d.NewID(KindSource)
	c := d.NewID(KindBuffer)

	assert.Equal(t, KindSource, a.Kind)
	assert.Equal(t, KindSource, b.Kind)
	assert.Equal(t, KindBuffer, c.Kind)
	assert.NotEqual(t, a.Seq, b.Seq)
	assert.NotEqual(t, a, c)
}

func TestCloseIsIdempotentWhenNeverStarted(t *testing.T) {
	d := New()
	d.Close()
	d.Close()
	assert.False(t, d.Started())
}

func TestDoRunsUnderLockAndReturnsFnError(t *testing.T) {
	d := New()
	called := false
	err := d.Do(func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)

	sentinel := assert.AnError
	err = d.Do(func() error { return sentinel })
	assert.Same(t, sentinel, err)
}

func TestLockUnlockPairsWithoutDeadlock(t *testing.T) {
	d := New()
	d.Lock()
	d.Unlock()
	// Do must still be independently acquirable afterward.
	assert.NoError(t, d.Do(func() error { return nil }))
}
