package aural

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "bad value", ErrBadValue.String())
	assert.Equal(t, "stream in use", ErrStreamInUse.String())
	assert.Contains(t, ErrorKind(9999).String(), "ErrorKind")
}

func TestNewErrWrapsKind(t *testing.T) {
	err := newErr("Source.SetGain", ErrBadValue)
	assert.Equal(t, "aural: Source.SetGain: bad value", err.Error())

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, ErrBadValue, kind)
}

func TestKindOfIgnoresPlainErrorWithSameText(t *testing.T) {
	base := newErr("Foo", ErrStreamInUse)
	wrapped := errors.New(base.Error())
	_, ok := KindOf(wrapped)
	assert.False(t, ok, "a plain errors.New should not be mistaken for a tagged *Error")
}

func TestErrorIsMatchesOnKindOnly(t *testing.T) {
	a := newErr("opA", ErrBadValue)
	b := newErr("opB", ErrBadValue)
	c := newErr("opC", ErrBadOperation)

	assert.True(t, a.Is(b))
	assert.False(t, a.Is(c))
	assert.ErrorIs(t, a, b)
}
