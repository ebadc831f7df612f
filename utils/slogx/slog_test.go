package slogx

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitWritesAtConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, slog.LevelWarn)

	slog.Info("should not appear")
	assert.Empty(t, buf.String())

	slog.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestInitDefaultsToStderrOnNilWriter(t *testing.T) {
	// Init(nil, ...) must not panic; it falls back to os.Stderr.
	assert.NotPanics(t, func() { Init(nil, slog.LevelInfo) })
}

func TestErrorAttrNilIsZeroValue(t *testing.T) {
	assert.Equal(t, slog.Attr{}, Error(nil))
}

func TestErrorAttrRendersMessage(t *testing.T) {
	attr := Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.True(t, strings.Contains(attr.Value.String(), "boom"))
}

func TestBytesAttrAvoidsBase64(t *testing.T) {
	attr := Bytes("payload", []byte("hello"))
	assert.Equal(t, "payload", attr.Key)
	assert.Equal(t, "hello", attr.Value.String())
}
