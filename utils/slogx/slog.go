// Package slogx wires the engine's structured logging onto log/slog.
//
// Unlike the CLI tool this was lifted from, aural is a library: it must
// not force a log file open (or panic) as an import side effect. Init
// is called explicitly by Engine.Startup once the configured logging
// destination is known; until then slog.Default() is left untouched.
package slogx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Init points the default slog logger at w (or os.Stderr if w is nil)
// using level. Passing io.Discard silences logging entirely.
func Init(w io.Writer, level slog.Level) {
	if w == nil {
		w = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// Error renders err (which may carry a github.com/pkg/errors stack) as
// a slog attribute, or a zero attribute if err is nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", fmt.Sprintf("%+v", err))
}

// Bytes renders b as a string-valued attribute, avoiding slog's default
// base64 encoding of []byte values in text/JSON handlers.
func Bytes(k string, b []byte) slog.Attr {
	return slog.String(k, string(b))
}
