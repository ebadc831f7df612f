package aural

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is the closed set of failure categories the engine can
// report. Every fallible operation in this package returns one,
// wrapped in an *Error.
type ErrorKind int

const (
	// Generic device errors, mapped from the underlying output
	// device's error register.
	ErrBadObject ErrorKind = iota
	ErrBadEnum
	ErrBadValue
	ErrBadOperation

	// Engine lifecycle.
	ErrCannotOpenDevice
	ErrNoEffectExtension
	ErrNoExtFunc
	ErrBadDevice
	ErrCannotCreateContext

	// Streaming / type discipline.
	ErrStreamUnopened
	ErrMixingStreamFmt
	ErrMixingSrcType
	ErrStreamInUse

	// I/O.
	ErrCannotOpenFile
	ErrBadAudio

	// Memory.
	ErrCannotAllocMem

	// WAV decode.
	ErrBadWavSubtype
	ErrBadWavChunk
	ErrBadWavChunkSize
	ErrAbsentWavChunk
	ErrBadWavBps
	ErrBadWavNChannels
	ErrBadWavFreq
	ErrCannotRewindWav

	// Ogg Vorbis decode.
	ErrCannotOpenOv
	ErrCannotGetOvInfo
	ErrCannotReadOv
	ErrCannotRewindOv
	ErrCannotCloseOv

	// MPEG decode.
	ErrCannotOpenMpg
	ErrCannotGetMpgInfo
	ErrCannotReadMpg
	ErrCannotRewindMpg
	ErrCannotCloseMpg
)

var errKindNames = map[ErrorKind]string{
	ErrBadObject:           "bad object",
	ErrBadEnum:             "bad enum",
	ErrBadValue:            "bad value",
	ErrBadOperation:        "bad operation",
	ErrCannotOpenDevice:    "cannot open device",
	ErrNoEffectExtension:   "no effect extension",
	ErrNoExtFunc:           "no extension function",
	ErrBadDevice:           "bad device",
	ErrCannotCreateContext: "cannot create context",
	ErrStreamUnopened:      "stream unopened",
	ErrMixingStreamFmt:     "mixing stream format",
	ErrMixingSrcType:       "mixing source type",
	ErrStreamInUse:         "stream in use",
	ErrCannotOpenFile:      "cannot open file",
	ErrBadAudio:            "bad audio",
	ErrCannotAllocMem:      "cannot allocate memory",
	ErrBadWavSubtype:       "bad wav subtype",
	ErrBadWavChunk:         "bad wav chunk",
	ErrBadWavChunkSize:     "bad wav chunk size",
	ErrAbsentWavChunk:      "absent wav chunk",
	ErrBadWavBps:           "bad wav bits per sample",
	ErrBadWavNChannels:     "bad wav channel count",
	ErrBadWavFreq:          "bad wav sample rate",
	ErrCannotRewindWav:     "cannot rewind wav",
	ErrCannotOpenOv:        "cannot open ogg vorbis stream",
	ErrCannotGetOvInfo:     "cannot get ogg vorbis info",
	ErrCannotReadOv:        "cannot read ogg vorbis stream",
	ErrCannotRewindOv:      "cannot rewind ogg vorbis stream",
	ErrCannotCloseOv:       "cannot close ogg vorbis stream",
	ErrCannotOpenMpg:       "cannot open mpeg stream",
	ErrCannotGetMpgInfo:    "cannot get mpeg info",
	ErrCannotReadMpg:       "cannot read mpeg stream",
	ErrCannotRewindMpg:     "cannot rewind mpeg stream",
	ErrCannotCloseMpg:      "cannot close mpeg stream",
}

func (k ErrorKind) String() string {
	if s, ok := errKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the concrete error type every fallible operation returns.
// It carries a stack trace from the point it was created, via
// github.com/pkg/errors, so a caller logging with "%+v" gets the full
// trail back to the offending device call.
type Error struct {
	Kind ErrorKind
	Op   string
	err  error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("aural: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("aural: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.err }

// newErr builds an *Error carrying kind, tagged with the operation
// name that raised it.
func newErr(op string, kind ErrorKind) *Error {
	return &Error{Kind: kind, Op: op, err: errors.WithStack(fmt.Errorf("%s", kind))}
}

// Is compares two *Error values by Kind, so errors.Is(err,
// newErr("", ErrBadValue)) matches regardless of Op.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == te.Kind
}

// KindOf extracts the ErrorKind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
