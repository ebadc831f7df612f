package aural

import (
	"testing"

	"github.com/go-aural/aural/internal/decoder"
)

// fakeSession is a minimal decoder.Session backing a *Stream in tests
// that exercise Source's streaming-attachment logic without a real
// audio file on disk.
type fakeSession struct {
	attr decoder.Attr
	data []byte
	pos  int
}

func (f *fakeSession) Attr() decoder.Attr { return f.attr }

func (f *fakeSession) Read(buf []byte) (int, error) {
	n := copy(buf, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func (f *fakeSession) Rewind() error {
	f.pos = 0
	return nil
}

func (f *fakeSession) Close() error { return nil }

// newFakeStream builds a *Stream already holding an open fake decoder
// session at the given format, the same state OpenStream would leave
// it in on success. Its backing data is large enough that a handful of
// queue refills never hit natural end-of-stream, so tests that Play()
// it observe genuinely ongoing playback rather than an immediate drain.
func newFakeStream(t *testing.T, attr RawAttr) *Stream {
	t.Helper()
	return &Stream{
		sess: &fakeSession{
			attr: decoder.Attr{BitDepth: attr.BitDepth, Channels: attr.Channels, SampleRate: attr.SampleRate},
			data: make([]byte, 1<<20),
		},
		fmt:  FormatWAV,
		attr: attr,
	}
}
