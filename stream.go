package aural

import (
	"os"

	"github.com/go-aural/aural/internal/decoder"
	"github.com/go-aural/aural/internal/device"
)

// Stream is a rewindable decoder session producing PCM chunks on
// demand, used by streaming sources. At most one source may reference
// a given Stream at a time (enforced by the source's set_stream
// ownership check, ErrStreamInUse).
type Stream struct {
	f        *os.File
	sess     decoder.Session
	fmt      Format
	attr     RawAttr
	refOwner *Source // the single source currently bound to this stream, if any
}

// OpenStream opens path for streaming, sniffing fmt if FormatUnknown,
// decoding MPEG content with dev's configured MP3 backend.
func OpenStream(dev *device.Device, path string, fmt Format) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newErr("OpenStream", ErrCannotOpenFile)
	}

	sniffed, err := EnsureFormatKnown(f, fmt)
	if err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, newErr("OpenStream", ErrCannotOpenFile)
	}

	kind, err := decoderKind(sniffed)
	if err != nil {
		f.Close()
		return nil, err
	}

	sess, err := decoder.Open(kind, f, dev.MP3Backend())
	if err != nil {
		f.Close()
		return nil, newErr("OpenStream", ErrBadAudio)
	}

	dattr := sess.Attr()
	return &Stream{
		f:    f,
		sess: sess,
		fmt:  sniffed,
		attr: RawAttr{BitDepth: dattr.BitDepth, Channels: dattr.Channels, SampleRate: dattr.SampleRate},
	}, nil
}

// Attr reports the stream's sample format.
func (s *Stream) Attr() RawAttr { return s.attr }

// Format reports the container format this stream was opened as.
func (s *Stream) Format() Format { return s.fmt }

// Read requests at most maxBytes bytes; the stream layer grows out's
// backing storage to hold them, fills it, and returns the actual byte
// count read. A return of (0, nil) signals clean end of stream, matching
// seal_stream's out_size=0/no-error convention.
func (s *Stream) Read(out *RawPCM, maxBytes int) (int, error) {
	if s.sess == nil {
		return 0, newErr("Stream.Read", ErrStreamUnopened)
	}
	out.EnsureSize(maxBytes)
	buf := out.Data()[:maxBytes]
	n, err := s.sess.Read(buf)
	if err != nil {
		return 0, newErr("Stream.Read", ErrBadAudio)
	}
	return n, nil
}

// Rewind seeks the stream back to its first sample.
func (s *Stream) Rewind() error {
	if s.sess == nil {
		return newErr("Stream.Rewind", ErrStreamUnopened)
	}
	if err := s.sess.Rewind(); err != nil {
		return newErr("Stream.Rewind", ErrBadAudio)
	}
	return nil
}

// Close releases the decoder session and underlying file. Fails with
// ErrBadOperation if a source still references this stream.
func (s *Stream) Close() error {
	if s.refOwner != nil {
		return newErr("Stream.Close", ErrBadOperation)
	}
	if s.sess == nil {
		return newErr("Stream.Close", ErrStreamUnopened)
	}
	err := s.sess.Close()
	s.f.Close()
	s.sess = nil
	s.attr = RawAttr{Channels: 1, BitDepth: 16}
	if err != nil {
		return newErr("Stream.Close", ErrBadAudio)
	}
	return nil
}

// acquire binds src as this stream's sole referencing source,
// failing with ErrStreamInUse if another source already holds it.
func (s *Stream) acquire(src *Source) error {
	if s.refOwner != nil && s.refOwner != src {
		return newErr("Stream.acquire", ErrStreamInUse)
	}
	s.refOwner = src
	return nil
}

// release clears the referencing source, if it was src.
func (s *Stream) release(src *Source) {
	if s.refOwner == src {
		s.refOwner = nil
	}
}
