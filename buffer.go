package aural

import (
	"log/slog"
	"os"

	"github.com/go-aural/aural/internal/decoder"
	"github.com/go-aural/aural/internal/device"
	"github.com/go-aural/aural/utils/mathx"
)

// Buffer is an immutable, device-side PCM blob used by static
// sources. It is created by uploading a RawPCM region, either decoded
// wholesale from a file or supplied directly by the caller.
type Buffer struct {
	id       device.ID
	dev      *device.Device
	attr     RawAttr
	data     []byte
	size     int
	refCount int
}

// initBuffer allocates a device-side buffer handle. Mirrors
// seal_init_buf's _seal_init_obj(buf, alGenBuffers) call.
func initBuffer(dev *device.Device) (*Buffer, error) {
	return &Buffer{id: dev.NewID(device.KindBuffer), dev: dev}, nil
}

// Destroy releases the buffer's device-side storage. Fails with
// ErrBadOperation if any source still references it, the Go
// surfacing of the original's "alDeleteBuffers fails while a buffer
// is queued/attached" behaviour.
func (b *Buffer) Destroy() error {
	return b.dev.Do(func() error {
		if b.refCount > 0 {
			return newErr("Buffer.Destroy", ErrBadOperation)
		}
		b.data = nil
		b.size = 0
		return nil
	})
}

// LoadFromFile decodes path wholesale (sniffing fmt if FormatUnknown)
// and uploads the result as this buffer's content. Rejected with
// ErrBadOperation while any source still references the buffer,
// matching §4.3's invariant that buffer content is immutable once
// attached.
func (b *Buffer) LoadFromFile(path string, fmt Format) error {
	return b.dev.Do(func() error {
		if b.refCount > 0 {
			return newErr("Buffer.LoadFromFile", ErrBadOperation)
		}

		f, err := os.Open(path)
		if err != nil {
			return newErr("Buffer.LoadFromFile", ErrCannotOpenFile)
		}
		defer f.Close()

		sniffed, err := EnsureFormatKnown(f, fmt)
		if err != nil {
			return err
		}
		if _, err := f.Seek(0, 0); err != nil {
			return newErr("Buffer.LoadFromFile", ErrCannotOpenFile)
		}

		kind, err := decoderKind(sniffed)
		if err != nil {
			return err
		}

		sess, err := decoder.Open(kind, f, b.dev.MP3Backend())
		if err != nil {
			return newErr("Buffer.LoadFromFile", ErrBadAudio)
		}
		defer sess.Close()

		raw := NewRawPCM()
		attr := sess.Attr()
		raw.SetAttr(RawAttr{BitDepth: attr.BitDepth, Channels: attr.Channels, SampleRate: attr.SampleRate})

		chunk := make([]byte, 32*1024)
		for {
			n, err := sess.Read(chunk)
			if err != nil {
				return newErr("Buffer.LoadFromFile", ErrBadAudio)
			}
			if n == 0 {
				break
			}
			raw.Append(chunk[:n])
		}

		b.attr = raw.Attr()
		b.size = raw.Size()
		b.data = append([]byte(nil), raw.Data()...)
		slog.Debug("buffer loaded", slog.String("path", path), slog.String("size", mathx.FormatBytes(int64(b.size))))
		return nil
	})
}

// CopyFromRaw uploads a caller-supplied PCM region as this buffer's
// content, the Go equivalent of seal_raw2buf. Subject to the same
// in-use rejection as LoadFromFile.
func (b *Buffer) CopyFromRaw(raw *RawPCM) error {
	return b.dev.Do(func() error {
		if b.refCount > 0 {
			return newErr("Buffer.CopyFromRaw", ErrBadOperation)
		}
		b.attr = raw.Attr()
		b.size = raw.Size()
		b.data = append([]byte(nil), raw.Data()...)
		return nil
	})
}

// Data returns the buffer's uploaded PCM bytes. Callers must not
// mutate the returned slice.
func (b *Buffer) Data() []byte { return b.data }

// Size returns the uploaded content's byte length (AL_SIZE).
func (b *Buffer) Size() int { return b.size }

// Freq returns the sample rate (AL_FREQUENCY).
func (b *Buffer) Freq() int { return b.attr.SampleRate }

// Bps returns the bit depth (AL_BITS).
func (b *Buffer) Bps() int { return b.attr.BitDepth }

// Channels returns the channel count (AL_CHANNELS).
func (b *Buffer) Channels() int { return b.attr.Channels }

func decoderKind(f Format) (decoder.Kind, error) {
	switch f {
	case FormatWAV:
		return decoder.KindWAV, nil
	case FormatOggVorbis:
		return decoder.KindOggVorbis, nil
	case FormatMPEG:
		return decoder.KindMPEG, nil
	case FormatFLAC:
		return decoder.KindFLAC, nil
	default:
		return 0, newErr("decoderKind", ErrBadAudio)
	}
}
