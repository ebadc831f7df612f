package aural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLoadFromFileRoundTrip(t *testing.T) {
	eng := NewEngine()
	path := tempWAVPath(t, "tone.wav")
	samples := sineSamples(512)
	writeWAV(t, path, 22050, 1, samples)

	buf, err := eng.NewBuffer()
	require.NoError(t, err)

	require.NoError(t, buf.LoadFromFile(path, FormatWAV))
	assert.Equal(t, 22050, buf.Freq())
	assert.Equal(t, 1, buf.Channels())
	assert.Equal(t, 16, buf.Bps())
	assert.Equal(t, len(samples)*2, buf.Size())
	assert.Equal(t, len(samples)*2, len(buf.Data()))
}

// TestBufferLoadFromFile8BitRoundTrip covers scenario S1: a 1-channel
// 11025 Hz 8-bit WAV must report bps=8 and a byte-for-byte data size,
// not get widened to 16-bit on the way through the decoder.
func TestBufferLoadFromFile8BitRoundTrip(t *testing.T) {
	eng := NewEngine()
	path := tempWAVPath(t, "tone8.wav")
	samples := sineSamples8(256)
	writeWAV8(t, path, 11025, 1, samples)

	buf, err := eng.NewBuffer()
	require.NoError(t, err)

	require.NoError(t, buf.LoadFromFile(path, FormatWAV))
	assert.Equal(t, 11025, buf.Freq())
	assert.Equal(t, 1, buf.Channels())
	assert.Equal(t, 8, buf.Bps())
	assert.Equal(t, len(samples), buf.Size())
	assert.Equal(t, len(samples), len(buf.Data()))
}

func TestBufferLoadFromFileSniffsFormat(t *testing.T) {
	eng := NewEngine()
	path := tempWAVPath(t, "tone.wav")
	writeWAV(t, path, 11025, 2, sineSamples(64))

	buf, err := eng.NewBuffer()
	require.NoError(t, err)
	require.NoError(t, buf.LoadFromFile(path, FormatUnknown))
	assert.Equal(t, 11025, buf.Freq())
	assert.Equal(t, 2, buf.Channels())
}

func TestBufferCopyFromRaw(t *testing.T) {
	eng := NewEngine()
	buf, err := eng.NewBuffer()
	require.NoError(t, err)

	raw := NewRawPCM()
	raw.SetData([]byte{1, 2, 3, 4}, RawAttr{BitDepth: 16, Channels: 1, SampleRate: 8000})

	require.NoError(t, buf.CopyFromRaw(raw))
	assert.Equal(t, 4, buf.Size())
	assert.Equal(t, 8000, buf.Freq())
	assert.Equal(t, []byte{1, 2, 3, 4}, buf.Data())
}

func TestBufferDestroyRejectedWhileReferenced(t *testing.T) {
	eng := NewEngine()
	buf, err := eng.NewBuffer()
	require.NoError(t, err)
	raw := NewRawPCM()
	raw.SetData([]byte{1, 2}, RawAttr{BitDepth: 16, Channels: 1, SampleRate: 8000})
	require.NoError(t, buf.CopyFromRaw(raw))

	src, err := eng.NewSource()
	require.NoError(t, err)
	require.NoError(t, src.SetBuffer(buf))

	err = buf.Destroy()
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrBadOperation, kind)

	// Destroying the source releases the buffer's reference.
	require.NoError(t, src.Destroy())
	require.NoError(t, buf.Destroy())
}

func TestBufferLoadFromFileRejectedWhileReferenced(t *testing.T) {
	eng := NewEngine()
	buf, err := eng.NewBuffer()
	require.NoError(t, err)
	raw := NewRawPCM()
	raw.SetData([]byte{1, 2}, RawAttr{BitDepth: 16, Channels: 1, SampleRate: 8000})
	require.NoError(t, buf.CopyFromRaw(raw))

	src, err := eng.NewSource()
	require.NoError(t, err)
	require.NoError(t, src.SetBuffer(buf))

	path := tempWAVPath(t, "tone.wav")
	writeWAV(t, path, 8000, 1, sineSamples(16))
	err = buf.LoadFromFile(path, FormatWAV)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrBadOperation, kind)
}
