package aural

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSniffFormatWAV(t *testing.T) {
	var buf bytes.Buffer
	writeWAVBytes(&buf, 8000, 1, []int16{1, 2, 3})
	f, err := SniffFormat(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, FormatWAV, f)
}

func TestSniffFormatOgg(t *testing.T) {
	magic := append([]byte("OggS"), make([]byte, 8)...)
	f, err := SniffFormat(bytes.NewReader(magic))
	require.NoError(t, err)
	assert.Equal(t, FormatOggVorbis, f)
}

func TestSniffFormatFLAC(t *testing.T) {
	magic := append([]byte("fLaC"), make([]byte, 8)...)
	f, err := SniffFormat(bytes.NewReader(magic))
	require.NoError(t, err)
	assert.Equal(t, FormatFLAC, f)
}

func TestSniffFormatMPEGID3(t *testing.T) {
	magic := append([]byte("ID3\x03"), make([]byte, 8)...)
	f, err := SniffFormat(bytes.NewReader(magic))
	require.NoError(t, err)
	assert.Equal(t, FormatMPEG, f)
}

func TestSniffFormatUnknown(t *testing.T) {
	magic := bytes.Repeat([]byte{0x00}, 12)
	_, err := SniffFormat(bytes.NewReader(magic))
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrBadAudio, kind)
}

func TestSniffFormatTooShort(t *testing.T) {
	_, err := SniffFormat(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestEnsureFormatKnownPassthrough(t *testing.T) {
	f, err := EnsureFormatKnown(bytes.NewReader(nil), FormatMPEG)
	require.NoError(t, err)
	assert.Equal(t, FormatMPEG, f)
}

// TestSniffFormatIdempotent is invariant 8: sniffing the same bytes
// twice always agrees.
func TestSniffFormatIdempotent(t *testing.T) {
	rapid.Check(t, func(tt *rapid.T) {
		kind := rapid.SampledFrom([]string{"wav", "ogg", "flac", "mpeg"}).Draw(tt, "kind")

		var raw []byte
		switch kind {
		case "wav":
			var buf bytes.Buffer
			writeWAVBytes(&buf, 8000, 1, []int16{1, 2, 3, 4})
			raw = buf.Bytes()
		case "ogg":
			raw = append([]byte("OggS"), make([]byte, 8)...)
		case "flac":
			raw = append([]byte("fLaC"), make([]byte, 8)...)
		case "mpeg":
			raw = append([]byte("ID3\x03"), make([]byte, 8)...)
		}

		f1, err1 := SniffFormat(bytes.NewReader(raw))
		f2, err2 := SniffFormat(bytes.NewReader(raw))
		require.NoError(tt, err1)
		require.NoError(tt, err2)
		assert.Equal(tt, f1, f2)
	})
}
