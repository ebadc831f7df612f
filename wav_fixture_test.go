package aural

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeWAVBytes encodes a minimal, valid PCM WAV file into buf:
// sampleRate Hz, the given channel count, 16-bit signed samples.
func writeWAVBytes(buf *bytes.Buffer, sampleRate, channels int, samples []int16) {
	dataSize := len(samples) * 2
	byteRate := sampleRate * channels * 2
	blockAlign := channels * 2

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
}

// writeWAV8 writes a minimal, valid PCM WAV file at path using
// unsigned 8-bit samples, the format scenario S1 names.
func writeWAV8(t *testing.T, path string, sampleRate, channels int, samples []byte) {
	t.Helper()
	var buf bytes.Buffer

	dataSize := len(samples)
	byteRate := sampleRate * channels
	blockAlign := channels

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(8))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(samples)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

// sineSamples8 returns n frames of a quiet, deterministic unsigned
// 8-bit tone, centred on 128 per the WAV 8-bit convention.
func sineSamples8(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(128 + i%100)
	}
	return out
}

// writeWAV writes a minimal, valid PCM WAV file at path: sampleRate Hz,
// the given channel count, 16-bit signed samples. Used across this
// package's tests as a real, decodable fixture instead of a mocked
// decoder session.
func writeWAV(t *testing.T, path string, sampleRate, channels int, samples []int16) {
	t.Helper()
	var buf bytes.Buffer
	writeWAVBytes(&buf, sampleRate, channels, samples)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

// sineSamples returns n frames of a quiet, deterministic tone, enough
// to exercise a real decode without needing a checked-in fixture file.
func sineSamples(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16((i % 200) * 100)
	}
	return out
}

func tempWAVPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}
