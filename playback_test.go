package aural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGainToVolume(t *testing.T) {
	vol, silent := gainToVolume(1)
	assert.False(t, silent)
	assert.InDelta(t, 0, vol, 1e-9) // unity gain -> 2^0

	vol, silent = gainToVolume(2)
	assert.False(t, silent)
	assert.InDelta(t, 1, vol, 1e-9) // double gain -> 2^1

	_, silent = gainToVolume(0)
	assert.True(t, silent)

	_, silent = gainToVolume(-1)
	assert.True(t, silent)
}

func TestPcmStreamerLoopsWithoutEnding(t *testing.T) {
	eng := NewEngine()
	src, err := eng.NewSource()
	require.NoError(t, err)
	require.NoError(t, src.SetLooping(true))

	p := &pcmStreamer{
		src:  src,
		attr: RawAttr{BitDepth: 16, Channels: 1, SampleRate: 8000},
		data: []byte{10, 0, 20, 0, 30, 0}, // 3 frames
	}

	samples := make([][2]float64, 9) // wraps the 3-frame buffer exactly 3 times
	n, ok := p.Stream(samples)
	require.True(t, ok)
	require.Equal(t, 9, n)
	assert.False(t, src.ended.Load())
	// the wrap must reproduce the same sequence each pass
	assert.Equal(t, samples[0], samples[3])
	assert.Equal(t, samples[0], samples[6])
}

func TestPcmStreamerDrainsAndEndsWhenNotLooping(t *testing.T) {
	eng := NewEngine()
	src, err := eng.NewSource()
	require.NoError(t, err)

	p := &pcmStreamer{
		src:  src,
		attr: RawAttr{BitDepth: 16, Channels: 1, SampleRate: 8000},
		data: []byte{10, 0, 20, 0}, // 2 frames
	}

	samples := make([][2]float64, 5)
	n, ok := p.Stream(samples)
	require.True(t, ok)
	assert.Equal(t, 2, n)
	assert.True(t, src.ended.Load())

	// a second call after full drain reports no more data
	n, ok = p.Stream(samples)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestStreamFeederPadsSilenceWhileNotEnded(t *testing.T) {
	eng := NewEngine()
	src, err := eng.NewSource()
	require.NoError(t, err)

	stream := newFakeStream(t, RawAttr{BitDepth: 16, Channels: 1, SampleRate: 8000})
	src.attachment = TypeStreaming
	src.stream = stream
	src.publishStreamAttrLocked(stream.attr, true)

	f := &streamFeeder{src: src}
	samples := make([][2]float64, 4)
	n, ok := f.Stream(samples)
	require.True(t, ok)
	assert.Equal(t, 4, n)
	for _, s := range samples {
		assert.Equal(t, [2]float64{0, 0}, s)
	}
}

func TestStreamFeederConsumesLiveQueueIntoProcessed(t *testing.T) {
	eng := NewEngine()
	src, err := eng.NewSource()
	require.NoError(t, err)

	stream := newFakeStream(t, RawAttr{BitDepth: 16, Channels: 1, SampleRate: 8000})
	src.attachment = TypeStreaming
	src.stream = stream
	src.publishStreamAttrLocked(stream.attr, true)

	chunk := &queuedChunk{data: []byte{5, 0, 6, 0}} // 2 frames
	src.live.Enqueue(chunk)

	// one extra sample beyond the chunk's 2 frames forces the feeder to
	// notice exhaustion and graduate the chunk to processed before
	// padding the remainder with silence.
	f := &streamFeeder{src: src}
	samples := make([][2]float64, 3)
	n, ok := f.Stream(samples)
	require.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, src.live.Len())
	assert.Equal(t, 1, src.processed.Len())
}

func TestStreamFeederEndsWhenDrainedAndEnded(t *testing.T) {
	eng := NewEngine()
	src, err := eng.NewSource()
	require.NoError(t, err)

	stream := newFakeStream(t, RawAttr{BitDepth: 16, Channels: 1, SampleRate: 8000})
	src.attachment = TypeStreaming
	src.stream = stream
	src.publishStreamAttrLocked(stream.attr, true)
	src.ended.Store(true)

	f := &streamFeeder{src: src}
	samples := make([][2]float64, 4)
	n, ok := f.Stream(samples)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}
