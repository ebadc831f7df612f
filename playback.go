package aural

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// This file wires a Source's logical state onto the mixing backend: a
// beep.Streamer that turns either a static Buffer's bytes or a
// streaming source's live chunk queue into interleaved float samples,
// a beep.Ctrl for pause/resume, and an effects.Volume for gain,
// grounded on internal/player/beep_player.go's
// ctrl := &beep.Ctrl{...}; volume := &effects.Volume{Base: 2, ...};
// volume.Streamer = ctrl; speaker.Play(volume) chain.

// gainToVolume converts a linear gain factor (0 meaning silence, 1
// meaning unity) into effects.Volume's log2-scaled Volume field, the
// inverse of effects.Volume's own 2^Volume amplitude formula.
func gainToVolume(gain float32) (volume float64, silent bool) {
	if gain <= 0 {
		return 0, true
	}
	return math.Log2(float64(gain)), false
}

// startPlaybackLocked builds the mixing chain appropriate to the
// source's current attachment and starts (or resumes) it. Safe to
// call on an already-playing source (e.g. Play() called twice): it
// only resumes the beep.Ctrl in that case.
func (s *Source) startPlaybackLocked() {
	if s.ctrl != nil {
		speaker.Lock()
		s.ctrl.Paused = false
		speaker.Unlock()
		return
	}

	var core beep.Streamer
	switch s.attachment {
	case TypeStatic:
		if s.buf == nil {
			return
		}
		core = &pcmStreamer{src: s, attr: s.buf.attr, data: s.buf.data}
	case TypeStreaming:
		if s.stream == nil {
			return
		}
		core = &streamFeeder{src: s}
	default:
		return
	}

	s.ctrl = &beep.Ctrl{Streamer: core, Paused: false}
	vol, silent := gainToVolume(s.gain)
	s.vol = &effects.Volume{Streamer: s.ctrl, Base: 2, Volume: vol, Silent: silent}
	speaker.Play(s.vol)
}

// stopPlaybackLocked pauses and tears down the source's mixing chain,
// the Go equivalent of removing the source from OpenAL's mix graph.
// A fresh chain is built the next time startPlaybackLocked runs.
func (s *Source) stopPlaybackLocked() {
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	s.ctrl.Streamer = nil
	speaker.Unlock()
	s.ctrl = nil
	s.vol = nil
}

// resetStreamerLocked rebuilds the streaming chain's consumer so the
// next Play starts from an empty live/processed queue instead of
// replaying stale chunk state.
func (s *Source) resetStreamerLocked() {
	s.stopPlaybackLocked()
}

// applyGainLocked pushes the current gain onto the live mixing chain,
// if one exists. Pitch has no analogue in this backend (beep has no
// cheap real-time resampler wired here) and is stored purely as
// engine state other hosts may read.
func (s *Source) applyGainLocked() {
	if s.vol == nil {
		return
	}
	vol, silent := gainToVolume(s.gain)
	speaker.Lock()
	s.vol.Volume = vol
	s.vol.Silent = silent
	speaker.Unlock()
}

// pushChunkLocked is the integration point a real device-queue backend
// would use to upload chunk immediately (the original's alBufferData +
// alSourceQueueBuffers). This backend's streamFeeder instead consumes
// directly from s.live, so there is nothing to push; the hook exists
// so the refill loop's structure matches seal_update_src's regardless
// of backend.
func (s *Source) pushChunkLocked(chunk *queuedChunk) {}

// bytesPerFrame returns the byte size of one interleaved PCM sample
// frame for attr.
func bytesPerFrame(attr RawAttr) int {
	return (attr.BitDepth / 8) * attr.Channels
}

// decodeFrame reads one interleaved frame starting at b[0] and returns
// its left/right samples normalised to [-1, 1]. Mono frames are
// duplicated to both channels.
func decodeFrame(b []byte, attr RawAttr) (l, r float64) {
	switch attr.BitDepth {
	case 8:
		if attr.Channels >= 2 {
			l = (float64(b[0]) - 128) / 128
			r = (float64(b[1]) - 128) / 128
			return
		}
		l = (float64(b[0]) - 128) / 128
		return l, l
	default: // 16-bit
		if attr.Channels >= 2 {
			l = int16ToFloat(b[0], b[1])
			r = int16ToFloat(b[2], b[3])
			return
		}
		l = int16ToFloat(b[0], b[1])
		return l, l
	}
}

func int16ToFloat(lo, hi byte) float64 {
	v := int16(uint16(lo) | uint16(hi)<<8)
	return float64(v) / 32768
}

// pcmStreamer plays a static Buffer's fully-decoded bytes, looping
// from the top when src.looping is set and otherwise marking src
// ended on drain.
type pcmStreamer struct {
	src  *Source
	attr RawAttr
	data []byte
	pos  int
}

func (p *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	frame := bytesPerFrame(p.attr)
	if frame == 0 || len(p.data) < frame {
		return 0, false
	}

	for n < len(samples) {
		if p.pos+frame > len(p.data) {
			if p.src.looping {
				p.pos = 0
				continue
			}
			p.src.ended.Store(true)
			if n == 0 {
				return 0, false
			}
			return n, true
		}
		l, r := decodeFrame(p.data[p.pos:], p.attr)
		samples[n][0], samples[n][1] = l, r
		p.pos += frame
		n++
	}
	return n, true
}

func (p *pcmStreamer) Err() error { return nil }

// streamFeeder plays a streaming source's live chunk queue, graduating
// exhausted chunks onto src.processed for the updater goroutine to
// reclaim (or delete), the mirror of seal_update_src's unqueue step.
// When the queue runs dry but the stream has not yet reached its
// natural end, it emits silence rather than ending the stream outright
// so a slow updater tick doesn't glitch playback to a permanent stop.
//
// Stream runs on beep's mixer goroutine, under the speaker package's
// own lock (speaker.update calls mixer.Stream while holding it). It
// must never block on src.mu: the application thread takes src.mu
// first and then the speaker lock in Pause/SetGain/Play/Stop, so a
// Stream that also took src.mu would deadlock against that call taking
// the two locks in the opposite order. Stream reads queue state and a
// published copy of the stream's format through src.qmu instead, a
// lock speaker never holds and src.mu never nests inside.
type streamFeeder struct {
	src *Source
}

func (f *streamFeeder) Stream(samples [][2]float64) (n int, ok bool) {
	s := f.src
	s.qmu.Lock()
	defer s.qmu.Unlock()

	if !s.streamOpen {
		return 0, false
	}
	attr := s.streamAttr
	frame := bytesPerFrame(attr)
	if frame == 0 {
		return 0, false
	}

	for n < len(samples) {
		chunk, has := s.live.Peek()
		if !has {
			if s.ended.Load() {
				if n == 0 {
					return 0, false
				}
				return n, true
			}
			// queue momentarily empty, not yet at natural end: pad
			// with silence until the updater refills it.
			for n < len(samples) {
				samples[n][0], samples[n][1] = 0, 0
				n++
			}
			return n, true
		}
		if chunk.pos+frame > len(chunk.data) {
			s.live.Dequeue()
			s.processed.Enqueue(chunk)
			continue
		}
		l, r := decodeFrame(chunk.data[chunk.pos:], attr)
		samples[n][0], samples[n][1] = l, r
		chunk.pos += frame
		n++
	}
	return n, true
}

func (f *streamFeeder) Err() error { return nil }
