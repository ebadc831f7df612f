package aural

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/go-aural/aural/internal/device"
	"github.com/go-aural/aural/internal/geom"
	"github.com/go-aural/aural/internal/squeue"
	"github.com/go-aural/aural/internal/workerx"
)

const (
	minChunkSize     = 9216
	maxChunkSize     = 16773120
	defaultChunkSize = 36864
	minQueueSize     = 2
	maxQueueSize     = 63
	defaultQueueSize = 3

	updaterPeriod = 50 * time.Millisecond
)

// SourceType is the current attachment discipline of a Source:
// Undetermined until either a Buffer or Stream is attached, and
// never both at once.
type SourceType int

const (
	TypeUndetermined SourceType = iota
	TypeStatic
	TypeStreaming
)

// SourceState is the playback state machine's current state.
type SourceState int

const (
	StateInitial SourceState = iota
	StatePlaying
	StatePaused
	StateStopped
)

// queuedChunk is one transient device buffer in a streaming source's
// multi-buffer queue: a chunk of decoded PCM plus a read cursor the
// mixing backend consumes from.
type queuedChunk struct {
	id   device.ID
	data []byte
	pos  int // bytes already handed to the mixing backend
}

// Source is a logical sound emitter: position, velocity, an attached
// Buffer or Stream, and (for streaming sources) a queue manager and
// background updater. It is the core of the engine; see DESIGN.md
// for the grounding of every method below in src/seal/src.c.
type Source struct {
	id  device.ID
	dev *device.Device
	eng *Engine

	mu sync.Mutex

	attachment SourceType
	buf        *Buffer
	stream     *Stream

	// qmu guards the streaming queue state (live, processed, and a
	// published copy of the attached stream's format) independently of
	// mu. beep's mixer goroutine runs streamFeeder.Stream under its own
	// speaker lock; if Stream took mu, and the application thread (which
	// already holds mu in Pause/SetGain/startPlaybackLocked/
	// stopPlaybackLocked) then took the speaker lock, the two threads
	// would deadlock taking mu and the speaker lock in opposite orders.
	// Stream only ever takes qmu, so that cycle can't form.
	qmu        sync.Mutex
	streamAttr RawAttr
	streamOpen bool

	state   SourceState
	looping bool
	auto    bool

	chunkSize int
	queueSize int

	pos, vel geom.Vec3
	pitch    float32
	gain     float32
	relative bool

	effectSends map[int]*EffectSlot

	// Streaming queue, guarded by qmu (not mu): live holds chunks still
	// being/awaiting consumption, processed holds chunks the mixing
	// backend has fully read but which update() has not yet reclaimed —
	// the Go analogue of AL_BUFFERS_QUEUED vs AL_BUFFERS_PROCESSED.
	live      squeue.Queue[*queuedChunk]
	processed squeue.Queue[*queuedChunk]

	updater       *workerx.Updater
	lastUpdateErr atomic.Value

	// ended records that playback reached the natural end of
	// non-looping content; State() reports StateStopped once set,
	// since the streamer goroutine (not the application thread)
	// is what observes end-of-content first.
	ended atomic.Bool

	ctrl *beep.Ctrl
	vol  *effects.Volume
}

// InitSource allocates a new source in its default configuration:
// no attachment, 36864-byte chunks, a 3-deep queue, looping off,
// auto-update on.
func InitSource(eng *Engine) (*Source, error) {
	s := &Source{
		id:          eng.dev.NewID(device.KindSource),
		dev:         eng.dev,
		eng:         eng,
		gain:        1.0,
		pitch:       1.0,
		auto:        true,
		chunkSize:   defaultChunkSize,
		queueSize:   defaultQueueSize,
		effectSends: make(map[int]*EffectSlot),
	}
	return s, nil
}

// Destroy releases the source's device resources. If currently
// streaming, empties the queue first; any attached buffer or stream
// is released the same way DetachAudio releases it, so a caller can
// free the buffer immediately afterward without hitting
// ErrBadOperation from a stale reference count.
func (s *Source) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureQueueEmptyLocked(); err != nil {
		return err
	}
	s.stopPlaybackLocked()

	if s.buf != nil {
		s.buf.refCount--
		s.buf = nil
	}
	if s.stream != nil {
		s.stream.release(s)
		s.stream = nil
		s.publishStreamAttrLocked(RawAttr{}, false)
	}
	s.attachment = TypeUndetermined
	return nil
}

// Type reports the source's current attachment discipline.
func (s *Source) Type() SourceType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attachment
}

// State reports the source's current playback state. A Playing source
// that has reached the natural end of non-looping content (observed by
// the mixing backend's own streamer goroutine, not this call) reports
// Stopped once that end is noticed here.
func (s *Source) State() SourceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePlaying && s.ended.Load() {
		s.state = StateStopped
	}
	return s.state
}

// SetBuffer attaches buf as this source's static content. Fails with
// ErrMixingSrcType if the source is currently streaming.
func (s *Source) SetBuffer(buf *Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attachment == TypeStreaming {
		return newErr("Source.SetBuffer", ErrMixingSrcType)
	}

	if s.buf != nil {
		s.buf.refCount--
	}
	buf.refCount++
	s.buf = buf
	s.attachment = TypeStatic
	return nil
}

// SetStream attaches stream as this source's streaming content. A
// no-op if stream is already attached. Fails with ErrMixingSrcType if
// the source is static, ErrStreamUnopened if the stream has no open
// decoder session, ErrMixingStreamFmt if replacing a stream whose
// attributes differ.
func (s *Source) SetStream(stream *Stream) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stream == s.stream {
		return nil
	}
	if s.attachment == TypeStatic {
		return newErr("Source.SetStream", ErrMixingSrcType)
	}
	if stream.sess == nil {
		return newErr("Source.SetStream", ErrStreamUnopened)
	}
	if s.stream != nil && s.stream.attr != stream.attr {
		return newErr("Source.SetStream", ErrMixingStreamFmt)
	}
	if err := stream.acquire(s); err != nil {
		return err
	}

	if s.stream != nil {
		s.stream.release(s)
	}
	s.stream = stream
	s.attachment = TypeStreaming
	s.publishStreamAttrLocked(stream.attr, true)

	return s.updateLocked()
}

// Play implements §4.2.3's play semantics.
func (s *Source) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attachment == TypeStreaming {
		if s.state == StatePlaying {
			if err := s.restartQueuingLocked(); err != nil {
				return err
			}
		} else {
			s.joinUpdaterLocked()
		}
		if err := s.updateLocked(); err != nil {
			return err
		}
		if s.auto {
			s.spawnUpdaterLocked()
		}
	}

	s.ended.Store(false)
	s.state = StatePlaying
	s.startPlaybackLocked()
	return nil
}

// Pause passes through to the mixing backend's pause.
func (s *Source) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePlaying {
		s.state = StatePaused
		if s.ctrl != nil {
			speaker.Lock()
			s.ctrl.Paused = true
			speaker.Unlock()
		}
	}
	return nil
}

// Stop stops playback; if streaming, unqueues all now-processed
// buffers, deletes them, and rewinds the stream.
func (s *Source) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopPlaybackLocked()
	s.state = StateStopped

	if s.attachment == TypeStreaming {
		if err := s.cleanQueueLocked(); err != nil {
			return err
		}
		return s.stream.Rewind()
	}
	return nil
}

// Rewind applies the streaming-restart protocol if streaming and
// Playing/Paused, then resets state to Initial.
func (s *Source) Rewind() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attachment == TypeStreaming && (s.state == StatePlaying || s.state == StatePaused) {
		if err := s.restartQueuingLocked(); err != nil {
			return err
		}
	}
	s.stopPlaybackLocked()
	s.state = StateInitial
	s.ended.Store(false)
	return nil
}

// DetachAudio empties any streaming queue, rewinds to Initial, and
// clears the attachment.
func (s *Source) DetachAudio() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureQueueEmptyLocked(); err != nil {
		return err
	}
	s.stopPlaybackLocked()
	s.state = StateInitial

	if s.buf != nil {
		s.buf.refCount--
		s.buf = nil
	}
	if s.stream != nil {
		s.stream.release(s)
		s.stream = nil
		s.publishStreamAttrLocked(RawAttr{}, false)
	}
	s.attachment = TypeUndetermined
	return nil
}

// FeedEffectSlot routes this source's output, on auxiliary send
// index, into slot. Reassignment on the same index replaces the
// prior routing. index must be in [0, EffectsPerSource-1].
func (s *Source) FeedEffectSlot(slot *EffectSlot, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= s.eng.EffectsPerSource() {
		return newErr("Source.FeedEffectSlot", ErrBadValue)
	}
	s.effectSends[index] = slot
	return nil
}

// Update runs one pass of the streaming queue refill algorithm
// (§4.2.4). It is a no-op for non-streaming sources. Calls from the
// application thread and from the updater goroutine are serialized by
// s.mu; there is no separate re-entrancy check (see updateLocked).
func (s *Source) Update() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked()
}

// updateLocked runs the refill loop under s.mu. Unlike the original's
// thread-identity test (needed because pthreads can call in from
// multiple OS threads at once), Go's mutex already serializes every
// caller of Update — the application thread and the updater goroutine
// can never execute this loop concurrently, so no separate
// re-entrancy check is required; see DESIGN.md.
func (s *Source) updateLocked() error {
	if s.attachment != TypeStreaming {
		return nil
	}

	for {
		chunk, ok := s.claimChunkForRefill()
		if !ok {
			return nil // queue full, nothing processed: nothing to do
		}

		raw := NewRawPCM()
		n, err := s.stream.Read(raw, s.chunkSize)
		if err != nil {
			return err
		}
		if n > 0 {
			chunk.data = append(chunk.data[:0], raw.Data()[:n]...)
			s.enqueueLiveChunk(chunk)
			s.pushChunkLocked(chunk)
			continue
		}
		if s.looping {
			if err := s.stream.Rewind(); err != nil {
				return err
			}
			continue
		}
		s.ended.Store(true)
		return nil // natural end of stream
	}
}

// claimChunkForRefill reserves the next chunk slot to fill, reusing a
// processed chunk if one is available and the queue isn't overfull
// from a previous, larger queue-size setting, or allocating a fresh
// one if there is room. Returns ok=false if the queue is already at
// its target depth with nothing processed to recycle. Held only for
// the queue bookkeeping itself, never across the stream.Read that
// follows in updateLocked.
func (s *Source) claimChunkForRefill() (*queuedChunk, bool) {
	s.qmu.Lock()
	defer s.qmu.Unlock()
	for {
		nqueued := s.live.Len() + s.processed.Len()
		if s.processed.Len() > 0 {
			c, _ := s.processed.Dequeue()
			if nqueued >= s.queueSize {
				continue // overfull from a previous, larger setting: drop it
			}
			c.pos = 0
			return c, true
		}
		if nqueued < s.queueSize {
			return &queuedChunk{id: s.dev.NewID(device.KindBuffer)}, true
		}
		return nil, false
	}
}

func (s *Source) enqueueLiveChunk(chunk *queuedChunk) {
	s.qmu.Lock()
	s.live.Enqueue(chunk)
	s.qmu.Unlock()
}

// publishStreamAttrLocked copies stream's format (or the zero value
// when detaching) under qmu, the only state streamFeeder.Stream reads
// about the attached stream; it never dereferences s.stream itself,
// which is guarded by mu instead.
func (s *Source) publishStreamAttrLocked(attr RawAttr, open bool) {
	s.qmu.Lock()
	s.streamAttr = attr
	s.streamOpen = open
	s.qmu.Unlock()
}

func (s *Source) restartQueuingLocked() error {
	s.stopPlaybackLocked()
	if err := s.cleanQueueLocked(); err != nil {
		return err
	}
	s.ended.Store(false)
	return s.stream.Rewind()
}

func (s *Source) cleanQueueLocked() error {
	s.joinUpdaterLocked()
	s.qmu.Lock()
	s.processed.Drain(func(*queuedChunk) {})
	s.live.Drain(func(*queuedChunk) {})
	s.qmu.Unlock()
	s.resetStreamerLocked()
	return nil
}

func (s *Source) ensureQueueEmptyLocked() error {
	if s.attachment != TypeStreaming {
		return nil
	}
	s.stopPlaybackLocked()
	return s.cleanQueueLocked()
}

func (s *Source) joinUpdaterLocked() {
	if s.updater != nil {
		s.mu.Unlock()
		s.updater.Stop()
		s.mu.Lock()
		s.updater = nil
	}
}

func (s *Source) spawnUpdaterLocked() {
	// A new updater starts with no terminating error recorded;
	// LastUpdateErr maps errStopUpdater to nil.
	s.lastUpdateErr.Store(errStopUpdater)
	s.updater = workerx.Run(updaterPeriod, func() error {
		state := s.State()
		if state != StatePlaying {
			return errStopUpdater
		}
		return s.Update()
	}, &s.lastUpdateErr)
}

// errStopUpdater is a sentinel the updater closure returns to end the
// loop cleanly (source left Playing) without that being recorded as
// a failure in LastUpdateErr.
var errStopUpdater = newErr("updater", ErrBadOperation)

// LastUpdateErr returns the error that most recently terminated this
// source's background updater, or nil if it is still running, never
// ran, or exited because the source simply left Playing (the
// spec's chosen answer to updater errors not otherwise being
// surfaced — see DESIGN.md open question 1).
func (s *Source) LastUpdateErr() error {
	v := s.lastUpdateErr.Load()
	if v == nil {
		return nil
	}
	err := v.(error)
	if err == errStopUpdater {
		return nil
	}
	return err
}

// --- property setters/getters ---

func (s *Source) SetPosition(p geom.Vec3) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = p
	return nil
}

func (s *Source) Position() geom.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

func (s *Source) SetVelocity(v geom.Vec3) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vel = v
	return nil
}

func (s *Source) Velocity() geom.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vel
}

// SetPitch sets the playback pitch multiplier. Must be > 0.
func (s *Source) SetPitch(pitch float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pitch <= 0 {
		return newErr("Source.SetPitch", ErrBadValue)
	}
	s.pitch = pitch
	s.applyGainLocked()
	return nil
}

func (s *Source) Pitch() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pitch
}

// SetGain sets the source's gain. Must be >= 0.
func (s *Source) SetGain(gain float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gain < 0 {
		return newErr("Source.SetGain", ErrBadValue)
	}
	s.gain = gain
	s.applyGainLocked()
	return nil
}

func (s *Source) Gain() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gain
}

func (s *Source) SetRelative(relative bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relative = relative
	return nil
}

func (s *Source) Relative() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.relative
}

// SetLooping sets the looping flag. While Static, this maps directly
// to the device-level loop flag; while Streaming, the device-level
// flag stays off and looping is emulated by the updater rewinding the
// stream on end (see §3's Source invariants).
func (s *Source) SetLooping(looping bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.looping = looping
	return nil
}

func (s *Source) Looping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.looping
}

// SetAutoUpdate sets whether Play spawns a background updater for a
// streaming source.
func (s *Source) SetAutoUpdate(auto bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auto = auto
	return nil
}

func (s *Source) AutoUpdate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auto
}

// SetQueueSize sets the target number of queued buffers Q. Must be in
// [2,63] or ErrBadValue is returned and the prior value kept.
func (s *Source) SetQueueSize(size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size < minQueueSize || size > maxQueueSize {
		return newErr("Source.SetQueueSize", ErrBadValue)
	}
	s.queueSize = size
	return nil
}

func (s *Source) QueueSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queueSize
}

// SetChunkSize sets the byte count pulled per streaming fill. Must be
// in [9216, 16773120] or ErrBadValue is returned and the prior value
// kept; within range, it is rounded down to the nearest multiple of
// 9216 so no partial audio frame is ever enqueued.
func (s *Source) SetChunkSize(size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size < minChunkSize || size > maxChunkSize {
		return newErr("Source.SetChunkSize", ErrBadValue)
	}
	s.chunkSize = size / minChunkSize * minChunkSize
	return nil
}

func (s *Source) ChunkSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chunkSize
}
