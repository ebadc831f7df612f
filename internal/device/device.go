// Package device is the engine's single process-wide output device
// handle: object id allocation, the global mutex guarding every call
// into the mixing backend, and the bound EFX function table.
//
// The original couples "acquire the device lock" with "read the
// device's error register" into one hidden step every call repeats.
// This package instead exposes Do, a scoped acquisition that always
// runs under the lock and returns the call's own error directly —
// there is no separate error register to drain because Go calls
// return their error inline (see SPEC_FULL.md §9).
package device

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/go-aural/aural/internal/decoder"
	"github.com/go-aural/aural/internal/efx"
)

// Kind distinguishes the category of object an ID names, replacing
// the original's "every object starts with a u32 id, blind-cast
// whatever pointer you have" layout trick with an explicit sum type.
type Kind int

const (
	KindBuffer Kind = iota
	KindSource
	KindEffect
	KindEffectSlot
)

// ID is a typed handle: a Kind plus a process-unique sequence number.
// Values are comparable and safe to use as map keys.
type ID struct {
	Kind Kind
	Seq  uint64
}

// Device is the single engine-wide output device: the lock every
// mixing-backend call must hold, the id allocator, and the bound EFX
// function table (nil if the extension is unavailable or unprobed).
type Device struct {
	mu sync.Mutex

	seq atomic.Uint64

	started          bool
	sampleRate       beep.SampleRate
	bufferSize       int
	efxTable         *efx.Table
	effectsPerSource int
	mp3Backend       decoder.MP3Backend
}

// New constructs an unstarted Device. Start must be called before any
// mixing operation.
func New() *Device {
	return &Device{}
}

// Start opens the mixing backend (beep/speaker) at sampleRate with
// the given mixer buffer size, and optionally binds the EFX table by
// dlopen-ing efxLibPath. efxLibPath == "" skips EFX binding entirely,
// which callers surface as ErrNoEffectExtension per spec: the engine
// requires the extension to be present to start at all.
func (d *Device) Start(sampleRate beep.SampleRate, bufferSize int, efxLibPath string) error {
	return d.StartWithDecoder(sampleRate, bufferSize, efxLibPath, decoder.MP3BackendStandard)
}

// StartWithDecoder is Start plus the MP3 decode backend new sources
// and buffers should use, threaded through from Engine's configuration.
func (d *Device) StartWithDecoder(sampleRate beep.SampleRate, bufferSize int, efxLibPath string, mp3Backend decoder.MP3Backend) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return errors.New("device: already started")
	}

	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	if efxLibPath != "" {
		table, err := efx.Bind(efxLibPath)
		if err != nil {
			speaker.Close()
			return errors.Wrap(err, "bind efx")
		}
		d.efxTable = table
	}

	d.sampleRate = sampleRate
	d.bufferSize = bufferSize
	d.effectsPerSource = efx.MaxAuxiliarySends
	d.mp3Backend = mp3Backend
	d.started = true
	return nil
}

// MP3Backend returns the configured MP3 decode backend new Buffer/
// Stream decodes should use.
func (d *Device) MP3Backend() decoder.MP3Backend {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mp3Backend
}

// Close shuts the mixing backend down and forgets the EFX table. Safe
// to call on an already-stopped Device (idempotent, per spec).
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.started {
		return
	}
	speaker.Close()
	d.efxTable = nil
	d.started = false
}

// Started reports whether Start has successfully run without a
// matching Close.
func (d *Device) Started() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.started
}

// EffectsPerSource returns the cached auxiliary-send count, valid
// after Start.
func (d *Device) EffectsPerSource() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.effectsPerSource
}

// EFX returns the bound extension table, or nil if EFX was never
// bound.
func (d *Device) EFX() *efx.Table {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.efxTable
}

// SampleRate returns the mixer's configured sample rate.
func (d *Device) SampleRate() beep.SampleRate {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sampleRate
}

// NewID allocates a fresh, process-unique handle of the given kind.
func (d *Device) NewID(kind Kind) ID {
	return ID{Kind: kind, Seq: d.seq.Add(1)}
}

// Do runs fn with the device's global mutex held, the scoped
// acquisition every mixing-backend touching call goes through. This
// mirrors the original's "acquire openal_lock, call into OpenAL,
// release" pattern without the original's coupling to a side-channel
// error register: fn returns its error directly.
func (d *Device) Do(fn func() error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn()
}

// Lock exposes the raw mutex for call sites (notably speaker.Lock/
// Unlock pairing around a Ctrl mutation) that must interleave with
// the mixing backend's own locking discipline rather than a closure.
func (d *Device) Lock()   { d.mu.Lock() }
func (d *Device) Unlock() { d.mu.Unlock() }
