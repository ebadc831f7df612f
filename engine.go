package aural

import (
	"log/slog"
	"os"
	"time"

	"github.com/gopxl/beep"

	"github.com/go-aural/aural/internal/aconfig"
	"github.com/go-aural/aural/internal/decoder"
	"github.com/go-aural/aural/internal/device"
	"github.com/go-aural/aural/utils/slogx"
)

// Version is the engine's reported build identifier, analogous to
// seal_get_version.
const Version = "aural 1.0"

// Engine is the single process-wide handle owning the output device,
// the listener, and the loaded configuration. Exactly one Engine
// should be started at a time; spec.md's single global device maps
// onto one Engine instance.
type Engine struct {
	dev      *device.Device
	listener *Listener
	cfg      *aconfig.Config
}

// NewEngine constructs an unstarted Engine.
func NewEngine() *Engine {
	return &Engine{dev: device.New()}
}

// Startup opens the output device and probes the EFX extension table.
// cfg may be nil, in which case compiled-in defaults are used. Fails
// with ErrNoEffectExtension if cfg.Device.EFXLibPath is empty or the
// library cannot be bound, matching the original's requirement that
// the effects extension be present for the engine to start at all.
func (e *Engine) Startup(cfg *aconfig.Config) error {
	if cfg == nil {
		cfg = aconfig.Default()
	}
	e.cfg = cfg

	slogx.Init(logWriter(cfg.Log.File), logLevel(cfg.Log.Level))

	if cfg.Device.EFXLibPath == "" {
		return newErr("Engine.Startup", ErrNoEffectExtension)
	}

	sampleRate := beep.SampleRate(cfg.Device.SampleRate)
	bufferSize := sampleRate.N(time.Duration(cfg.Device.BufferMillis) * time.Millisecond)
	mp3Backend := decoder.MP3BackendStandard
	if cfg.Decoder.MP3Backend == aconfig.MP3BackendMini {
		mp3Backend = decoder.MP3BackendMini
	}
	if err := e.dev.StartWithDecoder(sampleRate, bufferSize, cfg.Device.EFXLibPath, mp3Backend); err != nil {
		return newErr("Engine.Startup", ErrNoEffectExtension)
	}

	e.listener = newListener(e.dev)
	slog.Info("engine started",
		slog.Int("sample_rate", cfg.Device.SampleRate),
		slog.String("efx_lib", cfg.Device.EFXLibPath))
	return nil
}

// Cleanup shuts the device down. Idempotent.
func (e *Engine) Cleanup() {
	e.dev.Close()
}

// EffectsPerSource returns the number of auxiliary effect sends each
// source may use (ALC_MAX_AUXILIARY_SENDS).
func (e *Engine) EffectsPerSource() int {
	return e.dev.EffectsPerSource()
}

// Listener returns the engine's single listener.
func (e *Engine) Listener() *Listener {
	return e.listener
}

// Config returns the configuration Startup was called with.
func (e *Engine) Config() *aconfig.Config {
	return e.cfg
}

// NewSource allocates a new Source bound to this engine.
func (e *Engine) NewSource() (*Source, error) {
	return InitSource(e)
}

// NewBuffer allocates a new, empty Buffer.
func (e *Engine) NewBuffer() (*Buffer, error) {
	return initBuffer(e.dev)
}

// OpenStream opens path for streaming, using this engine's configured
// MP3 decode backend.
func (e *Engine) OpenStream(path string, format Format) (*Stream, error) {
	return OpenStream(e.dev, path, format)
}

// NewEffect allocates a new reverb Effect, defaulted to
// DefaultReverbParams.
func (e *Engine) NewEffect() (*Effect, error) {
	return InitEffect(e.dev, e.dev.EFX())
}

// NewEffectSlot allocates a new auxiliary effect slot.
func (e *Engine) NewEffectSlot() (*EffectSlot, error) {
	return InitEffectSlot(e.dev)
}

func logWriter(path string) *os.File {
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return os.Stderr
	}
	return f
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
