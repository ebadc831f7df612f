// Package aconfig is the engine's layered configuration: compiled-in
// defaults overlaid with an optional TOML file, unmarshalled with
// koanf the way internal/configs/loader.go layers
// structs.Provider(NewDefaultConfig())  →  file.Provider(path, toml.Parser()).
package aconfig

import (
	"fmt"
	"os"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// MP3Backend selects which beep decoder handles MPEG streams.
type MP3Backend string

const (
	MP3BackendStandard MP3Backend = "standard"
	MP3BackendMini     MP3Backend = "minimp3"
)

// Config is the engine's full set of tunables. Every field has a
// compiled-in default from Default(); a TOML file only needs to name
// the fields it overrides.
type Config struct {
	Device struct {
		// Name names a platform output device, "" for the platform
		// default. Engine.Startup does not read it: the mixer always
		// opens the platform default device.
		Name string `koanf:"name"`
		// SampleRate is the mixer's output rate in Hz.
		SampleRate int `koanf:"sample_rate"`
		// BufferMillis sizes the mixer's internal buffer.
		BufferMillis int `koanf:"buffer_millis"`
		// EFXLibPath is the shared library to dlopen for EFX
		// auxiliary-effect-slot support. Left empty, Engine.Startup
		// fails with ErrNoEffectExtension, matching the original's
		// requirement that EFX be present.
		EFXLibPath string `koanf:"efx_lib_path"`
	} `koanf:"device"`

	Source struct {
		DefaultChunkSize int `koanf:"default_chunk_size"`
		DefaultQueueSize int `koanf:"default_queue_size"`
	} `koanf:"source"`

	Decoder struct {
		MP3Backend MP3Backend `koanf:"mp3_backend"`
	} `koanf:"decoder"`

	Log struct {
		Level string `koanf:"level"` // debug, info, warn, error
		File  string `koanf:"file"`  // "" logs to stderr
	} `koanf:"log"`
}

// Default returns the engine's compiled-in configuration.
func Default() *Config {
	c := &Config{}
	c.Device.SampleRate = 44100
	c.Device.BufferMillis = 50
	c.Source.DefaultChunkSize = 36864
	c.Source.DefaultQueueSize = 3
	c.Decoder.MP3Backend = MP3BackendStandard
	c.Log.Level = "info"
	return c
}

// LoadFromTOMLFile layers tomlPath's contents over Default(). A
// missing file is not an error: the defaults are returned unchanged,
// matching loader.go's os.IsNotExist tolerance.
func LoadFromTOMLFile(tomlPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("aconfig: loading defaults: %w", err)
	}

	if tomlPath != "" {
		if err := k.Load(file.Provider(tomlPath), toml.Parser()); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("aconfig: loading %q: %w", tomlPath, err)
			}
		}
	}

	cfg := &Config{}
	unmarshalConf := koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: stringToMP3BackendHook(),
			Result:     cfg,
		},
	}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("aconfig: unmarshalling: %w", err)
	}
	return cfg, nil
}

// stringToMP3BackendHook converts a bare "standard"/"minimp3" TOML
// string into MP3Backend, the same reflect.Type-gated
// mapstructure.DecodeHookFunc shape as
// internal/configs/hooks.go's stringToPlayerModeHook.
func stringToMP3BackendHook() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(MP3Backend("")) {
			return data, nil
		}
		switch MP3Backend(data.(string)) {
		case MP3BackendMini:
			return MP3BackendMini, nil
		default:
			return MP3BackendStandard, nil
		}
	}
}
