// Package efx binds the OpenAL EFX (Effects Extension) function
// table via dynamic symbol lookup, the same way the engine's output
// device driver binds any other native extension: there is no static
// import library to link against, so every entry point is resolved at
// startup through the loader and stored in a function pointer table.
package efx

import (
	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

// Table holds the bound EFX entry points an aural engine needs: effect
// and auxiliary-effect-slot object management plus their scalar/
// integer property accessors. All 13 reverb parameters are set
// through Effectf/Effecti, keyed by an AL property enum, so the table
// only needs the generic setters, not one function per parameter.
type Table struct {
	GenEffects    func(n int32, effects *uint32)
	DeleteEffects func(n int32, effects *uint32)
	IsEffect      func(effect uint32) bool
	Effectf       func(effect uint32, param int32, value float32)
	Effecti       func(effect uint32, param int32, value int32)
	GetEffectf    func(effect uint32, param int32, value *float32)
	GetEffecti    func(effect uint32, param int32, value *int32)

	GenAuxiliaryEffectSlots    func(n int32, slots *uint32)
	DeleteAuxiliaryEffectSlots func(n int32, slots *uint32)
	IsAuxiliaryEffectSlot      func(slot uint32) bool
	AuxiliaryEffectSloti       func(slot uint32, param int32, value int32)
	AuxiliaryEffectSlotf       func(slot uint32, param int32, value float32)
	GetAuxiliaryEffectSloti    func(slot uint32, param int32, value *int32)
	GetAuxiliaryEffectSlotf    func(slot uint32, param int32, value *float32)
}

// procAddr resolves one native symbol by name out of lib, the way
// alGetProcAddress resolves an EFX entry point out of the loaded
// OpenAL implementation. A missing symbol is reported, not panicked,
// so the caller can turn it into ErrNoExtFunc.
func procAddr(lib uintptr, name string) (uintptr, error) {
	sym, err := purego.Dlsym(lib, name)
	if err != nil {
		return 0, errors.Wrapf(err, "resolve %s", name)
	}
	return sym, nil
}

// Bind opens libPath (the OpenAL shared library, e.g. "libopenal.so.1"
// or "soft_oal.dll") with purego.Dlopen and resolves all 14 EFX
// functions out of it, the Go analogue of the original's
// alGetProcAddress-per-symbol loop in init_ext_proc. It returns an
// error the moment any single symbol is missing, matching the
// original's all-or-nothing gate before the effect extension is
// considered usable.
func Bind(libPath string) (*Table, error) {
	lib, err := purego.Dlopen(libPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, errors.Wrapf(err, "dlopen %s", libPath)
	}

	names := []string{
		"alGenEffects", "alDeleteEffects", "alIsEffect",
		"alEffectf", "alEffecti", "alGetEffectf", "alGetEffecti",
		"alGenAuxiliaryEffectSlots", "alDeleteAuxiliaryEffectSlots",
		"alIsAuxiliaryEffectSlot", "alAuxiliaryEffectSloti",
		"alAuxiliaryEffectSlotf", "alGetAuxiliaryEffectSloti",
		"alGetAuxiliaryEffectSlotf",
	}
	addrs := make(map[string]uintptr, len(names))
	for _, n := range names {
		a, err := procAddr(lib, n)
		if err != nil {
			return nil, err
		}
		addrs[n] = a
	}

	t := &Table{}
	purego.RegisterFunc(&t.GenEffects, addrs["alGenEffects"])
	purego.RegisterFunc(&t.DeleteEffects, addrs["alDeleteEffects"])
	purego.RegisterFunc(&t.IsEffect, addrs["alIsEffect"])
	purego.RegisterFunc(&t.Effectf, addrs["alEffectf"])
	purego.RegisterFunc(&t.Effecti, addrs["alEffecti"])
	purego.RegisterFunc(&t.GetEffectf, addrs["alGetEffectf"])
	purego.RegisterFunc(&t.GetEffecti, addrs["alGetEffecti"])
	purego.RegisterFunc(&t.GenAuxiliaryEffectSlots, addrs["alGenAuxiliaryEffectSlots"])
	purego.RegisterFunc(&t.DeleteAuxiliaryEffectSlots, addrs["alDeleteAuxiliaryEffectSlots"])
	purego.RegisterFunc(&t.IsAuxiliaryEffectSlot, addrs["alIsAuxiliaryEffectSlot"])
	purego.RegisterFunc(&t.AuxiliaryEffectSloti, addrs["alAuxiliaryEffectSloti"])
	purego.RegisterFunc(&t.AuxiliaryEffectSlotf, addrs["alAuxiliaryEffectSlotf"])
	purego.RegisterFunc(&t.GetAuxiliaryEffectSloti, addrs["alGetAuxiliaryEffectSloti"])
	purego.RegisterFunc(&t.GetAuxiliaryEffectSlotf, addrs["alGetAuxiliaryEffectSlotf"])

	return t, nil
}

// MaxAuxiliarySends is the context attribute requested at rendering
// context creation time, fixed at 4 per spec.
const MaxAuxiliarySends = 4

// Effect object and reverb-effect property enums, straight from the
// EFX specification (efx.h). EffectType/EffectReverb select the
// reverb effect type on a freshly generated effect object; the
// Reverb* values key alEffectf/alEffecti's per-parameter sets and are
// the same order _examples/original_source/src/seal/rvb.c pushes them
// in.
const (
	EffectType   = 0x8001
	EffectReverb = 0x0001

	ReverbDensity             = 0x0001
	ReverbDiffusion           = 0x0002
	ReverbGain                = 0x0003
	ReverbGainHF              = 0x0004
	ReverbDecayTime           = 0x0005
	ReverbDecayHFRatio        = 0x0006
	ReverbReflectionsGain     = 0x0007
	ReverbReflectionsDelay    = 0x0008
	ReverbLateReverbGain      = 0x0009
	ReverbLateReverbDelay     = 0x000A
	ReverbAirAbsorptionGainHF = 0x000B
	ReverbRoomRolloffFactor   = 0x000C
	ReverbDecayHFLimit        = 0x000D
)
