package aural

import (
	"github.com/go-aural/aural/internal/device"
	"github.com/go-aural/aural/internal/efx"
)

// ReverbParams holds the 13 EFX reverb parameters a reverb Effect
// exposes, named and range-documented per
// _examples/original_source/include/seal/reverb.h.
type ReverbParams struct {
	Density             float32 // [0, 1]
	Diffusion           float32 // [0, 1]
	Gain                float32 // [0, 1]
	HFGain              float32 // [0, 1]
	DecayTime           float32 // [0.1, 20]
	HFDecayRatio        float32 // [0.1, 20]
	ReflectionsGain     float32 // [0, 3.16]
	ReflectionsDelay    float32 // [0, 0.3]
	LateGain            float32 // [0, 10]
	LateDelay           float32 // [0, 0.1]
	AirAbsorptionHFGain float32 // [0.892, 1.0]
	RoomRolloffFactor   float32 // [0, 10]
	HFDecayLimited      bool
}

// DefaultReverbParams matches the device's generic-room default
// (density=1, diffusion=1, gain=0.32, ...).
func DefaultReverbParams() ReverbParams {
	return ReverbParams{
		Density:             1.0,
		Diffusion:           1.0,
		Gain:                0.32,
		HFGain:              0.89,
		DecayTime:           1.49,
		HFDecayRatio:        0.83,
		ReflectionsGain:     0.05,
		ReflectionsDelay:    0.007,
		LateGain:            1.26,
		LateDelay:           0.011,
		AirAbsorptionHFGain: 0.994,
		RoomRolloffFactor:   0,
		HFDecayLimited:      true,
	}
}

// validateReverbParams bounds-checks every field against its
// documented range, returning ErrBadValue on the first violation
// (the setters validate individually; this backs LoadPreset's
// all-13-atomically contract and bulk construction).
func validateReverbParams(p ReverbParams) error {
	checks := []struct {
		v, lo, hi float32
	}{
		{p.Density, 0, 1}, {p.Diffusion, 0, 1}, {p.Gain, 0, 1}, {p.HFGain, 0, 1},
		{p.DecayTime, 0.1, 20}, {p.HFDecayRatio, 0.1, 20},
		{p.ReflectionsGain, 0, 3.16}, {p.ReflectionsDelay, 0, 0.3},
		{p.LateGain, 0, 10}, {p.LateDelay, 0, 0.1},
		{p.AirAbsorptionHFGain, 0.892, 1.0}, {p.RoomRolloffFactor, 0, 10},
	}
	for _, c := range checks {
		if c.v < c.lo || c.v > c.hi {
			return newErr("validateReverbParams", ErrBadValue)
		}
	}
	return nil
}

// Effect is a device-side reverb effect object. An Effect must be
// bound into an EffectSlot before it audibly affects any source.
//
// When the device bound a real EFX function table (efxTbl != nil),
// Effect owns a genuine AL effect object (alName) and every parameter
// set is pushed through efxTbl.Effectf/Effecti, mirroring rvb.c's
// _seal_setf/_seal_seti. Without a bound table (no native OpenAL
// library to dlopen, the common case on this backend since beep does
// its own mixing) the parameters live purely in Go state, matching
// the documented fallback for hosts with no reverb-capable backend.
type Effect struct {
	id      device.ID
	dev     *device.Device
	efxTbl  *efx.Table
	alName  uint32
	hasName bool
	params  ReverbParams
}

// InitEffect allocates a device-side reverb effect, defaulted to
// DefaultReverbParams. When tbl is non-nil it also generates a real AL
// effect object, sets its type to reverb, and pushes the defaults
// through it.
func InitEffect(dev *device.Device, tbl *efx.Table) (*Effect, error) {
	e := &Effect{id: dev.NewID(device.KindEffect), dev: dev, efxTbl: tbl, params: DefaultReverbParams()}
	if tbl != nil {
		tbl.GenEffects(1, &e.alName)
		e.hasName = true
		tbl.Effecti(e.alName, efx.EffectType, efx.EffectReverb)
		e.pushAllLocked()
	}
	return e, nil
}

// Destroy releases the device-side effect object, including the
// bound AL effect name if one was generated.
func (e *Effect) Destroy() error {
	return e.dev.Do(func() error {
		if e.efxTbl != nil && e.hasName {
			e.efxTbl.DeleteEffects(1, &e.alName)
			e.hasName = false
		}
		return nil
	})
}

// pushAllLocked pushes every one of the 13 reverb parameters through
// efxTbl, the bulk-push InitEffect and SetParams use. SetParams calls
// it with e.dev's lock held; InitEffect calls it without the lock,
// before the new Effect is returned to any caller.
func (e *Effect) pushAllLocked() {
	p := &e.params
	e.pushf(efx.ReverbDensity, p.Density)
	e.pushf(efx.ReverbDiffusion, p.Diffusion)
	e.pushf(efx.ReverbGain, p.Gain)
	e.pushf(efx.ReverbGainHF, p.HFGain)
	e.pushf(efx.ReverbDecayTime, p.DecayTime)
	e.pushf(efx.ReverbDecayHFRatio, p.HFDecayRatio)
	e.pushf(efx.ReverbReflectionsGain, p.ReflectionsGain)
	e.pushf(efx.ReverbReflectionsDelay, p.ReflectionsDelay)
	e.pushf(efx.ReverbLateReverbGain, p.LateGain)
	e.pushf(efx.ReverbLateReverbDelay, p.LateDelay)
	e.pushf(efx.ReverbAirAbsorptionGainHF, p.AirAbsorptionHFGain)
	e.pushf(efx.ReverbRoomRolloffFactor, p.RoomRolloffFactor)
	e.pushi(efx.ReverbDecayHFLimit, boolToAL(p.HFDecayLimited))
}

// pushf/pushi forward one parameter to the bound AL effect object,
// no-ops when no table is bound.
func (e *Effect) pushf(param int32, v float32) {
	if e.efxTbl != nil && e.hasName {
		e.efxTbl.Effectf(e.alName, param, v)
	}
}

func (e *Effect) pushi(param int32, v int32) {
	if e.efxTbl != nil && e.hasName {
		e.efxTbl.Effecti(e.alName, param, v)
	}
}

func boolToAL(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// Params returns the effect's current 13 reverb parameters.
func (e *Effect) Params() ReverbParams { return e.params }

// SetParams atomically replaces all 13 parameters, failing with
// ErrBadValue (leaving the prior parameters intact) if any value is
// out of range.
func (e *Effect) SetParams(p ReverbParams) error {
	return e.dev.Do(func() error {
		if err := validateReverbParams(p); err != nil {
			return err
		}
		e.params = p
		e.pushAllLocked()
		return nil
	})
}

// LoadPreset replaces all 13 parameters from the named preset table.
func (e *Effect) LoadPreset(preset ReverbPreset) error {
	p, ok := reverbPresetTable[preset]
	if !ok {
		return newErr("Effect.LoadPreset", ErrBadEnum)
	}
	return e.SetParams(p)
}

// Individual setters/getters, each validating its own field in
// isolation (matching seal_set_reverb_* 's per-call SEAL_CHK guard)
// rather than requiring a full ReverbParams round trip.

func (e *Effect) SetDensity(v float32) error {
	return e.setField(&e.params.Density, v, 0, 1, efx.ReverbDensity)
}
func (e *Effect) Density() float32 { return e.params.Density }

func (e *Effect) SetDiffusion(v float32) error {
	return e.setField(&e.params.Diffusion, v, 0, 1, efx.ReverbDiffusion)
}
func (e *Effect) Diffusion() float32 { return e.params.Diffusion }

func (e *Effect) SetGain(v float32) error {
	return e.setField(&e.params.Gain, v, 0, 1, efx.ReverbGain)
}
func (e *Effect) Gain() float32 { return e.params.Gain }

func (e *Effect) SetHFGain(v float32) error {
	return e.setField(&e.params.HFGain, v, 0, 1, efx.ReverbGainHF)
}
func (e *Effect) HFGain() float32 { return e.params.HFGain }

func (e *Effect) SetDecayTime(v float32) error {
	return e.setField(&e.params.DecayTime, v, 0.1, 20, efx.ReverbDecayTime)
}
func (e *Effect) DecayTime() float32 { return e.params.DecayTime }

func (e *Effect) SetHFDecayRatio(v float32) error {
	return e.setField(&e.params.HFDecayRatio, v, 0.1, 20, efx.ReverbDecayHFRatio)
}
func (e *Effect) HFDecayRatio() float32 { return e.params.HFDecayRatio }

func (e *Effect) SetReflectionsGain(v float32) error {
	return e.setField(&e.params.ReflectionsGain, v, 0, 3.16, efx.ReverbReflectionsGain)
}
func (e *Effect) ReflectionsGain() float32 { return e.params.ReflectionsGain }

func (e *Effect) SetReflectionsDelay(v float32) error {
	return e.setField(&e.params.ReflectionsDelay, v, 0, 0.3, efx.ReverbReflectionsDelay)
}
func (e *Effect) ReflectionsDelay() float32 { return e.params.ReflectionsDelay }

func (e *Effect) SetLateGain(v float32) error {
	return e.setField(&e.params.LateGain, v, 0, 10, efx.ReverbLateReverbGain)
}
func (e *Effect) LateGain() float32 { return e.params.LateGain }

func (e *Effect) SetLateDelay(v float32) error {
	return e.setField(&e.params.LateDelay, v, 0, 0.1, efx.ReverbLateReverbDelay)
}
func (e *Effect) LateDelay() float32 { return e.params.LateDelay }

func (e *Effect) SetAirAbsorptionHFGain(v float32) error {
	return e.setField(&e.params.AirAbsorptionHFGain, v, 0.892, 1.0, efx.ReverbAirAbsorptionGainHF)
}
func (e *Effect) AirAbsorptionHFGain() float32 { return e.params.AirAbsorptionHFGain }

func (e *Effect) SetRoomRolloffFactor(v float32) error {
	return e.setField(&e.params.RoomRolloffFactor, v, 0, 10, efx.ReverbRoomRolloffFactor)
}
func (e *Effect) RoomRolloffFactor() float32 { return e.params.RoomRolloffFactor }

func (e *Effect) SetHFDecayLimited(v bool) error {
	return e.dev.Do(func() error {
		e.params.HFDecayLimited = v
		e.pushi(efx.ReverbDecayHFLimit, boolToAL(v))
		return nil
	})
}
func (e *Effect) HFDecayLimited() bool { return e.params.HFDecayLimited }

func (e *Effect) setField(field *float32, v, lo, hi float32, param int32) error {
	return e.dev.Do(func() error {
		if v < lo || v > hi {
			return newErr("Effect.setField", ErrBadValue)
		}
		*field = v
		e.pushf(param, v)
		return nil
	})
}
