package aural

import (
	"github.com/go-aural/aural/internal/device"
)

// EffectSlot is a device-side container binding one Effect so that
// sources can feed it via feed_effect_slot. Multiple sources may feed
// the same slot; binding an effect overwrites any previous binding.
//
// Grounded on src/seal/effect_slot.c rather than the near-identical
// src/seal/efs.c: diffing the two files shows effect_slot.c is the
// later revision, adding the _seal_lock_openal calls efs.c is missing
// around seti/geti/set_gain/get_gain. efs.c is treated as superseded
// history, not a second implementation to reconcile.
type EffectSlot struct {
	id         device.ID
	dev        *device.Device
	effect     *Effect
	gain       float32
	autoAdjust bool
}

// InitEffectSlot allocates a device-side auxiliary effect slot.
func InitEffectSlot(dev *device.Device) (*EffectSlot, error) {
	return &EffectSlot{id: dev.NewID(device.KindEffectSlot), dev: dev, gain: 1.0, autoAdjust: true}, nil
}

// Destroy releases the device-side slot.
func (s *EffectSlot) Destroy() error {
	return s.dev.Do(func() error { return nil })
}

// SetEffect binds effect into the slot, or unbinds the current effect
// if effect is nil.
func (s *EffectSlot) SetEffect(effect *Effect) error {
	return s.dev.Do(func() error {
		s.effect = effect
		return nil
	})
}

// Effect returns the currently bound effect, or nil.
func (s *EffectSlot) Effect() *Effect { return s.effect }

// SetGain sets the slot's output level in [0, 1].
func (s *EffectSlot) SetGain(gain float32) error {
	return s.dev.Do(func() error {
		if gain < 0 || gain > 1 {
			return newErr("EffectSlot.SetGain", ErrBadValue)
		}
		s.gain = gain
		return nil
	})
}

// Gain returns the slot's output level.
func (s *EffectSlot) Gain() float32 { return s.gain }

// SetAutoAdjust sets whether the device auto-corrects the slot's
// effect for source/listener geometry.
func (s *EffectSlot) SetAutoAdjust(auto bool) error {
	return s.dev.Do(func() error {
		s.autoAdjust = auto
		return nil
	})
}

// AutoAdjust reports the slot's auto-adjust flag.
func (s *EffectSlot) AutoAdjust() bool { return s.autoAdjust }
