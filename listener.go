package aural

import (
	"github.com/go-aural/aural/internal/device"
	"github.com/go-aural/aural/internal/geom"
)

// Listener is the process-wide singular ear in the scene: its gain,
// position, velocity, and orientation affect spatialisation for every
// source. One Listener exists per Engine.
type Listener struct {
	dev *device.Device

	gain        float32
	position    geom.Vec3
	velocity    geom.Vec3
	orientAt    geom.Vec3
	orientUp    geom.Vec3
}

func newListener(dev *device.Device) *Listener {
	return &Listener{
		dev:      dev,
		gain:     1.0,
		orientAt: geom.Vec3{X: 0, Y: 0, Z: -1},
		orientUp: geom.Vec3{X: 0, Y: 1, Z: 0},
	}
}

// SetGain sets the listener's master gain. Must be >= 0.
func (l *Listener) SetGain(gain float32) error {
	return l.dev.Do(func() error {
		if gain < 0 {
			return newErr("Listener.SetGain", ErrBadValue)
		}
		l.gain = gain
		return nil
	})
}

// Gain returns the listener's master gain.
func (l *Listener) Gain() float32 { return l.gain }

// SetPosition sets the listener's world-space position.
func (l *Listener) SetPosition(p geom.Vec3) error {
	return l.dev.Do(func() error {
		l.position = p
		return nil
	})
}

// Position returns the listener's world-space position.
func (l *Listener) Position() geom.Vec3 { return l.position }

// SetVelocity sets the listener's velocity, used for Doppler
// calculations.
func (l *Listener) SetVelocity(v geom.Vec3) error {
	return l.dev.Do(func() error {
		l.velocity = v
		return nil
	})
}

// Velocity returns the listener's velocity.
func (l *Listener) Velocity() geom.Vec3 { return l.velocity }

// SetOrientation sets the listener's facing (at) and up vectors.
// Behaviour is undefined if the two are not linearly independent per
// spec; this implementation rejects that case with ErrBadValue rather
// than accepting undefined state silently.
func (l *Listener) SetOrientation(at, up geom.Vec3) error {
	return l.dev.Do(func() error {
		if !geom.LinearlyIndependent(at, up) {
			return newErr("Listener.SetOrientation", ErrBadValue)
		}
		l.orientAt = at
		l.orientUp = up
		return nil
	})
}

// Orientation returns the listener's (at, up) vectors.
func (l *Listener) Orientation() (at, up geom.Vec3) {
	return l.orientAt, l.orientUp
}
