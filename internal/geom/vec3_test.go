package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestAddSub(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: -1, Z: 0.5}

	assert.Equal(t, Vec3{X: 5, Y: 1, Z: 3.5}, a.Add(b))
	assert.Equal(t, Vec3{X: -3, Y: 3, Z: 2.5}, a.Sub(b))
}

func TestScale(t *testing.T) {
	v := Vec3{X: 1, Y: -2, Z: 3}
	assert.Equal(t, Vec3{X: 2, Y: -4, Z: 6}, v.Scale(2))
}

func TestDot(t *testing.T) {
	a := Vec3{X: 1, Y: 0, Z: 0}
	b := Vec3{X: 0, Y: 1, Z: 0}
	assert.Equal(t, float32(0), a.Dot(b))

	c := Vec3{X: 2, Y: 3, Z: 4}
	assert.Equal(t, float32(4+9+16), c.Dot(c))
}

func TestCrossOfStandardBasis(t *testing.T) {
	x := Vec3{X: 1, Y: 0, Z: 0}
	y := Vec3{X: 0, Y: 1, Z: 0}
	z := Vec3{X: 0, Y: 0, Z: 1}
	assert.Equal(t, z, x.Cross(y))
}

func TestLength(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5, v.Length(), 1e-6)
}

func TestLinearlyIndependentRejectsParallelVectors(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	assert.False(t, LinearlyIndependent(a, a.Scale(2)))
	assert.False(t, LinearlyIndependent(a, a.Scale(-1)))
	assert.True(t, LinearlyIndependent(Vec3{X: 1, Y: 0, Z: 0}, Vec3{X: 0, Y: 1, Z: 0}))
}

func TestArray(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, [3]float32{1, 2, 3}, v.Array())
}

// TestCrossProductOrthogonalToBothOperands is a property test: for any
// two vectors, their cross product has zero dot product with each
// (allowing for float32 rounding), since a x b is normal to the plane
// a and b span.
func TestCrossProductOrthogonalToBothOperands(t *testing.T) {
	genCoord := rapid.Float32Range(-100, 100)
	rapid.Check(t, func(tt *rapid.T) {
		a := Vec3{X: genCoord.Draw(tt, "ax"), Y: genCoord.Draw(tt, "ay"), Z: genCoord.Draw(tt, "az")}
		b := Vec3{X: genCoord.Draw(tt, "bx"), Y: genCoord.Draw(tt, "by"), Z: genCoord.Draw(tt, "bz")}

		cross := a.Cross(b)
		tolerance := float32(1e-2) * (a.Length() * b.Length() + 1)
		assert.InDelta(tt, 0, cross.Dot(a), float64(tolerance))
		assert.InDelta(tt, 0, cross.Dot(b), float64(tolerance))
	})
}

// TestDotIsCommutative is a property test for a.Dot(b) == b.Dot(a).
func TestDotIsCommutative(t *testing.T) {
	genCoord := rapid.Float32Range(-1000, 1000)
	rapid.Check(t, func(tt *rapid.T) {
		a := Vec3{X: genCoord.Draw(tt, "ax"), Y: genCoord.Draw(tt, "ay"), Z: genCoord.Draw(tt, "az")}
		b := Vec3{X: genCoord.Draw(tt, "bx"), Y: genCoord.Draw(tt, "by"), Z: genCoord.Draw(tt, "bz")}
		assert.Equal(tt, a.Dot(b), b.Dot(a))
	})
}
