package keyline

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// The compound track stores rotations as intrinsic-XYZ Euler angles in
// degrees, one axis per sub-track. These helpers convert between that
// per-dimension representation and mgl64.Quat.

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }

// quatFromEulerDegrees composes a rotation from XYZ Euler angles in degrees.
func quatFromEulerDegrees(x, y, z float64) mgl64.Quat {
	return mgl64.AnglesToQuat(degToRad(x), degToRad(y), degToRad(z), mgl64.XYZ)
}

// eulerDegreesFromQuat decomposes a rotation into XYZ Euler angles in
// degrees, inverting quatFromEulerDegrees. Angles come back in the principal
// range: x and z in (-180, 180], y in [-90, 90].
func eulerDegreesFromQuat(q mgl64.Quat) (x, y, z float64) {
	m := q.Normalize().Mat4()
	return eulerDegreesFromMat(m)
}

// eulerDegreesFromMat extracts XYZ Euler degrees from a rotation matrix
// following the R = Rx·Ry·Rz convention used by mgl64.AnglesToQuat with
// RotationOrder XYZ. The matrix must carry no scale.
func eulerDegreesFromMat(m mgl64.Mat4) (x, y, z float64) {
	sy := clamp(m.At(0, 2), -1, 1)
	y = math.Asin(sy)
	if math.Abs(sy) > 1-1e-9 {
		// Gimbal lock: x and z rotate about the same axis. Fold the whole
		// twist into x.
		x = math.Atan2(m.At(2, 1), m.At(1, 1))
		z = 0
	} else {
		x = math.Atan2(-m.At(1, 2), m.At(2, 2))
		z = math.Atan2(-m.At(0, 1), m.At(0, 0))
	}
	return radToDeg(x), radToDeg(y), radToDeg(z)
}

// colorComponents converts a Color to the per-sub-track [0, 255] scalars an
// RGB track stores. Alpha is not animated and is dropped.
func colorComponents(c Color) mgl64.Vec3 {
	return mgl64.Vec3{c.R * 255, c.G * 255, c.B * 255}
}

// colorFromComponents converts stored [0, 255] scalars back to a Color with
// the given alpha.
func colorFromComponents(v mgl64.Vec3, alpha float64) Color {
	return Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255, A: alpha}
}
