package keyline

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-6

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	assertNearTol(t, name, got, want, epsilon)
}

func assertNearTol(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec3(t *testing.T, name string, got, want mgl64.Vec3, tol float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// assertSameRotation compares quaternions as rotations: q and -q are the
// same rotation, so compare the absolute dot product of unit quaternions.
func assertSameRotation(t *testing.T, name string, got, want mgl64.Quat) {
	t.Helper()
	g := got.Normalize()
	w := want.Normalize()
	if math.Abs(g.Dot(w)) < 1-1e-9 {
		t.Errorf("%s = %v, want rotation %v", name, got, want)
	}
}
