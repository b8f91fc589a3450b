package keyline

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RebaseParent rewrites every key of a 3-dimensional Position, Rotation, or
// Scale track after the owning node moves from one parent to another, so the
// world-space result of the animation is preserved.
//
// Key data across the three sub-tracks is resampled at every distinct key
// time: the stored local value is lifted into world space through the old
// parent transform, then brought back into local space relative to the new
// parent. Writes go through SetValue, so a sub-track missing a key at one of
// the gathered times gains one.
//
// Rotation tracks treat parent and local Euler-degree vectors as additive.
// That is only an approximation of rotation composition, kept for
// compatibility with existing authored content.
func (t *CompoundTrack) RebaseParent(oldParent, newParent mgl64.Mat4) error {
	if err := t.ensureReady(); err != nil {
		return err
	}
	if t.dims != 3 {
		return DimensionError{Op: "rebase", Dimensions: t.dims, Want: 3}
	}
	switch t.paramType {
	case ParamPosition, ParamRotation, ParamScale:
	default:
		return ParamTypeError{Op: "rebase", Param: t.paramType}
	}

	var newParentInv mgl64.Mat4
	if t.paramType == ParamPosition {
		if newParent.Det() == 0 {
			return fmt.Errorf("keyline: rebase: new parent transform is singular")
		}
		newParentInv = newParent.Inv()
	}

	// Every distinct key time on any of the three sub-tracks, exact-equality
	// dedup, in encounter order.
	var allTimes []float64
	for i := 0; i < 3; i++ {
		st := t.subTracks[i]
		for k, num := 0, st.NumKeys(); k < num; k++ {
			time := st.KeyTime(k)
			seen := false
			for _, prev := range allTimes {
				if prev == time {
					seen = true
					break
				}
			}
			if !seen {
				allTimes = append(allTimes, time)
			}
		}
	}

	for _, time := range allTimes {
		var local mgl64.Vec3
		for i := 0; i < 3; i++ {
			v, err := t.subTracks[i].Value(time, false)
			if err != nil {
				return err
			}
			local[i] = v
		}

		switch t.paramType {
		case ParamPosition:
			world := transformPoint(oldParent, local)
			local = transformPoint(newParentInv, world)

		case ParamRotation:
			world := matEulerDegrees(oldParent).Add(local)
			local = world.Sub(matEulerDegrees(newParent))

		case ParamScale:
			oldScale := matScale(oldParent)
			newScale := matScale(newParent)
			for i := 0; i < 3; i++ {
				if newScale[i] == 0 {
					return fmt.Errorf("keyline: rebase: new parent has zero scale on axis %d", i)
				}
				local[i] = oldScale[i] * local[i] / newScale[i]
			}
		}

		for i := 0; i < 3; i++ {
			if err := t.subTracks[i].SetValue(time, local[i], false, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// --- Transform helpers ---

// transformPoint applies an affine transform to a point.
func transformPoint(m mgl64.Mat4, v mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(v.Vec4(1)).Vec3()
}

// matScale extracts the per-axis scale of a transform: the lengths of the
// upper-left 3x3 columns.
func matScale(m mgl64.Mat4) mgl64.Vec3 {
	var s mgl64.Vec3
	for col := 0; col < 3; col++ {
		s[col] = math.Sqrt(m.At(0, col)*m.At(0, col) + m.At(1, col)*m.At(1, col) + m.At(2, col)*m.At(2, col))
	}
	return s
}

// matEulerDegrees decomposes a transform's rotation into XYZ Euler degrees,
// dividing out any scale first.
func matEulerDegrees(m mgl64.Mat4) mgl64.Vec3 {
	s := matScale(m)
	r := mgl64.Ident4()
	for col := 0; col < 3; col++ {
		if s[col] == 0 {
			continue
		}
		for row := 0; row < 3; row++ {
			r.Set(row, col, m.At(row, col)/s[col])
		}
	}
	x, y, z := eulerDegreesFromMat(r)
	return mgl64.Vec3{x, y, z}
}
