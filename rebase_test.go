package keyline

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func trackVec3At(t *testing.T, track *CompoundTrack, time float64) mgl64.Vec3 {
	t.Helper()
	v, err := track.GetVec3(time, mgl64.Vec3{}, false)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestRebasePositionPreservesWorldSpace(t *testing.T) {
	oldParent := mgl64.Translate3D(10, 0, -5)
	newParent := mgl64.Translate3D(2, 3, 4).Mul4(mgl64.HomogRotate3DZ(math.Pi / 2))

	track := NewPositionTrack()
	local := mgl64.Vec3{1, 2, 3}
	if err := track.SetVec3(0, local, false, false); err != nil {
		t.Fatal(err)
	}
	if err := track.RebaseParent(oldParent, newParent); err != nil {
		t.Fatal(err)
	}

	// The world-space position under the new parent matches the world-space
	// position the old parent produced.
	wantWorld := transformPoint(oldParent, local)
	gotWorld := transformPoint(newParent, trackVec3At(t, track, 0))
	assertVec3(t, "world", gotWorld, wantWorld, 1e-6)
}

func TestRebasePositionRoundTrip(t *testing.T) {
	parentA := mgl64.Translate3D(10, -4, 2).Mul4(mgl64.HomogRotate3DY(0.7))
	parentB := mgl64.Translate3D(-3, 8, 1).Mul4(mgl64.Scale3D(2, 2, 2))

	track := NewPositionTrack()
	// Staggered keys so the first rebase exercises write-through creation.
	keyAt(t, track, 0, 0, 5)
	keyAt(t, track, 1, 1, -2)
	keyAt(t, track, 2, 2, 9)
	want := map[float64]mgl64.Vec3{
		0: trackVec3At(t, track, 0),
		1: trackVec3At(t, track, 1),
		2: trackVec3At(t, track, 2),
	}

	if err := track.RebaseParent(parentA, parentB); err != nil {
		t.Fatal(err)
	}
	if err := track.RebaseParent(parentB, parentA); err != nil {
		t.Fatal(err)
	}

	for time, v := range want {
		assertVec3(t, "value", trackVec3At(t, track, time), v, 1e-6)
	}
}

func TestRebaseScaleRoundTrip(t *testing.T) {
	parentA := mgl64.Scale3D(2, 4, 0.5)
	parentB := mgl64.Scale3D(1, 3, 5)

	track := NewScaleTrack()
	if err := track.SetVec3(0, mgl64.Vec3{1, 1, 1}, false, false); err != nil {
		t.Fatal(err)
	}
	if err := track.SetVec3(1, mgl64.Vec3{2, 0.5, 3}, false, false); err != nil {
		t.Fatal(err)
	}

	if err := track.RebaseParent(parentA, parentB); err != nil {
		t.Fatal(err)
	}
	// After one rebase the stored scale compensates for the parent change.
	assertVec3(t, "rebased", trackVec3At(t, track, 0), mgl64.Vec3{2, 4.0 / 3.0, 0.1}, 1e-6)

	if err := track.RebaseParent(parentB, parentA); err != nil {
		t.Fatal(err)
	}
	assertVec3(t, "restored t0", trackVec3At(t, track, 0), mgl64.Vec3{1, 1, 1}, 1e-6)
	assertVec3(t, "restored t1", trackVec3At(t, track, 1), mgl64.Vec3{2, 0.5, 3}, 1e-6)
}

func TestRebaseRotationIdentityParentsLeaveKeysAlone(t *testing.T) {
	track := NewRotationTrack()
	if err := track.SetVec3(0, mgl64.Vec3{0, 0, 0}, false, false); err != nil {
		t.Fatal(err)
	}
	if err := track.SetVec3(1, mgl64.Vec3{0, 0, 350}, false, false); err != nil {
		t.Fatal(err)
	}

	if err := track.RebaseParent(mgl64.Ident4(), mgl64.Ident4()); err != nil {
		t.Fatal(err)
	}

	// Stored Euler values survive untouched, including the out-of-principal
	// 350 on the Z channel.
	assertVec3(t, "t0", trackVec3At(t, track, 0), mgl64.Vec3{0, 0, 0}, 1e-6)
	assertVec3(t, "t1", trackVec3At(t, track, 1), mgl64.Vec3{0, 0, 350}, 1e-6)
}

func TestRebaseRotationAddsParentEuler(t *testing.T) {
	// Old parent yawed 90° about Z, new parent identity: the additive Euler
	// model folds the parent's yaw into the keys.
	oldParent := mgl64.HomogRotate3DZ(math.Pi / 2)

	track := NewRotationTrack()
	if err := track.SetVec3(0, mgl64.Vec3{10, 0, 30}, false, false); err != nil {
		t.Fatal(err)
	}
	if err := track.RebaseParent(oldParent, mgl64.Ident4()); err != nil {
		t.Fatal(err)
	}
	assertVec3(t, "folded", trackVec3At(t, track, 0), mgl64.Vec3{10, 0, 120}, 1e-6)
}

func TestRebaseCreatesMissingKeys(t *testing.T) {
	track := NewPositionTrack()
	keyAt(t, track, 0, 0, 1)
	keyAt(t, track, 1, 1, 2)

	if err := track.RebaseParent(mgl64.Ident4(), mgl64.Translate3D(1, 1, 1)); err != nil {
		t.Fatal(err)
	}

	// Both gathered times now have a key on every sub-track.
	for i := 0; i < 3; i++ {
		if n := track.SubTrack(i).NumKeys(); n != 2 {
			t.Errorf("sub %d NumKeys = %d, want 2", i, n)
		}
	}
}

func TestRebaseRejectsUnsupportedTracks(t *testing.T) {
	var paramErr ParamTypeError
	generic := NewVec3Track(ParamGeneric)
	if err := generic.RebaseParent(mgl64.Ident4(), mgl64.Ident4()); !errors.As(err, &paramErr) {
		t.Errorf("generic err = %v, want ParamTypeError", err)
	}

	var dimErr DimensionError
	scalar := NewFloatTrack(ParamPosition)
	if err := scalar.RebaseParent(mgl64.Ident4(), mgl64.Ident4()); !errors.As(err, &dimErr) {
		t.Errorf("scalar err = %v, want DimensionError", err)
	}
}

func TestRebaseRejectsSingularNewParent(t *testing.T) {
	track := NewPositionTrack()
	keyAt(t, track, 0, 0, 1)
	var zero mgl64.Mat4
	if err := track.RebaseParent(mgl64.Ident4(), zero); err == nil {
		t.Error("rebase onto singular parent succeeded")
	}
}

func TestMatScaleAndEuler(t *testing.T) {
	m := mgl64.HomogRotate3DZ(math.Pi / 2).Mul4(mgl64.Scale3D(2, 3, 4))
	assertVec3(t, "scale", matScale(m), mgl64.Vec3{2, 3, 4}, 1e-9)
	assertVec3(t, "euler", matEulerDegrees(m), mgl64.Vec3{0, 0, 90}, 1e-6)
}
