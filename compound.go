package keyline

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// CompoundTrack is a composite animation channel: one logical multi-component
// parameter (position, rotation, scale, color, or a generic value) stored as
// up to four independently keyed scalar sub-tracks.
//
// Cross-cutting operations (selection, removal, iteration) address keys by a
// flat index: the concatenation of sub-track 0's keys, then sub-track 1's,
// and so on. The flat ordering is recomputed on demand and shifts whenever
// keys are added or removed.
//
// A CompoundTrack is not safe for concurrent mutation; callers serialize
// access externally.
type CompoundTrack struct {
	dims      int
	valueType ValueType
	paramType ParamType
	subTracks [maxSubTracks]SubTrack
	names     [maxSubTracks]string
	node      Node
	timeRange Range
	flags     Flags

	customColor    Color
	hasCustomColor bool
}

func newCompoundTrack(dims int, valueType ValueType, param ParamType) *CompoundTrack {
	t := &CompoundTrack{
		dims:      dims,
		valueType: valueType,
		paramType: param,
		names:     defaultAxisNames,
	}
	for i := 0; i < dims; i++ {
		st := NewSplineTrack(param)
		if valueType == ValueRGB {
			st.SetValueClamp(0, 255)
		}
		t.subTracks[i] = st
	}
	return t
}

// NewFloatTrack creates a 1-dimensional scalar track.
func NewFloatTrack(param ParamType) *CompoundTrack {
	return newCompoundTrack(1, ValueFloat, param)
}

// NewVec3Track creates a 3-dimensional vector track.
func NewVec3Track(param ParamType) *CompoundTrack {
	return newCompoundTrack(3, ValueVec3, param)
}

// NewVec4Track creates a 4-dimensional vector track.
func NewVec4Track(param ParamType) *CompoundTrack {
	return newCompoundTrack(4, ValueVec4, param)
}

// NewPositionTrack creates a 3-dimensional position track.
func NewPositionTrack() *CompoundTrack {
	return newCompoundTrack(3, ValueVec3, ParamPosition)
}

// NewRotationTrack creates a rotation track keyed as XYZ Euler degrees.
func NewRotationTrack() *CompoundTrack {
	return newCompoundTrack(3, ValueQuat, ParamRotation)
}

// NewScaleTrack creates a 3-dimensional scale track.
func NewScaleTrack() *CompoundTrack {
	return newCompoundTrack(3, ValueVec3, ParamScale)
}

// NewColorTrack creates an RGB color track with channels clamped to [0, 255].
func NewColorTrack() *CompoundTrack {
	return newCompoundTrack(3, ValueRGB, ParamColor)
}

// NewDeferredTrack creates an unpopulated track for loaders that restore
// state field by field. The track rejects every operation with NotReadyError
// until Populate succeeds.
func NewDeferredTrack() *CompoundTrack {
	return &CompoundTrack{names: defaultAxisNames}
}

// Populate installs a loader's restored state into a deferred track. The
// number of sub-tracks becomes the dimension count and must be in [1, 4];
// ValueQuat requires exactly 3.
func (t *CompoundTrack) Populate(valueType ValueType, param ParamType, subTracks []SubTrack) error {
	dims := len(subTracks)
	if dims < 1 || dims > maxSubTracks {
		return DimensionError{Op: "populate", Dimensions: dims, Want: maxSubTracks}
	}
	if valueType == ValueQuat && dims != 3 {
		return DimensionError{Op: "populate quaternion track", Dimensions: dims, Want: 3}
	}
	for _, st := range subTracks {
		if st == nil {
			return NotReadyError{}
		}
	}
	t.dims = dims
	t.valueType = valueType
	t.paramType = param
	for i, st := range subTracks {
		t.subTracks[i] = st
	}
	return nil
}

// Ready reports whether the track has been populated and is safe to use.
func (t *CompoundTrack) Ready() bool { return t.dims > 0 }

func (t *CompoundTrack) ensureReady() error {
	if t.dims == 0 {
		return NotReadyError{}
	}
	return nil
}

// Dimensions returns the number of active sub-tracks.
func (t *CompoundTrack) Dimensions() int { return t.dims }

// ValueType returns the logical value type the track animates.
func (t *CompoundTrack) ValueType() ValueType { return t.valueType }

// ParamType returns the track's parameter classification.
func (t *CompoundTrack) ParamType() ParamType { return t.paramType }

// SetParamType reclassifies the track.
func (t *CompoundTrack) SetParamType(p ParamType) { t.paramType = p }

// Node returns the owning scene object, or nil.
func (t *CompoundTrack) Node() Node { return t.node }

// SetNode records the owning scene object. The reference is non-owning.
func (t *CompoundTrack) SetNode(n Node) { t.node = n }

// Flags returns the track's flag bits.
func (t *CompoundTrack) Flags() Flags { return t.flags }

// SetFlags replaces the track's flag bits.
func (t *CompoundTrack) SetFlags(f Flags) { t.flags = f }

// TimeRange returns the track's time range.
func (t *CompoundTrack) TimeRange() Range { return t.timeRange }

// SetTimeRange sets the time range on the track and every active sub-track.
func (t *CompoundTrack) SetTimeRange(r Range) {
	t.timeRange = r
	for i := 0; i < t.dims; i++ {
		t.subTracks[i].SetTimeRange(r)
	}
}

// CustomColor returns the editor display color override, if one is set.
func (t *CompoundTrack) CustomColor() (Color, bool) {
	return t.customColor, t.hasCustomColor
}

// SetCustomColor sets the editor display color override.
func (t *CompoundTrack) SetCustomColor(c Color) {
	t.customColor = c
	t.hasCustomColor = true
}

// ClearCustomColor removes the editor display color override.
func (t *CompoundTrack) ClearCustomColor() {
	t.customColor = Color{}
	t.hasCustomColor = false
}

// SubTrack returns the sub-track at the given slot, or nil when the slot is
// inactive.
func (t *CompoundTrack) SubTrack(i int) SubTrack {
	if i < 0 || i >= t.dims {
		return nil
	}
	return t.subTracks[i]
}

// SubTrackName returns the display name of the sub-track at the given slot.
func (t *CompoundTrack) SubTrackName(i int) string {
	if i < 0 || i >= t.dims {
		return ""
	}
	return t.names[i]
}

// SetSubTrackName sets the display name of the sub-track at the given slot.
func (t *CompoundTrack) SetSubTrackName(i int, name string) {
	if i < 0 || i >= t.dims || name == "" {
		return
	}
	t.names[i] = name
}

// --- Value access ---

// GetFloat evaluates the first sub-track at the given time.
func (t *CompoundTrack) GetFloat(time float64, applyMultiplier bool) (float64, error) {
	if err := t.ensureReady(); err != nil {
		return 0, err
	}
	return t.subTracks[0].Value(time, applyMultiplier)
}

// GetVec3 evaluates the active sub-tracks into the corresponding components
// of current. Components beyond the dimension count pass through untouched.
func (t *CompoundTrack) GetVec3(time float64, current mgl64.Vec3, applyMultiplier bool) (mgl64.Vec3, error) {
	if err := t.ensureReady(); err != nil {
		return current, err
	}
	for i := 0; i < t.dims && i < 3; i++ {
		v, err := t.subTracks[i].Value(time, applyMultiplier)
		if err != nil {
			return current, err
		}
		current[i] = v
	}
	return current, nil
}

// GetVec4 evaluates the active sub-tracks into the corresponding components
// of current. Components beyond the dimension count pass through untouched.
func (t *CompoundTrack) GetVec4(time float64, current mgl64.Vec4, applyMultiplier bool) (mgl64.Vec4, error) {
	if err := t.ensureReady(); err != nil {
		return current, err
	}
	for i := 0; i < t.dims; i++ {
		v, err := t.subTracks[i].Value(time, applyMultiplier)
		if err != nil {
			return current, err
		}
		current[i] = v
	}
	return current, nil
}

// GetQuat evaluates a 3-dimensional track as a rotation: the sub-tracks hold
// XYZ Euler angles in degrees.
func (t *CompoundTrack) GetQuat(time float64) (mgl64.Quat, error) {
	if err := t.ensureReady(); err != nil {
		return mgl64.QuatIdent(), err
	}
	if t.dims != 3 {
		return mgl64.QuatIdent(), DimensionError{Op: "quaternion value", Dimensions: t.dims, Want: 3}
	}
	var angles [3]float64
	for i := 0; i < 3; i++ {
		v, err := t.subTracks[i].Value(time, false)
		if err != nil {
			return mgl64.QuatIdent(), err
		}
		angles[i] = v
	}
	return quatFromEulerDegrees(angles[0], angles[1], angles[2]), nil
}

// GetColor evaluates an RGB track at the given time. The returned color
// carries the given alpha.
func (t *CompoundTrack) GetColor(time, alpha float64) (Color, error) {
	v, err := t.GetVec3(time, mgl64.Vec3{}, false)
	if err != nil {
		return Color{}, err
	}
	return colorFromComponents(v, alpha), nil
}

// SetFloat writes value to every active sub-track at the given time.
func (t *CompoundTrack) SetFloat(time, value float64, isDefault, applyMultiplier bool) error {
	if err := t.ensureReady(); err != nil {
		return err
	}
	for i := 0; i < t.dims; i++ {
		if err := t.subTracks[i].SetValue(time, value, isDefault, applyMultiplier); err != nil {
			return err
		}
	}
	return nil
}

// SetVec3 writes each component of value to the corresponding sub-track.
func (t *CompoundTrack) SetVec3(time float64, value mgl64.Vec3, isDefault, applyMultiplier bool) error {
	if err := t.ensureReady(); err != nil {
		return err
	}
	for i := 0; i < t.dims && i < 3; i++ {
		if err := t.subTracks[i].SetValue(time, value[i], isDefault, applyMultiplier); err != nil {
			return err
		}
	}
	return nil
}

// SetVec4 writes each component of value to the corresponding sub-track.
func (t *CompoundTrack) SetVec4(time float64, value mgl64.Vec4, isDefault, applyMultiplier bool) error {
	if err := t.ensureReady(); err != nil {
		return err
	}
	for i := 0; i < t.dims; i++ {
		if err := t.subTracks[i].SetValue(time, value[i], isDefault, applyMultiplier); err != nil {
			return err
		}
	}
	return nil
}

// SetQuat writes a rotation to a 3-dimensional track as XYZ Euler degrees.
// For non-default keys, each axis angle is adjusted against the value
// currently stored at that time so rewriting a key keeps the track's
// accumulated winding (see preferContinuousAngle).
func (t *CompoundTrack) SetQuat(time float64, value mgl64.Quat, isDefault bool) error {
	if err := t.ensureReady(); err != nil {
		return err
	}
	if t.dims != 3 {
		return DimensionError{Op: "quaternion value", Dimensions: t.dims, Want: 3}
	}
	x, y, z := eulerDegreesFromQuat(value)
	angles := [3]float64{x, y, z}
	for i := 0; i < 3; i++ {
		deg := angles[i]
		if !isDefault {
			prev, err := t.subTracks[i].Value(time, false)
			if err != nil {
				return err
			}
			deg = preferContinuousAngle(deg, prev)
		}
		if err := t.subTracks[i].SetValue(time, deg, isDefault, false); err != nil {
			return err
		}
	}
	return nil
}

// SetColor writes a color to an RGB track at the given time. Alpha is not
// animated and is ignored.
func (t *CompoundTrack) SetColor(time float64, c Color, isDefault bool) error {
	return t.SetVec3(time, colorComponents(c), isDefault, false)
}

// OffsetKeyPosition shifts every existing key of a 3-dimensional track by
// the matching component of offset. Key times and key counts are unchanged.
func (t *CompoundTrack) OffsetKeyPosition(offset mgl64.Vec3) error {
	if err := t.ensureReady(); err != nil {
		return err
	}
	if t.dims != 3 {
		return DimensionError{Op: "offset keys", Dimensions: t.dims, Want: 3}
	}
	for i := 0; i < 3; i++ {
		st := t.subTracks[i]
		for k, num := 0, st.NumKeys(); k < num; k++ {
			time := st.KeyTime(k)
			v, err := st.Value(time, false)
			if err != nil {
				return err
			}
			if err := st.SetValue(time, v+offset[i], false, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// --- Flat-index key access ---

// NumKeys returns the total key count across all active sub-tracks.
func (t *CompoundTrack) NumKeys() int {
	n := 0
	for i := 0; i < t.dims; i++ {
		n += t.subTracks[i].NumKeys()
	}
	return n
}

// HasKeys reports whether any active sub-track holds at least one key.
func (t *CompoundTrack) HasKeys() bool {
	for i := 0; i < t.dims; i++ {
		if t.subTracks[i].NumKeys() > 0 {
			return true
		}
	}
	return false
}

func (t *CompoundTrack) keyCounts() []int {
	counts := make([]int, t.dims)
	for i := 0; i < t.dims; i++ {
		counts[i] = t.subTracks[i].NumKeys()
	}
	return counts
}

// SubTrackIndex translates a flat key index into the owning sub-track slot
// and the key's local index within it.
func (t *CompoundTrack) SubTrackIndex(flat int) (subTrack, local int, err error) {
	if err := t.ensureReady(); err != nil {
		return 0, 0, err
	}
	subTrack, local, ok := splitKeyIndex(t.keyCounts(), flat)
	if !ok {
		return 0, 0, IndexError{Index: flat, NumKeys: t.NumKeys()}
	}
	return subTrack, local, nil
}

// KeyTime returns the time of the key at the flat index.
func (t *CompoundTrack) KeyTime(flat int) (float64, error) {
	i, local, err := t.SubTrackIndex(flat)
	if err != nil {
		return 0, err
	}
	return t.subTracks[i].KeyTime(local), nil
}

// SetKeyTime moves the key at the flat index to a new time.
func (t *CompoundTrack) SetKeyTime(flat int, time float64) error {
	i, local, err := t.SubTrackIndex(flat)
	if err != nil {
		return err
	}
	t.subTracks[i].SetKeyTime(local, time)
	return nil
}

// IsKeySelected reports the selection state of the key at the flat index.
func (t *CompoundTrack) IsKeySelected(flat int) (bool, error) {
	i, local, err := t.SubTrackIndex(flat)
	if err != nil {
		return false, err
	}
	return t.subTracks[i].IsKeySelected(local), nil
}

// RemoveKey deletes the key at the flat index from its sub-track. Flat
// indices after it shift down by one.
func (t *CompoundTrack) RemoveKey(flat int) error {
	i, local, err := t.SubTrackIndex(flat)
	if err != nil {
		return err
	}
	t.subTracks[i].RemoveKey(local)
	return nil
}

// SelectKey applies the selection state to the key at the flat index and,
// in every other active sub-track, to the first key within keyTimeEpsilon
// of its time. A compound parameter's key is one sample instant across all
// axes, so editors expect temporally matching keys to select together.
func (t *CompoundTrack) SelectKey(flat int, selected bool) error {
	i, local, err := t.SubTrackIndex(flat)
	if err != nil {
		return err
	}
	keyTime := t.subTracks[i].KeyTime(local)
	for k := 0; k < t.dims; k++ {
		st := t.subTracks[k]
		for m, num := 0, st.NumKeys(); m < num; m++ {
			if math.Abs(st.KeyTime(m)-keyTime) < keyTimeEpsilon {
				st.SelectKey(m, selected)
				break
			}
		}
	}
	return nil
}

// NextKeyByTime returns the flat index of the key with the smallest time
// strictly after the key at the given flat index, across all active
// sub-tracks. Ties go to the lower sub-track slot. Returns -1 when no later
// key exists.
func (t *CompoundTrack) NextKeyByTime(flat int) (int, error) {
	time, err := t.KeyTime(flat)
	if err != nil {
		return -1, err
	}
	count, result := 0, -1
	timeNext := math.Inf(1)
	for i := 0; i < t.dims; i++ {
		st := t.subTracks[i]
		for k, num := 0, st.NumKeys(); k < num; k++ {
			if kt := st.KeyTime(k); kt > time {
				if kt < timeNext {
					timeNext = kt
					result = count + k
				}
				break
			}
		}
		count += st.NumKeys()
	}
	return result, nil
}

// KeyInfo builds a description for the key at the flat index by joining, per
// active sub-track, the description of the key at exactly the same time, or
// the sub-track's display name when it has no key there. Duration is always
// zero; sub-track durations are not aggregated.
func (t *CompoundTrack) KeyInfo(flat int) (description string, duration float64, err error) {
	time, err := t.KeyTime(flat)
	if err != nil {
		return "", 0, err
	}
	var b strings.Builder
	for i := 0; i < t.dims; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		st := t.subTracks[i]
		found := false
		for m, num := 0, st.NumKeys(); m < num; m++ {
			if st.KeyTime(m) == time {
				desc, _ := st.KeyInfo(m)
				b.WriteString(desc)
				found = true
				break
			}
		}
		if !found {
			b.WriteString(t.names[i])
		}
	}
	return b.String(), 0, nil
}
