package keyline

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// SplineTrack is the standard SubTrack implementation: keys ordered by time
// with eased interpolation between neighbors. Evaluation outside the keyed
// interval clamps to the nearest key. A track with no keys evaluates to its
// default value.
type SplineTrack struct {
	// Ease shapes interpolation between neighboring keys. Defaults to
	// ease.Linear.
	Ease ease.TweenFunc

	keys         []Key
	defaultValue float64
	multiplier   float64
	timeRange    Range
	valueMin     float64
	valueMax     float64
	hasValueClamp bool
	param        ParamType
}

var _ SubTrack = (*SplineTrack)(nil)

// NewSplineTrack creates an empty spline channel for the given parameter type.
func NewSplineTrack(param ParamType) *SplineTrack {
	return &SplineTrack{
		Ease:       ease.Linear,
		multiplier: 1,
		param:      param,
	}
}

// Param returns the parameter type this channel animates.
func (s *SplineTrack) Param() ParamType { return s.param }

// SetMultiplier sets the channel's value multiplier. Reads with
// applyMultiplier scale by it; writes with applyMultiplier divide by it.
func (s *SplineTrack) SetMultiplier(m float64) {
	if m != 0 {
		s.multiplier = m
	}
}

// SetValueClamp restricts stored key values and the default value to
// [min, max]. Color channels use [0, 255].
func (s *SplineTrack) SetValueClamp(min, max float64) {
	s.valueMin, s.valueMax = min, max
	s.hasValueClamp = true
}

// Keys returns a copy of the channel's keys in time order.
func (s *SplineTrack) Keys() []Key {
	out := make([]Key, len(s.keys))
	copy(out, s.keys)
	return out
}

// Value evaluates the channel at the given time.
func (s *SplineTrack) Value(time float64, applyMultiplier bool) (float64, error) {
	v := s.evaluate(time)
	if applyMultiplier {
		v *= s.multiplier
	}
	return v, nil
}

func (s *SplineTrack) evaluate(time float64) float64 {
	if len(s.keys) == 0 {
		return s.defaultValue
	}
	if time <= s.keys[0].Time {
		return s.keys[0].Value
	}
	last := s.keys[len(s.keys)-1]
	if time >= last.Time {
		return last.Value
	}

	// Index of the first key strictly after time. The guards above ensure
	// 1 <= i <= len-1.
	i := sort.Search(len(s.keys), func(i int) bool { return s.keys[i].Time > time })
	k0, k1 := s.keys[i-1], s.keys[i]
	if k0.Time == time {
		return k0.Value
	}
	span := k1.Time - k0.Time
	if span <= 0 {
		return k1.Value
	}
	fn := s.Ease
	if fn == nil {
		fn = ease.Linear
	}
	return float64(fn(float32(time-k0.Time), float32(k0.Value), float32(k1.Value-k0.Value), float32(span)))
}

// SetValue writes a value at the given time. isDefault updates the default
// value without creating a key. Otherwise the key at exactly that time is
// updated, or a new key is inserted in time order.
func (s *SplineTrack) SetValue(time, value float64, isDefault, applyMultiplier bool) error {
	if applyMultiplier && s.multiplier != 1 {
		value /= s.multiplier
	}
	if s.hasValueClamp {
		value = clamp(value, s.valueMin, s.valueMax)
	}
	if isDefault {
		s.defaultValue = value
		return nil
	}
	for i := range s.keys {
		if s.keys[i].Time == time {
			s.keys[i].Value = value
			return nil
		}
	}
	i := sort.Search(len(s.keys), func(i int) bool { return s.keys[i].Time > time })
	s.keys = append(s.keys, Key{})
	copy(s.keys[i+1:], s.keys[i:])
	s.keys[i] = Key{Time: time, Value: value}
	return nil
}

// NumKeys returns the number of keys.
func (s *SplineTrack) NumKeys() int { return len(s.keys) }

// KeyTime returns the time of the key at the local index.
func (s *SplineTrack) KeyTime(index int) float64 { return s.keys[index].Time }

// SetKeyTime moves a key to a new time, clamping to the channel's time range
// when one is set and restoring time order.
func (s *SplineTrack) SetKeyTime(index int, time float64) {
	if s.timeRange.End > s.timeRange.Start {
		time = clamp(time, s.timeRange.Start, s.timeRange.End)
	}
	s.keys[index].Time = time
	sort.SliceStable(s.keys, func(i, j int) bool { return s.keys[i].Time < s.keys[j].Time })
}

// IsKeySelected reports the selection state of the key at the local index.
func (s *SplineTrack) IsKeySelected(index int) bool { return s.keys[index].Selected }

// SelectKey sets the selection state of the key at the local index.
func (s *SplineTrack) SelectKey(index int, selected bool) { s.keys[index].Selected = selected }

// RemoveKey deletes the key at the local index.
func (s *SplineTrack) RemoveKey(index int) {
	s.keys = append(s.keys[:index], s.keys[index+1:]...)
}

// KeyInfo returns the key's value formatted for display. Spline keys have no
// duration.
func (s *SplineTrack) KeyInfo(index int) (string, float64) {
	return fmt.Sprintf("%.2f", s.keys[index].Value), 0
}

// SetTimeRange sets the channel's valid time range.
func (s *SplineTrack) SetTimeRange(r Range) { s.timeRange = r }

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
