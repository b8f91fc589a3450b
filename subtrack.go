package keyline

// SubTrack is a single scalar animation channel: an ordered sequence of keys
// with its own interpolation. A compound track owns up to four of these and
// never shares them.
//
// Index-taking methods expect a local index in [0, NumKeys()); the compound
// track validates flat indices before delegating, so implementations may
// treat out-of-range local indices as programmer error.
type SubTrack interface {
	// Value evaluates the channel at the given time. applyMultiplier scales
	// the result by the channel's value multiplier.
	Value(time float64, applyMultiplier bool) (float64, error)

	// SetValue writes a value at the given time. When isDefault is true the
	// write updates the channel's default value without touching keys;
	// otherwise it updates the key at that exact time, creating one if
	// needed. applyMultiplier divides the stored value by the channel's
	// multiplier, mirroring Value.
	SetValue(time, value float64, isDefault, applyMultiplier bool) error

	// NumKeys returns the number of keys.
	NumKeys() int

	// KeyTime returns the time of the key at the local index.
	KeyTime(index int) float64

	// SetKeyTime moves the key at the local index to a new time.
	SetKeyTime(index int, time float64)

	// IsKeySelected reports whether the key at the local index is selected.
	IsKeySelected(index int) bool

	// SelectKey sets the selection state of the key at the local index.
	SelectKey(index int, selected bool)

	// RemoveKey deletes the key at the local index.
	RemoveKey(index int)

	// KeyInfo returns a human-readable description of the key at the local
	// index and the key's duration in time units.
	KeyInfo(index int) (description string, duration float64)

	// SetTimeRange sets the channel's valid time range.
	SetTimeRange(r Range)
}

// Key is one sample on a scalar sub-track.
type Key struct {
	Time     float64
	Value    float64
	Selected bool
}
