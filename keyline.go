package keyline

// maxSubTracks is the fixed number of sub-track slots a compound track owns.
// Only the first Dimensions() slots are ever active.
const maxSubTracks = 4

// keyTimeEpsilon is the tolerance used when matching keys across sub-tracks
// by time. Keys whose times differ by less than this are treated as the same
// sample instant for selection purposes.
const keyTimeEpsilon = 0.001

// defaultAxisNames are the display names assigned to sub-track slots at
// construction. Both construction paths read from this table so the defaults
// cannot drift apart.
var defaultAxisNames = [maxSubTracks]string{"X", "Y", "Z", "W"}

// ValueType describes the logical value a compound track animates.
type ValueType uint8

const (
	// ValueFloat is a single scalar; only sub-track 0 is read.
	ValueFloat ValueType = iota
	// ValueVec3 is a 3-component vector.
	ValueVec3
	// ValueVec4 is a 4-component vector.
	ValueVec4
	// ValueQuat is a rotation stored as intrinsic-XYZ Euler angles in
	// degrees, one axis per sub-track. Requires exactly 3 dimensions.
	ValueQuat
	// ValueRGB is a color with components stored in [0, 255] per sub-track.
	ValueRGB
)

// String returns the value type name.
func (v ValueType) String() string {
	switch v {
	case ValueFloat:
		return "Float"
	case ValueVec3:
		return "Vec3"
	case ValueVec4:
		return "Vec4"
	case ValueQuat:
		return "Quat"
	case ValueRGB:
		return "RGB"
	}
	return "Unknown"
}

// ParamType classifies what a track animates. Position, Rotation, and Scale
// get special treatment during parent rebasing; everything else is generic.
type ParamType uint8

const (
	ParamGeneric ParamType = iota
	ParamPosition
	ParamRotation
	ParamScale
	ParamColor
)

// String returns the parameter type name.
func (p ParamType) String() string {
	switch p {
	case ParamPosition:
		return "Position"
	case ParamRotation:
		return "Rotation"
	case ParamScale:
		return "Scale"
	case ParamColor:
		return "Color"
	}
	return "Generic"
}

// Flags is a bitmask of track-level toggles.
type Flags uint32

const (
	// FlagDisabled excludes the track from evaluation entirely.
	FlagDisabled Flags = 1 << iota
	// FlagMuted keeps the track evaluable but signals players to ignore it.
	FlagMuted
)

// Range is a closed time interval. Used for track time ranges.
type Range struct {
	Start, End float64
}

// Color represents an RGBA color with components in [0, 1]. Used for the
// editor-facing custom color override on tracks.
type Color struct {
	R, G, B, A float64
}

// Node is the owning scene object a track animates. The track holds the
// reference for lookups only and never manages the node's lifetime.
type Node interface {
	Name() string
}
