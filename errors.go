package keyline

import "fmt"

// IndexError reports a flat key index outside [0, NumKeys()).
type IndexError struct {
	Index   int
	NumKeys int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("keyline: key index %d out of range [0, %d)", e.Index, e.NumKeys)
}

// DimensionError reports an operation invoked on a track with an unsupported
// dimension count, such as a quaternion read on a non-3-dimensional track.
type DimensionError struct {
	Op         string
	Dimensions int
	Want       int
}

func (e DimensionError) Error() string {
	return fmt.Sprintf("keyline: %s requires %d dimensions, track has %d", e.Op, e.Want, e.Dimensions)
}

// ParamTypeError reports an operation that does not apply to the track's
// parameter type, such as rebasing a Generic track.
type ParamTypeError struct {
	Op    string
	Param ParamType
}

func (e ParamTypeError) Error() string {
	return fmt.Sprintf("keyline: %s does not apply to %s tracks", e.Op, e.Param)
}

// NotReadyError reports use of a deferred-constructed track before its
// loader populated it.
type NotReadyError struct{}

func (e NotReadyError) Error() string {
	return "keyline: track not populated; call Populate before use"
}
