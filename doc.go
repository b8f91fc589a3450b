// Package keyline implements compound multi-dimensional keyframe animation
// tracks.
//
// A [CompoundTrack] animates one logical parameter (position, rotation,
// scale, color, or a generic 1–4 component value) as a fixed set of
// independently keyed scalar channels behind a single interface. Channels
// implement [SubTrack]; [SplineTrack] is the standard implementation with
// eased interpolation via [gween].
//
// # Quick start
//
// Create a track with a typed constructor, key it, and sample it:
//
//	track := keyline.NewPositionTrack()
//	track.SetVec3(0, mgl64.Vec3{0, 0, 0}, false, false)
//	track.SetVec3(2, mgl64.Vec3{10, 5, 0}, false, false)
//
//	pos, err := track.GetVec3(1, mgl64.Vec3{}, false)
//
// Rotation tracks store XYZ Euler angles in degrees per channel and convert
// at the API boundary:
//
//	rot := keyline.NewRotationTrack()
//	rot.SetQuat(0, mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 0, 1}), false)
//	q, err := rot.GetQuat(0)
//
// Rewriting a rotation key preserves the channel's accumulated winding: a
// track that has wound past ±180° never snaps back into the principal range
// and pops on playback.
//
// # Flat key indices
//
// Cross-cutting edits address keys through a flat index over all channels in
// slot order: [CompoundTrack.NumKeys], [CompoundTrack.KeyTime],
// [CompoundTrack.SelectKey], [CompoundTrack.RemoveKey],
// [CompoundTrack.NextKeyByTime]. Selection is time-correlated: selecting a
// key also selects keys at the same instant on the other channels.
//
// # Reparenting
//
// When the animated node changes parent, [CompoundTrack.RebaseParent]
// rewrites Position, Rotation, and Scale keys so the world-space result of
// the animation is unchanged.
//
// Tracks are not safe for concurrent mutation; callers serialize access.
//
// [gween]: https://github.com/tanema/gween
package keyline
