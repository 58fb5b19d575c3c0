// Package motion provides parametric motion generators for demo scenes.
//
// Each generator implements [Motion], writing an object's pose as a pure
// function of absolute time:
//
//   - [Orbit]: circular path around a center point
//   - [Spin]: in-place rotation about the Y axis
//   - [Lissajous]: independent sinusoids per axis
//   - [Swing]: pendulum arc below a pivot
//
// Being time-parametric (not integrated), stepping is deterministic and
// replay-safe: the same t always yields the same pose.
package motion
