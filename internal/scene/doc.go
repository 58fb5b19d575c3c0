// Package scene manages a set of named drawable objects and robots and
// mirrors their poses into a visualization tree.
//
//   - [Scene]: registries of objects/robots, camera state, per-tick Render
//   - [Object]: geometry descriptor + pose, the unit of drawing
//   - [Robot]: interface for articulated collaborators with an FK hook
//   - [Capture]: scoped animation recording started by [Scene.Animation]
//
// # Failure policy
//
// Interactive sessions should not die on bookkeeping slips, so duplicate
// adds replace with a warning and structurally disallowed removals warn and
// no-op. Strict mode in [Config] promotes exactly those cases to
// [ErrDuplicateName], [ErrCaptureActive] and [ErrNotInScene]. Backend errors
// always propagate unchanged.
//
// # Thread safety
//
// Scene instances are NOT thread-safe; construction, registration, render
// ticks and captures are driven by a single caller.
package scene
