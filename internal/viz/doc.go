// Package viz renders a mirrored visualization tree in the terminal.
//
// The viewer is a Bubble Tea program ticking at the scene's frame rate:
//
//   - [Canvas]: Braille-based pixel canvas for wireframe rendering
//   - [Projector]: perspective projection through the scene camera pose
//   - [Model]: the interactive viewer with orbit camera and recording
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Start/stop animation recording (saved to the data dir)
//	Arrows - Orbit the camera
//	+/-   - Zoom
//	?     - Toggle help
package viz
