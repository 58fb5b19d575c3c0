package scene

import "errors"

// Domain errors for scene operations. They are returned only in strict mode;
// the default policy degrades them to console warnings.
var (
	// ErrDuplicateName indicates an add with a name already in the scene.
	ErrDuplicateName = errors.New("scene: name already in scene")

	// ErrCaptureActive indicates a structural change or a second capture was
	// attempted while an animation capture is in progress.
	ErrCaptureActive = errors.New("scene: animation capture in progress")

	// ErrNotInScene indicates a removal of an entity the scene does not hold.
	ErrNotInScene = errors.New("scene: not in scene")
)
