package scene

import (
	"fmt"

	"github.com/robolab/roboscene/internal/vistree"
)

// Capture is an open animation recording. While it is active the scene's
// Render calls write into clip frames instead of the live tree. Close
// publishes the clip and restores live rendering; it must run on every exit
// path of the recording block.
type Capture struct {
	scene  *Scene
	name   string
	clip   *vistree.Clip
	closed bool
}

// Animation starts a capture under the default animation name.
func (s *Scene) Animation(fps int) (*Capture, error) {
	return s.NamedAnimation("a", fps)
}

// NamedAnimation starts a capture publishing under animations/<name>.
// Only one capture may be active at a time; starting a second one is
// rejected rather than clobbering the first.
func (s *Scene) NamedAnimation(name string, fps int) (*Capture, error) {
	if s.capture != nil {
		return nil, fmt.Errorf("start animation %q: %w", name, ErrCaptureActive)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("start animation %q: fps must be positive, got %d", name, fps)
	}
	c := &Capture{scene: s, name: name, clip: vistree.NewClip(fps)}
	s.capture = c
	return c, nil
}

// Animate runs fn with a capture active under the default animation name and
// always closes it, publishing the recorded clip even when fn fails. fn's
// error is returned unchanged; a publish error surfaces only when fn itself
// succeeded.
func (s *Scene) Animate(fps int, fn func() error) error {
	return s.AnimateNamed("a", fps, fn)
}

// AnimateNamed is Animate publishing under animations/<name>.
func (s *Scene) AnimateNamed(name string, fps int, fn func() error) (err error) {
	c, cerr := s.NamedAnimation(name, fps)
	if cerr != nil {
		return cerr
	}
	defer func() {
		closeErr := c.Close()
		if err == nil {
			err = closeErr
		}
	}()
	return fn()
}

// Close publishes the recorded clip under animations/<name> and returns the
// scene to live rendering. Closing twice is a no-op.
func (c *Capture) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.scene.capture = nil
	return c.scene.tree.SetAnimation(animationsPath+"/"+c.name, c.clip)
}

// Name returns the animation slot name.
func (c *Capture) Name() string { return c.name }

// FPS returns the clip's target frame rate.
func (c *Capture) FPS() int { return c.clip.FPS }

// Frames returns the number of frames recorded so far.
func (c *Capture) Frames() int { return c.clip.Len() }
