package scene

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/robolab/roboscene/internal/spatial"
	"github.com/robolab/roboscene/internal/vistree"
)

const (
	cameraPath     = "/Cameras/default"
	cameraZoomPath = "/Cameras/default/rotated/<object>"
	backgroundPath = "/Background"
	animationsPath = "animations"
)

// Config controls scene construction and failure policy.
type Config struct {
	// Open requests the viewer session on construction.
	Open bool

	// Wait blocks construction until the viewer reports ready.
	Wait bool

	// Strict promotes the soft-fail cases (duplicate add, remove during
	// capture, remove of an unknown entity) to errors instead of warnings.
	Strict bool

	// WarnWriter receives the soft-fail warnings. Defaults to stdout.
	WarnWriter io.Writer

	// TopColor and BottomColor set the viewer background gradient.
	TopColor    [3]float64
	BottomColor [3]float64
}

func DefaultConfig() Config {
	return Config{
		Open:        true,
		Wait:        true,
		TopColor:    [3]float64{1, 1, 1},
		BottomColor: [3]float64{1, 1, 1},
	}
}

// Scene is the single source of truth for what is in the 3D view. It owns
// the named object and robot registries and the camera, and routes per-tick
// updates either to the live tree or to the active animation capture.
//
// A Scene is not safe for concurrent use; the whole lifecycle is driven by
// one caller at a time.
type Scene struct {
	tree vistree.Tree

	objects     map[string]*Object
	objectOrder []string
	robots      map[string]Robot
	robotOrder  []string

	cameraPose spatial.Mat4
	cameraZoom float64

	capture *Capture

	strict bool
	warnW  io.Writer
}

// New connects a scene to a tree backend. With cfg.Open/cfg.Wait set it
// starts the viewer session and blocks until ready or ctx is done, then
// writes the background colors.
func New(ctx context.Context, tree vistree.Tree, cfg Config) (*Scene, error) {
	warnW := cfg.WarnWriter
	if warnW == nil {
		warnW = os.Stdout
	}
	s := &Scene{
		tree:       tree,
		objects:    make(map[string]*Object),
		robots:     make(map[string]Robot),
		cameraPose: spatial.Identity(),
		cameraZoom: 1,
		strict:     cfg.Strict,
		warnW:      warnW,
	}

	if cfg.Open {
		if err := tree.Open(); err != nil {
			return nil, fmt.Errorf("open viewer: %w", err)
		}
	}
	if cfg.Wait {
		if err := tree.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for viewer: %w", err)
		}
	}

	bg := tree.At(backgroundPath)
	if err := bg.SetProperty("top_color", vistree.Vector, cfg.TopColor); err != nil {
		return nil, err
	}
	if err := bg.SetProperty("bottom_color", vistree.Vector, cfg.BottomColor); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) warnf(format string, args ...any) {
	fmt.Fprintf(s.warnW, format+"\n", args...)
}

// AddObject registers an object and creates its tree node. Adding a name
// already in the scene replaces the previous entry with a warning (or
// ErrDuplicateName in strict mode).
func (s *Scene) AddObject(o *Object) error {
	if _, ok := s.objects[o.Name()]; ok {
		if s.strict {
			return fmt.Errorf("%w: %q", ErrDuplicateName, o.Name())
		}
		s.warnf("object %q is already in the scene, replacing it", o.Name())
	} else {
		s.objectOrder = append(s.objectOrder, o.Name())
	}
	s.objects[o.Name()] = o
	return s.tree.At(o.Name()).SetObject(o.Geometry, o.Material())
}

// RemoveObject unregisters an object and deletes its tree node. Removal is
// refused while an animation capture is active: a capture needs a fixed
// scene graph, so the call warns and no-ops (ErrCaptureActive in strict
// mode). The guard does not depend on any logging option.
func (s *Scene) RemoveObject(o *Object) error {
	if s.capture != nil {
		if s.strict {
			return fmt.Errorf("remove object %q: %w", o.Name(), ErrCaptureActive)
		}
		s.warnf("cannot remove object %q while an animation capture is active", o.Name())
		return nil
	}
	return s.removeObjectNode(o.Name())
}

func (s *Scene) removeObjectNode(name string) error {
	if _, ok := s.objects[name]; !ok {
		if s.strict {
			return fmt.Errorf("object %q: %w", name, ErrNotInScene)
		}
		s.warnf("object %q is not in the scene", name)
		return nil
	}
	delete(s.objects, name)
	s.objectOrder = dropName(s.objectOrder, name)
	return s.tree.At(name).Delete()
}

// AddRobot registers a robot and all its link objects.
func (s *Scene) AddRobot(r Robot) error {
	if _, ok := s.robots[r.Name()]; ok {
		if s.strict {
			return fmt.Errorf("%w: %q", ErrDuplicateName, r.Name())
		}
		s.warnf("robot %q is already in the scene, replacing it", r.Name())
	} else {
		s.robotOrder = append(s.robotOrder, r.Name())
	}
	s.robots[r.Name()] = r
	for _, name := range sortedKeys(r.Objects()) {
		if err := s.AddObject(r.Objects()[name]); err != nil {
			return err
		}
	}
	return nil
}

// RemoveRobot unregisters a robot and all its link objects, with the same
// capture guard as RemoveObject.
func (s *Scene) RemoveRobot(r Robot) error {
	if s.capture != nil {
		if s.strict {
			return fmt.Errorf("remove robot %q: %w", r.Name(), ErrCaptureActive)
		}
		s.warnf("cannot remove robot %q while an animation capture is active", r.Name())
		return nil
	}
	if _, ok := s.robots[r.Name()]; !ok {
		if s.strict {
			return fmt.Errorf("robot %q: %w", r.Name(), ErrNotInScene)
		}
		s.warnf("robot %q is not in the scene", r.Name())
		return nil
	}
	delete(s.robots, r.Name())
	s.robotOrder = dropName(s.robotOrder, r.Name())
	for _, name := range sortedKeys(r.Objects()) {
		if err := s.removeObjectNode(name); err != nil {
			return err
		}
	}
	return nil
}

// Render pushes the current scene state: forward kinematics on every robot,
// one transform write per object, then camera pose and zoom. While a capture
// is active the writes go into the next clip frame instead of the live tree.
func (s *Scene) Render() error {
	target := vistree.Target(s.tree)
	if s.capture != nil {
		target = s.capture.clip.NextFrame()
	}

	for _, name := range s.robotOrder {
		s.robots[name].FK()
	}
	for _, name := range s.objectOrder {
		o := s.objects[name]
		if err := target.At(name).SetTransform(o.Pose); err != nil {
			return err
		}
	}
	if err := target.At(cameraPath).SetTransform(s.cameraPose); err != nil {
		return err
	}
	// The zoom write carries an explicit numeric type so the live path and
	// the animation encoder behave identically.
	return target.At(cameraZoomPath).SetProperty("zoom", vistree.Number, s.cameraZoom)
}

// Object returns the registered object with the given name.
func (s *Scene) Object(name string) (*Object, bool) {
	o, ok := s.objects[name]
	return o, ok
}

// Objects returns the registered objects in insertion order.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, 0, len(s.objectOrder))
	for _, name := range s.objectOrder {
		out = append(out, s.objects[name])
	}
	return out
}

// Robots returns the registered robots in insertion order.
func (s *Scene) Robots() []Robot {
	out := make([]Robot, 0, len(s.robotOrder))
	for _, name := range s.robotOrder {
		out = append(out, s.robots[name])
	}
	return out
}

// Capturing reports whether an animation capture is active.
func (s *Scene) Capturing() bool { return s.capture != nil }

// CameraPose returns the camera's 4x4 transform.
func (s *Scene) CameraPose() spatial.Mat4 { return s.cameraPose }

// SetCameraPose replaces the camera's 4x4 transform.
func (s *Scene) SetCameraPose(m spatial.Mat4) { s.cameraPose = m }

// CameraPos returns the camera translation block.
func (s *Scene) CameraPos() spatial.Vec3 { return s.cameraPose.Pos() }

// SetCameraPos overwrites the camera translation, leaving rotation untouched.
func (s *Scene) SetCameraPos(p spatial.Vec3) { s.cameraPose.SetPos(p) }

// CameraRot returns the camera rotation block.
func (s *Scene) CameraRot() spatial.Mat3 { return s.cameraPose.Rot() }

// SetCameraRot overwrites the camera rotation, leaving translation untouched.
func (s *Scene) SetCameraRot(r spatial.Mat3) { s.cameraPose.SetRot(r) }

func (s *Scene) CameraZoom() float64        { return s.cameraZoom }
func (s *Scene) SetCameraZoom(zoom float64) { s.cameraZoom = zoom }

func dropName(names []string, name string) []string {
	for i, n := range names {
		if n == name {
			return append(names[:i], names[i+1:]...)
		}
	}
	return names
}

func sortedKeys(m map[string]*Object) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
