package scene

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robolab/roboscene/internal/spatial"
	"github.com/robolab/roboscene/internal/vistree"
)

func newTestScene(t *testing.T, cfg Config) (*Scene, *vistree.MemTree, *bytes.Buffer) {
	t.Helper()
	tree := vistree.NewMemTree()
	warnings := &bytes.Buffer{}
	cfg.WarnWriter = warnings
	s, err := New(context.Background(), tree, cfg)
	require.NoError(t, err)
	tree.ResetLog() // drop the background writes from construction
	return s, tree, warnings
}

func TestNewWritesBackground(t *testing.T) {
	tree := vistree.NewMemTree()
	cfg := DefaultConfig()
	_, err := New(context.Background(), tree, cfg)
	require.NoError(t, err)

	node, ok := tree.Node("Background")
	require.True(t, ok)
	assert.Equal(t, vistree.PropValue{Type: vistree.Vector, Value: [3]float64{1, 1, 1}}, node.Props["top_color"])
	assert.Equal(t, vistree.PropValue{Type: vistree.Vector, Value: [3]float64{1, 1, 1}}, node.Props["bottom_color"])
}

func TestAddRemoveObjects(t *testing.T) {
	s, tree, _ := newTestScene(t, Config{})

	a := NewSphere("a", 0.1)
	b := NewBox("b", spatial.Vec3{X: 1, Y: 1, Z: 1})
	c := NewCylinder("c", 0.2, 1)

	require.NoError(t, s.AddObject(a))
	require.NoError(t, s.AddObject(b))
	require.NoError(t, s.AddObject(c))
	require.NoError(t, s.RemoveObject(b))

	names := make([]string, 0)
	for _, o := range s.Objects() {
		names = append(names, o.Name())
	}
	assert.Equal(t, []string{"a", "c"}, names)

	_, ok := tree.Node("b")
	assert.False(t, ok, "removed object should leave the tree")
	_, ok = tree.Node("a")
	assert.True(t, ok)
}

func TestAddDuplicateReplacesWithWarning(t *testing.T) {
	s, tree, warnings := newTestScene(t, Config{})

	first := NewSphere("ball", 0.1)
	second := NewSphere("ball", 0.5)

	require.NoError(t, s.AddObject(first))
	require.NoError(t, s.AddObject(second))

	assert.Len(t, s.Objects(), 1)
	got, ok := s.Object("ball")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Contains(t, warnings.String(), "already in the scene")

	node, ok := tree.Node("ball")
	require.True(t, ok)
	assert.Equal(t, 0.5, node.Geometry.Radius)
}

func TestAddDuplicateStrict(t *testing.T) {
	s, _, _ := newTestScene(t, Config{Strict: true})

	require.NoError(t, s.AddObject(NewSphere("ball", 0.1)))
	err := s.AddObject(NewSphere("ball", 0.5))
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestRemoveUnknownObject(t *testing.T) {
	s, _, warnings := newTestScene(t, Config{})

	require.NoError(t, s.RemoveObject(NewSphere("ghost", 0.1)))
	assert.Contains(t, warnings.String(), "not in the scene")

	strict, _, _ := newTestScene(t, Config{Strict: true})
	assert.ErrorIs(t, strict.RemoveObject(NewSphere("ghost", 0.1)), ErrNotInScene)
}

// fakeRobot scripts its link poses: each FK call advances every link +1 on X.
type fakeRobot struct {
	name  string
	links map[string]*Object
	fks   int
}

func newFakeRobot(name string, linkNames ...string) *fakeRobot {
	links := make(map[string]*Object, len(linkNames))
	for _, n := range linkNames {
		links[n] = NewSphere(n, 0.05)
	}
	return &fakeRobot{name: name, links: links}
}

func (r *fakeRobot) Name() string                { return r.name }
func (r *fakeRobot) Objects() map[string]*Object { return r.links }

func (r *fakeRobot) FK() {
	r.fks++
	for _, o := range r.links {
		p := o.Pos()
		o.SetPos(spatial.Vec3{X: p.X + 1, Y: p.Y, Z: p.Z})
	}
}

func TestAddRemoveRobot(t *testing.T) {
	s, tree, _ := newTestScene(t, Config{})

	r := newFakeRobot("arm", "arm/base", "arm/link1", "arm/link2")
	require.NoError(t, s.AddRobot(r))

	assert.Len(t, s.Objects(), 3)
	for name := range r.Objects() {
		_, ok := s.Object(name)
		assert.True(t, ok, "link %q should be registered", name)
		_, ok = tree.Node(name)
		assert.True(t, ok, "link %q should be in the tree", name)
	}

	require.NoError(t, s.RemoveRobot(r))
	assert.Empty(t, s.Objects())
	assert.Empty(t, s.Robots())
	for name := range r.Objects() {
		_, ok := tree.Node(name)
		assert.False(t, ok, "link %q should be gone", name)
	}
}

func TestRenderRunsFKAndPushesTransforms(t *testing.T) {
	s, tree, _ := newTestScene(t, Config{})

	r := newFakeRobot("arm", "arm/link")
	require.NoError(t, s.AddRobot(r))

	require.NoError(t, s.Render())
	assert.Equal(t, 1, r.fks)

	node, ok := tree.Node("arm/link")
	require.True(t, ok)
	assert.Equal(t, 1.0, node.Transform[0][3], "FK pose should reach the tree")

	require.NoError(t, s.Render())
	assert.Equal(t, 2, r.fks)
	node, _ = tree.Node("arm/link")
	assert.Equal(t, 2.0, node.Transform[0][3])
}

func TestRenderWriteOrder(t *testing.T) {
	s, tree, _ := newTestScene(t, Config{})

	require.NoError(t, s.AddObject(NewSphere("a", 0.1)))
	require.NoError(t, s.AddObject(NewSphere("b", 0.1)))
	tree.ResetLog()

	require.NoError(t, s.Render())

	log := tree.Log()
	require.Len(t, log, 4)
	assert.Equal(t, "a", log[0].Path)
	assert.Equal(t, "b", log[1].Path)
	assert.Equal(t, "Cameras/default", log[2].Path)
	assert.Equal(t, vistree.OpProperty, log[3].Op)
	assert.Equal(t, "zoom", log[3].Property)
	assert.Equal(t, vistree.Number, log[3].PropType)
}

func TestRenderIdempotent(t *testing.T) {
	s, tree, _ := newTestScene(t, Config{})

	o := NewSphere("a", 0.1)
	o.SetPos(spatial.Vec3{X: 1, Y: 2, Z: 3})
	require.NoError(t, s.AddObject(o))

	tree.ResetLog()
	require.NoError(t, s.Render())
	first := append([]vistree.Write(nil), tree.Log()...)

	tree.ResetLog()
	require.NoError(t, s.Render())
	second := tree.Log()

	assert.Equal(t, first, second, "renders of unchanged state should be identical")
}

func TestCameraBlockIsolation(t *testing.T) {
	s, _, _ := newTestScene(t, Config{})

	rot := spatial.RotationY(math.Pi / 3)
	s.SetCameraRot(rot)
	s.SetCameraPos(spatial.Vec3{X: 1, Y: 2, Z: 3})

	assert.Equal(t, spatial.Vec3{X: 1, Y: 2, Z: 3}, s.CameraPos())
	assert.Equal(t, rot, s.CameraRot(), "setting position must not disturb rotation")

	s.SetCameraRot(spatial.RotationZ(0.5))
	assert.Equal(t, spatial.Vec3{X: 1, Y: 2, Z: 3}, s.CameraPos(), "setting rotation must not disturb position")
}

func TestCameraWritesReachTree(t *testing.T) {
	s, tree, _ := newTestScene(t, Config{})

	s.SetCameraPos(spatial.Vec3{Z: 5})
	s.SetCameraZoom(2.5)
	require.NoError(t, s.Render())

	cam, ok := tree.Node(cameraPath)
	require.True(t, ok)
	assert.Equal(t, 5.0, cam.Transform[2][3])

	zoomNode, ok := tree.Node(cameraZoomPath)
	require.True(t, ok)
	assert.Equal(t, vistree.PropValue{Type: vistree.Number, Value: 2.5}, zoomNode.Props["zoom"])
}
