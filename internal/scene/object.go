package scene

import (
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/robolab/roboscene/internal/spatial"
	"github.com/robolab/roboscene/internal/vistree"
)

var objSeq atomic.Uint64

// Object is a named drawable: a geometry descriptor plus pose, color and
// opacity. The name keys the object in the scene and in the visualization
// tree; it is fixed at construction.
type Object struct {
	name string

	// Pose is the object's 4x4 transform, pushed to the tree on every render.
	Pose spatial.Mat4

	// Geometry is the shape descriptor sent once on add.
	Geometry vistree.Geometry

	// Color is RGB in [0,1]. A random color is picked when a shape
	// constructor is used without setting one.
	Color [3]float64

	// Opacity is 1 for opaque, 0 for invisible.
	Opacity float64
}

// NewObject creates an object with the given geometry. An empty name gets an
// auto-generated unique one.
func NewObject(name string, g vistree.Geometry) *Object {
	if name == "" {
		name = fmt.Sprintf("obj%d", objSeq.Add(1)-1)
	}
	return &Object{
		name:     name,
		Pose:     spatial.Identity(),
		Geometry: g,
		Color:    [3]float64{rand.Float64(), rand.Float64(), rand.Float64()},
		Opacity:  1,
	}
}

// NewBox creates a box object with the given edge lengths.
func NewBox(name string, lengths spatial.Vec3) *Object {
	return NewObject(name, vistree.Geometry{Kind: vistree.Box, Lengths: lengths})
}

// NewSphere creates a sphere object with the given radius.
func NewSphere(name string, radius float64) *Object {
	return NewObject(name, vistree.Geometry{Kind: vistree.Sphere, Radius: radius})
}

// NewCylinder creates a cylinder object with the given radius and height.
func NewCylinder(name string, radius, height float64) *Object {
	return NewObject(name, vistree.Geometry{Kind: vistree.Cylinder, Radius: radius, Height: height})
}

func (o *Object) Name() string { return o.name }

// Pos returns the translation block of the pose.
func (o *Object) Pos() spatial.Vec3 { return o.Pose.Pos() }

// SetPos overwrites the translation block, leaving rotation untouched.
func (o *Object) SetPos(p spatial.Vec3) { o.Pose.SetPos(p) }

// Rot returns the rotation block of the pose.
func (o *Object) Rot() spatial.Mat3 { return o.Pose.Rot() }

// SetRot overwrites the rotation block, leaving translation untouched.
func (o *Object) SetRot(r spatial.Mat3) { o.Pose.SetRot(r) }

// Material derives the tree material from the object's color and opacity.
func (o *Object) Material() vistree.Material {
	return vistree.Material{Color: packColor(o.Color), Opacity: o.Opacity}
}

func packColor(c [3]float64) uint32 {
	return channel(c[0])<<16 | channel(c[1])<<8 | channel(c[2])
}

func channel(v float64) uint32 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint32(v*255 + 0.5)
}

// Robot is an articulated collaborator: a named set of link objects plus a
// forward-kinematics hook that refreshes their poses from the robot's
// current configuration. The kinematics themselves live with the
// implementation, not here.
type Robot interface {
	Name() string
	Objects() map[string]*Object
	FK()
}
