package vistree

import (
	"context"

	"github.com/robolab/roboscene/internal/spatial"
)

// PropType annotates a property write so backends that cannot infer value
// types from context (animation encoders in particular) get an explicit one.
type PropType string

const (
	Number PropType = "number"
	Vector PropType = "vector"
	Bool   PropType = "boolean"
	String PropType = "string"
)

// GeomKind identifies a geometry descriptor shape.
type GeomKind string

const (
	Box      GeomKind = "box"
	Sphere   GeomKind = "sphere"
	Cylinder GeomKind = "cylinder"
)

// Geometry is a shape descriptor. It carries parameters only; mesh data and
// geometry processing belong to the backend.
type Geometry struct {
	Kind    GeomKind
	Lengths spatial.Vec3 // box edge lengths
	Radius  float64      // sphere, cylinder
	Height  float64      // cylinder
}

// Material describes how a node is shaded.
type Material struct {
	Color   uint32 // 0xRRGGBB
	Opacity float64
}

// Op names the kind of a tree write.
type Op string

const (
	OpObject    Op = "object"
	OpTransform Op = "transform"
	OpProperty  Op = "property"
	OpDelete    Op = "delete"
)

// Write is a single path-addressed tree mutation. Only the fields relevant
// to Op are set.
type Write struct {
	Op        Op
	Path      string
	Geometry  Geometry
	Material  Material
	Transform spatial.Mat4
	Property  string
	PropType  PropType
	Value     any
}

// Node accepts writes at a single tree path.
type Node interface {
	SetObject(g Geometry, m Material) error
	SetTransform(m spatial.Mat4) error
	SetProperty(name string, typ PropType, value any) error
	Delete() error
}

// Target is anything that accepts path-addressed writes: a live tree or a
// single animation frame.
type Target interface {
	At(path string) Node
}

// Tree is a visualization session: a live write target plus connection
// lifecycle and animation publishing.
type Tree interface {
	Target

	// Open starts (or requests) the viewer session.
	Open() error

	// Wait blocks until the viewer is ready or the context is done.
	Wait(ctx context.Context) error

	// SetAnimation publishes a finalized clip under the given path.
	SetAnimation(path string, clip *Clip) error
}
