package vistree

import (
	"context"
	"sort"
	"strings"

	"github.com/robolab/roboscene/internal/spatial"
)

// MemTree is an in-memory Tree backend. It mirrors the node hierarchy, keeps
// an ordered write log, and stores published animations. It backs the
// terminal viewer and serves as the test double for live-vs-capture
// assertions.
type MemTree struct {
	nodes      map[string]*MemNode
	log        []Write
	animations map[string]*Clip
	opened     bool
}

// MemNode is the mirrored state of a single tree path.
type MemNode struct {
	HasObject bool
	Geometry  Geometry
	Material  Material
	Transform spatial.Mat4
	Props     map[string]PropValue
}

// PropValue is a typed property value on a node.
type PropValue struct {
	Type  PropType
	Value any
}

func NewMemTree() *MemTree {
	return &MemTree{
		nodes:      make(map[string]*MemNode),
		animations: make(map[string]*Clip),
	}
}

func (t *MemTree) Open() error {
	t.opened = true
	return nil
}

// Wait reports readiness. The in-memory backend is ready as soon as it
// exists, so only context cancellation can fail it.
func (t *MemTree) Wait(ctx context.Context) error {
	return ctx.Err()
}

func (t *MemTree) At(path string) Node {
	return &memNode{tree: t, path: normalize(path)}
}

func (t *MemTree) SetAnimation(path string, clip *Clip) error {
	t.animations[normalize(path)] = clip
	return nil
}

// Node returns the mirrored state at path, if any.
func (t *MemTree) Node(path string) (*MemNode, bool) {
	n, ok := t.nodes[normalize(path)]
	return n, ok
}

// Paths returns all mirrored paths in sorted order.
func (t *MemTree) Paths() []string {
	paths := make([]string, 0, len(t.nodes))
	for p := range t.nodes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Animation returns the clip published at path, if any.
func (t *MemTree) Animation(path string) (*Clip, bool) {
	c, ok := t.animations[normalize(path)]
	return c, ok
}

// Log returns all writes applied to the live tree, in order.
func (t *MemTree) Log() []Write { return t.log }

// ResetLog clears the write log without touching mirrored state.
func (t *MemTree) ResetLog() { t.log = nil }

func (t *MemTree) node(path string) *MemNode {
	n, ok := t.nodes[path]
	if !ok {
		n = &MemNode{Transform: spatial.Identity(), Props: make(map[string]PropValue)}
		t.nodes[path] = n
	}
	return n
}

func normalize(path string) string {
	return strings.Trim(path, "/")
}

type memNode struct {
	tree *MemTree
	path string
}

func (n *memNode) SetObject(g Geometry, m Material) error {
	node := n.tree.node(n.path)
	node.HasObject = true
	node.Geometry = g
	node.Material = m
	n.tree.log = append(n.tree.log, Write{Op: OpObject, Path: n.path, Geometry: g, Material: m})
	return nil
}

func (n *memNode) SetTransform(m spatial.Mat4) error {
	n.tree.node(n.path).Transform = m
	n.tree.log = append(n.tree.log, Write{Op: OpTransform, Path: n.path, Transform: m})
	return nil
}

func (n *memNode) SetProperty(name string, typ PropType, value any) error {
	n.tree.node(n.path).Props[name] = PropValue{Type: typ, Value: value}
	n.tree.log = append(n.tree.log, Write{Op: OpProperty, Path: n.path, Property: name, PropType: typ, Value: value})
	return nil
}

// Delete removes the node and its whole subtree.
func (n *memNode) Delete() error {
	delete(n.tree.nodes, n.path)
	prefix := n.path + "/"
	for p := range n.tree.nodes {
		if strings.HasPrefix(p, prefix) {
			delete(n.tree.nodes, p)
		}
	}
	n.tree.log = append(n.tree.log, Write{Op: OpDelete, Path: n.path})
	return nil
}
