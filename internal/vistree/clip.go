package vistree

import "github.com/robolab/roboscene/internal/spatial"

// Clip is an ordered sequence of animation frames captured at a fixed rate.
// Frames are appended with NextFrame and indexed 0..N-1.
type Clip struct {
	FPS    int
	frames []*Frame
}

func NewClip(fps int) *Clip {
	return &Clip{FPS: fps}
}

// NextFrame appends a new empty frame and returns it.
func (c *Clip) NextFrame() *Frame {
	f := &Frame{Index: len(c.frames)}
	c.frames = append(c.frames, f)
	return f
}

func (c *Clip) Frames() []*Frame { return c.frames }
func (c *Clip) Len() int         { return len(c.frames) }

// Frame buffers the writes of one animation tick in order. It implements
// Target so a render pass can address it exactly like the live tree.
type Frame struct {
	Index  int
	writes []Write
}

func (f *Frame) At(path string) Node {
	return &frameNode{frame: f, path: path}
}

func (f *Frame) Writes() []Write { return f.writes }

type frameNode struct {
	frame *Frame
	path  string
}

func (n *frameNode) SetObject(g Geometry, m Material) error {
	n.frame.writes = append(n.frame.writes, Write{Op: OpObject, Path: n.path, Geometry: g, Material: m})
	return nil
}

func (n *frameNode) SetTransform(m spatial.Mat4) error {
	n.frame.writes = append(n.frame.writes, Write{Op: OpTransform, Path: n.path, Transform: m})
	return nil
}

func (n *frameNode) SetProperty(name string, typ PropType, value any) error {
	n.frame.writes = append(n.frame.writes, Write{Op: OpProperty, Path: n.path, Property: name, PropType: typ, Value: value})
	return nil
}

func (n *frameNode) Delete() error {
	n.frame.writes = append(n.frame.writes, Write{Op: OpDelete, Path: n.path})
	return nil
}
