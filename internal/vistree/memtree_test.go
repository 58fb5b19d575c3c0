package vistree

import (
	"context"
	"testing"

	"github.com/robolab/roboscene/internal/spatial"
)

func TestMemTreeSetObject(t *testing.T) {
	tree := NewMemTree()

	g := Geometry{Kind: Sphere, Radius: 0.5}
	m := Material{Color: 0xff0000, Opacity: 1}
	if err := tree.At("ball").SetObject(g, m); err != nil {
		t.Fatalf("set object failed: %v", err)
	}

	node, ok := tree.Node("ball")
	if !ok {
		t.Fatal("expected node at 'ball'")
	}
	if !node.HasObject || node.Geometry != g || node.Material != m {
		t.Errorf("node state mismatch: %+v", node)
	}
}

func TestMemTreePathNormalization(t *testing.T) {
	tree := NewMemTree()
	tree.At("/Cameras/default").SetTransform(spatial.Identity())

	if _, ok := tree.Node("Cameras/default"); !ok {
		t.Error("leading slash should not create a distinct path")
	}
}

func TestMemTreeDeleteSubtree(t *testing.T) {
	tree := NewMemTree()
	tree.At("robot/link0").SetTransform(spatial.Identity())
	tree.At("robot/link1").SetTransform(spatial.Identity())
	tree.At("robot").SetTransform(spatial.Identity())
	tree.At("other").SetTransform(spatial.Identity())

	if err := tree.At("robot").Delete(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	for _, p := range []string{"robot", "robot/link0", "robot/link1"} {
		if _, ok := tree.Node(p); ok {
			t.Errorf("path %q should have been deleted", p)
		}
	}
	if _, ok := tree.Node("other"); !ok {
		t.Error("unrelated path was deleted")
	}
}

func TestMemTreeWriteLog(t *testing.T) {
	tree := NewMemTree()
	tree.At("a").SetTransform(spatial.Identity())
	tree.At("a").SetProperty("zoom", Number, 2.0)

	log := tree.Log()
	if len(log) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(log))
	}
	if log[0].Op != OpTransform || log[1].Op != OpProperty {
		t.Errorf("unexpected ops: %v %v", log[0].Op, log[1].Op)
	}
	if log[1].PropType != Number {
		t.Errorf("expected typed property write, got %q", log[1].PropType)
	}

	tree.ResetLog()
	if len(tree.Log()) != 0 {
		t.Error("log should be empty after reset")
	}
}

func TestMemTreeWaitHonorsContext(t *testing.T) {
	tree := NewMemTree()

	if err := tree.Wait(context.Background()); err != nil {
		t.Errorf("wait on ready tree failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := tree.Wait(ctx); err == nil {
		t.Error("expected context error after cancel")
	}
}

func TestClipFrameIndices(t *testing.T) {
	clip := NewClip(30)

	for i := 0; i < 5; i++ {
		f := clip.NextFrame()
		if f.Index != i {
			t.Errorf("frame %d has index %d", i, f.Index)
		}
		f.At("obj").SetTransform(spatial.Identity())
	}

	if clip.Len() != 5 {
		t.Fatalf("expected 5 frames, got %d", clip.Len())
	}
	for i, f := range clip.Frames() {
		if f.Index != i {
			t.Errorf("stored frame %d has index %d", i, f.Index)
		}
		if len(f.Writes()) != 1 {
			t.Errorf("frame %d: expected 1 write, got %d", i, len(f.Writes()))
		}
	}
}

func TestSetAnimationPublish(t *testing.T) {
	tree := NewMemTree()
	clip := NewClip(24)
	clip.NextFrame()

	if err := tree.SetAnimation("animations/a", clip); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	got, ok := tree.Animation("animations/a")
	if !ok {
		t.Fatal("expected published animation")
	}
	if got.FPS != 24 || got.Len() != 1 {
		t.Errorf("clip mismatch: fps=%d len=%d", got.FPS, got.Len())
	}
}
