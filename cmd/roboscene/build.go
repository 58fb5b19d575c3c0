package main

import (
	"context"
	"fmt"

	"github.com/robolab/roboscene/internal/config"
	"github.com/robolab/roboscene/internal/motion"
	"github.com/robolab/roboscene/internal/scene"
	"github.com/robolab/roboscene/internal/spatial"
	"github.com/robolab/roboscene/internal/vistree"
)

func vec3(a [3]float64) spatial.Vec3 {
	return spatial.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// buildScene populates a fresh scene and its in-memory tree from a demo
// config, returning the motions that drive it.
func buildScene(ctx context.Context, cfg *config.Config) (*scene.Scene, *vistree.MemTree, motion.Group, error) {
	tree := vistree.NewMemTree()
	sc, err := scene.New(ctx, tree, scene.Config{
		Open:        true,
		Wait:        true,
		Strict:      cfg.Strict,
		TopColor:    cfg.Background.Top,
		BottomColor: cfg.Background.Bottom,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	eye := vec3(cfg.Camera.Pos)
	sc.SetCameraPose(spatial.LookAt(eye, vec3(cfg.Camera.LookAt), spatial.Vec3{Y: 1}))
	if cfg.Camera.Zoom > 0 {
		sc.SetCameraZoom(cfg.Camera.Zoom)
	}

	motions := make(motion.Group, 0, len(cfg.Objects))
	for _, oc := range cfg.Objects {
		obj, err := buildObject(oc)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := sc.AddObject(obj); err != nil {
			return nil, nil, nil, err
		}
		if m := buildMotion(obj, oc.Motion); m != nil {
			motions = append(motions, m)
		}
	}
	return sc, tree, motions, nil
}

func buildObject(oc config.ObjectConfig) (*scene.Object, error) {
	var obj *scene.Object
	switch oc.Shape {
	case "box":
		obj = scene.NewBox(oc.Name, vec3(oc.Size))
	case "sphere":
		obj = scene.NewSphere(oc.Name, oc.Radius)
	case "cylinder":
		obj = scene.NewCylinder(oc.Name, oc.Radius, oc.Height)
	default:
		return nil, fmt.Errorf("unknown shape %q", oc.Shape)
	}
	if oc.Color != [3]float64{} {
		obj.Color = oc.Color
	}
	if oc.Opacity > 0 {
		obj.Opacity = oc.Opacity
	}
	obj.SetPos(vec3(oc.Pos))
	return obj, nil
}

func buildMotion(obj *scene.Object, mc config.MotionConfig) motion.Motion {
	switch mc.Type {
	case "orbit":
		return motion.NewOrbit(obj, vec3(mc.Center), mc.Radius, mc.Omega)
	case "spin":
		return motion.NewSpin(obj, mc.Omega)
	case "lissajous":
		return motion.NewLissajous(obj, vec3(mc.Center), vec3(mc.Amp), vec3(mc.Freq))
	case "swing":
		return motion.NewSwing(obj, vec3(mc.Pivot), mc.Length, mc.Swing, mc.Omega)
	default:
		return nil
	}
}
