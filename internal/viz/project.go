package viz

import (
	"math"

	"github.com/robolab/roboscene/internal/spatial"
)

const nearPlane = 0.05

// Projector maps world points through a camera pose onto canvas sub-pixels.
// The camera pose is camera-to-world (the scene's convention); the camera
// looks down its local -Z axis.
type Projector struct {
	Width, Height int // sub-pixel dimensions
	FOV           float64
}

func NewProjector(w, h int) *Projector {
	return &Projector{Width: w, Height: h, FOV: math.Pi / 4}
}

// Project converts a world point to canvas coordinates. Returns x, y, the
// camera-space depth, and whether the point is in front of the near plane.
func (p *Projector) Project(camPose spatial.Mat4, zoom float64, world spatial.Vec3) (int, int, float64, bool) {
	rel := world.Sub(camPose.Pos())
	local := camPose.Rot().Transpose().Apply(rel)

	depth := -local.Z
	if depth < nearPlane {
		return 0, 0, depth, false
	}

	minDim := float64(p.Height)
	if float64(p.Width) < minDim {
		minDim = float64(p.Width)
	}
	f := zoom * minDim / (2 * math.Tan(p.FOV/2))

	x := int(local.X/depth*f) + p.Width/2
	y := p.Height/2 - int(local.Y/depth*f)
	return x, y, depth, true
}

// Scale returns the on-canvas size of a world-space length at the given
// depth, for sizing sphere outlines.
func (p *Projector) Scale(zoom, length, depth float64) int {
	if depth < nearPlane {
		return 0
	}
	minDim := float64(p.Height)
	if float64(p.Width) < minDim {
		minDim = float64(p.Width)
	}
	f := zoom * minDim / (2 * math.Tan(p.FOV/2))
	return int(length / depth * f)
}
