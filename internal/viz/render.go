package viz

import (
	"math"

	"github.com/robolab/roboscene/internal/spatial"
	"github.com/robolab/roboscene/internal/vistree"
)

const cylinderSegments = 8

// DrawTree renders every object node of a mirrored tree onto the canvas as a
// wireframe, viewed through the given camera pose and zoom.
func DrawTree(c *Canvas, p *Projector, tree *vistree.MemTree, camPose spatial.Mat4, zoom float64) {
	for _, path := range tree.Paths() {
		node, ok := tree.Node(path)
		if !ok || !node.HasObject {
			continue
		}
		drawGeometry(c, p, node.Geometry, node.Transform, camPose, zoom)
	}
}

func drawGeometry(c *Canvas, p *Projector, g vistree.Geometry, pose, camPose spatial.Mat4, zoom float64) {
	switch g.Kind {
	case vistree.Sphere:
		drawSphere(c, p, g, pose, camPose, zoom)
	case vistree.Box:
		drawBox(c, p, g, pose, camPose, zoom)
	case vistree.Cylinder:
		drawCylinder(c, p, g, pose, camPose, zoom)
	}
}

func drawSphere(c *Canvas, p *Projector, g vistree.Geometry, pose, camPose spatial.Mat4, zoom float64) {
	x, y, depth, ok := p.Project(camPose, zoom, pose.Pos())
	if !ok {
		return
	}
	c.Circle(x, y, p.Scale(zoom, g.Radius, depth))
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, // bottom face
	{4, 5}, {5, 7}, {7, 6}, {6, 4}, // top face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
}

func drawBox(c *Canvas, p *Projector, g vistree.Geometry, pose, camPose spatial.Mat4, zoom float64) {
	h := g.Lengths.Scale(0.5)
	var corners [8]spatial.Vec3
	for i := range corners {
		corner := spatial.Vec3{X: -h.X, Y: -h.Y, Z: -h.Z}
		if i&1 != 0 {
			corner.X = h.X
		}
		if i&2 != 0 {
			corner.Z = h.Z
		}
		if i&4 != 0 {
			corner.Y = h.Y
		}
		corners[i] = pose.Apply(corner)
	}
	drawEdges(c, p, corners[:], boxEdges[:], camPose, zoom)
}

func drawCylinder(c *Canvas, p *Projector, g vistree.Geometry, pose, camPose spatial.Mat4, zoom float64) {
	points := make([]spatial.Vec3, 0, 2*cylinderSegments)
	for _, sign := range []float64{-1, 1} {
		for i := 0; i < cylinderSegments; i++ {
			a := 2 * math.Pi * float64(i) / cylinderSegments
			points = append(points, pose.Apply(spatial.Vec3{
				X: g.Radius * math.Cos(a),
				Y: sign * g.Height / 2,
				Z: g.Radius * math.Sin(a),
			}))
		}
	}
	edges := make([][2]int, 0, 3*cylinderSegments)
	for i := 0; i < cylinderSegments; i++ {
		next := (i + 1) % cylinderSegments
		edges = append(edges,
			[2]int{i, next}, // bottom ring
			[2]int{cylinderSegments + i, cylinderSegments + next}, // top ring
			[2]int{i, cylinderSegments + i},                       // wall
		)
	}
	drawEdges(c, p, points, edges, camPose, zoom)
}

func drawEdges(c *Canvas, p *Projector, points []spatial.Vec3, edges [][2]int, camPose spatial.Mat4, zoom float64) {
	type proj struct {
		x, y int
		ok   bool
	}
	projected := make([]proj, len(points))
	for i, pt := range points {
		x, y, _, ok := p.Project(camPose, zoom, pt)
		projected[i] = proj{x, y, ok}
	}
	for _, e := range edges {
		a, b := projected[e[0]], projected[e[1]]
		if !a.ok || !b.ok {
			continue
		}
		c.Line(a.x, a.y, b.x, b.y)
	}
}
