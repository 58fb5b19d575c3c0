package motion_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/robolab/roboscene/internal/motion"
	"github.com/robolab/roboscene/internal/scene"
	"github.com/robolab/roboscene/internal/spatial"
)

var _ = Describe("Orbit", func() {
	var (
		obj *scene.Object
		orb *motion.Orbit
	)

	BeforeEach(func() {
		obj = scene.NewSphere("planet", 0.1)
		orb = motion.NewOrbit(obj, spatial.Vec3{Y: 1}, 2, math.Pi)
	})

	It("starts on the +X side of the center", func() {
		orb.Step(0)
		Expect(obj.Pos().X).To(BeNumerically("~", 2, 1e-9))
		Expect(obj.Pos().Y).To(BeNumerically("~", 1, 1e-9))
		Expect(obj.Pos().Z).To(BeNumerically("~", 0, 1e-9))
	})

	It("reaches the opposite side after half a period", func() {
		orb.Step(1) // omega = pi rad/s
		Expect(obj.Pos().X).To(BeNumerically("~", -2, 1e-9))
	})

	It("keeps a constant distance from the center", func() {
		for _, t := range []float64{0, 0.3, 0.7, 1.4, 2.9} {
			orb.Step(t)
			Expect(obj.Pos().Sub(spatial.Vec3{Y: 1}).Length()).To(BeNumerically("~", 2, 1e-9))
		}
	})

	It("does not touch the object's rotation", func() {
		rot := spatial.RotationX(0.4)
		obj.SetRot(rot)
		orb.Step(1.3)
		Expect(obj.Rot()).To(Equal(rot))
	})
})

var _ = Describe("Spin", func() {
	It("is periodic in 2*pi/omega", func() {
		obj := scene.NewBox("crate", spatial.Vec3{X: 1, Y: 1, Z: 1})
		sp := motion.NewSpin(obj, 2)

		sp.Step(0.4)
		first := obj.Rot()
		sp.Step(0.4 + math.Pi) // one full turn at omega=2
		second := obj.Rot()

		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				Expect(second[i][j]).To(BeNumerically("~", first[i][j], 1e-9))
			}
		}
	})

	It("leaves the position untouched", func() {
		obj := scene.NewBox("crate", spatial.Vec3{X: 1, Y: 1, Z: 1})
		obj.SetPos(spatial.Vec3{X: 3, Y: 2, Z: 1})
		motion.NewSpin(obj, 1).Step(5)
		Expect(obj.Pos()).To(Equal(spatial.Vec3{X: 3, Y: 2, Z: 1}))
	})
})

var _ = Describe("Swing", func() {
	It("hangs straight down at t=0", func() {
		obj := scene.NewSphere("bob", 0.2)
		sw := motion.NewSwing(obj, spatial.Vec3{Y: 3}, 2, 0.5, 1)

		sw.Step(0)
		Expect(obj.Pos().X).To(BeNumerically("~", 0, 1e-9))
		Expect(obj.Pos().Y).To(BeNumerically("~", 1, 1e-9))
	})

	It("never exceeds the arm length from the pivot", func() {
		obj := scene.NewSphere("bob", 0.2)
		pivot := spatial.Vec3{Y: 3}
		sw := motion.NewSwing(obj, pivot, 2, 1.2, 3)

		for t := 0.0; t < 5; t += 0.1 {
			sw.Step(t)
			Expect(obj.Pos().Sub(pivot).Length()).To(BeNumerically("~", 2, 1e-9))
		}
	})
})

var _ = Describe("Group", func() {
	It("steps every member", func() {
		a := scene.NewSphere("a", 0.1)
		b := scene.NewSphere("b", 0.1)
		g := motion.Group{
			motion.NewOrbit(a, spatial.Vec3{}, 1, 1),
			motion.NewLissajous(b, spatial.Vec3{}, spatial.Vec3{X: 1}, spatial.Vec3{X: 1}),
		}

		g.Step(math.Pi / 2)
		Expect(a.Pos().Z).To(BeNumerically("~", 1, 1e-9))
		Expect(b.Pos().X).To(BeNumerically("~", 1, 1e-9))
	})
})
