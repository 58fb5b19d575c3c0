package motion

import (
	"math"

	"github.com/robolab/roboscene/internal/scene"
	"github.com/robolab/roboscene/internal/spatial"
)

// Motion drives one object's pose as a function of time. Step is called once
// per render tick with the absolute scene time in seconds; implementations
// write the resulting pose into the object and leave everything else alone.
type Motion interface {
	Step(t float64)
}

// Orbit moves an object on a circle in the XZ plane around Center.
type Orbit struct {
	Object *scene.Object
	Center spatial.Vec3
	Radius float64
	Omega  float64 // angular velocity, rad/s
	Phase  float64
}

func NewOrbit(o *scene.Object, center spatial.Vec3, radius, omega float64) *Orbit {
	return &Orbit{Object: o, Center: center, Radius: radius, Omega: omega}
}

func (m *Orbit) Step(t float64) {
	a := m.Omega*t + m.Phase
	m.Object.SetPos(spatial.Vec3{
		X: m.Center.X + m.Radius*math.Cos(a),
		Y: m.Center.Y,
		Z: m.Center.Z + m.Radius*math.Sin(a),
	})
}

// Spin rotates an object in place about the Y axis.
type Spin struct {
	Object *scene.Object
	Omega  float64
}

func NewSpin(o *scene.Object, omega float64) *Spin {
	return &Spin{Object: o, Omega: omega}
}

func (m *Spin) Step(t float64) {
	m.Object.SetRot(spatial.RotationY(m.Omega * t))
}

// Lissajous moves an object along independent sinusoids per axis.
type Lissajous struct {
	Object *scene.Object
	Center spatial.Vec3
	Amp    spatial.Vec3
	Freq   spatial.Vec3
	Phase  spatial.Vec3
}

func NewLissajous(o *scene.Object, center, amp, freq spatial.Vec3) *Lissajous {
	return &Lissajous{Object: o, Center: center, Amp: amp, Freq: freq}
}

func (m *Lissajous) Step(t float64) {
	m.Object.SetPos(spatial.Vec3{
		X: m.Center.X + m.Amp.X*math.Sin(m.Freq.X*t+m.Phase.X),
		Y: m.Center.Y + m.Amp.Y*math.Sin(m.Freq.Y*t+m.Phase.Y),
		Z: m.Center.Z + m.Amp.Z*math.Sin(m.Freq.Z*t+m.Phase.Z),
	})
}

// Swing hangs an object from Pivot on an arm of the given Length and swings
// it like a pendulum in the XY plane, orienting the object along the arm.
type Swing struct {
	Object *scene.Object
	Pivot  spatial.Vec3
	Length float64
	Amp    float64 // peak deflection, rad
	Omega  float64
}

func NewSwing(o *scene.Object, pivot spatial.Vec3, length, amp, omega float64) *Swing {
	return &Swing{Object: o, Pivot: pivot, Length: length, Amp: amp, Omega: omega}
}

func (m *Swing) Step(t float64) {
	theta := m.Amp * math.Sin(m.Omega*t)
	m.Object.SetPos(spatial.Vec3{
		X: m.Pivot.X + m.Length*math.Sin(theta),
		Y: m.Pivot.Y - m.Length*math.Cos(theta),
		Z: m.Pivot.Z,
	})
	m.Object.SetRot(spatial.RotationZ(theta))
}

// Group steps several motions together.
type Group []Motion

func (g Group) Step(t float64) {
	for _, m := range g {
		m.Step(t)
	}
}
