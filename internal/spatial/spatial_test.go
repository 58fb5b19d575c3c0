package spatial

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	z := x.Cross(y)
	if z != (Vec3{0, 0, 1}) {
		t.Errorf("expected unit z, got %+v", z)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	v := Vec3{}.Normalize()
	if v != (Vec3{}) {
		t.Errorf("normalizing zero vector should stay zero, got %+v", v)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Translation(Vec3{1, 2, 3})
	m.SetRot(RotationZ(0.7))

	r := m.Mul(Identity())
	if r != m {
		t.Errorf("m * I should equal m")
	}
}

func TestMat4PosRotBlocks(t *testing.T) {
	m := Identity()
	m.SetPos(Vec3{1, 2, 3})

	rot := RotationZ(math.Pi / 2)
	m.SetRot(rot)

	if m.Pos() != (Vec3{1, 2, 3}) {
		t.Errorf("SetRot disturbed translation: %+v", m.Pos())
	}
	if m.Rot() != rot {
		t.Errorf("rotation block mismatch")
	}

	m.SetPos(Vec3{4, 5, 6})
	if m.Rot() != rot {
		t.Errorf("SetPos disturbed rotation block")
	}
}

func TestMat4Apply(t *testing.T) {
	m := Identity()
	m.SetRot(RotationZ(math.Pi / 2))
	m.SetPos(Vec3{1, 0, 0})

	p := m.Apply(Vec3{1, 0, 0})
	if math.Abs(p.X-1) > 1e-12 || math.Abs(p.Y-1) > 1e-12 || math.Abs(p.Z) > 1e-12 {
		t.Errorf("expected (1,1,0), got %+v", p)
	}
}

func TestRotationOrthonormal(t *testing.T) {
	for _, r := range []Mat3{RotationX(0.3), RotationY(1.1), RotationZ(-0.8)} {
		rt := r.Mul(r.Transpose())
		id := Identity3()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if math.Abs(rt[i][j]-id[i][j]) > 1e-12 {
					t.Fatalf("R*R^T not identity at (%d,%d): %f", i, j, rt[i][j])
				}
			}
		}
	}
}

func TestLookAtFacesTarget(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	if m.Pos() != eye {
		t.Errorf("eye position lost: %+v", m.Pos())
	}
	// Camera -Z axis (third rotation column negated) should point at the target.
	fwd := Vec3{-m[0][2], -m[1][2], -m[2][2]}
	want := Vec3{}.Sub(eye).Normalize()
	if fwd.Sub(want).Length() > 1e-12 {
		t.Errorf("forward axis %+v, want %+v", fwd, want)
	}
}
