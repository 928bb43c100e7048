package meshing

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vec3At(s []float32, i int) mgl32.Vec3 {
	return mgl32.Vec3{s[i*3], s[i*3+1], s[i*3+2]}
}

// checkWinding verifies every triangle faces along its vertex normals.
func checkWinding(t *testing.T, name string, d Data) {
	t.Helper()
	if d.Count()%3 != 0 {
		t.Fatalf("%s: vertex count %d is not a triangle list", name, d.Count())
	}
	if len(d.UVs) != d.Count()*2 || len(d.Normals) != len(d.Positions) {
		t.Fatalf("%s: attribute streams have mismatched lengths", name)
	}
	for tri := 0; tri < d.Count()/3; tri++ {
		a := vec3At(d.Positions, tri*3)
		b := vec3At(d.Positions, tri*3+1)
		c := vec3At(d.Positions, tri*3+2)
		face := b.Sub(a).Cross(c.Sub(a))
		n := vec3At(d.Normals, tri*3).Add(vec3At(d.Normals, tri*3+1)).Add(vec3At(d.Normals, tri*3+2))
		if face.Len() < 1e-6 {
			t.Errorf("%s: triangle %d is degenerate", name, tri)
			continue
		}
		if face.Dot(n) <= 0 {
			t.Errorf("%s: triangle %d winds clockwise", name, tri)
		}
	}
}

func TestCube(t *testing.T) {
	d := Cube()
	if d.Count() != 36 {
		t.Fatalf("Expected 36 vertices, got %d", d.Count())
	}
	checkWinding(t, "cube", d)
	for i := 0; i < d.Count(); i++ {
		p := vec3At(d.Positions, i)
		for k := 0; k < 3; k++ {
			if p[k] != 1 && p[k] != -1 {
				t.Fatalf("Cube vertex %v is off the -1..1 box", p)
			}
		}
	}
}

func TestSphere(t *testing.T) {
	d := Sphere(8, 12)
	// Pole rings emit one triangle per segment, the others two.
	want := (12 + 12 + 6*12*2) * 3
	if d.Count() != want {
		t.Fatalf("Expected %d vertices, got %d", want, d.Count())
	}
	checkWinding(t, "sphere", d)
	for i := 0; i < d.Count(); i++ {
		if l := vec3At(d.Positions, i).Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("Vertex %d has radius %f", i, l)
		}
	}
}

func TestPlane(t *testing.T) {
	d := Plane(10, 4)
	if d.Count() != 6 {
		t.Fatalf("Expected 6 vertices, got %d", d.Count())
	}
	checkWinding(t, "plane", d)
	for i := 0; i < d.Count(); i++ {
		if vec3At(d.Normals, i) != (mgl32.Vec3{0, 1, 0}) {
			t.Errorf("Plane normal %d is not +Y", i)
		}
	}
}

func BenchmarkSphere(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Sphere(16, 24)
	}
}
