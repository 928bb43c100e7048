package physics_test

import (
	"testing"

	"shadow-demo/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSphereSphere(t *testing.T) {
	a := physics.Sphere(mgl32.Vec3{0, 0, 0}, 1)
	b := physics.Sphere(mgl32.Vec3{1.5, 0, 0}, 1)
	if !physics.Collided(a, b) {
		t.Errorf("Expected overlapping spheres to collide")
	}

	far := physics.Sphere(mgl32.Vec3{0, 0, -10}, 1)
	if physics.Collided(a, far) {
		t.Errorf("Expected distant spheres to miss")
	}

	// Exactly touching
	touch := physics.Sphere(mgl32.Vec3{2, 0, 0}, 1)
	if physics.Collided(a, touch) {
		t.Errorf("Touching spheres should not collide")
	}
}

func TestBoxBox(t *testing.T) {
	a := physics.Box(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	b := physics.Box(mgl32.Vec3{1.5, 1.5, 0}, mgl32.Vec3{1, 1, 1})
	if !physics.Collided(a, b) {
		t.Errorf("Expected overlapping boxes to collide")
	}

	c := physics.Box(mgl32.Vec3{0, 3, 0}, mgl32.Vec3{1, 1, 1})
	if physics.Collided(a, c) {
		t.Errorf("Expected separated boxes to miss")
	}
}

func TestSphereBox(t *testing.T) {
	box := physics.Box(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})

	near := physics.Sphere(mgl32.Vec3{1.5, 0, 0}, 1)
	if !physics.Collided(near, box) || !physics.Collided(box, near) {
		t.Errorf("Expected sphere touching box face to collide in both argument orders")
	}

	// Closest point is the corner (1,1,1); distance from (2,2,2) is sqrt(3) > 1.5
	corner := physics.Sphere(mgl32.Vec3{2, 2, 2}, 1.5)
	if physics.Collided(corner, box) {
		t.Errorf("Expected sphere near corner to miss")
	}
}

func TestBounds(t *testing.T) {
	s := physics.Sphere(mgl32.Vec3{1, 2, 3}, 0.5)
	min, max := s.Bounds()
	if min != (mgl32.Vec3{0.5, 1.5, 2.5}) || max != (mgl32.Vec3{1.5, 2.5, 3.5}) {
		t.Errorf("Unexpected sphere bounds %v %v", min, max)
	}
}

func BenchmarkCollided(b *testing.B) {
	s := physics.Sphere(mgl32.Vec3{0, 0, 0}, 1)
	box := physics.Box(mgl32.Vec3{1, 0.5, 0}, mgl32.Vec3{0.5, 0.5, 0.5})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = physics.Collided(s, box)
	}
}
