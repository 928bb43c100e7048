package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ShapeType selects how a Collider is interpreted
type ShapeType int

const (
	ShapeSphere ShapeType = iota
	ShapeBox
)

func (s ShapeType) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Collider is a world-space collision shape. Boxes are axis aligned.
type Collider struct {
	Type        ShapeType
	Center      mgl32.Vec3
	Radius      float32    // sphere only
	HalfExtents mgl32.Vec3 // box only
}

// Sphere returns a sphere collider
func Sphere(center mgl32.Vec3, radius float32) Collider {
	return Collider{Type: ShapeSphere, Center: center, Radius: radius}
}

// Box returns an axis aligned box collider
func Box(center, halfExtents mgl32.Vec3) Collider {
	return Collider{Type: ShapeBox, Center: center, HalfExtents: halfExtents}
}

// Bounds returns the axis aligned bounding box of the collider
func (c Collider) Bounds() (min, max mgl32.Vec3) {
	ext := c.HalfExtents
	if c.Type == ShapeSphere {
		ext = mgl32.Vec3{c.Radius, c.Radius, c.Radius}
	}
	return c.Center.Sub(ext), c.Center.Add(ext)
}

// Collided reports whether two shapes overlap. Touching surfaces do not count.
func Collided(a, b Collider) bool {
	switch {
	case a.Type == ShapeSphere && b.Type == ShapeSphere:
		r := a.Radius + b.Radius
		d := a.Center.Sub(b.Center)
		return d.Dot(d) < r*r
	case a.Type == ShapeBox && b.Type == ShapeBox:
		return boxesOverlap(a, b)
	case a.Type == ShapeSphere && b.Type == ShapeBox:
		return sphereBox(a, b)
	case a.Type == ShapeBox && b.Type == ShapeSphere:
		return sphereBox(b, a)
	}
	return false
}

func boxesOverlap(a, b Collider) bool {
	aMin, aMax := a.Bounds()
	bMin, bMax := b.Bounds()
	return aMin.X() < bMax.X() && aMax.X() > bMin.X() &&
		aMin.Y() < bMax.Y() && aMax.Y() > bMin.Y() &&
		aMin.Z() < bMax.Z() && aMax.Z() > bMin.Z()
}

// sphereBox clamps the sphere center onto the box and compares the distance
// to the closest point with the radius.
func sphereBox(sphere, box Collider) bool {
	bMin, bMax := box.Bounds()
	var closest mgl32.Vec3
	for i := 0; i < 3; i++ {
		closest[i] = mgl32.Clamp(sphere.Center[i], bMin[i], bMax[i])
	}
	d := sphere.Center.Sub(closest)
	return d.Dot(d) < sphere.Radius*sphere.Radius
}
