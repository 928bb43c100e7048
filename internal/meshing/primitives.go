package meshing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Data is a non-indexed triangle list split into separate attribute streams.
// Triangles wind counter-clockwise seen from outside.
type Data struct {
	Positions []float32 // xyz
	UVs       []float32 // uv
	Normals   []float32 // xyz
}

// Count returns the number of vertices.
func (d *Data) Count() int {
	return len(d.Positions) / 3
}

func (d *Data) add(p, n mgl32.Vec3, uv mgl32.Vec2) {
	d.Positions = append(d.Positions, p[0], p[1], p[2])
	d.Normals = append(d.Normals, n[0], n[1], n[2])
	d.UVs = append(d.UVs, uv[0], uv[1])
}

// Sphere builds a unit sphere from rings x segments quads.
func Sphere(rings, segments int) Data {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}
	var d Data
	point := func(i, j int) (mgl32.Vec3, mgl32.Vec2) {
		theta := math.Pi * float64(i) / float64(rings)
		phi := 2 * math.Pi * float64(j) / float64(segments)
		p := mgl32.Vec3{
			float32(math.Sin(theta) * math.Cos(phi)),
			float32(math.Cos(theta)),
			float32(math.Sin(theta) * math.Sin(phi)),
		}
		uv := mgl32.Vec2{float32(j) / float32(segments), 1 - float32(i)/float32(rings)}
		return p, uv
	}

	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			a, auv := point(i, j)
			b, buv := point(i+1, j)
			c, cuv := point(i+1, j+1)
			e, euv := point(i, j+1)

			// Skip the degenerate halves of the pole quads.
			if i != rings-1 {
				d.add(a, a, auv)
				d.add(c, c, cuv)
				d.add(b, b, buv)
			}
			if i != 0 {
				d.add(a, a, auv)
				d.add(e, e, euv)
				d.add(c, c, cuv)
			}
		}
	}
	return d
}

// cubeFaces lists normal, u and v axes with u x v = normal.
var cubeFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// Cube builds a cube spanning -1..1 on every axis.
func Cube() Data {
	var d Data
	for _, f := range cubeFaces {
		quad(&d, f[0], f[0], f[1], f[2], 1)
	}
	return d
}

// Plane builds a horizontal square of the given half size facing +Y. The
// texture repeats uvRepeat times across it.
func Plane(halfSize, uvRepeat float32) Data {
	var d Data
	up := mgl32.Vec3{0, 1, 0}
	quad(&d, mgl32.Vec3{}, up, mgl32.Vec3{halfSize, 0, 0}, mgl32.Vec3{0, 0, -halfSize}, uvRepeat)
	return d
}

func quad(d *Data, center, normal, u, v mgl32.Vec3, uvScale float32) {
	p0 := center.Sub(u).Sub(v)
	p1 := center.Add(u).Sub(v)
	p2 := center.Add(u).Add(v)
	p3 := center.Sub(u).Add(v)
	uv0 := mgl32.Vec2{0, 0}
	uv1 := mgl32.Vec2{uvScale, 0}
	uv2 := mgl32.Vec2{uvScale, uvScale}
	uv3 := mgl32.Vec2{0, uvScale}

	d.add(p0, normal, uv0)
	d.add(p1, normal, uv1)
	d.add(p2, normal, uv2)
	d.add(p0, normal, uv0)
	d.add(p2, normal, uv2)
	d.add(p3, normal, uv3)
}
