package meshing

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoTriangles is returned when a glTF file holds no triangle primitives.
var ErrNoTriangles = errors.New("meshing: no triangle primitives")

// LoadGLTF reads every triangle primitive of the first mesh in a .gltf or
// .glb file and flattens it into a non-indexed triangle list. Missing normals
// are replaced with face normals, missing texture coordinates with zeros.
func LoadGLTF(path string) (Data, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Data{}, fmt.Errorf("open %s: %w", path, err)
	}
	d, err := FromGLTF(doc)
	if err != nil {
		return Data{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// FromGLTF flattens the first mesh of doc.
func FromGLTF(doc *gltf.Document) (Data, error) {
	var d Data
	if len(doc.Meshes) == 0 {
		return d, ErrNoTriangles
	}
	for i, p := range doc.Meshes[0].Primitives {
		if p.Mode != gltf.PrimitiveTriangles {
			continue
		}
		if err := appendPrimitive(&d, doc, p); err != nil {
			return Data{}, fmt.Errorf("primitive %d: %w", i, err)
		}
	}
	if d.Count() == 0 {
		return d, ErrNoTriangles
	}
	return d, nil
}

func appendPrimitive(d *Data, doc *gltf.Document, p *gltf.Primitive) error {
	posIdx, ok := p.Attributes["POSITION"]
	if !ok {
		return errors.New("missing POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return err
	}

	var normals [][3]float32
	if idx, ok := p.Attributes["NORMAL"]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return err
		}
	}
	var uvs [][2]float32
	if idx, ok := p.Attributes["TEXCOORD_0"]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return err
		}
	}

	var indices []uint32
	if p.Indices != nil {
		if indices, err = modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil); err != nil {
			return err
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	for t := 0; t+2 < len(indices); t += 3 {
		tri := [3]uint32{indices[t], indices[t+1], indices[t+2]}
		var corners [3]mgl32.Vec3
		for k, idx := range tri {
			if int(idx) >= len(positions) {
				return fmt.Errorf("index %d out of range (%d positions)", idx, len(positions))
			}
			corners[k] = mgl32.Vec3(positions[idx])
		}
		face := corners[1].Sub(corners[0]).Cross(corners[2].Sub(corners[0]))
		if face.Len() > 0 {
			face = face.Normalize()
		}

		for k, idx := range tri {
			n := face
			if int(idx) < len(normals) {
				n = mgl32.Vec3(normals[idx])
			}
			var uv mgl32.Vec2
			if int(idx) < len(uvs) {
				uv = mgl32.Vec2(uvs[idx])
			}
			d.add(corners[k], n, uv)
		}
	}
	return nil
}
