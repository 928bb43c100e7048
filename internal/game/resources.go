package game

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"

	"shadow-demo/internal/entity"
	"shadow-demo/internal/graphics"
	"shadow-demo/internal/light"
	"shadow-demo/internal/meshing"
	"shadow-demo/internal/model"
	"shadow-demo/internal/profiling"

	"golang.org/x/sync/errgroup"
)

// Resources owns every GPU object loaded for a session.
type Resources struct {
	shaders  []*graphics.Shader
	textures []uint32
	meshes   []model.Mesh

	Programs light.Programs
	Assets   entity.Assets
}

func shaderPaths(dir, name string, geometry bool) graphics.ShaderPaths {
	p := graphics.ShaderPaths{
		Vertex:   filepath.Join(dir, "shaders", "vertex", name+".glsl"),
		Fragment: filepath.Join(dir, "shaders", "fragment", name+".glsl"),
	}
	if geometry {
		p.Geometry = filepath.Join(dir, "shaders", "geometry", name+".glsl")
	}
	return p
}

// assetSource describes one drawable before anything touches the GPU.
type assetSource struct {
	texture  string
	fallback color.RGBA
	mesh     func() (meshing.Data, error)

	// filled by decode
	data  meshing.Data
	image *image.RGBA
}

func procedural(d meshing.Data) func() (meshing.Data, error) {
	return func() (meshing.Data, error) { return d, nil }
}

// shipMesh prefers the authored model and falls back to a box.
func shipMesh(dir string) func() (meshing.Data, error) {
	return func() (meshing.Data, error) {
		d, err := meshing.LoadGLTF(filepath.Join(dir, "models", "ship.gltf"))
		if err != nil {
			log.Printf("ship model: %v, using a box", err)
			return meshing.Cube(), nil
		}
		return d, nil
	}
}

// LoadResources compiles the shaders and uploads meshes and textures from
// dir. Files are decoded concurrently; GL objects are created on the calling
// thread.
func LoadResources(dir string) (*Resources, error) {
	defer profiling.Track("game.LoadResources")()

	sources := map[string]*assetSource{
		entity.NameShip:   {texture: "ship.bmp", fallback: color.RGBA{80, 160, 255, 255}, mesh: shipMesh(dir)},
		entity.NameShot:   {texture: "shot.bmp", fallback: color.RGBA{255, 200, 80, 255}, mesh: procedural(meshing.Sphere(8, 12))},
		entity.NameEnemy:  {texture: "enemy.bmp", fallback: color.RGBA{220, 60, 60, 255}, mesh: procedural(meshing.Sphere(12, 18))},
		entity.NameGround: {texture: "ground.bmp", fallback: color.RGBA{120, 120, 110, 255}, mesh: procedural(meshing.Plane(40, 10))},
	}

	var g errgroup.Group
	for _, src := range sources {
		g.Go(func() error {
			d, err := src.mesh()
			if err != nil {
				return err
			}
			src.data = d

			img, err := graphics.DecodeImage(filepath.Join(dir, "textures", src.texture))
			if err != nil {
				log.Printf("texture %s: %v, using solid color", src.texture, err)
				return nil
			}
			src.image = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("decode assets: %w", err)
	}

	r := &Resources{}
	shadowSimple, err := r.shader(shaderPaths(dir, "shadow_simple", false))
	if err != nil {
		r.Dispose()
		return nil, err
	}
	shadowCube, err := r.shader(shaderPaths(dir, "shadow_cube", true))
	if err != nil {
		r.Dispose()
		return nil, err
	}
	modelShader, err := r.shader(shaderPaths(dir, "model", false))
	if err != nil {
		r.Dispose()
		return nil, err
	}
	r.Programs = light.Programs{Simple: shadowSimple.ID, Cube: shadowCube.ID}

	drawable := func(name string) model.Drawable {
		src := sources[name]
		return model.Drawable{
			Mesh:    r.mesh(src.data),
			Texture: r.texture(src),
			Program: modelShader.ID,
		}
	}
	r.Assets = entity.Assets{
		Ship:   drawable(entity.NameShip),
		Shot:   drawable(entity.NameShot),
		Enemy:  drawable(entity.NameEnemy),
		Ground: drawable(entity.NameGround),
	}
	return r, nil
}

func (r *Resources) shader(paths graphics.ShaderPaths) (*graphics.Shader, error) {
	s, err := graphics.NewShader(paths)
	if err != nil {
		return nil, fmt.Errorf("load shader: %w", err)
	}
	r.shaders = append(r.shaders, s)
	return s, nil
}

func (r *Resources) mesh(d meshing.Data) model.Mesh {
	m := graphics.UploadMesh(d)
	r.meshes = append(r.meshes, m)
	return m
}

func (r *Resources) texture(src *assetSource) uint32 {
	var tex uint32
	if src.image != nil {
		tex = graphics.UploadImage(src.image)
	} else {
		tex = graphics.SolidTexture(src.fallback)
	}
	r.textures = append(r.textures, tex)
	return tex
}

// Dispose deletes everything. Must run on the GL thread.
func (r *Resources) Dispose() {
	for _, m := range r.meshes {
		graphics.DeleteMesh(m)
	}
	for _, t := range r.textures {
		graphics.DeleteTexture(t)
	}
	for _, s := range r.shaders {
		s.Delete()
	}
	r.meshes, r.textures, r.shaders = nil, nil, nil
}
