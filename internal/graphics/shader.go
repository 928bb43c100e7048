package graphics

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID uint32
}

// ShaderPaths names the source files of one program. Geometry is optional.
type ShaderPaths struct {
	Vertex   string
	Geometry string
	Fragment string
}

// NewShader creates a new shader program from source files
func NewShader(paths ShaderPaths) (*Shader, error) {
	vertexSource, err := os.ReadFile(paths.Vertex)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(paths.Fragment)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader file: %w", err)
	}

	var geometrySource []byte
	if paths.Geometry != "" {
		geometrySource, err = os.ReadFile(paths.Geometry)
		if err != nil {
			return nil, fmt.Errorf("could not read geometry shader file: %w", err)
		}
	}

	program, err := compileProgram(string(vertexSource), string(geometrySource), string(fragmentSource))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", paths.Vertex, err)
	}

	return &Shader{ID: program}, nil
}

// Delete releases the program
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

// Helper functions
func compileProgram(vertexSrc, geometrySrc, fragmentSrc string) (uint32, error) {
	stages := []struct {
		src  string
		kind uint32
	}{
		{vertexSrc, gl.VERTEX_SHADER},
		{geometrySrc, gl.GEOMETRY_SHADER},
		{fragmentSrc, gl.FRAGMENT_SHADER},
	}

	program := gl.CreateProgram()
	var shaders []uint32
	defer func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}()

	for _, st := range stages {
		if st.src == "" {
			continue
		}
		shader, err := compileShader(st.src, st.kind)
		if err != nil {
			gl.DeleteProgram(program)
			return 0, err
		}
		shaders = append(shaders, shader)
		gl.AttachShader(program, shader)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}
