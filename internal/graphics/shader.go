package graphics

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID        uint32
	locations map[string]int32
}

// NewShader creates a new shader program from vertex and fragment shader source files
func NewShader(vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader file: %w", err)
	}

	return NewShaderFromSource(string(vertexSource), string(fragmentSource))
}

// NewShaderFromSource compiles and links a program from GLSL source.
func NewShaderFromSource(vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program, locations: make(map[string]int32)}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Location returns the cached uniform location; -1 for names the linker
// dropped, which GL ignores on upload.
func (s *Shader) Location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.Location(name), value)
}

func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.Location(name), value)
}

func (s *Shader) SetVector3(name string, v mgl32.Vec3) {
	gl.Uniform3f(s.Location(name), v[0], v[1], v[2])
}

// SetMatrix4 uploads m untransposed; mgl32 is already column-major.
func (s *Shader) SetMatrix4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.Location(name), 1, false, &m[0])
}

func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
	s.ID = 0
}

// Helper functions
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("%w: link: %v", ErrShader, log)
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

		return 0, fmt.Errorf("%w: compile: %v", ErrShader, log)
	}
	return shader, nil
}
