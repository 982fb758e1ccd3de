package graphics

import "github.com/go-gl/mathgl/mgl32"

// Shader represents a linked shader program on a Device
type Shader struct {
	ID uint32

	device    Device
	locations map[string]int32
}

// NewShader compiles and links a program from vertex and fragment sources.
// The returned error is a *ShaderCompileError or *ShaderLinkError carrying the driver log.
func NewShader(device Device, vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := device.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{
		ID:        program,
		device:    device,
		locations: make(map[string]int32),
	}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	s.device.UseProgram(s.ID)
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	s.device.Uniform1i(s.location(name), value)
}

// SetVector2 sets a vec2 uniform
func (s *Shader) SetVector2(name string, v mgl32.Vec2) {
	s.device.Uniform2f(s.location(name), v.X(), v.Y())
}

// Delete releases the program. Safe to call more than once.
func (s *Shader) Delete() {
	if s.ID == 0 {
		return
	}
	s.device.DeleteProgram(s.ID)
	s.ID = 0
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := s.device.UniformLocation(s.ID, name)
	s.locations[name] = loc
	return loc
}
