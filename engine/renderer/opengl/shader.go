package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
)

// Program wraps a linked GLSL program and caches its uniform locations.
type Program struct {
	dev      Device
	handle   uint32
	uniforms map[string]int32
}

func NewProgram(dev Device, vertexSource, fragmentSource string) (*Program, error) {
	vs, err := compileStage(dev, gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, err
	}
	fs, err := compileStage(dev, gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		dev.DeleteShader(vs)
		return nil, err
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vs)
	dev.AttachShader(program, fs)
	dev.LinkProgram(program)

	// stages are owned by the program once linked
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)

	if ok, infoLog := dev.ProgramLinkStatus(program); !ok {
		dev.DeleteProgram(program)
		return nil, fmt.Errorf("%w: link: %s", core.ErrShaderCompile, infoLog)
	}

	return &Program{
		dev:      dev,
		handle:   program,
		uniforms: make(map[string]int32),
	}, nil
}

func compileStage(dev Device, xtype uint32, source string) (uint32, error) {
	shader := dev.CreateShader(xtype)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)
	if ok, infoLog := dev.ShaderCompileStatus(shader); !ok {
		dev.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", core.ErrShaderCompile, infoLog)
	}
	return shader, nil
}

func (p *Program) Enable() {
	p.dev.UseProgram(p.handle)
}

func (p *Program) Disable() {
	p.dev.UseProgram(0)
}

func (p *Program) uniformLocation(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := p.dev.GetUniformLocation(p.handle, name)
	if loc < 0 {
		core.LogWarn("shader: uniform %q not found", name)
	}
	p.uniforms[name] = loc
	return loc
}

func (p *Program) SetUniformMatrix4(name string, transpose bool, m math.Mat4) {
	p.dev.UniformMatrix4fv(p.uniformLocation(name), transpose, m.Data[:])
}

func (p *Program) SetUniformInt(name string, value int32) {
	p.dev.Uniform1i(p.uniformLocation(name), value)
}

func (p *Program) Destroy() {
	if p.handle == 0 {
		return
	}
	p.dev.DeleteProgram(p.handle)
	p.handle = 0
}
