package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/prisma/engine/core"
)

// Device is the seam between the renderer and the raw OpenGL entry points.
// Every GL call the renderer issues goes through this interface, so resource
// lifecycle logic stays testable without a live context. The production
// implementation is GLDevice; tests substitute a recording fake.
type Device interface {
	// context
	Init() error
	Version() string
	// Whether ARB_clip_control (reversed-depth rendering) is usable. The
	// reversed-depth path additionally requires shader-side changes, so it
	// stays opt-in even when the extension is present.
	SupportsClipSpaceControl() bool

	// textures
	GenTexture() uint32
	BindTexture(target uint32, texture uint32)
	ActiveTexture(unit uint32)
	TexParameteri(target uint32, pname uint32, param int32)
	TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format uint32, xtype uint32)
	DeleteTextures(textures []uint32)

	// framebuffers
	GenFramebuffer() uint32
	DeleteFramebuffer(fbo uint32)
	BindFramebuffer(target uint32, fbo uint32)
	FramebufferTexture2D(target uint32, attachment uint32, texTarget uint32, texture uint32, level int32)
	CheckFramebufferStatus(target uint32) uint32
	DrawBuffers(bufs []uint32)

	// global state
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	Clear(mask uint32)
	DepthFunc(fn uint32)
	DepthRangef(near, far float32)
	Viewport(x, y, width, height int32)

	// shaders
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) (bool, string)
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) (bool, string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, transpose bool, data []float32)
	Uniform1i(location int32, value int32)

	// vertex data
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target uint32, vbo uint32)
	DeleteBuffer(vbo uint32)
	BufferData(target uint32, sizeBytes int, usage uint32)
	BufferSubData(target uint32, offset int, data []float32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode uint32, first, count int32)
}

// GLDevice forwards every call to go-gl. It must only be used from the thread
// that owns the GL context.
type GLDevice struct {
	clipSpaceControl bool
}

func NewGLDevice() *GLDevice {
	return &GLDevice{}
}

func (d *GLDevice) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL bindings: %w", err)
	}
	d.clipSpaceControl = d.hasExtension("GL_ARB_clip_control")
	core.LogInfo("OpenGL initialized: %s", d.Version())
	return nil
}

func (d *GLDevice) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *GLDevice) SupportsClipSpaceControl() bool {
	return d.clipSpaceControl
}

func (d *GLDevice) hasExtension(name string) bool {
	var count int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &count)
	for i := int32(0); i < count; i++ {
		ext := gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i)))
		if ext == name {
			return true
		}
	}
	return false
}

func (d *GLDevice) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (d *GLDevice) BindTexture(target uint32, texture uint32) {
	gl.BindTexture(target, texture)
}

func (d *GLDevice) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (d *GLDevice) TexParameteri(target uint32, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (d *GLDevice) TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format uint32, xtype uint32) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, nil)
}

func (d *GLDevice) DeleteTextures(textures []uint32) {
	if len(textures) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(textures)), &textures[0])
}

func (d *GLDevice) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (d *GLDevice) DeleteFramebuffer(fbo uint32) {
	gl.DeleteFramebuffers(1, &fbo)
}

func (d *GLDevice) BindFramebuffer(target uint32, fbo uint32) {
	gl.BindFramebuffer(target, fbo)
}

func (d *GLDevice) FramebufferTexture2D(target uint32, attachment uint32, texTarget uint32, texture uint32, level int32) {
	gl.FramebufferTexture2D(target, attachment, texTarget, texture, level)
}

func (d *GLDevice) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (d *GLDevice) DrawBuffers(bufs []uint32) {
	gl.DrawBuffers(int32(len(bufs)), &bufs[0])
}

func (d *GLDevice) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *GLDevice) ClearDepth(depth float64) {
	gl.ClearDepth(depth)
}

func (d *GLDevice) Clear(mask uint32) {
	gl.Clear(mask)
}

func (d *GLDevice) DepthFunc(fn uint32) {
	gl.DepthFunc(fn)
}

func (d *GLDevice) DepthRangef(near, far float32) {
	gl.DepthRangef(near, far)
}

func (d *GLDevice) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *GLDevice) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (d *GLDevice) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (d *GLDevice) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *GLDevice) ShaderCompileStatus(shader uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
	return false, strings.TrimRight(infoLog, "\x00")
}

func (d *GLDevice) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *GLDevice) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *GLDevice) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *GLDevice) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *GLDevice) ProgramLinkStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return false, strings.TrimRight(infoLog, "\x00")
}

func (d *GLDevice) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *GLDevice) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *GLDevice) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *GLDevice) UniformMatrix4fv(location int32, transpose bool, data []float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &data[0])
}

func (d *GLDevice) Uniform1i(location int32, value int32) {
	gl.Uniform1i(location, value)
}

func (d *GLDevice) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (d *GLDevice) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *GLDevice) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *GLDevice) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (d *GLDevice) BindBuffer(target uint32, vbo uint32) {
	gl.BindBuffer(target, vbo)
}

func (d *GLDevice) DeleteBuffer(vbo uint32) {
	gl.DeleteBuffers(1, &vbo)
}

func (d *GLDevice) BufferData(target uint32, sizeBytes int, usage uint32) {
	gl.BufferData(target, sizeBytes, nil, usage)
}

func (d *GLDevice) BufferSubData(target uint32, offset int, data []float32) {
	gl.BufferSubData(target, offset, len(data)*4, gl.Ptr(data))
}

func (d *GLDevice) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
}

func (d *GLDevice) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *GLDevice) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}
