package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type fakeCall struct {
	name string
	args []interface{}
}

// fakeDevice records every device call in order so driver-sequencing
// requirements can be asserted without a GL context.
type fakeDevice struct {
	calls []fakeCall

	nextTexture     uint32
	nextFramebuffer uint32
	nextShader      uint32
	nextProgram     uint32
	nextVAO         uint32
	nextVBO         uint32

	liveTextures map[uint32][2]int32
	boundFBO     uint32
	boundTexture uint32

	status           uint32
	clipSpaceControl bool
	failCompile      bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		liveTextures: make(map[uint32][2]int32),
		status:       gl.FRAMEBUFFER_COMPLETE,
	}
}

func (d *fakeDevice) record(name string, args ...interface{}) {
	d.calls = append(d.calls, fakeCall{name: name, args: args})
}

func (d *fakeDevice) callNames() []string {
	names := make([]string, len(d.calls))
	for i, c := range d.calls {
		names[i] = c.name
	}
	return names
}

func (d *fakeDevice) countCalls(name string) int {
	count := 0
	for _, c := range d.calls {
		if c.name == name {
			count++
		}
	}
	return count
}

func (d *fakeDevice) firstIndex(name string) int {
	for i, c := range d.calls {
		if c.name == name {
			return i
		}
	}
	return -1
}

func (d *fakeDevice) lastIndex(name string) int {
	last := -1
	for i, c := range d.calls {
		if c.name == name {
			last = i
		}
	}
	return last
}

func (d *fakeDevice) reset() {
	d.calls = nil
}

func (d *fakeDevice) Init() error     { d.record("Init"); return nil }
func (d *fakeDevice) Version() string { return "fake 4.1" }
func (d *fakeDevice) SupportsClipSpaceControl() bool {
	return d.clipSpaceControl
}

func (d *fakeDevice) GenTexture() uint32 {
	d.nextTexture++
	d.record("GenTexture", d.nextTexture)
	d.liveTextures[d.nextTexture] = [2]int32{-1, -1}
	return d.nextTexture
}

func (d *fakeDevice) BindTexture(target uint32, texture uint32) {
	d.record("BindTexture", target, texture)
	d.boundTexture = texture
}

func (d *fakeDevice) ActiveTexture(unit uint32) {
	d.record("ActiveTexture", unit)
}

func (d *fakeDevice) TexParameteri(target uint32, pname uint32, param int32) {
	d.record("TexParameteri", target, pname, param)
}

func (d *fakeDevice) TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format uint32, xtype uint32) {
	d.record("TexImage2D", internalFormat, width, height)
	if _, ok := d.liveTextures[d.boundTexture]; ok {
		d.liveTextures[d.boundTexture] = [2]int32{width, height}
	}
}

func (d *fakeDevice) DeleteTextures(textures []uint32) {
	cp := append([]uint32(nil), textures...)
	d.record("DeleteTextures", cp)
	for _, id := range cp {
		delete(d.liveTextures, id)
	}
}

func (d *fakeDevice) GenFramebuffer() uint32 {
	d.nextFramebuffer++
	d.record("GenFramebuffer", d.nextFramebuffer)
	return d.nextFramebuffer
}

func (d *fakeDevice) DeleteFramebuffer(fbo uint32) {
	d.record("DeleteFramebuffer", fbo)
}

func (d *fakeDevice) BindFramebuffer(target uint32, fbo uint32) {
	d.record("BindFramebuffer", fbo)
	d.boundFBO = fbo
}

func (d *fakeDevice) FramebufferTexture2D(target uint32, attachment uint32, texTarget uint32, texture uint32, level int32) {
	if texture == 0 {
		d.record("Detach", attachment)
		return
	}
	d.record("AttachTexture", attachment, texture)
}

func (d *fakeDevice) CheckFramebufferStatus(target uint32) uint32 {
	d.record("CheckFramebufferStatus")
	return d.status
}

func (d *fakeDevice) DrawBuffers(bufs []uint32) {
	cp := append([]uint32(nil), bufs...)
	d.record("DrawBuffers", cp)
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) { d.record("ClearColor", r, g, b, a) }
func (d *fakeDevice) ClearDepth(depth float64)      { d.record("ClearDepth", depth) }
func (d *fakeDevice) Clear(mask uint32)             { d.record("Clear", mask) }
func (d *fakeDevice) DepthFunc(fn uint32)           { d.record("DepthFunc", fn) }
func (d *fakeDevice) DepthRangef(near, far float32) { d.record("DepthRangef", near, far) }
func (d *fakeDevice) Viewport(x, y, w, h int32)     { d.record("Viewport", x, y, w, h) }

func (d *fakeDevice) CreateShader(xtype uint32) uint32 {
	d.nextShader++
	d.record("CreateShader", xtype)
	return d.nextShader
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) { d.record("ShaderSource", shader) }
func (d *fakeDevice) CompileShader(shader uint32)               { d.record("CompileShader", shader) }

func (d *fakeDevice) ShaderCompileStatus(shader uint32) (bool, string) {
	if d.failCompile {
		return false, fmt.Sprintf("fake compile error for shader %d", shader)
	}
	return true, ""
}

func (d *fakeDevice) DeleteShader(shader uint32) { d.record("DeleteShader", shader) }

func (d *fakeDevice) CreateProgram() uint32 {
	d.nextProgram++
	d.record("CreateProgram")
	return d.nextProgram
}

func (d *fakeDevice) AttachShader(program, shader uint32) { d.record("AttachShader", program, shader) }
func (d *fakeDevice) LinkProgram(program uint32)          { d.record("LinkProgram", program) }

func (d *fakeDevice) ProgramLinkStatus(program uint32) (bool, string) {
	return true, ""
}

func (d *fakeDevice) UseProgram(program uint32)    { d.record("UseProgram", program) }
func (d *fakeDevice) DeleteProgram(program uint32) { d.record("DeleteProgram", program) }

func (d *fakeDevice) GetUniformLocation(program uint32, name string) int32 {
	d.record("GetUniformLocation", name)
	return 1
}

func (d *fakeDevice) UniformMatrix4fv(location int32, transpose bool, data []float32) {
	d.record("UniformMatrix4fv", location)
}

func (d *fakeDevice) Uniform1i(location int32, value int32) {
	d.record("Uniform1i", location, value)
}

func (d *fakeDevice) GenVertexArray() uint32 {
	d.nextVAO++
	d.record("GenVertexArray")
	return d.nextVAO
}

func (d *fakeDevice) BindVertexArray(vao uint32)   { d.record("BindVertexArray", vao) }
func (d *fakeDevice) DeleteVertexArray(vao uint32) { d.record("DeleteVertexArray", vao) }

func (d *fakeDevice) GenBuffer() uint32 {
	d.nextVBO++
	d.record("GenBuffer")
	return d.nextVBO
}

func (d *fakeDevice) BindBuffer(target uint32, vbo uint32) { d.record("BindBuffer", target, vbo) }
func (d *fakeDevice) DeleteBuffer(vbo uint32)              { d.record("DeleteBuffer", vbo) }

func (d *fakeDevice) BufferData(target uint32, sizeBytes int, usage uint32) {
	d.record("BufferData", sizeBytes)
}

func (d *fakeDevice) BufferSubData(target uint32, offset int, data []float32) {
	cp := append([]float32(nil), data...)
	d.record("BufferSubData", offset, cp)
}

func (d *fakeDevice) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	d.record("VertexAttribPointer", index)
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray", index)
}

func (d *fakeDevice) DrawArrays(mode uint32, first, count int32) {
	d.record("DrawArrays", mode, first, count)
}

var _ Device = (*fakeDevice)(nil)
