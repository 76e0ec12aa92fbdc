package opengl

import (
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/platform"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
)

// Renderer is the OpenGL rendering backend. It owns the geometry buffer the
// deferred geometry pass renders into and the debug drawer used to inspect
// its attachments.
type Renderer struct {
	platform *platform.Platform
	device   Device

	gbuffer *GeometryBuffer
	debug   *DebugDrawer

	framebufferWidth  int32
	framebufferHeight int32

	reversedDepth bool
	debugView     bool
}

func New(p *platform.Platform) *Renderer {
	return &Renderer{
		platform: p,
		device:   NewGLDevice(),
	}
}

// NewWithDevice builds a renderer over an explicit device, used by tests and
// by platforms carrying an instrumented GL wrapper.
func NewWithDevice(p *platform.Platform, dev Device) *Renderer {
	return &Renderer{
		platform: p,
		device:   dev,
	}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := r.device.Init(); err != nil {
		core.LogError(err.Error())
		return err
	}

	r.framebufferWidth = int32(appWidth)
	r.framebufferHeight = int32(appHeight)
	if r.platform != nil {
		r.framebufferWidth, r.framebufferHeight = r.platform.FramebufferSize()
	}

	r.gbuffer = NewGeometryBuffer(r.device, appName, r.wantedViewport)
	r.gbuffer.Init(true)
	r.gbuffer.EnableClipSpaceControl(r.reversedDepth)

	// first update always performs the real allocation
	if !r.gbuffer.Update(true) {
		core.LogWarn("geometry buffer incomplete at startup, deferred rendering unavailable")
	}

	debug, err := NewDebugDrawer(r.device, DefaultDebugVertexShader, DefaultDebugFragmentShader)
	if err != nil {
		core.LogError(err.Error())
		return err
	}
	r.debug = debug

	return nil
}

func (r *Renderer) Shutdown() error {
	if r.debug != nil {
		r.debug.Destroy()
		r.debug = nil
	}
	if r.gbuffer != nil {
		r.gbuffer.Kill(false)
		r.gbuffer.Destroy()
		r.gbuffer = nil
	}
	return nil
}

func (r *Renderer) Resized(width, height uint16) error {
	r.framebufferWidth = int32(width)
	r.framebufferHeight = int32(height)
	core.LogInfo("OpenGL renderer backend->resized: w/h: %d/%d", width, height)
	// attachments regenerate on the next frame's geometry buffer update
	return nil
}

// BeginFrame revalidates the geometry buffer against the wanted size and
// opens the geometry pass: bind, depth setup, clear.
func (r *Renderer) BeginFrame(deltaTime float64) error {
	if !r.gbuffer.Valid() {
		return core.ErrSurfaceInvalid
	}
	if !r.gbuffer.Update(false) {
		return core.ErrFramebufferIncomplete
	}

	r.gbuffer.Bind()
	r.device.Viewport(0, 0, r.framebufferWidth, r.framebufferHeight)
	r.gbuffer.SetDepthRange(0.0, 1.0)
	r.gbuffer.Clear()
	return nil
}

// EndFrame closes the geometry pass and, when the debug view is active,
// blits every attachment to the default framebuffer.
func (r *Renderer) EndFrame(deltaTime float64) error {
	r.gbuffer.Unbind()

	if r.debugView {
		r.drawDebugOverlay()
	}
	return nil
}

// drawDebugOverlay lays the attachments out in a 2x3 grid of screen quads,
// each cell given in unit-square coordinates.
func (r *Renderer) drawDebugOverlay() {
	cols, rows := float32(3), float32(2)
	for i := 0; i < AttachmentCount; i++ {
		cx := float32(i%3) / cols
		cy := float32(i/3) / rows
		mins := math.Vec2{X: cx, Y: cy}
		maxs := math.Vec2{X: cx + 1.0/cols, Y: cy + 1.0/rows}
		r.gbuffer.DrawDebug(r.debug, r.gbuffer.textureIDs[i], mins, maxs)
	}
}

func (r *Renderer) AttachmentTexture(attachment metadata.GBufferAttachment) uint32 {
	return r.gbuffer.BufferTexture(attachment)
}

func (r *Renderer) DrawDebugTexture(texID uint32, mins, maxs math.Vec2) {
	r.gbuffer.DrawDebug(r.debug, texID, mins, maxs)
}

func (r *Renderer) SetDebugView(enabled bool) {
	r.debugView = enabled
}

func (r *Renderer) SetDepthRange(near, far float32) {
	r.gbuffer.SetDepthRange(near, far)
}

// EnableReversedDepth opts into the clip-space-control depth strategy. Must
// be called before Initialize.
func (r *Renderer) EnableReversedDepth(enabled bool) {
	r.reversedDepth = enabled
}

// ReloadDebugShader recompiles the debug quad program from new sources.
func (r *Renderer) ReloadDebugShader(vertexSource, fragmentSource string) error {
	return r.debug.ReloadShader(vertexSource, fragmentSource)
}

// GeometryBuffer exposes the underlying buffer to the render-pass scheduler
// for explicit bind/unbind sequencing.
func (r *Renderer) GeometryBuffer() *GeometryBuffer {
	return r.gbuffer
}

func (r *Renderer) wantedViewport() (int32, int32) {
	return r.framebufferWidth, r.framebufferHeight
}
