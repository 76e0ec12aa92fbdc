package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
)

const AttachmentCount = int(metadata.GBufferAttachmentCount)

// fatalf aborts on caller-contract breaches. Recovering from one risks silent
// GPU-state corruption, so it is never surfaced as an error value.
var fatalf = core.LogFatal

// attachmentZVal is the slot holding the depth texture; every other slot is a
// color attachment.
const attachmentZVal = int(metadata.GBufferAttachmentDepth)

// ViewportFunc reports the externally owned drawable size the geometry buffer
// should match. Injected so the buffer is testable without a window.
type ViewportFunc func() (int32, int32)

// GeometryBuffer owns the multi-render-target surface a deferred geometry
// pass draws into and later passes sample from. The framebuffer object is
// created once and lives as long as the buffer; only the attached textures
// cycle through allocate/free as the wanted size changes.
type GeometryBuffer struct {
	dev  Device
	name string

	textureIDs     [AttachmentCount]uint32
	attachments    [AttachmentCount]uint32
	attachmentName [AttachmentCount]string

	buffer *Framebuffer

	prevBufferSize math.Extent2D
	currBufferSize math.Extent2D

	viewport ViewportFunc

	// reversed-depth rendering; requires clip-space control and shader-side
	// awareness, so it is opt-in per platform
	useClipSpaceControl bool

	dead  bool
	bound bool
}

func NewGeometryBuffer(dev Device, name string, viewport ViewportFunc) *GeometryBuffer {
	return &GeometryBuffer{
		dev:      dev,
		name:     name,
		buffer:   NewFramebuffer(dev, name),
		viewport: viewport,
	}
}

func (gb *GeometryBuffer) Init(ctor bool) {
	// if dead, this must be a non-ctor reload
	if gb.dead && ctor {
		fatalf("GeometryBuffer-%s: construction-path Init on a killed instance", gb.name)
	}

	for n := 0; n < AttachmentCount; n++ {
		gb.textureIDs[n] = 0
		gb.attachments[n] = 0
		gb.attachmentName[n] = ""
	}

	// NOTE:
	//   external callers can toggle deferred drawing at any time and might be
	//   the first to invoke Update --> initial buffer size must be (0, 0) so
	//   prevSize != currSize (when !init)
	gb.prevBufferSize = gb.WantedSize(false)
	gb.currBufferSize = gb.WantedSize(true)

	gb.dead = false
	gb.bound = false
}

func (gb *GeometryBuffer) Kill(dtor bool) {
	if gb.dead {
		// if already dead, this must be final cleanup
		if !dtor {
			fatalf("GeometryBuffer-%s: Kill on a dead instance outside destruction", gb.name)
		}
		return
	}

	if gb.buffer.IsValid() {
		gb.DetachTextures(false)
	}

	gb.dead = true
}

// Destroy releases the framebuffer object itself. Only legal after Kill.
func (gb *GeometryBuffer) Destroy() {
	if !gb.dead {
		fatalf("GeometryBuffer-%s: Destroy before Kill", gb.name)
	}
	gb.buffer.Destroy()
}

// Bind makes the geometry buffer the active render target.
func (gb *GeometryBuffer) Bind() {
	gb.buffer.Bind()
	gb.bound = true
}

func (gb *GeometryBuffer) Unbind() {
	gb.buffer.Unbind()
	gb.bound = false
}

func (gb *GeometryBuffer) Bound() bool {
	return gb.bound
}

// Clear wipes color to transparent black and resets the depth buffer. The
// surface must already be the active render target.
func (gb *GeometryBuffer) Clear() {
	if !gb.bound {
		fatalf("GeometryBuffer-%s: Clear while not bound", gb.name)
	}
	gb.dev.ClearColor(0.0, 0.0, 0.0, 0.0)
	gb.dev.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetDepthRange configures the depth-clear value and comparison function such
// that the zero-initialized depth attachment reads as "not yet drawn".
func (gb *GeometryBuffer) SetDepthRange(nearDepth, farDepth float32) {
	if gb.useClipSpaceControl && gb.dev.SupportsClipSpaceControl() {
		// TODO: shaders need to know about the flipped range before this can
		// become the default path
		gb.dev.DepthRangef(nearDepth, farDepth)
		gb.dev.ClearDepth(float64(farDepth))
		if nearDepth <= farDepth {
			gb.dev.DepthFunc(gl.LEQUAL)
		} else {
			gb.dev.DepthFunc(gl.GREATER)
		}
		return
	}

	gb.dev.ClearDepth(float64(math.Max(nearDepth, farDepth)))
	gb.dev.DepthFunc(gl.LEQUAL)
}

// EnableClipSpaceControl opts into the reversed-depth strategy on platforms
// whose driver supports it.
func (gb *GeometryBuffer) EnableClipSpaceControl(enabled bool) {
	gb.useClipSpaceControl = enabled
}

// DetachTextures returns the buffer to an incomplete but valid state: zero
// attachments, framebuffer object still alive.
func (gb *GeometryBuffer) DetachTextures(init bool) {
	// nothing to detach yet during init
	if init {
		return
	}

	gb.buffer.Bind()

	// detach each color attachment individually, some drivers crash on bulk
	// detaches of attachments that were never populated
	for n := 0; n < AttachmentCount-1; n++ {
		gb.buffer.Detach(uint32(gl.COLOR_ATTACHMENT0 + n))
	}

	gb.buffer.Detach(gl.DEPTH_ATTACHMENT)
	gb.buffer.Unbind()

	gb.dev.DeleteTextures(gb.textureIDs[:])

	// return to incomplete state
	for n := 0; n < AttachmentCount; n++ {
		gb.textureIDs[n] = 0
		gb.attachments[n] = 0
		gb.attachmentName[n] = ""
	}
}

// Create allocates one texture per attachment slot at the given size and
// wires them all to the framebuffer. Allocation strictly precedes attachment;
// Mesa mis-evaluates completeness if the FBO is bound before every texture
// image exists.
func (gb *GeometryBuffer) Create(size math.Extent2D) bool {
	n := 0

	for ; n < AttachmentCount; n++ {
		gb.textureIDs[n] = gb.dev.GenTexture()
		gb.attachmentName[n] = uuid.New().String()
		gb.dev.BindTexture(gl.TEXTURE_2D, gb.textureIDs[n])

		gb.dev.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
		gb.dev.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
		gb.dev.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gb.dev.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

		if n == attachmentZVal {
			gb.dev.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT32F, size.Width, size.Height, gl.DEPTH_COMPONENT, gl.FLOAT)
			gb.attachments[n] = gl.DEPTH_ATTACHMENT
		} else {
			gb.dev.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, size.Width, size.Height, gl.RGBA, gl.UNSIGNED_BYTE)
			gb.attachments[n] = uint32(gl.COLOR_ATTACHMENT0 + n)
		}
	}

	for gb.buffer.Bind(); n > 0; n-- {
		gb.buffer.AttachTexture(gb.textureIDs[n-1], gl.TEXTURE_2D, gb.attachments[n-1])
	}

	gb.dev.BindTexture(gl.TEXTURE_2D, 0)
	// define the attachments we are going to draw into
	// note: the depth-texture attachment does not count
	// here and will be GL_NONE implicitly!
	gb.dev.DrawBuffers(gb.attachments[:AttachmentCount-1])

	// FBO must have been valid from point of construction if we got here,
	// but CheckStatus can still invalidate it
	if !gb.buffer.IsValid() {
		fatalf("GeometryBuffer-%s: surface lost during Create", gb.name)
	}

	ret := gb.buffer.CheckStatus()

	gb.buffer.Unbind()
	return ret
}

func (gb *GeometryBuffer) Update(init bool) bool {
	// a killed instance must go through a reload Init before anything else
	if gb.dead {
		fatalf("GeometryBuffer-%s: Update on a dead instance", gb.name)
		return false
	}

	gb.currBufferSize = gb.WantedSize(true)

	// FBO must be valid from point of construction
	if !gb.buffer.IsValid() {
		fatalf("GeometryBuffer-%s: Update before surface construction", gb.name)
		return false
	}

	// buffer isn't bound by calling context, can not call
	// GetStatus to check for GL_FRAMEBUFFER_COMPLETE here
	//
	if gb.HasAttachments() {
		// buffer was already initialized so it has attachments --> check if
		// they need to be regenerated, eg. if a window resize event happened
		if gb.prevBufferSize.Equals(gb.currBufferSize) {
			return true
		}

		gb.DetachTextures(init)
	}

	gb.prevBufferSize = gb.currBufferSize
	return gb.Create(gb.currBufferSize)
}

// WantedSize returns the size the attachments should have. When resizing is
// not allowed by policy the wanted size collapses to (0, 0).
func (gb *GeometryBuffer) WantedSize(allowed bool) math.Extent2D {
	if allowed {
		w, h := gb.viewport()
		return math.Extent2D{Width: w, Height: h}
	}
	return math.Extent2D{}
}

// HasAttachments reports whether any slot is currently wired to the surface.
func (gb *GeometryBuffer) HasAttachments() bool {
	for n := 0; n < AttachmentCount; n++ {
		if gb.attachments[n] != 0 {
			return true
		}
	}
	return false
}

// BufferTexture exposes the texture handle of one attachment slot for use as
// a shader-sampled input by later passes.
func (gb *GeometryBuffer) BufferTexture(attachment metadata.GBufferAttachment) uint32 {
	return gb.textureIDs[attachment]
}

// BufferSize returns the last realized attachment size.
func (gb *GeometryBuffer) BufferSize() math.Extent2D {
	return gb.prevBufferSize
}

func (gb *GeometryBuffer) Dead() bool {
	return gb.dead
}

func (gb *GeometryBuffer) Valid() bool {
	return gb.buffer.IsValid()
}

// DrawDebug blits an arbitrary externally-owned texture through the debug
// quad pipeline, spanning the given UV rectangle. Owns no state of its own.
func (gb *GeometryBuffer) DrawDebug(drawer *DebugDrawer, texID uint32, texMins, texMaxs math.Vec2) {
	drawer.DrawTexture(texID, texMins, texMaxs)
}
