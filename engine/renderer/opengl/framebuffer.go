package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/prisma/engine/core"
)

// Framebuffer wraps one GL framebuffer object. It owns only the FBO id, never
// the attached textures; attachment lifetime is the caller's business. All
// methods must run on the context-owning thread.
type Framebuffer struct {
	dev    Device
	handle uint32
	name   string
}

func NewFramebuffer(dev Device, name string) *Framebuffer {
	return &Framebuffer{
		dev:    dev,
		handle: dev.GenFramebuffer(),
		name:   name,
	}
}

// IsValid reports whether a framebuffer object exists behind this wrapper.
func (fb *Framebuffer) IsValid() bool {
	return fb != nil && fb.handle != 0
}

func (fb *Framebuffer) Bind() {
	fb.dev.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)
}

// Unbind restores the default framebuffer as the active render target.
func (fb *Framebuffer) Unbind() {
	fb.dev.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// AttachTexture binds a texture to the given attachment point. The
// framebuffer must currently be bound.
func (fb *Framebuffer) AttachTexture(texID uint32, texTarget uint32, attachment uint32) {
	fb.dev.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, texTarget, texID, 0)
}

// Detach unbinds whatever is attached at the given attachment point. Each
// point must be detached individually before the textures behind it are
// deleted; some drivers fault on bulk detaches of never-populated points.
func (fb *Framebuffer) Detach(attachment uint32) {
	fb.dev.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, gl.TEXTURE_2D, 0, 0)
}

// GetStatus returns the raw completeness status of the currently bound
// framebuffer.
func (fb *Framebuffer) GetStatus() uint32 {
	return fb.dev.CheckFramebufferStatus(gl.FRAMEBUFFER)
}

// CheckStatus queries completeness and logs the outcome. The framebuffer must
// currently be bound.
func (fb *Framebuffer) CheckStatus() bool {
	status := fb.GetStatus()
	switch status {
	case gl.FRAMEBUFFER_COMPLETE:
		core.LogDebug("FBO-%s: framebuffer complete", fb.name)
		return true
	case gl.FRAMEBUFFER_UNDEFINED:
		core.LogError("FBO-%s: framebuffer undefined", fb.name)
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		core.LogError("FBO-%s: incomplete attachment", fb.name)
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		core.LogError("FBO-%s: missing attachment", fb.name)
	case gl.FRAMEBUFFER_UNSUPPORTED:
		core.LogError("FBO-%s: unsupported attachment format combination", fb.name)
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		core.LogError("FBO-%s: incomplete multisample config", fb.name)
	default:
		core.LogError("FBO-%s: unknown framebuffer status 0x%04x", fb.name, status)
	}
	return false
}

// Destroy deletes the framebuffer object. Attachments must have been detached
// beforehand; deleting a complete FBO with live attachments crashes some
// drivers.
func (fb *Framebuffer) Destroy() {
	if !fb.IsValid() {
		return
	}
	fb.dev.DeleteFramebuffer(fb.handle)
	fb.handle = 0
}
