package opengl

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebufferLifecycle(t *testing.T) {
	dev := newFakeDevice()
	fb := NewFramebuffer(dev, "lifecycle")

	require.True(t, fb.IsValid())

	fb.Bind()
	assert.Equal(t, fb.handle, dev.boundFBO)

	fb.Unbind()
	assert.Zero(t, dev.boundFBO)

	fb.Destroy()
	assert.False(t, fb.IsValid())
	assert.Equal(t, 1, dev.countCalls("DeleteFramebuffer"))

	// destroying twice must not delete twice
	fb.Destroy()
	assert.Equal(t, 1, dev.countCalls("DeleteFramebuffer"))
}

func TestFramebufferDetachUsesZeroTexture(t *testing.T) {
	dev := newFakeDevice()
	fb := NewFramebuffer(dev, "detach")

	fb.Bind()
	fb.AttachTexture(42, gl.TEXTURE_2D, gl.COLOR_ATTACHMENT0)
	fb.Detach(gl.COLOR_ATTACHMENT0)

	assert.Equal(t, 1, dev.countCalls("AttachTexture"))
	assert.Equal(t, 1, dev.countCalls("Detach"))
}

func TestFramebufferCheckStatus(t *testing.T) {
	dev := newFakeDevice()
	fb := NewFramebuffer(dev, "status")

	fb.Bind()
	assert.True(t, fb.CheckStatus())
	assert.Equal(t, uint32(gl.FRAMEBUFFER_COMPLETE), fb.GetStatus())

	dev.status = gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	assert.False(t, fb.CheckStatus())

	dev.status = gl.FRAMEBUFFER_UNSUPPORTED
	assert.False(t, fb.CheckStatus())
}

func TestNilFramebufferIsInvalid(t *testing.T) {
	var fb *Framebuffer
	assert.False(t, fb.IsValid())
}
