package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
)

func newTestRenderer(t *testing.T, width, height uint32) (*Renderer, *fakeDevice) {
	t.Helper()
	dev := newFakeDevice()
	r := NewWithDevice(nil, dev)
	require.NoError(t, r.Initialize("test", width, height))
	return r, dev
}

func TestBackendInitializeAllocatesBuffer(t *testing.T) {
	r, dev := newTestRenderer(t, 800, 600)

	assert.True(t, r.GeometryBuffer().HasAttachments())
	assert.Equal(t, math.Extent2D{Width: 800, Height: 600}, r.GeometryBuffer().BufferSize())
	assert.Equal(t, AttachmentCount, dev.countCalls("GenTexture"))
}

func TestBackendFrameBindsClearsUnbinds(t *testing.T) {
	r, dev := newTestRenderer(t, 640, 480)

	dev.reset()
	require.NoError(t, r.BeginFrame(0.016))

	assert.True(t, r.GeometryBuffer().Bound())
	assert.Equal(t, 1, dev.countCalls("Clear"))
	assert.Equal(t, 1, dev.countCalls("Viewport"))

	require.NoError(t, r.EndFrame(0.016))
	assert.False(t, r.GeometryBuffer().Bound())
}

func TestBackendResizeRegeneratesOnNextFrame(t *testing.T) {
	r, dev := newTestRenderer(t, 640, 480)

	require.NoError(t, r.Resized(1024, 768))

	dev.reset()
	require.NoError(t, r.BeginFrame(0.016))
	require.NoError(t, r.EndFrame(0.016))

	assert.Equal(t, 1, dev.countCalls("DeleteTextures"))
	assert.Equal(t, AttachmentCount, dev.countCalls("GenTexture"))
	assert.Equal(t, math.Extent2D{Width: 1024, Height: 768}, r.GeometryBuffer().BufferSize())
}

func TestBackendDebugOverlayDrawsEveryAttachment(t *testing.T) {
	r, dev := newTestRenderer(t, 320, 200)
	r.SetDebugView(true)

	require.NoError(t, r.BeginFrame(0.016))
	dev.reset()
	require.NoError(t, r.EndFrame(0.016))

	assert.Equal(t, AttachmentCount, dev.countCalls("DrawArrays"))
}

func TestBackendAttachmentTextureExposure(t *testing.T) {
	r, _ := newTestRenderer(t, 64, 64)

	seen := map[uint32]bool{}
	for a := metadata.GBufferAttachment(0); a < metadata.GBufferAttachmentCount; a++ {
		tex := r.AttachmentTexture(a)
		assert.NotZero(t, tex)
		assert.False(t, seen[tex], "attachment handles must be distinct")
		seen[tex] = true
	}
}

func TestBackendFrameFailsOnLostSurface(t *testing.T) {
	r, _ := newTestRenderer(t, 64, 64)

	r.GeometryBuffer().buffer.Destroy()

	assert.ErrorIs(t, r.BeginFrame(0.016), core.ErrSurfaceInvalid)
}

func TestBackendShutdownReleasesResources(t *testing.T) {
	r, dev := newTestRenderer(t, 64, 64)

	require.NoError(t, r.Shutdown())

	assert.Empty(t, dev.liveTextures)
	assert.Equal(t, 1, dev.countCalls("DeleteFramebuffer"))
	assert.Equal(t, 1, dev.countCalls("DeleteProgram"))
	assert.Nil(t, r.GeometryBuffer())
}
