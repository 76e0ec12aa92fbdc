package renderer

import (
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
)

type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint16) error
	BeginFrame(deltaTime float64) error
	EndFrame(deltaTime float64) error
	AttachmentTexture(attachment metadata.GBufferAttachment) uint32
	DrawDebugTexture(texID uint32, mins, maxs math.Vec2)
	SetDebugView(enabled bool)
	SetDepthRange(near, far float32)
	EnableReversedDepth(enabled bool)
	ReloadDebugShader(vertexSource, fragmentSource string) error
}
