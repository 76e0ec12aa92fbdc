package renderer

import (
	"sync"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/platform"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
	"github.com/spaghettifunk/prisma/engine/renderer/opengl"
)

type Renderer struct {
	backend RendererBackend
}

var initRenderer sync.Once
var renderer *Renderer

func Initialize(appName string, appWidth, appHeight uint32, platform *platform.Platform, reversedDepth bool) error {
	initRenderer.Do(func() {
		renderer = &Renderer{
			backend: opengl.New(platform),
		}
	})
	renderer.backend.EnableReversedDepth(reversedDepth)
	return renderer.backend.Initialize(appName, appWidth, appHeight)
}

func Shutdown() error {
	return renderer.backend.Shutdown()
}

func BeginFrame(deltaTime float64) error {
	return renderer.backend.BeginFrame(deltaTime)
}

func EndFrame(deltaTime float64) error {
	return renderer.backend.EndFrame(deltaTime)
}

func OnResize(width, height uint16) error {
	return renderer.backend.Resized(width, height)
}

// DrawFrame runs the per-frame geometry pass: the backend revalidates the
// geometry buffer, opens the pass, and the registered scene callbacks draw
// into it between Begin and End.
func DrawFrame(renderPacket *metadata.RenderPacket) error {
	if err := BeginFrame(renderPacket.DeltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}
	if err := EndFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}

// AttachmentTexture exposes one geometry buffer attachment for sampling by
// later passes.
func AttachmentTexture(attachment metadata.GBufferAttachment) uint32 {
	return renderer.backend.AttachmentTexture(attachment)
}

func DrawDebugTexture(texID uint32, mins, maxs math.Vec2) {
	renderer.backend.DrawDebugTexture(texID, mins, maxs)
}

func SetDebugView(enabled bool) {
	renderer.backend.SetDebugView(enabled)
}

func SetDepthRange(near, far float32) {
	renderer.backend.SetDepthRange(near, far)
}

func ReloadDebugShader(vertexSource, fragmentSource string) error {
	return renderer.backend.ReloadDebugShader(vertexSource, fragmentSource)
}
