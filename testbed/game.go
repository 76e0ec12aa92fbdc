package testbed

import (
	"github.com/spaghettifunk/prisma/engine"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/renderer"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	width  uint32
	height uint32

	// attachment cycled through the fullscreen inspection view
	inspected metadata.GBufferAttachment
}

func NewTestGame(configPath string) (*TestGame, error) {
	config, err := engine.LoadApplicationConfig(configPath)
	if err != nil {
		return nil, err
	}

	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize

	return tg, nil
}

func (g *TestGame) Initialize() error {
	core.LogInfo("testbed initialized")
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, g, g.onKey)
	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	return nil
}

// Render runs between the geometry pass begin/end: everything drawn here
// lands in the geometry buffer attachments.
func (g *TestGame) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	// no scene geometry yet; the buffer still clears and the overlay shows
	// the attachment contents
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) onKey(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	state := g.State.(*gameState)
	switch core.KeyCode(data.Data.U16[0]) {
	case core.KEY_TAB:
		state.inspected = (state.inspected + 1) % metadata.GBufferAttachmentCount
		core.LogInfo("inspecting attachment %s (texture %d)",
			state.inspected, renderer.AttachmentTexture(state.inspected))
		return true
	}
	return false
}
