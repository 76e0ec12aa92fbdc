package engine

import (
	"sync"

	"github.com/spaghettifunk/prisma/engine/assets"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/platform"
	"github.com/spaghettifunk/prisma/engine/renderer"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	isSuspended  bool
	platform     *platform.Platform
	shaderWatch  *assets.ShaderWatcher
	width        uint32
	height       uint32
	clock        *core.Clock
	metrics      *core.Metrics
	lastTime     float64
	debugView    bool

	// shader sources delivered by the watcher goroutine, applied on the
	// context-owning thread at the top of the frame
	shaderMutex   sync.Mutex
	pendingShader *[2]string
}

func New(g *Game) (*Engine, error) {
	p := platform.New()

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		platform:     p,
		isRunning:    true,
		isSuspended:  false,
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
		debugView:    g.ApplicationConfig.DebugView,
		lastTime:     0,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	core.SetLogLevel(e.gameInstance.ApplicationConfig.LogLevel)

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		core.LogWarn("event system was already initialized")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e, e.onResized)

	if err := e.platform.Startup(e.gameInstance.ApplicationConfig.Name,
		e.gameInstance.ApplicationConfig.StartPosX,
		e.gameInstance.ApplicationConfig.StartPosY,
		e.gameInstance.ApplicationConfig.StartWidth,
		e.gameInstance.ApplicationConfig.StartHeight); err != nil {
		return err
	}

	if err := renderer.Initialize(e.gameInstance.ApplicationConfig.Name,
		e.width, e.height, e.platform,
		e.gameInstance.ApplicationConfig.ReversedDepth); err != nil {
		return err
	}
	renderer.SetDebugView(e.debugView)

	// watch shader sources so the debug overlay program can be reworked
	// without restarting
	sw, err := assets.NewShaderWatcher(e.gameInstance.ApplicationConfig.ShaderDir)
	if err != nil {
		core.LogWarn("shader hot-reload unavailable: %s", err)
	} else {
		e.shaderWatch = sw
		e.shaderWatch.OnReload(func(vertexSource, fragmentSource string) {
			e.shaderMutex.Lock()
			e.pendingShader = &[2]string{vertexSource, fragmentSource}
			e.shaderMutex.Unlock()
		})
		if err := e.shaderWatch.Start(); err != nil {
			core.LogWarn("shader watcher failed to start: %s", err)
		}
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}

	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.ElapsedSeconds()

	for e.isRunning {
		e.platform.PumpMessages()
		if e.platform.ShouldClose() {
			e.isRunning = false
			break
		}

		if e.isSuspended {
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.ElapsedSeconds()
		delta := currentTime - e.lastTime

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogFatal("Game update failed, shutting down.")
			e.isRunning = false
			break
		}

		e.applyPendingShader()

		packet := &metadata.RenderPacket{
			DeltaTime: delta,
		}

		if err := renderer.BeginFrame(delta); err != nil {
			// deferred rendering unavailable this session; keep pumping the
			// window so the user can quit cleanly
			core.LogError(err.Error())
		} else {
			if err := e.gameInstance.FnRender(packet, delta); err != nil {
				core.LogFatal("Game render failed, shutting down.")
				e.isRunning = false
				break
			}
			if err := renderer.EndFrame(delta); err != nil {
				core.LogError(err.Error())
			}
		}

		e.platform.SwapBuffers()
		e.metrics.Update(delta)

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		core.InputUpdate(delta)

		e.lastTime = currentTime
	}

	return e.Shutdown()
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	fps, frameTime := e.metrics.Frame()
	core.LogInfo("shutting down (last FPS %.1f, avg frame %.2fms)", fps, frameTime)

	if e.shaderWatch != nil {
		if err := e.shaderWatch.Close(); err != nil {
			core.LogWarn(err.Error())
		}
	}
	if err := renderer.Shutdown(); err != nil {
		return err
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	return nil
}

func (e *Engine) applyPendingShader() {
	e.shaderMutex.Lock()
	pending := e.pendingShader
	e.pendingShader = nil
	e.shaderMutex.Unlock()

	if pending == nil {
		return
	}
	if err := renderer.ReloadDebugShader(pending[0], pending[1]); err != nil {
		core.LogError(err.Error())
	}
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	switch code {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}

func (e *Engine) onKey(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	if code != core.EVENT_CODE_KEY_PRESSED {
		return false
	}
	switch core.KeyCode(data.Data.U16[0]) {
	case core.KEY_ESCAPE:
		context := core.EventContext{}
		core.EventFire(core.EVENT_CODE_APPLICATION_QUIT, e, context)
		return true
	case core.KEY_G:
		e.debugView = !e.debugView
		renderer.SetDebugView(e.debugView)
		context := core.EventContext{}
		if e.debugView {
			context.Data.U8[0] = 1
		}
		core.EventFire(core.EVENT_CODE_DEBUG_VIEW_CHANGED, e, context)
		return true
	}
	return false
}

func (e *Engine) onResized(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	width := uint32(data.Data.U16[0])
	height := uint32(data.Data.U16[1])
	if width == e.width && height == e.height {
		return false
	}

	e.width = width
	e.height = height
	core.LogDebug("window resize: %d, %d", width, height)

	// a minimized window suspends the loop until it comes back
	if width == 0 || height == 0 {
		core.LogInfo("window minimized, suspending application")
		e.isSuspended = true
		return true
	}

	if e.isSuspended {
		core.LogInfo("window restored, resuming application")
		e.isSuspended = false
	}
	if err := renderer.OnResize(uint16(width), uint16(height)); err != nil {
		core.LogError(err.Error())
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	return false
}
