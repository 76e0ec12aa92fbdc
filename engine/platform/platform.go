package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/prisma/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type Platform struct {
	Window *glfw.Window
}

func New() *Platform {
	return &Platform{
		Window: nil,
	}
}

func (p *Platform) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	if err := glfw.Init(); err != nil {
		core.LogFatal("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	// Core-profile OpenGL 4.1, the highest version available on every
	// desktop platform we target.
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogFatal("failed to create window: %s", err)
		return err
	}
	window.MakeContextCurrent()
	p.Window = window

	p.Window.SetKeyCallback(keyCallback)
	p.Window.SetFramebufferSizeCallback(framebufferSizeCallback)
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	return nil
}

func (p *Platform) Shutdown() error {
	glfw.Terminate()
	return nil
}

// PumpMessages processes pending window events for this frame.
func (p *Platform) PumpMessages() {
	glfw.PollEvents()
}

// SwapBuffers presents the default framebuffer to the screen.
func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

func (p *Platform) ShouldClose() bool {
	return p.Window.ShouldClose()
}

// FramebufferSize returns the current drawable size in pixels. This is the
// "wanted size" the geometry buffer compares against on every update.
func (p *Platform) FramebufferSize() (int32, int32) {
	w, h := p.Window.GetFramebufferSize()
	return int32(w), int32(h)
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	code, ok := translateKey(key)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		core.InputProcessKey(code, true)
	case glfw.Release:
		core.InputProcessKey(code, false)
	}
}

func framebufferSizeCallback(w *glfw.Window, width, height int) {
	context := core.EventContext{}
	context.Data.U16[0] = uint16(width)
	context.Data.U16[1] = uint16(height)
	core.EventFire(core.EVENT_CODE_RESIZED, w, context)
}

func translateKey(key glfw.Key) (core.KeyCode, bool) {
	switch key {
	case glfw.KeyEscape:
		return core.KEY_ESCAPE, true
	case glfw.KeySpace:
		return core.KEY_SPACE, true
	case glfw.KeyTab:
		return core.KEY_TAB, true
	case glfw.KeyEnter:
		return core.KEY_ENTER, true
	case glfw.KeyB:
		return core.KEY_B, true
	case glfw.KeyD:
		return core.KEY_D, true
	case glfw.KeyG:
		return core.KEY_G, true
	case glfw.KeyF1:
		return core.KEY_F1, true
	case glfw.KeyF2:
		return core.KEY_F2, true
	case glfw.KeyF3:
		return core.KEY_F3, true
	case glfw.KeyF4:
		return core.KEY_F4, true
	case glfw.KeyLeft:
		return core.KEY_LEFT, true
	case glfw.KeyRight:
		return core.KEY_RIGHT, true
	case glfw.KeyUp:
		return core.KEY_UP, true
	case glfw.KeyDown:
		return core.KEY_DOWN, true
	}
	return 0, false
}
