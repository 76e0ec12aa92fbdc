package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
)

// DebugDrawer blits arbitrary textures to the screen as flat quads, used to
// inspect the geometry buffer attachments. It owns the generic textured-quad
// shader and the streaming vertex buffer behind it.
type DebugDrawer struct {
	dev    Device
	shader *Program
	quad   *QuadBuffer
}

func NewDebugDrawer(dev Device, vertexSource, fragmentSource string) (*DebugDrawer, error) {
	shader, err := NewProgram(dev, vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	return &DebugDrawer{
		dev:    dev,
		shader: shader,
		quad:   NewQuadBuffer(dev, 64),
	}, nil
}

// ReloadShader swaps the quad shader for a recompiled one, keeping the old
// program when compilation fails.
func (dd *DebugDrawer) ReloadShader(vertexSource, fragmentSource string) error {
	shader, err := NewProgram(dd.dev, vertexSource, fragmentSource)
	if err != nil {
		core.LogError("debug drawer: shader reload rejected: %s", err)
		return err
	}
	dd.shader.Destroy()
	dd.shader = shader
	core.LogInfo("debug drawer: shader reloaded")
	return nil
}

// DrawTexture renders one quad spanning the given rectangle of the unit
// square, sampling the texture over that same UV rectangle. Restores the
// default texture binding on return.
func (dd *DebugDrawer) DrawTexture(texID uint32, texMins, texMaxs math.Vec2) {
	dd.dev.ActiveTexture(gl.TEXTURE0)
	dd.dev.BindTexture(gl.TEXTURE_2D, texID)

	dd.shader.Enable()
	dd.shader.SetUniformMatrix4("u_movi_mat", false, math.NewMat4Identity())
	dd.shader.SetUniformMatrix4("u_proj_mat", false, math.NewMat4Orthographic(0, 1, 0, 1, -1, 1))
	dd.shader.SetUniformInt("u_tex", 0)

	dd.quad.SafeAppend(Vertex2DT{texMins.X, texMins.Y, texMins.X, texMins.Y})
	dd.quad.SafeAppend(Vertex2DT{texMaxs.X, texMins.Y, texMaxs.X, texMins.Y})
	dd.quad.SafeAppend(Vertex2DT{texMaxs.X, texMaxs.Y, texMaxs.X, texMaxs.Y})
	dd.quad.SafeAppend(Vertex2DT{texMins.X, texMaxs.Y, texMins.X, texMaxs.Y})

	dd.quad.Submit(gl.TRIANGLE_FAN)
	dd.shader.Disable()

	dd.dev.BindTexture(gl.TEXTURE_2D, 0)
}

func (dd *DebugDrawer) Destroy() {
	dd.quad.Destroy()
	dd.shader.Destroy()
}
