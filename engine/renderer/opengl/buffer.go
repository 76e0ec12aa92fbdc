package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/prisma/engine/core"
)

// Vertex2DT is one vertex of a 2D textured primitive: position and texture
// coordinate, interleaved.
type Vertex2DT struct {
	X, Y float32
	S, T float32
}

const vertex2DTFloats = 4

// QuadBuffer streams small batches of 2D textured vertices to the GPU, the
// persistent-VBO analogue of an immediate-mode quad submit. Append vertices,
// then Submit once per primitive batch.
type QuadBuffer struct {
	dev      Device
	vao      uint32
	vbo      uint32
	capacity int
	elems    []float32
}

func NewQuadBuffer(dev Device, capacity int) *QuadBuffer {
	qb := &QuadBuffer{
		dev:      dev,
		capacity: capacity,
		elems:    make([]float32, 0, capacity*vertex2DTFloats),
	}

	qb.vao = dev.GenVertexArray()
	qb.vbo = dev.GenBuffer()

	dev.BindVertexArray(qb.vao)
	dev.BindBuffer(gl.ARRAY_BUFFER, qb.vbo)
	dev.BufferData(gl.ARRAY_BUFFER, capacity*vertex2DTFloats*4, gl.STREAM_DRAW)

	stride := int32(vertex2DTFloats * 4)
	dev.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, 0)
	dev.EnableVertexAttribArray(0)
	dev.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, 2*4)
	dev.EnableVertexAttribArray(1)

	dev.BindVertexArray(0)
	dev.BindBuffer(gl.ARRAY_BUFFER, 0)

	return qb
}

// SafeAppend adds one vertex, dropping it with a warning when the buffer is
// full.
func (qb *QuadBuffer) SafeAppend(v Vertex2DT) {
	if len(qb.elems)/vertex2DTFloats >= qb.capacity {
		core.LogWarn("QuadBuffer: capacity %d exceeded, vertex dropped", qb.capacity)
		return
	}
	qb.elems = append(qb.elems, v.X, v.Y, v.S, v.T)
}

// Submit uploads the pending vertices and draws them with the given primitive
// mode, then resets the batch.
func (qb *QuadBuffer) Submit(mode uint32) {
	count := int32(len(qb.elems) / vertex2DTFloats)
	if count == 0 {
		return
	}

	qb.dev.BindVertexArray(qb.vao)
	qb.dev.BindBuffer(gl.ARRAY_BUFFER, qb.vbo)
	qb.dev.BufferSubData(gl.ARRAY_BUFFER, 0, qb.elems)
	qb.dev.DrawArrays(mode, 0, count)
	qb.dev.BindBuffer(gl.ARRAY_BUFFER, 0)
	qb.dev.BindVertexArray(0)

	qb.elems = qb.elems[:0]
}

func (qb *QuadBuffer) Destroy() {
	qb.dev.DeleteBuffer(qb.vbo)
	qb.dev.DeleteVertexArray(qb.vao)
	qb.vbo = 0
	qb.vao = 0
}
