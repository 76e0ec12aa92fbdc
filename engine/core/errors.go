package core

import (
	"errors"
)

var (
	// ErrSurfaceInvalid is returned when an operation requires a framebuffer
	// surface that was never validly constructed.
	ErrSurfaceInvalid = errors.New("framebuffer surface invalid")
	// ErrFramebufferIncomplete is returned when the driver rejects the current
	// attachment configuration of a framebuffer.
	ErrFramebufferIncomplete = errors.New("framebuffer incomplete")
	ErrShaderCompile         = errors.New("shader compilation failed")
)
