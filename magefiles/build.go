//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Validates the GLSL sources used by the debug overlay.
func (Build) Shaders() error {
	if _, err := executeCmd("glslangValidator", withArgs("assets/shaders/debug.vert"), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("glslangValidator", withArgs("assets/shaders/debug.frag"), withStream()); err != nil {
		return err
	}
	return nil
}

// Compiles the engine binary.
func (Build) Engine() error {
	if _, err := executeCmd("go", withArgs("build", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
