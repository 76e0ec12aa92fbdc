package engine

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/prisma/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height"`
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`
	// Minimum log level ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`
	// Start with the attachment debug overlay visible.
	DebugView bool `toml:"debug_view"`
	// Opt into reversed-depth rendering where the driver supports it.
	ReversedDepth bool `toml:"reversed_depth"`
	// Directory watched for shader sources to hot-reload.
	ShaderDir string `toml:"shader_dir"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  1280,
		StartHeight: 720,
		Name:        "Prisma",
		LogLevel:    "debug",
		ShaderDir:   "assets/shaders",
	}
}

// LoadApplicationConfig reads a TOML config file, falling back to defaults
// when the file does not exist.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			core.LogInfo("no config file at %s, using defaults", path)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}
