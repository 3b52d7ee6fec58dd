// Package config persists user preferences for the lattice-pose tools.
package config

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/justinfleek/lattice-pose/comfy"
	"github.com/justinfleek/lattice-pose/render"
)

// EnvComfyAddr overrides the configured ComfyUI address when set.
const EnvComfyAddr = "LATTICE_POSE_COMFY"

const configFileName = "config.yml"

// RenderSettings holds the default canvas and stroke geometry.
type RenderSettings struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	BoneWidth      float64 `yaml:"bone_width"`
	KeypointRadius float64 `yaml:"keypoint_radius"`
	OpenposeColors bool    `yaml:"openpose_colors"`
}

// ComfySettings holds the preprocessing backend connection.
type ComfySettings struct {
	Address      string `yaml:"address"`
	Preprocessor string `yaml:"preprocessor"`
}

// SheetSettings holds contact sheet defaults.
type SheetSettings struct {
	Title       string `yaml:"title"`
	PageNumbers bool   `yaml:"page_numbers"`
}

// Config represents the persisted tool configuration.
type Config struct {
	Render RenderSettings `yaml:"render"`
	Comfy  ComfySettings  `yaml:"comfy"`
	Sheet  SheetSettings  `yaml:"sheet"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Render: RenderSettings{
			Width:          512,
			Height:         768,
			BoneWidth:      4,
			KeypointRadius: 4,
			OpenposeColors: true,
		},
		Comfy: ComfySettings{
			Address:      comfy.DefaultAddr,
			Preprocessor: "openpose",
		},
		Sheet: SheetSettings{
			PageNumbers: true,
		},
	}
}

// Path resolves the config file location, creating its directory.
func Path() (string, error) {
	configdir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory if config dir cannot be determined
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		folder := path.Join(home, ".lattice-pose")
		if err := os.MkdirAll(folder, 0700); err != nil {
			return "", err
		}
		return path.Join(folder, configFileName), nil
	}
	folder := path.Join(configdir, "lattice-pose")
	if err := os.MkdirAll(folder, 0700); err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		folder := path.Join(home, ".lattice-pose")
		if err := os.MkdirAll(folder, 0700); err != nil {
			return "", err
		}
		return path.Join(folder, configFileName), nil
	}
	return path.Join(folder, configFileName), nil
}

// Load reads a configuration file. A missing file yields the defaults.
func Load(filePath string) (*Config, error) {
	if _, err := os.Stat(filePath); err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	return cfg, nil
}

// LoadDefault loads the configuration from the standard location.
func LoadDefault() (*Config, error) {
	filePath, err := Path()
	if err != nil {
		return nil, err
	}
	return Load(filePath)
}

// Save writes the configuration to the given file.
func (c *Config) Save(filePath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to serialize config")
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// ComfyAddress returns the backend address, honoring the env override.
func (c *Config) ComfyAddress() string {
	if addr := os.Getenv(EnvComfyAddr); addr != "" {
		return addr
	}
	return c.Comfy.Address
}

// RenderConfig builds a render configuration from the stored defaults.
func (c *Config) RenderConfig() render.Config {
	return render.Config{
		Width:          c.Render.Width,
		Height:         c.Render.Height,
		ShowBones:      true,
		ShowKeypoints:  true,
		BoneWidth:      c.Render.BoneWidth,
		KeypointRadius: c.Render.KeypointRadius,
		OpenPoseColors: c.Render.OpenposeColors,
	}
}
