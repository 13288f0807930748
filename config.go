package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Block  BlockConfig  `toml:"block"`
	Port   PortConfig   `toml:"port"`
	View   ViewConfig   `toml:"view"`
	Export ExportConfig `toml:"export"`
}

type BlockConfig struct {
	Color  string  `toml:"color"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Label  string  `toml:"label"`
}

type PortConfig struct {
	Size float64 `toml:"size"`
}

type ViewConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

type ExportConfig struct {
	Directory string `toml:"directory"`
}

func defaultConfig() *Config {
	return &Config{
		Block: BlockConfig{
			Color:  defaultBlockColor,
			Width:  defaultBlockWidth,
			Height: defaultBlockHeight,
			Label:  defaultBlockLabel,
		},
		Port: PortConfig{Size: defaultPortSize},
		View: ViewConfig{CellWidth: 8, CellHeight: 16},
	}
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".blockdraw.toml")
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	config.normalize()
	return config, nil
}

// normalize puts back defaults for values that make no sense.
func (c *Config) normalize() {
	d := defaultConfig()
	c.Block.Color = textOr(c.Block.Color, d.Block.Color)
	c.Block.Label = textOr(c.Block.Label, d.Block.Label)
	if c.Block.Width <= 0 {
		c.Block.Width = d.Block.Width
	}
	if c.Block.Height <= 0 {
		c.Block.Height = d.Block.Height
	}
	if c.Port.Size <= 0 {
		c.Port.Size = d.Port.Size
	}
	if c.View.CellWidth <= 0 {
		c.View.CellWidth = d.View.CellWidth
	}
	if c.View.CellHeight <= 0 {
		c.View.CellHeight = d.View.CellHeight
	}

	dir := c.Export.Directory
	if strings.HasPrefix(dir, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(homeDir, strings.TrimPrefix(dir, "~"))
		}
	}
	if dir != "" && !filepath.IsAbs(dir) {
		if absPath, err := filepath.Abs(dir); err == nil {
			dir = absPath
		}
	}
	c.Export.Directory = dir
}

func (c *Config) BlockDefaults() BlockParams {
	return BlockParams{
		Color:  c.Block.Color,
		Width:  c.Block.Width,
		Height: c.Block.Height,
		Label:  c.Block.Label,
	}
}

func (c *Config) ExportPath(filename string) (string, error) {
	if c.Export.Directory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.Export.Directory, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	return filepath.Join(c.Export.Directory, filename), nil
}
