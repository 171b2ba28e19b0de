package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"softfb/internal/imageio"
)

// Config holds input/output paths and render settings.
type Config struct {
	// Paths
	BaseDir   string   `json:"base_dir"`
	Scenes    []string `json:"scenes"`
	OutputDir string   `json:"output_dir"`
	Manifest  string   `json:"manifest"`

	// Render settings
	Format      string `json:"format"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values, except BaseDir,
// which defaults to the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scenes      []string
	OutputDir   string
	Format      string
	Supersample int
	Workers     int
}

// Resolve applies CLI overrides, fills defaults and anchors relative
// paths from the config file at BaseDir. Scene paths given on the command
// line are left relative to the working directory.
func (c *Config) Resolve(flags Flags) {
	if len(flags.Scenes) > 0 {
		c.Scenes = flags.Scenes
	} else {
		for i, s := range c.Scenes {
			c.Scenes[i] = c.abs(s)
		}
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	} else if c.OutputDir != "" {
		c.OutputDir = c.abs(c.OutputDir)
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Manifest == "" {
		c.Manifest = filepath.Join(c.OutputDir, "manifest.json")
	} else {
		c.Manifest = c.abs(c.Manifest)
	}
	if c.Format == "" {
		c.Format = string(imageio.FormatPPM)
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if _, err := imageio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Supersample > 16 {
		return fmt.Errorf("config: supersample %d exceeds 16", c.Supersample)
	}
	return nil
}

func (c *Config) abs(p string) string {
	if c.BaseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}
