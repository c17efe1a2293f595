package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSpeedMs     = 50
	DefaultDurationMs  = 1500
	DefaultKeepVariant = 50
)

// DefaultStats are the panel rows shown when none are configured.
var DefaultStats = []string{"distro", "kernel", "uptime", "mem"}

type Config struct {
	Noise       string   `yaml:"noise"`
	Char        string   `yaml:"char"`
	Mask        string   `yaml:"mask"`
	Image       string   `yaml:"image"`
	Variant     string   `yaml:"variant"`
	VariantDir  string   `yaml:"variant_dir"`
	ColorConfig string   `yaml:"color_config"`
	SpeedMs     int      `yaml:"speed_ms"`
	DurationMs  int      `yaml:"duration_ms"`
	Once        bool     `yaml:"once"`
	Seed        uint64   `yaml:"seed"`
	Stats       []string `yaml:"stats"`
	KeepVariant int      `yaml:"keep_variants"`
	Debug       bool     `yaml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		SpeedMs:     DefaultSpeedMs,
		DurationMs:  DefaultDurationMs,
		Stats:       append([]string(nil), DefaultStats...),
		KeepVariant: DefaultKeepVariant,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Dirs holds the default locations under the user's config directory.
type Dirs struct {
	Root        string
	File        string
	Variants    string
	ColorConfig string
	Logo        string
}

// DefaultDirs resolves ~/.config/glitch. It returns false without a home.
func DefaultDirs(getenv func(string) string) (Dirs, bool) {
	home := getenv("HOME")
	if home == "" {
		return Dirs{}, false
	}
	root := filepath.Join(home, ".config", "glitch")
	return Dirs{
		Root:        root,
		File:        filepath.Join(root, "glitch.yaml"),
		Variants:    filepath.Join(root, "variants"),
		ColorConfig: filepath.Join(root, "color.config"),
		Logo:        filepath.Join(root, "logo.png"),
	}, true
}

// ApplyEnv overlays GLITCH_* variables. Malformed numbers are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("GLITCH_NOISE"); v != "" {
		c.Noise = v
	}
	if v := getenv("GLITCH_CHAR"); v != "" {
		c.Char = v
	}
	if v := getenv("GLITCH_MASK"); v != "" {
		c.Mask = v
	}
	if v := getenv("GLITCH_IMAGE_PATH"); v != "" {
		c.Image = v
	}
	if v := getenv("GLITCH_VARIANT"); v != "" {
		c.Variant = v
	}
	if v := getenv("GLITCH_VARIANT_DIR"); v != "" {
		c.VariantDir = v
	}
	if ms, err := strconv.Atoi(strings.TrimSpace(getenv("GLITCH_SPEED"))); err == nil && ms > 0 {
		c.SpeedMs = ms
	}
	if ms, err := strconv.Atoi(strings.TrimSpace(getenv("GLITCH_DURATION_MS"))); err == nil && ms >= 0 {
		c.DurationMs = ms
	}
	if getenv("GLITCH_DEBUG") != "" {
		c.Debug = true
	}
}

// Merge copies the non-zero fields of o over c.
func (c *Config) Merge(o *Config) {
	if o == nil {
		return
	}
	if o.Noise != "" {
		c.Noise = o.Noise
	}
	if o.Char != "" {
		c.Char = o.Char
	}
	if o.Mask != "" {
		c.Mask = o.Mask
	}
	if o.Image != "" {
		c.Image = o.Image
	}
	if o.Variant != "" {
		c.Variant = o.Variant
	}
	if o.VariantDir != "" {
		c.VariantDir = o.VariantDir
	}
	if o.ColorConfig != "" {
		c.ColorConfig = o.ColorConfig
	}
	if o.SpeedMs > 0 {
		c.SpeedMs = o.SpeedMs
	}
	if o.DurationMs > 0 {
		c.DurationMs = o.DurationMs
	}
	if o.Once {
		c.Once = true
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if len(o.Stats) > 0 {
		c.Stats = append([]string(nil), o.Stats...)
	}
	if o.KeepVariant > 0 {
		c.KeepVariant = o.KeepVariant
	}
}
