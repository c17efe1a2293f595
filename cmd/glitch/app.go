package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/san-kum/glitch/internal/config"
	"github.com/san-kum/glitch/internal/imagesrc"
	"github.com/san-kum/glitch/internal/mask"
	"github.com/san-kum/glitch/internal/noise"
	"github.com/san-kum/glitch/internal/palette"
	"github.com/san-kum/glitch/internal/prng"
	"github.com/san-kum/glitch/internal/render"
	"github.com/san-kum/glitch/internal/variant"
	"github.com/spf13/cobra"
)

// env is the environment lookup used by the commands.
var env = os.Getenv

// loadConfig layers defaults, the config file, a preset, GLITCH_* variables
// and finally any flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, config.Dirs, error) {
	cfg := config.DefaultConfig()
	dirs, haveHome := config.DefaultDirs(env)

	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, dirs, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	case haveHome:
		loaded, err := config.Load(dirs.File)
		if err == nil {
			cfg = loaded
		} else if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("ignoring config file", "path", dirs.File, "err", err)
		}
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, dirs, fmt.Errorf("unknown preset: %s", preset)
		}
		cfg.Merge(p)
	}

	cfg.ApplyEnv(env)
	applyFlags(cmd, cfg)

	if cfg.VariantDir == "" {
		cfg.VariantDir = dirs.Variants
	}
	if cfg.ColorConfig == "" {
		cfg.ColorConfig = dirs.ColorConfig
	}
	if cfg.Image == "" {
		cfg.Image = dirs.Logo
	}
	return cfg, dirs, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("once") {
		cfg.Once = once
	}
	if changed("speed") && speedMs > 0 {
		cfg.SpeedMs = speedMs
	}
	if changed("duration") && durationMs >= 0 {
		cfg.DurationMs = durationMs
	}
	if changed("noise") {
		cfg.Noise = noiseName
	}
	if changed("char") {
		cfg.Char = symbol
	}
	if changed("mask") {
		cfg.Mask = maskName
	}
	if changed("image") {
		cfg.Image = imagePath
	}
	if changed("variant") {
		cfg.Variant = variantArg
	}
	if changed("variant-dir") {
		cfg.VariantDir = variantDir
	}
	if changed("seed") {
		cfg.Seed = seed
	}
	if changed("stats") {
		cfg.Stats = append([]string(nil), stats...)
	}
	if changed("color-config") {
		cfg.ColorConfig = colorConfig
	}
	if debug {
		cfg.Debug = true
	}
}

// newRand seeds the generator from cfg, or from the OS when no seed is set.
func newRand(cfg *config.Config) *prng.Rand {
	if cfg.Seed != 0 {
		return prng.NewSeeded(cfg.Seed)
	}
	r := prng.New()
	var buf [8]byte
	if !r.Fill(buf[:]) {
		slog.Debug("seeding from fallback generator")
	}
	r.Seed(binary.LittleEndian.Uint64(buf[:]))
	return r
}

func store(cfg *config.Config) *palette.Store {
	if cfg.ColorConfig == "" {
		return nil
	}
	return palette.NewStore(cfg.ColorConfig)
}

// run is everything chosen for one invocation.
type run struct {
	Session *render.Session
	Palette palette.Result
	Variant variant.Selection
}

// newRun draws the session choices in a fixed order: mask, variant, noise
// set, then colors. The same seed and files give the same session.
func newRun(cfg *config.Config, r *prng.Rand) (*run, error) {
	var shape mask.Shape
	if cfg.Mask != "" {
		s, err := mask.ByName(cfg.Mask)
		if err != nil {
			return nil, err
		}
		shape = s
	} else {
		shape = mask.Pick(r)
	}

	sel := variant.New(cfg.VariantDir).Select(cfg.Variant, cfg.Noise, r)
	name := cfg.Noise
	if sel.Noise != "" {
		name = sel.Noise
	}
	set := noise.Select(name, r)

	img := cfg.Image
	if sel.Image != "" {
		img = sel.Image
	}
	res := palette.Resolve(palette.Options{
		ImagePath: img,
		Decoder:   imagesrc.Decoder{},
		Store:     store(cfg),
	})
	for _, err := range res.Skipped {
		slog.Debug("palette tier skipped", "err", err)
	}

	s := &render.Session{
		Palette: res.Palette,
		Shape:   shape,
		Noise:   noise.Filler{Set: set, Symbol: noise.ParseSymbol(cfg.Char), Rand: r},
		Image:   render.DetectImage(img, env),
	}
	slog.Debug("session", "desc", s.Describe(), "tier", res.Tier, "variant", sel.Noise)
	return &run{Session: s, Palette: res, Variant: sel}, nil
}
