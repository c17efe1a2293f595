package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/san-kum/glitch/internal/config"
	"github.com/san-kum/glitch/internal/export"
	"github.com/san-kum/glitch/internal/imagesrc"
	"github.com/san-kum/glitch/internal/mask"
	"github.com/san-kum/glitch/internal/noise"
	"github.com/san-kum/glitch/internal/palette"
	"github.com/san-kum/glitch/internal/render"
	"github.com/san-kum/glitch/internal/sysinfo"
	"github.com/san-kum/glitch/internal/variant"
	"github.com/san-kum/glitch/internal/viz"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func termWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

func statSource(cfg *config.Config) viz.StatSource {
	host := sysinfo.Local()
	return func() []render.Stat { return host.Collect(cfg.Stats) }
}

func runGlitch(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rn, err := newRun(cfg, newRand(cfg))
	if err != nil {
		return err
	}

	collect := statSource(cfg)
	if img := rn.Session.Image; img != nil {
		p := img.Placement(len(cfg.Stats))
		slog.Debug("image placement", "path", p.Path, "row", p.Row, "col", p.Col, "cols", p.Cols, "rows", p.Rows)
	}

	out := cmd.OutOrStdout()
	if !isTerminal(os.Stdout) {
		_, err := io.WriteString(out, rn.Session.Frame(0, collect()))
		return err
	}
	if cfg.Once {
		_, err := io.WriteString(out, render.HideCursor+rn.Session.Frame(0, collect())+render.ShowCursor)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := viz.NewModel(rn.Session, collect, ms(cfg.SpeedMs), ms(cfg.DurationMs))
	return viz.Run(ctx, m, os.Stdin, out)
}

func resolvePalette(cfg *config.Config) palette.Result {
	return palette.Resolve(palette.Options{
		ImagePath: cfg.Image,
		Decoder:   imagesrc.Decoder{},
		Store:     store(cfg),
		ReadOnly:  true,
	})
}

func showPalette(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	res := resolvePalette(cfg)
	theme := viz.ThemeFrom(res.Palette)
	out := cmd.OutOrStdout()

	width := min(termWidth(40), 80)

	fmt.Fprintln(out, theme.Header("palette "+theme.Name))
	fmt.Fprintf(out, "%s %s\n", theme.Label("tier:"), theme.Badge(res.Tier.String()))
	if res.Palette.Source != "" {
		fmt.Fprintf(out, "%s %s\n", theme.Label("source:"), theme.Value(res.Palette.Source))
	}
	fmt.Fprintln(out, theme.Separator(width))
	fmt.Fprint(out, viz.Swatches(res.Palette))
	fmt.Fprintln(out, theme.Separator(width))
	fmt.Fprintln(out, viz.GradientBar(res.Palette, width))
	for _, e := range res.Skipped {
		fmt.Fprintln(out, theme.Hint(e.Error()))
	}
	return nil
}

func inspectPalette(cmd *cobra.Command, args []string) error {
	px, err := imagesrc.Decoder{}.Decode(args[0])
	if err != nil {
		return err
	}
	buckets, err := palette.Histogram(px)
	if err != nil {
		return err
	}
	picks, n := palette.Rank(buckets)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "image: %s (%dx%d, stride %d)\n", args[0], px.Width, px.Height, px.Stride())
	fmt.Fprintf(out, "buckets: %d\n\n", len(buckets))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tKEY\tCOUNT\tMEAN\tLUM")
	for i := 0; i < n; i++ {
		b := picks[i]
		fmt.Fprintf(w, "%d\t%03x\t%d\t%s\t%.3f\n", i+1, b.Key, b.Count, b.Mean.Hex(), palette.Luminance(b.Mean))
	}
	w.Flush()

	theme := viz.ThemeFrom(palette.Default())
	if p, err := palette.FromPixels(px, args[0]); err == nil {
		theme = viz.ThemeFrom(p)
		fmt.Fprintln(out, theme.Separator(graphWidth))
		fmt.Fprint(out, viz.Swatches(p))
	}
	if g := viz.BucketGraph(buckets, graphWidth, 10); g != "" {
		fmt.Fprintln(out, theme.Separator(graphWidth))
		fmt.Fprintln(out, g)
	}
	return nil
}

func exportPalette(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	res := resolvePalette(cfg)

	var w io.Writer = cmd.OutOrStdout()
	name := "color.config"
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
		name = filepath.Base(outPath)
	}

	if jsonOut {
		return export.WritePaletteJSON(w, res.Palette, res.Tier.String())
	}
	return palette.Encode(w, res.Palette, name)
}

func extractPalette(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	px, err := imagesrc.Decoder{}.Decode(args[0])
	if err != nil {
		return err
	}
	p, err := palette.FromPixels(px, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, viz.Swatches(p))
	if dryRun {
		return nil
	}
	st := store(cfg)
	if st == nil {
		return fmt.Errorf("no color config path; set --color-config or HOME")
	}
	if err := st.Save(p); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", st.Path())
	return nil
}

func importPalette(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := export.ReadPaletteJSON(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if p.Source == "" {
		p.Source = args[0]
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, viz.Swatches(p))
	if dryRun {
		return nil
	}
	st := store(cfg)
	if st == nil {
		return fmt.Errorf("no color config path; set --color-config or HOME")
	}
	if err := st.Save(p); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", st.Path())
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, dirs, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := configFile
	if path == "" {
		path = dirs.File
	}
	if path == "" {
		return fmt.Errorf("no config path; set --config or HOME")
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists; use --force to overwrite", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func listNoise(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWIDTH\tTEMPLATE\tCHARSET")
	for _, s := range noise.Catalog() {
		tmpl := "-"
		if s.HasTemplate() {
			tmpl = "yes"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", s.Name, s.Width(), tmpl, s.Charset)
	}
	return w.Flush()
}

func listMasks(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, name := range mask.Names() {
		fmt.Fprintf(out, "%2d  %s\n", i, name)
	}
	return nil
}

func previewMask(cmd *cobra.Command, args []string) error {
	s, err := mask.ByName(args[0])
	if err != nil {
		return err
	}
	if previewW <= 0 || previewH <= 0 {
		return fmt.Errorf("preview size must be positive, got %dx%d", previewW, previewH)
	}
	fmt.Fprint(cmd.OutOrStdout(), mask.Preview(s, previewW, previewH, '#', '.'))
	return nil
}

func variants(cmd *cobra.Command) (*config.Config, variant.Dir, error) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return nil, variant.Dir{}, err
	}
	if cfg.VariantDir == "" {
		return nil, variant.Dir{}, fmt.Errorf("no variants directory; set --variant-dir or HOME")
	}
	return cfg, variant.New(cfg.VariantDir), nil
}

func addVariant(cmd *cobra.Command, args []string) error {
	cfg, dir, err := variants(cmd)
	if err != nil {
		return err
	}
	dst, err := dir.Import(args[0], args[1], variant.ImportOptions{MaxSize: maxSize, Circle: circle})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dst)

	removed, err := dir.Prune(cfg.KeepVariant)
	if err != nil {
		return err
	}
	for _, p := range removed {
		fmt.Fprintf(cmd.OutOrStdout(), "pruned %s\n", p)
	}
	return nil
}

func listVariants(cmd *cobra.Command, args []string) error {
	_, dir, err := variants(cmd)
	if err != nil {
		return err
	}
	names := dir.Candidates()
	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no variants in %s\n", dir.Path)
		return nil
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NOISE\tPATH")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, dir.ImagePath(name))
	}
	return w.Flush()
}

func pruneVariants(cmd *cobra.Command, args []string) error {
	cfg, dir, err := variants(cmd)
	if err != nil {
		return err
	}
	k := keep
	if k <= 0 {
		k = cfg.KeepVariant
	}
	removed, err := dir.Prune(k)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d variants\n", len(removed))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tNOISE\tMASK\tSPEED\tDURATION\tSTATS")
	dash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		dur := "-"
		switch {
		case p.Once:
			dur = "once"
		case p.DurationMs > 0:
			dur = fmt.Sprintf("%dms", p.DurationMs)
		}
		speed := "-"
		if p.SpeedMs > 0 {
			speed = fmt.Sprintf("%dms", p.SpeedMs)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", name, dash(p.Noise), dash(p.Mask), speed, dur, dash(strings.Join(p.Stats, ",")))
	}
	return w.Flush()
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rn, err := newRun(cfg, newRand(cfg))
	if err != nil {
		return err
	}
	svg := export.FrameToSVG(rn.Session, snapFrame, statSource(cfg)())
	if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svgPath)
	return nil
}
