package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Run options
	once       bool
	speedMs    int
	durationMs int
	noiseName  string
	symbol     string
	maskName   string
	imagePath  string
	variantArg string
	variantDir string
	seed       uint64
	stats      []string
	// Config file
	configFile  string
	colorConfig string
	// Preset name
	preset string
	debug  bool
	// Subcommand options
	jsonOut    bool
	outPath    string
	dryRun     bool
	previewW   int
	previewH   int
	maxSize    int
	circle     bool
	keep       int
	svgPath    string
	snapFrame  uint64
	graphWidth int
	force      bool
)

// main registers the glitch commands and flags and executes the root
// command. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "glitch",
		Short:         "animated glitch panel for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(debug || os.Getenv("GLITCH_DEBUG") != "")
		},
		RunE: runGlitch,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&colorConfig, "color-config", "", "color config path")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVar(&debug, "debug", false, "log debug output to stderr")

	f := rootCmd.Flags()
	f.BoolVar(&once, "once", false, "render a single frame and exit")
	f.IntVar(&speedMs, "speed", 0, "milliseconds per frame")
	f.IntVar(&durationMs, "duration", 0, "animation length in milliseconds, 0 runs until q")
	f.StringVar(&noiseName, "noise", "", "noise set name")
	f.StringVar(&symbol, "char", "", "glyph drawn in place of the noise charset")
	f.StringVar(&maskName, "mask", "", "mask shape name")
	f.StringVar(&imagePath, "image", "", "image to derive colors from")
	f.StringVar(&variantArg, "variant", "", "force a variant by name")
	f.StringVar(&variantDir, "variant-dir", "", "variants directory")
	f.Uint64Var(&seed, "seed", 0, "generator seed, 0 draws one from the OS")
	f.StringSliceVar(&stats, "stats", nil, "panel rows, e.g. distro,kernel,uptime,mem")

	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "inspect and manage colors",
	}

	paletteShowCmd := &cobra.Command{
		Use:   "show",
		Short: "show the resolved palette",
		Args:  cobra.NoArgs,
		RunE:  showPalette,
	}
	paletteShowCmd.Flags().StringVar(&imagePath, "image", "", "image to derive colors from")

	paletteInspectCmd := &cobra.Command{
		Use:   "inspect [image]",
		Short: "print the color histogram of an image",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectPalette,
	}
	paletteInspectCmd.Flags().IntVar(&graphWidth, "width", 60, "graph width")

	paletteExportCmd := &cobra.Command{
		Use:   "export",
		Short: "write the resolved palette",
		Args:  cobra.NoArgs,
		RunE:  exportPalette,
	}
	paletteExportCmd.Flags().BoolVar(&jsonOut, "json", false, "write json instead of the config format")
	paletteExportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file, default stdout")
	paletteExportCmd.Flags().StringVar(&imagePath, "image", "", "image to derive colors from")

	paletteExtractCmd := &cobra.Command{
		Use:   "extract [image]",
		Short: "derive colors from an image and store them",
		Args:  cobra.ExactArgs(1),
		RunE:  extractPalette,
	}
	paletteExtractCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print without saving")

	paletteImportCmd := &cobra.Command{
		Use:   "import [file.json]",
		Short: "store a palette written by export --json",
		Args:  cobra.ExactArgs(1),
		RunE:  importPalette,
	}
	paletteImportCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print without saving")

	paletteCmd.AddCommand(paletteShowCmd, paletteInspectCmd, paletteExportCmd, paletteExtractCmd, paletteImportCmd)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	noiseCmd := &cobra.Command{
		Use:   "noise",
		Short: "noise sets",
	}
	noiseCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "list noise sets",
		Args:  cobra.NoArgs,
		RunE:  listNoise,
	})

	maskCmd := &cobra.Command{
		Use:   "mask",
		Short: "mask shapes",
	}
	maskCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "list mask shapes",
		Args:  cobra.NoArgs,
		RunE:  listMasks,
	})
	maskPreviewCmd := &cobra.Command{
		Use:   "preview [shape]",
		Short: "print a shape's containment grid",
		Args:  cobra.ExactArgs(1),
		RunE:  previewMask,
	}
	maskPreviewCmd.Flags().IntVar(&previewW, "width", 12, "grid width")
	maskPreviewCmd.Flags().IntVar(&previewH, "rows", 8, "grid rows")
	maskCmd.AddCommand(maskPreviewCmd)

	variantCmd := &cobra.Command{
		Use:   "variant",
		Short: "per-noise images",
	}
	variantAddCmd := &cobra.Command{
		Use:   "add [image] [noise]",
		Short: "import an image as the variant for a noise set",
		Args:  cobra.ExactArgs(2),
		RunE:  addVariant,
	}
	variantAddCmd.Flags().IntVar(&maxSize, "max-size", 256, "largest side in pixels, 0 keeps the crop")
	variantAddCmd.Flags().BoolVar(&circle, "circle", false, "clear pixels outside the inscribed circle")
	variantListCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored variants",
		Args:  cobra.NoArgs,
		RunE:  listVariants,
	}
	variantPruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "delete all but the newest variants",
		Args:  cobra.NoArgs,
		RunE:  pruneVariants,
	}
	variantPruneCmd.Flags().IntVar(&keep, "keep", 0, "variants to keep, default from config")
	for _, c := range []*cobra.Command{variantAddCmd, variantListCmd, variantPruneCmd} {
		c.Flags().StringVar(&variantDir, "variant-dir", "", "variants directory")
	}
	variantCmd.AddCommand(variantAddCmd, variantListCmd, variantPruneCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write one frame as svg",
		Args:  cobra.NoArgs,
		RunE:  snapshot,
	}
	snapshotCmd.Flags().StringVar(&svgPath, "svg", "glitch.svg", "output svg path")
	snapshotCmd.Flags().Uint64Var(&snapFrame, "frame", 0, "frame index to draw")
	snapshotCmd.Flags().AddFlagSet(f)

	rootCmd.AddCommand(paletteCmd, configCmd, noiseCmd, maskCmd, variantCmd, presetsCmd, snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("glitch failed", "err", err)
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
