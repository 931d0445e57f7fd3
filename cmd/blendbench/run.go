package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/alphablend"
	"github.com/gogpu/alphablend/harness"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
)

// errMismatch is returned when a backend disagrees with the reference.
var errMismatch = errors.New("backends disagree with the float reference")

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Composite with every backend, time it and validate the output",
		Args:  cobra.NoArgs,
		RunE:  runRun,
	}
	f := cmd.Flags()
	f.IntP("width", "W", harness.DefaultWidth, "Image width")
	f.IntP("height", "H", harness.DefaultHeight, "Image height")
	f.String("bg", "101,102,103,255", "Background fill r,g,b,a")
	f.String("fg", "10,217,100,200", "Foreground fill r,g,b,a")
	f.Int64("seed", 0, "Fill with pseudo-random pixels from this seed (opaque background)")
	f.String("bg-image", "", "Background image file (overrides fills)")
	f.String("fg-image", "", "Foreground image file, resized to the background")
	f.StringSlice("backends", nil, "Backends to run (float,fixed,opaque,simd128,simd256,gpu)")
	f.String("sample", "0,0", "Pixel x,y reported for each backend")
	f.Uint8("tolerance", harness.DefaultTolerance, "Accepted per-channel deviation from the reference")
	f.StringP("output", "o", "", "Save the reference output (.png, .jpg, .bmp, ...)")
	f.String("format", "auto", "Report format: auto, table or tsv")
	f.String("lang", "en", "Language tag used for number formatting")
	f.BoolP("verbose", "v", false, "Log backend diagnostics to stderr")
	return cmd
}

func runRun(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	verbose, _ := flags.GetBool("verbose")
	if verbose {
		alphablend.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer alphablend.SetLogger(nil)
	}

	opts, err := harnessOptions(cmd)
	if err != nil {
		return err
	}
	report, err := harness.New(opts...).Run()
	if err != nil {
		return err
	}

	format, _ := flags.GetString("format")
	if format == "auto" {
		format = "tsv"
		if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			format = "table"
		}
	}
	out := cmd.OutOrStdout()
	switch format {
	case "table":
		langFlag, _ := flags.GetString("lang")
		tag, err := language.Parse(langFlag)
		if err != nil {
			return fmt.Errorf("lang %q: %w", langFlag, err)
		}
		err = writeTable(out, report, tag)
		if err != nil {
			return err
		}
	case "tsv":
		if err := writeTSV(out, report); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if n := len(report.Failures()); n > 0 {
		return fmt.Errorf("%w: %d backend(s)", errMismatch, n)
	}
	return nil
}

func harnessOptions(cmd *cobra.Command) ([]harness.Option, error) {
	flags := cmd.Flags()
	width, _ := flags.GetInt("width")
	height, _ := flags.GetInt("height")
	bgFlag, _ := flags.GetString("bg")
	fgFlag, _ := flags.GetString("fg")
	seed, _ := flags.GetInt64("seed")
	bgImage, _ := flags.GetString("bg-image")
	fgImage, _ := flags.GetString("fg-image")
	names, _ := flags.GetStringSlice("backends")
	sample, _ := flags.GetString("sample")
	tolerance, _ := flags.GetUint8("tolerance")
	output, _ := flags.GetString("output")

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	bg, err := parsePixel(bgFlag)
	if err != nil {
		return nil, err
	}
	fg, err := parsePixel(fgFlag)
	if err != nil {
		return nil, err
	}
	x, y, err := parsePoint(sample)
	if err != nil {
		return nil, err
	}
	kinds, err := parseKinds(names)
	if err != nil {
		return nil, err
	}

	var bgFill, fgFill harness.Fill = harness.Constant(bg), harness.Constant(fg)
	if flags.Changed("seed") {
		bgFill, fgFill = harness.RandomFill(seed).Opaque(), harness.RandomFill(seed+1)
	}

	opts := []harness.Option{
		harness.WithSize(width, height),
		harness.WithFills(bgFill, fgFill),
		harness.WithSample(x, y),
		harness.WithTolerance(tolerance),
		harness.WithBackends(kinds...),
	}
	if bgImage != "" || fgImage != "" {
		imgs, err := loadImages(bgImage, fgImage, width, height, bgFill, fgFill)
		if err != nil {
			return nil, err
		}
		opts = append(opts, imgs)
	}
	if output != "" {
		opts = append(opts, harness.WithSink(alphablend.FileSink{Path: output}))
	}
	return opts, nil
}

// loadImages reads the background and foreground files. A missing side is
// generated from its fill; the foreground is resized to the background.
func loadImages(bgPath, fgPath string, width, height int, bgFill, fgFill harness.Fill) (harness.Option, error) {
	var bg, fg *alphablend.Image
	var err error
	if bgPath != "" {
		if bg, err = alphablend.LoadImage(bgPath, 0, 0); err != nil {
			return nil, err
		}
		width, height = bg.Width(), bg.Height()
	}
	if fgPath != "" {
		if fg, err = alphablend.LoadImage(fgPath, width, height); err != nil {
			return nil, err
		}
	}
	genBg, genFg := harness.GenerateImages(width, height, bgFill, fgFill)
	if bg == nil {
		bg = genBg
	}
	if fg == nil {
		fg = genFg
	}
	return harness.WithImages(bg, fg), nil
}
