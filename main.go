package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/df07/go-tinytracer/pkg/core"
	"github.com/df07/go-tinytracer/pkg/display"
	"github.com/df07/go-tinytracer/pkg/imageio"
	"github.com/df07/go-tinytracer/pkg/integrator"
	"github.com/df07/go-tinytracer/pkg/renderer"
	"github.com/df07/go-tinytracer/pkg/scene"
)

// options holds the parsed command line. Sampling flags only override the
// scene's own config when they were given explicitly.
type options struct {
	sceneName string
	sampling  scene.SamplingConfig
	overrides map[string]bool
	iterative bool
	out       string
	headless  bool
	verbose   bool
	help      bool
}

// newFlagSet registers every command line flag on a new flag set writing
// parsed values into opts
func newFlagSet(opts *options, output io.Writer) *flag.FlagSet {
	defaults := scene.DefaultSamplingConfig()

	fs := flag.NewFlagSet("tinytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.sceneName, "scene", "default", "Scene to render (see -help for the list)")
	fs.IntVar(&opts.sampling.Width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&opts.sampling.Height, "height", defaults.Height, "Image height in pixels")
	fs.IntVar(&opts.sampling.SamplesPerPixel, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&opts.sampling.MaxDepth, "depth", defaults.MaxDepth, "Maximum ray bounce depth")
	fs.Int64Var(&opts.sampling.Seed, "seed", defaults.Seed, "Random seed")
	fs.IntVar(&opts.sampling.Workers, "workers", defaults.Workers, "Render goroutines (0 = number of CPUs, 1 = sequential)")
	fs.BoolVar(&opts.iterative, "iterative", false, "Use the loop form of the path tracer")
	fs.StringVar(&opts.out, "out", "", "Write the image to this file (.png, .bmp, .tif, .tiff)")
	fs.BoolVar(&opts.headless, "headless", false, "Do not open a window")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose (debug) logging")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	return fs
}

func parseFlags(args []string, output io.Writer) (options, error) {
	opts := options{overrides: make(map[string]bool)}
	fs := newFlagSet(&opts, output)

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(output, err)
		return options{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		opts.overrides[f.Name] = true
	})
	return opts, nil
}

// samplingConfig returns the scene's config with explicit flags applied
func (o options) samplingConfig(base scene.SamplingConfig) scene.SamplingConfig {
	if o.overrides["width"] {
		base.Width = o.sampling.Width
	}
	if o.overrides["height"] {
		base.Height = o.sampling.Height
	}
	if o.overrides["samples"] {
		base.SamplesPerPixel = o.sampling.SamplesPerPixel
	}
	if o.overrides["depth"] {
		base.MaxDepth = o.sampling.MaxDepth
	}
	if o.overrides["seed"] {
		base.Seed = o.sampling.Seed
	}
	if o.overrides["workers"] {
		base.Workers = o.sampling.Workers
	}
	return base
}

// createScene builds a built-in scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.ByName(sceneType)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Tiny Path Tracer")
	fmt.Fprintln(w, "Usage: tinytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	var opts options
	newFlagSet(&opts, w).PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-12s %s\n", info.ID, info.Description)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(opts options) error {
	logger := core.Logger()

	sc, err := createScene(opts.sceneName)
	if err != nil {
		return err
	}

	config := opts.samplingConfig(sc.SamplingConfig)
	raytracer, err := renderer.NewRaytracer(sc, config)
	if err != nil {
		return fmt.Errorf("failed to create raytracer: %w", err)
	}
	if opts.iterative {
		raytracer.SetIntegrator(integrator.New(config, true))
	}

	logger.Info("rendering", "scene", opts.sceneName, "spheres", sc.Len())
	img, stats := raytracer.RenderPass()
	logger.Info("render stats",
		"duration", stats.Duration, "tiles", stats.Tiles, "workers", stats.Workers,
		"spp", stats.AverageSamples(), "luminance", stats.AverageLuminance)

	if opts.out != "" {
		if err := imageio.Save(opts.out, img); err != nil {
			return err
		}
	}

	if opts.headless {
		return nil
	}
	return display.Show(img, fmt.Sprintf("tinytracer: %s", opts.sceneName))
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}

	if opts.help || errors.Is(err, flag.ErrHelp) {
		printHelp(os.Stdout)
		return
	}

	core.SetLogger(newLogger(os.Stderr, opts.verbose))

	if err := run(opts); err != nil {
		core.Logger().Error("render failed", "error", err)
		os.Exit(1)
	}
}
