package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/setup"
)

// setupDir is scanned for setup files by -list
const setupDir = "setups"

// options holds the parsed command line
type options struct {
	setupPath  string
	sceneName  string
	outputPath string
	format     string
	width      int
	height     int
	samples    int
	bounces    int
	debug      string
	workers    int
	seed       uint64
	saveSetup  string
	preview    int
	watch      bool
	list       bool
	help       bool

	set map[string]bool // flags given explicitly on the command line
}

func parseFlags(args []string) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)

	fs.StringVar(&opts.setupPath, "setup", "", "Setup file to render (.json or .toml)")
	fs.StringVar(&opts.sceneName, "scene", "default", "Built-in setup to render when -setup is not given")
	fs.StringVar(&opts.outputPath, "output", "", "Output image path (default output/<scene>/render_<timestamp>_<id>.<format>)")
	fs.StringVar(&opts.format, "format", "png", "Image format when -output has no extension: png, bmp or tiff")
	fs.IntVar(&opts.width, "width", 0, "Override image width")
	fs.IntVar(&opts.height, "height", 0, "Override image height")
	fs.IntVar(&opts.samples, "samples", 0, "Override antialias samples per pixel")
	fs.IntVar(&opts.bounces, "bounces", 0, "Override bounce limit")
	fs.StringVar(&opts.debug, "debug", "", "Override debug mode: none, normals or diffuse")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = use CPU count)")
	fs.Uint64Var(&opts.seed, "seed", 0, "Override the random seed")
	fs.StringVar(&opts.saveSetup, "save-setup", "", "Write the effective setup to this file before rendering")
	fs.IntVar(&opts.preview, "preview", 0, "Also write a downscaled preview of this width")
	fs.BoolVar(&opts.watch, "watch", false, "Re-render whenever the -setup file changes")
	fs.BoolVar(&opts.list, "list", false, "List built-in setups and setup files, then exit")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if opts.watch && opts.setupPath == "" {
		return opts, fs, errors.New("-watch requires -setup")
	}
	return opts, fs, nil
}

// loadSetup reads the setup file or builds the named preset, then applies overrides
func loadSetup(opts options) (*setup.Setup, error) {
	var s *setup.Setup
	var err error
	if opts.setupPath != "" {
		s, err = setup.Load(opts.setupPath)
	} else {
		s, err = setup.Preset(opts.sceneName)
	}
	if err != nil {
		return nil, err
	}

	if err := applyOverrides(&s.Parameters, opts); err != nil {
		return nil, err
	}
	return s, nil
}

// applyOverrides copies explicitly given flags over the setup's parameters
func applyOverrides(params *renderer.Parameters, opts options) error {
	if opts.set["width"] {
		params.ImageWidth = opts.width
	}
	if opts.set["height"] {
		params.ImageHeight = opts.height
	}
	if opts.set["samples"] {
		params.AntialiasSamples = opts.samples
	}
	if opts.set["bounces"] {
		params.BounceLimit = opts.bounces
	}
	if opts.set["workers"] {
		params.NumWorkers = opts.workers
	}
	if opts.set["seed"] {
		params.Seed = opts.seed
	}
	if opts.set["debug"] {
		mode, err := renderer.ParseDebugMode(opts.debug)
		if err != nil {
			return err
		}
		params.DebugMode = mode
	}
	return params.Validate()
}

// sceneLabel names the render for output directories and logs
func sceneLabel(opts options) string {
	if opts.setupPath != "" {
		base := filepath.Base(opts.setupPath)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return opts.sceneName
}

// resolveOutput returns the image path and format for a render
func resolveOutput(opts options, renderID uuid.UUID, now time.Time) (string, output.Format, error) {
	if opts.outputPath != "" && filepath.Ext(opts.outputPath) != "" {
		format, err := output.FormatForPath(opts.outputPath)
		return opts.outputPath, format, err
	}

	format, err := output.FormatByName(opts.format)
	if err != nil {
		return "", nil, err
	}
	if opts.outputPath != "" {
		return opts.outputPath + format.Extension(), format, nil
	}

	// Create timestamped filename
	name := fmt.Sprintf("render_%s_%s%s", now.Format("20060102_150405"), renderID.String()[:8], format.Extension())
	return filepath.Join("output", sceneLabel(opts), name), format, nil
}

// previewPath inserts _preview before the extension
func previewPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_preview" + ext
}

// render loads the setup, renders it and writes the image
func render(ctx context.Context, logger *log.Logger, opts options) error {
	s, err := loadSetup(opts)
	if err != nil {
		return err
	}

	renderID := uuid.New()
	logger = logger.With("id", renderID.String()[:8])

	if opts.saveSetup != "" {
		if err := setup.Save(opts.saveSetup, s); err != nil {
			return err
		}
		logger.Info("Saved setup", "path", opts.saveSetup)
	}

	path, format, err := resolveOutput(opts, renderID, time.Now())
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(s.Scene, s.Parameters, logger.WithPrefix("renderer"))
	if err != nil {
		return err
	}

	logger.Info("Rendering", "scene", sceneLabel(opts), "objects", len(s.Scene.Objects),
		"size", fmt.Sprintf("%dx%d", s.Parameters.ImageWidth, s.Parameters.ImageHeight),
		"samples", s.Parameters.AntialiasSamples, "bounces", s.Parameters.BounceLimit,
		"debug", s.Parameters.DebugMode)

	img, stats, err := rt.Render(ctx)
	if err != nil {
		return err
	}

	logger.Info("Render completed", "duration", stats.Duration, "tiles", stats.Tiles,
		"workers", stats.Workers, "rays", stats.TotalRays,
		"mrays/s", fmt.Sprintf("%.2f", stats.RaysPerSecond()/1e6))

	writer := output.NewWriter(format, logger)
	if err := writer.Save(img, path); err != nil {
		return err
	}
	if opts.preview > 0 {
		if err := writer.SaveImage(output.Downscale(img, opts.preview), previewPath(path)); err != nil {
			return err
		}
	}

	logger.Info("Render saved", "path", path)
	return nil
}

// watchSetup renders the setup file and re-renders every time it changes.
// A change cancels the render in flight before starting the next one.
func watchSetup(ctx context.Context, logger *log.Logger, opts options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory; editors often replace the file instead of writing it
	if err := watcher.Add(filepath.Dir(opts.setupPath)); err != nil {
		return err
	}
	target := filepath.Clean(opts.setupPath)

	var wg sync.WaitGroup
	cancel := context.CancelFunc(func() {})
	start := func() {
		cancel()
		wg.Wait()

		var renderCtx context.Context
		renderCtx, cancel = context.WithCancel(ctx)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := render(renderCtx, logger, opts); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Render failed", "err", err)
			}
		}()
	}
	defer func() {
		cancel()
		wg.Wait()
	}()

	logger.Info("Watching setup file", "path", opts.setupPath)
	start()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Info("Setup changed, re-rendering", "op", event.Op.String())
			start()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error", "err", err)
		}
	}
}

func printList() error {
	fmt.Println("Built-in setups:")
	for _, info := range setup.ListPresets() {
		fmt.Printf("  %-10s %s\n", info.ID, info.Description)
	}

	files, err := setup.ListSetupFiles(setupDir)
	if err != nil {
		return err
	}
	if len(files) > 0 {
		fmt.Printf("\nSetup files in %s/:\n", setupDir)
		for _, info := range files {
			fmt.Printf("  %-10s %s (%s)\n", info.ID, info.FilePath, info.Format)
		}
	}
	return nil
}

func run(ctx context.Context, logger *log.Logger, args []string) error {
	opts, fs, err := parseFlags(args)
	if err != nil {
		return err
	}

	// Show help if requested
	if opts.help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		fs.SetOutput(os.Stdout)
		fs.PrintDefaults()
		fmt.Println()
		fmt.Printf("Built-in setups: %s\n", strings.Join(setup.PresetNames(), ", "))
		return nil
	}
	if opts.list {
		return printList()
	}

	if opts.watch {
		return watchSetup(ctx, logger, opts)
	}
	return render(ctx, logger, opts)
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "pathtracer",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		stop()
		logger.Fatal("Render failed", "err", err)
	}
}
