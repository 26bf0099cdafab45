package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// options holds everything needed for one CLI render
type options struct {
	scene    string
	output   string
	render   renderer.RenderConfig
	sampling renderer.SamplingConfig
	help     bool
}

var errHelp = errors.New("help requested")

func main() {
	logger := renderer.NewDefaultLogger()

	opts, err := parseOptions(os.Args[1:], os.Stdout)
	if errors.Is(err, errHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(context.Background(), opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseOptions reads flags followed by the optional positional arguments
// <scene> <output> [width] [height] [samples] [aperture] [focusDist], which
// override the matching flags. Out-of-range values are normalized.
func parseOptions(args []string, usage io.Writer) (options, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(usage)

	render := renderer.DefaultRenderConfig()
	sampling := renderer.DefaultSamplingConfig()
	var opts options

	fs.StringVar(&opts.scene, "scene", "default", "Scene file path or built-in scene id")
	fs.StringVar(&opts.output, "out", "", "Output image (.ppm or .png), default output/<scene>/render_<timestamp>.ppm")
	fs.IntVar(&render.Width, "width", render.Width, "Image width in pixels")
	fs.IntVar(&render.Height, "height", render.Height, "Image height in pixels")
	fs.IntVar(&sampling.SamplesPerPixel, "samples", sampling.SamplesPerPixel, "Samples per pixel")
	fs.Float64Var(&sampling.Aperture, "aperture", sampling.Aperture, "Lens radius, 0 for a pinhole camera")
	fs.Float64Var(&sampling.FocusDistance, "focus", sampling.FocusDistance, "Focus distance")
	fs.IntVar(&render.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect)")
	fs.IntVar(&render.TileSize, "tile", render.TileSize, "Tile size in pixels")
	fs.Int64Var(&render.Seed, "seed", render.Seed, "Random seed")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errHelp
		}
		return opts, err
	}
	if opts.help {
		printHelp(fs, usage)
		return opts, errHelp
	}

	positional := fs.Args()
	if len(positional) > 7 {
		return opts, fmt.Errorf("too many arguments: %q", positional[7:])
	}
	if len(positional) > 0 {
		opts.scene = positional[0]
	}
	if len(positional) > 1 {
		opts.output = positional[1]
	}

	ints := []*int{&render.Width, &render.Height, &sampling.SamplesPerPixel}
	floats := []*float64{&sampling.Aperture, &sampling.FocusDistance}
	for i, arg := range positional[min(2, len(positional)):] {
		var err error
		if i < len(ints) {
			*ints[i], err = strconv.Atoi(arg)
		} else {
			*floats[i-len(ints)], err = strconv.ParseFloat(arg, 64)
		}
		if err != nil {
			return opts, fmt.Errorf("argument %d: invalid number %q", i+3, arg)
		}
	}

	opts.render = render.Normalize()
	opts.sampling = sampling.Normalize()
	return opts, nil
}

func printHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Recursive Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options] [scene output [width height [samples [aperture [focusDist]]]]]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Fprintf(w, "  %s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w, "  <path> - scene description file")
}

// run renders opts.scene and writes the image
func run(ctx context.Context, opts options, logger core.Logger) error {
	logger.Printf("Starting Recursive Raytracer...\n")

	s, err := createScene(opts.scene)
	if err != nil {
		return err
	}
	logger.Printf("Scene %s: %d objects, %d lights\n", opts.scene, s.GetPrimitiveCount(), len(s.Lights))

	output := opts.output
	if output == "" {
		dir := createOutputDir(opts.scene)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		output = filepath.Join(dir, fmt.Sprintf("render_%s.ppm", time.Now().Format("20060102_150405")))
	}

	rt, err := renderer.NewRaytracer(s, opts.render.Width, opts.render.Height, opts.sampling)
	if err != nil {
		return err
	}
	if opts.sampling.Aperture > 0 {
		logger.Printf("Depth of field: aperture %g, focus distance %g\n", opts.sampling.Aperture, opts.sampling.FocusDistance)
	}

	pool := renderer.NewWorkerPool(rt, opts.render, logger)
	logger.Printf("Configuration: %dx%d, %d samples per pixel, %d px tiles, up to %d workers, seed %d\n",
		opts.render.Width, opts.render.Height, rt.SamplingConfig().SamplesPerPixel,
		opts.render.TileSize, pool.GetNumWorkers(), opts.render.Seed)
	fb, stats, err := pool.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := writeImage(output, fb); err != nil {
		return err
	}

	logger.Printf("Render completed in %v (%d workers, %.0f samples/s)\n",
		stats.Duration.Round(time.Millisecond), stats.Workers, stats.SamplesPerSecond())
	logger.Printf("Render saved as %s\n", output)
	return nil
}

// createScene loads a scene file when name is an existing path, otherwise
// builds the built-in scene with that id
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("no scene given")
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return loaders.LoadScene(name)
	}

	s, err := scene.NewBuiltinScene(name)
	if err != nil {
		return nil, fmt.Errorf("%w (and no scene file named %q)", err, name)
	}
	return s, nil
}

// createOutputDir returns output/<scene>, using the file name without its
// extension for scene files
func createOutputDir(sceneName string) string {
	base := filepath.Base(sceneName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "scene"
	}
	return filepath.Join("output", base)
}

// writeImage saves fb as PNG when path ends in .png and as ASCII PPM otherwise
func writeImage(path string, fb *renderer.FrameBuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		err = png.Encode(file, fb.ToImage())
	} else {
		err = loaders.WritePPM(file, fb.Width, fb.Height, fb.Pix)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
