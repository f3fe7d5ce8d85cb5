package cmd

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/lumenray/lumen/internal/config"
	"github.com/lumenray/lumen/internal/imageio"
	"github.com/lumenray/lumen/pkg/renderer"
	"github.com/lumenray/lumen/pkg/scene"
)

var renderFlags struct {
	configFile  string
	width       int
	aspectRatio string
	samples     int
	maxDepth    int
	workers     int
	seed        int64
	sceneName   string
	output      string
	format      string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a scene to an image file",
	Long: `Render traces the selected scene and writes the result to an image file.
Flags override values from the config file; the output format is derived
from the output extension unless set explicitly.`,
	RunE: runRender,
}

func init() {
	flags := renderCmd.Flags()
	flags.StringVarP(&renderFlags.configFile, "config", "c", "", "Path to a YAML render config")
	flags.IntVarP(&renderFlags.width, "width", "w", 0, "Image width in pixels (height follows the aspect ratio)")
	flags.StringVarP(&renderFlags.aspectRatio, "aspect-ratio", "a", "", "Aspect ratio as w:h, e.g. 3:2")
	flags.IntVarP(&renderFlags.samples, "samples", "s", 0, "Samples per pixel")
	flags.IntVarP(&renderFlags.maxDepth, "max-depth", "d", 0, "Maximum ray bounce depth")
	flags.IntVar(&renderFlags.workers, "workers", 0, "Number of render workers (0 = all cores)")
	flags.Int64Var(&renderFlags.seed, "seed", 0, "Random seed for scene and sampling")
	flags.StringVar(&renderFlags.sceneName, "scene", "", "Scene to render: weekend or simple")
	flags.StringVarP(&renderFlags.output, "output", "o", "", "Output file path")
	flags.StringVarP(&renderFlags.format, "format", "f", "", "Output format: "+strings.Join(imageio.SupportedFormats(), ", "))

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(renderFlags.configFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	aspectRatio, err := config.ParseAspectRatio(cfg.Image.AspectRatio)
	if err != nil {
		return err
	}
	width := cfg.Image.Width
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		height = 1
	}

	format := cfg.Image.Format
	if format == "" {
		format = formatFromPath(cfg.Image.Output)
	}

	random := rand.New(rand.NewSource(cfg.Render.Seed))
	var selected *scene.Scene
	switch cfg.Scene.Name {
	case "weekend":
		selected = scene.NewWeekendScene(random, aspectRatio)
	case "simple":
		selected = scene.NewSimpleScene(aspectRatio)
	default:
		return fmt.Errorf("unknown scene %q (available: weekend, simple)", cfg.Scene.Name)
	}

	logger := log.Default()
	logger.Printf("rendering %q at %dx%d, %d spp, depth %d",
		cfg.Scene.Name, width, height, cfg.Render.SamplesPerPixel, cfg.Render.MaxDepth)

	r := renderer.NewRenderer(selected, width, height)
	r.SetLogger(logger)
	r.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: cfg.Render.SamplesPerPixel,
		MaxDepth:        cfg.Render.MaxDepth,
	})
	r.SetNumWorkers(cfg.Render.Workers)
	r.SetSeed(cfg.Render.Seed)

	bar := progressbar.NewOptions(height,
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
	)
	r.SetProgressFunc(func(completed, total int) {
		_ = bar.Set(completed)
	})

	start := time.Now()
	fb, stats := r.Render()
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	file, err := os.Create(cfg.Image.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := imageio.Encode(file, fb, format); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	logger.Printf("render completed in %v (%.2fs/row mean, %.4f mean luminance)",
		time.Since(start).Round(time.Millisecond), stats.RowTimeMean, stats.LuminanceMean)
	logger.Printf("wrote %s (%s, %d pixels, %d samples)",
		cfg.Image.Output, format, stats.TotalPixels, stats.TotalSamples)
	return nil
}

// applyFlagOverrides lets explicitly-set flags win over the config file
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Image.Width = renderFlags.width
	}
	if flags.Changed("aspect-ratio") {
		cfg.Image.AspectRatio = renderFlags.aspectRatio
	}
	if flags.Changed("samples") {
		cfg.Render.SamplesPerPixel = renderFlags.samples
	}
	if flags.Changed("max-depth") {
		cfg.Render.MaxDepth = renderFlags.maxDepth
	}
	if flags.Changed("workers") {
		cfg.Render.Workers = renderFlags.workers
	}
	if flags.Changed("seed") {
		cfg.Render.Seed = renderFlags.seed
	}
	if flags.Changed("scene") {
		cfg.Scene.Name = renderFlags.sceneName
	}
	if flags.Changed("output") {
		cfg.Image.Output = renderFlags.output
	}
	if flags.Changed("format") {
		cfg.Image.Format = renderFlags.format
	}
}

// formatFromPath derives an encoder name from a file extension
func formatFromPath(path string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 && idx < len(path)-1 {
		return strings.ToLower(path[idx+1:])
	}
	return "png"
}
