// Package renderer drives the parallel per-pixel sampling loop: it partitions
// the image by row across a worker pool, hands each sample to the integrator,
// and assembles the resolved colors into a framebuffer indexed by pixel
// position.
package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/lumenray/lumen/pkg/core"
	"github.com/lumenray/lumen/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene provides everything the renderer needs, avoiding a dependency on the
// scene package
type Scene interface {
	GetCamera() *Camera
	GetWorld() core.Hittable
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Framebuffer holds resolved pixel colors in row-major order, top row first.
// Values are linear pre-gamma radiance; tone mapping is the caller's job.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the pixel color at (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the pixel color at (x, y)
func (fb *Framebuffer) Set(x, y int, color core.Vec3) {
	fb.Pixels[y*fb.Width+x] = color
}

// ProgressFunc is called after each completed row with the number of rows
// finished so far and the total row count. It may be called from multiple
// goroutines; nil disables progress reporting.
type ProgressFunc func(completed, total int)

// Renderer renders a scene into a framebuffer using a pool of row workers
type Renderer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	numWorkers int
	seed       int64
	logger     core.Logger
	progress   ProgressFunc
}

// NewRenderer creates a renderer for the given scene and image size
func NewRenderer(scene Scene, width, height int) *Renderer {
	return &Renderer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     DefaultSamplingConfig(),
		numWorkers: runtime.NumCPU(),
		seed:       42,
	}
}

// SetSamplingConfig updates the sampling configuration
func (r *Renderer) SetSamplingConfig(config SamplingConfig) {
	r.config = config
}

// SetNumWorkers sets the worker count; values <= 0 restore the CPU count
func (r *Renderer) SetNumWorkers(n int) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	r.numWorkers = n
}

// SetSeed sets the base seed from which per-row generators are derived
func (r *Renderer) SetSeed(seed int64) {
	r.seed = seed
}

// SetLogger sets an optional logger for render diagnostics
func (r *Renderer) SetLogger(logger core.Logger) {
	r.logger = logger
}

// SetProgressFunc sets an optional per-row progress callback
func (r *Renderer) SetProgressFunc(fn ProgressFunc) {
	r.progress = fn
}

// Render estimates every pixel and returns the framebuffer and statistics.
// Rows are dispatched to workers and may complete in any order; results are
// written at their pixel positions, so the output layout is deterministic
// regardless of scheduling.
func (r *Renderer) Render() (*Framebuffer, RenderStats) {
	fb := NewFramebuffer(r.width, r.height)
	pt := integrator.NewPathTracer()
	pt.TopColor, pt.BottomColor = r.scene.GetBackgroundColors()

	camera := r.scene.GetCamera()
	world := r.scene.GetWorld()

	rows := make(chan int, r.height)
	rowDurations := make([]float64, r.height)

	var completed int64
	var completedMu sync.Mutex

	start := time.Now()
	var wg sync.WaitGroup
	for worker := 0; worker < r.numWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				rowStart := time.Now()

				// Each row gets its own generator so workers never share
				// RNG state
				random := rand.New(rand.NewSource(r.seed + int64(y)))
				r.renderRow(fb, y, camera, world, pt, random)

				rowDurations[y] = time.Since(rowStart).Seconds()

				if r.progress != nil {
					completedMu.Lock()
					completed++
					done := int(completed)
					completedMu.Unlock()
					r.progress(done, r.height)
				}
			}
		}()
	}

	for y := 0; y < r.height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	stats := collectStats(fb, rowDurations, r.config, time.Since(start))
	if r.logger != nil {
		r.logger.Printf("rendered %dx%d at %d spp in %v",
			r.width, r.height, r.config.SamplesPerPixel, stats.Elapsed)
	}
	return fb, stats
}

// renderRow estimates all pixels of one image row. Pixel (0,0) is the top
// left; screen-space t grows upward, so the row index is flipped.
func (r *Renderer) renderRow(fb *Framebuffer, y int, camera *Camera, world core.Hittable, pt *integrator.PathTracer, random *rand.Rand) {
	invSamples := 1.0 / float64(r.config.SamplesPerPixel)

	// A 1-pixel dimension would make the denominator zero
	sDenom := float64(max(r.width-1, 1))
	tDenom := float64(max(r.height-1, 1))

	for x := 0; x < r.width; x++ {
		var accum core.Vec3
		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			s := (float64(x) + random.Float64()) / sDenom
			t := (float64(r.height-1-y) + random.Float64()) / tDenom

			ray := camera.GetRay(s, t, random)
			accum = accum.Add(pt.RayColor(ray, world, r.config.MaxDepth, random))
		}
		fb.Set(x, y, accum.Multiply(invSamples))
	}
}
