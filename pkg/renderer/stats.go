package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels   int           // Number of pixels rendered
	TotalSamples  int           // Total primary rays traced
	Elapsed       time.Duration // Wall-clock render time
	RowTimeMean   float64       // Mean per-row render time in seconds
	RowTimeStdDev float64       // Spread of per-row render times in seconds
	LuminanceMean float64       // Mean pixel luminance of the final image
	LuminanceStd  float64       // Luminance spread, a rough noise indicator
}

// collectStats summarizes timing and image statistics for a finished render
func collectStats(fb *Framebuffer, rowDurations []float64, config SamplingConfig, elapsed time.Duration) RenderStats {
	luminances := make([]float64, len(fb.Pixels))
	for i, pixel := range fb.Pixels {
		luminances[i] = pixel.Luminance()
	}

	lumMean, lumStd := stat.MeanStdDev(luminances, nil)
	rowMean, rowStd := stat.MeanStdDev(rowDurations, nil)

	return RenderStats{
		TotalPixels:   fb.Width * fb.Height,
		TotalSamples:  fb.Width * fb.Height * config.SamplesPerPixel,
		Elapsed:       elapsed,
		RowTimeMean:   rowMean,
		RowTimeStdDev: rowStd,
		LuminanceMean: lumMean,
		LuminanceStd:  lumStd,
	}
}
