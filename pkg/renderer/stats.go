package renderer

import "time"

// RenderStats contains statistics about a finished render
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera samples taken
	TotalRays    int           // Rays tested against the scene, including bounces
	Tiles        int           // Number of tiles rendered
	Workers      int           // Number of parallel workers used
	Duration     time.Duration // Wall-clock render time
}

// add accumulates the counts of a single tile
func (s *RenderStats) add(tile TileStats) {
	s.TotalPixels += tile.Pixels
	s.TotalSamples += tile.Samples
	s.TotalRays += tile.Rays
	s.Tiles++
}

// RaysPerSecond returns the ray throughput, 0 when no time has elapsed
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalRays) / s.Duration.Seconds()
}

// AverageBounces returns the mean number of scene queries per camera sample
func (s RenderStats) AverageBounces() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.TotalRays) / float64(s.TotalSamples)
}
