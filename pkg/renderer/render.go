package renderer

import (
	"context"
	"time"

	"github.com/df07/go-pathtracer/pkg/raster"
)

// Render traces the whole image with a pool of workers. Every pixel is a pure
// function of the scene, the parameters and its tile's sampler, so the result is
// identical for any worker count. Cancelling ctx stops the render between tiles.
func (rt *Raytracer) Render(ctx context.Context) (*raster.Image, RenderStats, error) {
	start := time.Now()
	img := raster.New(rt.params.ImageWidth, rt.params.ImageHeight)
	tiles := NewTileGrid(rt.params.ImageWidth, rt.params.ImageHeight, rt.params.TileSize)

	pool := NewWorkerPool(NewTileRenderer(rt), img, rt.params.NumWorkers, len(tiles))
	stats := RenderStats{Workers: pool.GetNumWorkers()}

	rt.logger.Printf("Rendering %dx%d with %d samples per pixel, %d tiles on %d workers",
		rt.params.ImageWidth, rt.params.ImageHeight, rt.params.AntialiasSamples, len(tiles), stats.Workers)

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	var renderErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.add(result.Stats)
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if renderErr != nil {
		rt.logger.Printf("Render stopped after %d of %d tiles: %v", stats.Tiles, len(tiles), renderErr)
		return nil, stats, renderErr
	}

	rt.logger.Printf("Render completed in %v (%d rays, %.1f bounces per sample)",
		stats.Duration, stats.TotalRays, stats.AverageBounces())
	return img, stats, nil
}
