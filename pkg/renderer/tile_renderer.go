package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/raster"
)

// Tile is a rectangular block of pixels rendered as one unit of work
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid creates a grid of tiles covering the entire image, numbered row by row
func NewTileGrid(width, height, tileSize int) []Tile {
	var tiles []Tile

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, Tile{ID: len(tiles), Bounds: image.Rect(x0, y0, x1, y1)})
		}
	}

	return tiles
}

// TileStats counts the work done for one tile
type TileStats struct {
	Pixels  int
	Samples int
	Rays    int
}

// TileRenderer renders tiles into a shared image
type TileRenderer struct {
	raytracer *Raytracer
}

// NewTileRenderer creates a tile renderer for the given raytracer
func NewTileRenderer(raytracer *Raytracer) *TileRenderer {
	return &TileRenderer{raytracer: raytracer}
}

// TileSampler returns the sampler that owns all random draws of a tile.
// It depends only on the seed and tile id, never on which worker runs the tile.
func TileSampler(seed uint64, tile Tile) core.Sampler {
	return core.NewSeededSampler(seed + uint64(tile.ID))
}

// RenderTile renders every pixel in the tile's bounds into img.
// Tiles never overlap, so concurrent calls on distinct tiles are safe.
func (tr *TileRenderer) RenderTile(tile Tile, img *raster.Image, sampler core.Sampler) TileStats {
	stats := TileStats{}

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			color, rays := tr.RenderPixel(x, y, sampler)
			img.Set(x, y, color)
			stats.Pixels++
			stats.Samples += tr.raytracer.params.AntialiasSamples
			stats.Rays += rays
		}
	}

	return stats
}

// RenderPixel averages the jittered samples of pixel (x, y), where y = 0 is the
// bottom row, and returns the gamma corrected color with the number of rays traced
func (tr *TileRenderer) RenderPixel(x, y int, sampler core.Sampler) (core.Color, int) {
	rt := tr.raytracer
	width := float64(rt.params.ImageWidth)
	height := float64(rt.params.ImageHeight)
	samples := rt.params.AntialiasSamples

	accum := core.NewColor(0, 0, 0, 0)
	rays := 0
	for s := 0; s < samples; s++ {
		jitter := sampler.Get2D()
		u := (float64(x) + jitter.X) / width
		v := (float64(y) + jitter.Y) / height
		ray := rt.camera.GetRay(u, v, sampler)
		accum = accum.Add(rt.trace(ray, 0, sampler, &rays))
	}

	return accum.Divide(float64(samples)).GammaSqrt().Clamp(0, 1), rays
}
