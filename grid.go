package tiles

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid describes the tile field that gets drawn every frame: a
// Columns x Rows grid of TileSize-pixel tiles, repeated for each layer.
// Each layer samples its own column of a horizontally tiled atlas.
type Grid struct {
	TileSize     float32
	Viewport     Viewport
	Columns      int
	Rows         int
	Layers       int
	AtlasColumns int
}

// NewGrid derives the grid extent from the viewport, keeping one spare
// column and row so partially visible tiles at the edges are covered.
func NewGrid(tileSize float32, viewport Viewport, layers, atlasColumns int) Grid {
	g := Grid{
		TileSize:     tileSize,
		Viewport:     viewport,
		Layers:       layers,
		AtlasColumns: atlasColumns,
	}
	if tileSize > 0 {
		g.Columns = int(math.Round(float64(viewport.Width)/float64(tileSize))) + 1
		g.Rows = int(math.Round(float64(viewport.Height)/float64(tileSize))) + 1
	}
	return g
}

// Validate reports the first field that makes the grid unusable.
func (g Grid) Validate() error {
	switch {
	case g.TileSize <= 0:
		return fmt.Errorf("grid: tile size must be positive, got %v", g.TileSize)
	case g.Viewport.Width <= 0 || g.Viewport.Height <= 0:
		return fmt.Errorf("grid: viewport must be positive, got %dx%d", g.Viewport.Width, g.Viewport.Height)
	case g.Columns <= 0 || g.Rows <= 0:
		return fmt.Errorf("grid: extent must be positive, got %dx%d", g.Columns, g.Rows)
	case g.Layers <= 0:
		return fmt.Errorf("grid: layer count must be positive, got %d", g.Layers)
	case g.AtlasColumns <= 0:
		return fmt.Errorf("grid: atlas columns must be positive, got %d", g.AtlasColumns)
	}
	return nil
}

// Count returns the number of instances drawn per frame.
func (g Grid) Count() int {
	if g.Layers <= 0 || g.Columns <= 0 || g.Rows <= 0 {
		return 0
	}
	return g.Layers * g.Columns * g.Rows
}

// Index returns the position of (layer, col, row) in the table built by Instances.
func (g Grid) Index(layer, col, row int) int {
	return (layer*g.Columns+col)*g.Rows + row
}

// Instances builds the per-instance offset table. Entries are ordered
// layer-major, then column, then row; the draw call picks its entry by
// instance id, so this order is part of the contract with the shader.
//
// x and y translate the quad in NDC, z shifts the texture coordinate to
// the layer's atlas column, w is unused.
func (g Grid) Instances() []mgl32.Vec4 {
	out := make([]mgl32.Vec4, 0, g.Count())
	w := float32(g.Viewport.Width)
	h := float32(g.Viewport.Height)
	for l := 0; l < g.Layers; l++ {
		atlasX := float32(l) / float32(g.AtlasColumns)
		for x := 0; x < g.Columns; x++ {
			for y := 0; y < g.Rows; y++ {
				out = append(out, mgl32.Vec4{
					float32(x) / w * 2 * g.TileSize,
					float32(y) / h * 2 * g.TileSize,
					atlasX,
					0,
				})
			}
		}
	}
	return out
}

// Quad returns the four corners of one tile anchored at the bottom-left
// of the viewport, with texture coordinates spanning a single atlas column.
func (g Grid) Quad() [4]Vertex {
	w := float32(g.Viewport.Width)
	h := float32(g.Viewport.Height)
	right, top := Normalize(g.TileSize, w), Normalize(g.TileSize, h)
	left, bottom := Normalize(0, w), Normalize(0, h)
	u := 1 / float32(g.AtlasColumns)

	return [4]Vertex{
		{Pos: [2]float32{right, top}, TexCoord: [2]float32{u, 1}},    // top right
		{Pos: [2]float32{right, bottom}, TexCoord: [2]float32{u, 0}}, // bottom right
		{Pos: [2]float32{left, bottom}, TexCoord: [2]float32{0, 0}},  // bottom left
		{Pos: [2]float32{left, top}, TexCoord: [2]float32{0, 1}},     // top left
	}
}
