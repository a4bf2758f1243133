package tiles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/tiles"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		pixel, extent float32
		want          float32
	}{
		{0, 1920, -1},
		{1920, 1920, 1},
		{960, 1920, 0},
		{32, 1920, 32.0/1920*2 - 1},
		{32, 1080, 32.0/1080*2 - 1},
		{-10, 100, -1.2},
	}

	for _, tt := range tests {
		got := tiles.Normalize(tt.pixel, tt.extent)
		assert.InDelta(t, tt.want, got, 1e-6, "Normalize(%v, %v)", tt.pixel, tt.extent)
	}

	// The endpoints are exact.
	for _, e := range []float32{1, 7, 1080, 1920, 4096} {
		assert.Equal(t, float32(-1), tiles.Normalize(0, e))
		assert.Equal(t, float32(1), tiles.Normalize(e, e))
	}
}

func TestDefaultGrid(t *testing.T) {
	grid := tiles.DefaultConfig().Grid()
	require.NoError(t, grid.Validate())

	assert.Equal(t, 61, grid.Columns)
	assert.Equal(t, 35, grid.Rows)
	assert.Equal(t, 6, grid.Layers)
	assert.Equal(t, 12810, grid.Count())
	assert.Len(t, grid.Instances(), 12810)
}

func TestInstancesOrder(t *testing.T) {
	grid := tiles.NewGrid(10, tiles.Viewport{Width: 20, Height: 10}, 2, 4)
	require.Equal(t, 3, grid.Columns)
	require.Equal(t, 2, grid.Rows)

	got := grid.Instances()
	require.Len(t, got, 2*3*2)

	n := 0
	for l := 0; l < grid.Layers; l++ {
		for x := 0; x < grid.Columns; x++ {
			for y := 0; y < grid.Rows; y++ {
				require.Equal(t, n, grid.Index(l, x, y))
				v := got[n]
				assert.Equal(t, float32(x)/20*2*10, v.X(), "x of (%d,%d,%d)", l, x, y)
				assert.Equal(t, float32(y)/10*2*10, v.Y(), "y of (%d,%d,%d)", l, x, y)
				assert.Equal(t, float32(l)/4, v.Z(), "z of (%d,%d,%d)", l, x, y)
				assert.Zero(t, v.W())
				n++
			}
		}
	}
}

func TestInstancesAtlasShift(t *testing.T) {
	grid := tiles.DefaultConfig().Grid()
	got := grid.Instances()

	for _, l := range []int{0, 3, 5} {
		want := float32(l) / 6
		for _, cell := range [][2]int{{0, 0}, {60, 0}, {0, 34}, {60, 34}, {17, 9}} {
			v := got[grid.Index(l, cell[0], cell[1])]
			assert.Equal(t, want, v.Z())
			assert.Zero(t, v.W())
		}
	}

	last := got[len(got)-1]
	assert.InDelta(t, 60.0/1920*2*32, last.X(), 1e-6)
	assert.InDelta(t, 34.0/1080*2*32, last.Y(), 1e-6)
}

func TestQuad(t *testing.T) {
	grid := tiles.DefaultConfig().Grid()
	quad := grid.Quad()

	right := tiles.Normalize(32, 1920)
	top := tiles.Normalize(32, 1080)
	assert.InDelta(t, -0.966667, right, 1e-5)
	assert.InDelta(t, -0.940741, top, 1e-5)

	u := float32(1) / 6
	want := [4]tiles.Vertex{
		{Pos: [2]float32{right, top}, TexCoord: [2]float32{u, 1}},
		{Pos: [2]float32{right, -1}, TexCoord: [2]float32{u, 0}},
		{Pos: [2]float32{-1, -1}, TexCoord: [2]float32{0, 0}},
		{Pos: [2]float32{-1, top}, TexCoord: [2]float32{0, 1}},
	}
	assert.Equal(t, want, quad)
	assert.Equal(t, [6]uint32{0, 1, 3, 1, 2, 3}, tiles.QuadIndices)
}

func TestGridValidate(t *testing.T) {
	valid := tiles.NewGrid(32, tiles.Viewport{Width: 640, Height: 480}, 1, 1)
	require.NoError(t, valid.Validate())

	tests := map[string]tiles.Grid{
		"zero tile":     tiles.NewGrid(0, tiles.Viewport{Width: 640, Height: 480}, 1, 1),
		"zero width":    tiles.NewGrid(32, tiles.Viewport{Width: 0, Height: 480}, 1, 1),
		"no layers":     tiles.NewGrid(32, tiles.Viewport{Width: 640, Height: 480}, 0, 1),
		"no atlas cols": tiles.NewGrid(32, tiles.Viewport{Width: 640, Height: 480}, 1, 0),
		"empty extent": {
			TileSize: 32, Viewport: tiles.Viewport{Width: 640, Height: 480}, Layers: 1, AtlasColumns: 1,
		},
	}
	for name, g := range tests {
		assert.Error(t, g.Validate(), name)
	}

	assert.Zero(t, tiles.NewGrid(0, tiles.Viewport{Width: 640, Height: 480}, 1, 1).Count())
	assert.Empty(t, tiles.NewGrid(32, tiles.Viewport{Width: 640, Height: 480}, 0, 1).Instances())
}
