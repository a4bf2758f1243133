/*
Package tiles renders a full screen of textured tiles, several layers
deep, with a single instanced draw call per frame.

# Overview

The package itself knows nothing about OpenGL or windows. It holds the
pieces that can be computed and tested without a GPU:

  - Normalize, the pixel to normalized device coordinate transform
  - Grid, which derives the tile grid from a viewport and builds the
    per-instance offset table and the tile quad
  - DecodeAtlas and LoadAtlas, which turn an image file into flipped RGBA
    pixels ready for upload
  - Config, loaded from an optional tiles.yml
  - Loop, the poll/draw/present cycle with its fps counter

The OpenGL side lives in backend/opengl.

# Quick Start

	cfg, _ := tiles.LoadConfig(tiles.ConfigFilename)
	win, _ := opengl.OpenWindow(cfg)
	renderer, _ := opengl.NewRenderer(opengl.NewDriver(), cfg.Grid(),
	    opengl.WithAtlasFile(cfg.Texture))

	loop := tiles.NewLoop(win, renderer, win,
	    tiles.WithTeardown(renderer.Delete),
	    tiles.WithTeardown(win.Destroy))
	loop.Run()

# Instance Table

For L layers over a C x R grid the table holds L*C*R vec4 entries in
layer, column, row order. Entry (l, c, r) is

	x = c / width * 2 * tile
	y = r / height * 2 * tile
	z = l / atlasColumns
	w = 0

x and y are added to the quad position in the vertex shader, z is added
to the texture coordinate to select the layer's atlas column.

# Configuration

tiles.yml is optional. Every key overrides one default:

	title: tiles
	width: 1920
	height: 1080
	fullscreen: false
	vsync: false
	handle_resize: true
	tile_size: 32
	layers: 6
	atlas_columns: 6
	texture: opengl.png
	clear_color: [0.5, 0, 0, 1]
*/
package tiles
