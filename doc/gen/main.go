// Command gen renders the tile grid at a few sizes in a hidden window,
// reads back the framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/anthonynsimon/bild/transform"

	"github.com/go-theft-auto/tiles"
	"github.com/go-theft-auto/tiles/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single grid screenshot to capture.
type screenshot struct {
	name   string  // filename without extension
	width  int     // viewport width
	height int     // viewport height
	tile   float32 // tile size in pixels
	layers int
	frames int // extra frames to render (0 = default 2)
}

func run() error {
	cfg := tiles.DefaultConfig()
	cfg.Title = "screenshot-gen"

	shots := []screenshot{
		{name: "tiles_1080p", width: 1920, height: 1080, tile: 32, layers: 6},
		{name: "tiles_720p", width: 1280, height: 720, tile: 32, layers: 6},
		{name: "tiles_single_layer", width: 800, height: 600, tile: 64, layers: 1},
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, s := range shots {
		cfg.Width, cfg.Height = s.width, s.height
		if err := capture(cfg, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(cfg tiles.Config, s screenshot, outDir string) error {
	window, err := opengl.OpenWindow(cfg, opengl.Hidden())
	if err != nil {
		return err
	}
	defer window.Destroy()

	driver := opengl.NewDriver()
	grid := tiles.NewGrid(s.tile, tiles.Viewport{Width: s.width, Height: s.height}, s.layers, cfg.AtlasColumns)
	renderer, err := opengl.NewRenderer(driver, grid,
		opengl.WithClearColor(cfg.ClearColor),
		opengl.WithAtlasFile(cfg.Texture),
	)
	if err != nil {
		return err
	}
	defer renderer.Delete()
	renderer.Resize(s.width, s.height)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	for i := 0; i < frames; i++ {
		renderer.Draw()
	}

	// GL returns the bottom row first.
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, driver.ReadPixels(s.width, s.height))

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, transform.FlipV(img), &jpeg.Options{Quality: 90})
}
