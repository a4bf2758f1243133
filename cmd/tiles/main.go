// Command tiles fills the screen with a multi-layer tile grid drawn by a
// single instanced draw call per frame and logs the frame rate.
//
// Prerequisites:
//
//	devbox shell              # provides Go + OpenGL/X11 headers
//	go run ./cmd/tiles/       # desktop GL 4.1 core
//	go run -tags gles ./cmd/tiles/  # OpenGL ES 3.1
//
// The atlas texture (opengl.png by default) and the optional tiles.yml
// are read from the working directory.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/tiles"
	"github.com/go-theft-auto/tiles/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := tiles.LoadConfig(tiles.ConfigFilename)
	if err != nil {
		return err
	}

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}

	renderer, err := opengl.NewRenderer(opengl.NewDriver(), cfg.Grid(),
		opengl.WithLogger(logger),
		opengl.WithClearColor(cfg.ClearColor),
		opengl.WithAtlasFile(cfg.Texture),
	)
	if err != nil {
		window.Destroy()
		return fmt.Errorf("tile renderer: %w", err)
	}
	renderer.Resize(window.FramebufferSize())

	loop := tiles.NewLoop(window, renderer, window,
		tiles.WithLogger(logger),
		tiles.WithResize(cfg.HandleResize),
		tiles.WithTeardown(renderer.Delete),
		tiles.WithTeardown(window.Destroy),
	)
	loop.Run()

	return nil
}
