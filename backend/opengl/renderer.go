// Package opengl draws a tiles.Grid with OpenGL: desktop GL 4.1 core by
// default, OpenGL ES 3.1 when built with the gles tag.
package opengl

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/tiles"
)

// Stage names the setup step a SetupError came from.
type Stage string

const (
	StageShader  Stage = "shader"
	StageTexture Stage = "texture"
)

// SetupError is a non-fatal setup failure. The renderer keeps going and
// the failure shows up on screen as missing or garbled tiles.
type SetupError struct {
	Stage Stage
	Err   error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s setup: %v", e.Stage, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// Renderer owns every GPU object needed to draw the grid.
type Renderer struct {
	driver Driver
	logger *slog.Logger

	program     uint32
	vao         uint32
	vbo         uint32
	ebo         uint32
	instanceVBO uint32
	texture     uint32

	instances  int32
	clearColor [4]float32

	diagnostics []error
}

var _ tiles.Scene = (*Renderer)(nil)

// RendererOption configures NewRenderer.
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	logger      *slog.Logger
	clearColor  [4]float32
	logCapacity int
	atlas       func() (*image.RGBA, error)
}

// WithLogger sets the logger for setup diagnostics.
func WithLogger(logger *slog.Logger) RendererOption {
	return func(o *rendererOptions) { o.logger = logger }
}

// WithClearColor sets the background colour.
func WithClearColor(c [4]float32) RendererOption {
	return func(o *rendererOptions) { o.clearColor = c }
}

// WithLogCapacity sets the shader info log capacity in bytes.
func WithLogCapacity(n int) RendererOption {
	return func(o *rendererOptions) { o.logCapacity = n }
}

// WithAtlasFile loads the atlas texture from path.
func WithAtlasFile(path string) RendererOption {
	return func(o *rendererOptions) {
		o.atlas = func() (*image.RGBA, error) { return tiles.LoadAtlas(path) }
	}
}

// WithAtlasReader decodes the atlas texture from r.
func WithAtlasReader(r io.Reader) RendererOption {
	return func(o *rendererOptions) {
		o.atlas = func() (*image.RGBA, error) { return tiles.DecodeAtlas(r) }
	}
}

// NewRenderer acquires all GPU resources for grid. The context behind d
// must be current.
//
// Only an invalid grid is an error. Shader and texture failures are
// logged, kept in Diagnostics, and the renderer is returned anyway.
func NewRenderer(d Driver, grid tiles.Grid, opts ...RendererOption) (*Renderer, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	o := rendererOptions{
		logger:      slog.Default(),
		clearColor:  tiles.DefaultConfig().ClearColor,
		logCapacity: DefaultLogCapacity,
		atlas:       func() (*image.RGBA, error) { return tiles.LoadAtlas(tiles.DefaultConfig().Texture) },
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		driver:     d,
		logger:     o.logger,
		clearColor: o.clearColor,
	}

	d.EnableAlphaBlend()

	prog := BuildProgram(d, VertexShaderSource(), FragmentShaderSource(), o.logCapacity)
	if err := prog.Err(); err != nil {
		r.fail(StageShader, err)
	}
	r.program = prog.Program
	d.UseProgram(r.program)

	offsets := grid.Instances()
	r.instances = int32(len(offsets))
	r.instanceVBO = d.ArrayBuffer(unsafe.Pointer(&offsets[0]), len(offsets)*int(unsafe.Sizeof(mgl32.Vec4{})))

	quad := grid.Quad()
	r.vao = d.CreateVertexArray()
	r.vbo = d.ArrayBuffer(unsafe.Pointer(&quad[0]), len(quad)*int(unsafe.Sizeof(tiles.Vertex{})))
	r.ebo = d.IndexBuffer(tiles.QuadIndices[:])
	d.VertexAttrib(0, r.vbo, 4, 0)
	d.VertexAttrib(1, r.instanceVBO, 4, 1)

	r.texture = d.CreateTexture()
	img, err := o.atlas()
	if err != nil {
		r.fail(StageTexture, err)
	} else {
		d.UploadTexture(r.texture, img)
	}

	name, version := d.Info()
	r.logger.Info("gl context", "renderer", name, "version", version,
		"instances", r.instances, "grid", fmt.Sprintf("%dx%dx%d", grid.Columns, grid.Rows, grid.Layers))

	return r, nil
}

func (r *Renderer) fail(stage Stage, err error) {
	r.logger.Warn("setup failed", "stage", string(stage), "error", err)
	r.diagnostics = append(r.diagnostics, &SetupError{Stage: stage, Err: err})
}

// Diagnostics returns the setup failures, each a *SetupError.
func (r *Renderer) Diagnostics() []error {
	return r.diagnostics
}

// Instances returns how many instances each Draw renders.
func (r *Renderer) Instances() int {
	return int(r.instances)
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.driver.Viewport(int32(width), int32(height))
}

// Draw clears the frame and renders every tile of every layer with one
// instanced draw call.
func (r *Renderer) Draw() {
	r.driver.Clear(r.clearColor)
	r.driver.UseProgram(r.program)
	r.driver.BindVertexArray(r.vao)
	r.driver.DrawInstanced(int32(len(tiles.QuadIndices)), r.instances)
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	d := r.driver
	if r.texture != 0 {
		d.DeleteTexture(r.texture)
	}
	if r.ebo != 0 {
		d.DeleteBuffer(r.ebo)
	}
	if r.vbo != 0 {
		d.DeleteBuffer(r.vbo)
	}
	if r.instanceVBO != 0 {
		d.DeleteBuffer(r.instanceVBO)
	}
	if r.vao != 0 {
		d.DeleteVertexArray(r.vao)
	}
	if r.program != 0 {
		d.DeleteProgram(r.program)
	}
	*r = Renderer{driver: d, logger: r.logger}
}
