package opengl

import (
	"image"
	"unsafe"
)

// ShaderStage selects the pipeline stage a shader object is compiled for.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	if s == FragmentStage {
		return "fragment"
	}
	return "vertex"
}

// Driver is the slice of the GL API the renderer uses. The !gles build
// implements it with desktop GL 4.1 core, the gles build with GLES 3.1.
// All calls must happen on the thread that owns the context.
type Driver interface {
	CreateShader(stage ShaderStage) uint32
	// CompileShader sets the source, compiles and returns COMPILE_STATUS.
	CompileShader(shader uint32, source string) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	// LinkProgram attaches shaders, links and returns LINK_STATUS.
	LinkProgram(program uint32, shaders ...uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// EnableAlphaBlend turns on SRC_ALPHA, ONE_MINUS_SRC_ALPHA blending.
	EnableAlphaBlend()

	// CreateVertexArray generates a VAO and leaves it bound.
	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	// ArrayBuffer uploads size bytes at data into a new STATIC_DRAW
	// ARRAY_BUFFER and unbinds it.
	ArrayBuffer(data unsafe.Pointer, size int) uint32
	// IndexBuffer uploads indices into a new STATIC_DRAW ELEMENT_ARRAY_BUFFER.
	// The binding is recorded in the currently bound VAO.
	IndexBuffer(indices []uint32) uint32
	DeleteBuffer(buffer uint32)
	// VertexAttrib points attribute index at a tightly packed float
	// stream in buffer. divisor 0 steps per vertex, 1 per instance.
	VertexAttrib(index, buffer uint32, components int32, divisor uint32)

	// CreateTexture generates a 2D texture with repeat wrapping, linear
	// magnification and trilinear minification, and leaves it bound.
	CreateTexture() uint32
	// UploadTexture sets level 0 from img and generates the mipmap chain.
	UploadTexture(texture uint32, img *image.RGBA)
	DeleteTexture(texture uint32)

	Viewport(width, height int32)
	Clear(color [4]float32)
	// DrawInstanced draws indexCount uint32 indices of the bound VAO
	// instanceCount times.
	DrawInstanced(indexCount, instanceCount int32)
	// ReadPixels reads back the RGBA framebuffer, bottom row first.
	ReadPixels(width, height int) []byte

	// Info returns the RENDERER and VERSION strings.
	Info() (renderer, version string)
}
