//go:build !gles

package opengl

import (
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// shaderHeader is prepended to every shader source.
const shaderHeader = "#version 410 core\n"

// contextHints requests a forward-compatible 4.1 core profile context.
func contextHints() {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
}

// initBindings loads GL function pointers for the current context.
func initBindings() error {
	return gl.Init()
}

type glDriver struct{}

var _ Driver = glDriver{}

// NewDriver returns the Driver for the current context. Call it after
// the window's context has been made current.
func NewDriver() Driver {
	return glDriver{}
}

func (glDriver) CreateShader(stage ShaderStage) uint32 {
	if stage == FragmentStage {
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return gl.CreateShader(gl.VERTEX_SHADER)
}

func (glDriver) CompileShader(shader uint32, source string) bool {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (glDriver) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (glDriver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (glDriver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (glDriver) LinkProgram(program uint32, shaders ...uint32) bool {
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (glDriver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (glDriver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (glDriver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (glDriver) EnableAlphaBlend() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (glDriver) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	return vao
}

func (glDriver) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (glDriver) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (glDriver) ArrayBuffer(data unsafe.Pointer, size int) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, size, data, gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return buf
}

func (glDriver) IndexBuffer(indices []uint32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	return buf
}

func (glDriver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (glDriver) VertexAttrib(index, buffer uint32, components int32, divisor uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointerWithOffset(index, components, gl.FLOAT, false, components*4, 0)
	gl.VertexAttribDivisor(index, divisor)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (glDriver) CreateTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	return tex
}

func (glDriver) UploadTexture(texture uint32, img *image.RGBA) {
	size := img.Rect.Size()
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
}

func (glDriver) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (glDriver) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (glDriver) Clear(color [4]float32) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (glDriver) DrawInstanced(indexCount, instanceCount int32) {
	gl.DrawElementsInstanced(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, nil, instanceCount)
}

func (glDriver) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func (glDriver) Info() (renderer, version string) {
	return gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION))
}
