package opengl

import (
	"image"
	"strings"
	"unsafe"
)

type fakeShader struct {
	stage    ShaderStage
	source   string
	compiled bool
	deleted  bool
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	deleted  bool
}

type fakeBuffer struct {
	size    int
	indices []uint32
	deleted bool
}

type fakeAttrib struct {
	buffer     uint32
	components int32
	divisor    uint32
}

type fakeTexture struct {
	size     image.Point
	uploaded bool
	deleted  bool
}

type fakeDraw struct {
	indexCount, instances int32
	program, vao          uint32
}

// fakeDriver records GL calls in memory. A shader compiles when its
// source has a main function; a program links when all its shaders
// compiled. failLink and forceLink override that.
type fakeDriver struct {
	next uint32

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	buffers  map[uint32]*fakeBuffer
	textures map[uint32]*fakeTexture
	vaos     map[uint32]bool // id -> deleted
	attribs  map[uint32]fakeAttrib

	failLink  bool
	forceLink bool

	blend      bool
	program    uint32
	vao        uint32
	viewport   [2]int32
	clearColor [4]float32
	clears     int
	draws      []fakeDraw
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
		buffers:  make(map[uint32]*fakeBuffer),
		textures: make(map[uint32]*fakeTexture),
		vaos:     make(map[uint32]bool),
		attribs:  make(map[uint32]fakeAttrib),
	}
}

func (f *fakeDriver) id() uint32 {
	f.next++
	return f.next
}

func (f *fakeDriver) CreateShader(stage ShaderStage) uint32 {
	id := f.id()
	f.shaders[id] = &fakeShader{stage: stage}
	return id
}

func (f *fakeDriver) CompileShader(shader uint32, source string) bool {
	s := f.shaders[shader]
	s.source = source
	s.compiled = strings.Contains(source, "void main")
	return s.compiled
}

func (f *fakeDriver) ShaderInfoLog(shader uint32) string {
	if f.shaders[shader].compiled {
		return ""
	}
	return f.shaders[shader].stage.String() + ": 0:1(1): error: syntax error, unexpected end of file"
}

func (f *fakeDriver) DeleteShader(shader uint32) {
	f.shaders[shader].deleted = true
}

func (f *fakeDriver) CreateProgram() uint32 {
	id := f.id()
	f.programs[id] = &fakeProgram{}
	return id
}

func (f *fakeDriver) LinkProgram(program uint32, shaders ...uint32) bool {
	p := f.programs[program]
	p.attached = append(p.attached, shaders...)
	p.linked = !f.failLink
	for _, s := range shaders {
		if !f.shaders[s].compiled {
			p.linked = false
		}
	}
	if f.forceLink {
		p.linked = true
	}
	return p.linked
}

func (f *fakeDriver) ProgramInfoLog(program uint32) string {
	if f.programs[program].linked {
		return ""
	}
	return "error: linking with uncompiled/unspecialized shader"
}

func (f *fakeDriver) UseProgram(program uint32) { f.program = program }

func (f *fakeDriver) DeleteProgram(program uint32) {
	f.programs[program].deleted = true
}

func (f *fakeDriver) EnableAlphaBlend() { f.blend = true }

func (f *fakeDriver) CreateVertexArray() uint32 {
	id := f.id()
	f.vaos[id] = false
	f.vao = id
	return id
}

func (f *fakeDriver) BindVertexArray(vao uint32) { f.vao = vao }

func (f *fakeDriver) DeleteVertexArray(vao uint32) { f.vaos[vao] = true }

func (f *fakeDriver) ArrayBuffer(_ unsafe.Pointer, size int) uint32 {
	id := f.id()
	f.buffers[id] = &fakeBuffer{size: size}
	return id
}

func (f *fakeDriver) IndexBuffer(indices []uint32) uint32 {
	id := f.id()
	f.buffers[id] = &fakeBuffer{size: len(indices) * 4, indices: append([]uint32(nil), indices...)}
	return id
}

func (f *fakeDriver) DeleteBuffer(buffer uint32) {
	f.buffers[buffer].deleted = true
}

func (f *fakeDriver) VertexAttrib(index, buffer uint32, components int32, divisor uint32) {
	f.attribs[index] = fakeAttrib{buffer: buffer, components: components, divisor: divisor}
}

func (f *fakeDriver) CreateTexture() uint32 {
	id := f.id()
	f.textures[id] = &fakeTexture{}
	return id
}

func (f *fakeDriver) UploadTexture(texture uint32, img *image.RGBA) {
	t := f.textures[texture]
	t.size = img.Rect.Size()
	t.uploaded = true
}

func (f *fakeDriver) DeleteTexture(texture uint32) {
	f.textures[texture].deleted = true
}

func (f *fakeDriver) Viewport(width, height int32) { f.viewport = [2]int32{width, height} }

func (f *fakeDriver) Clear(color [4]float32) {
	f.clearColor = color
	f.clears++
}

func (f *fakeDriver) DrawInstanced(indexCount, instanceCount int32) {
	f.draws = append(f.draws, fakeDraw{
		indexCount: indexCount,
		instances:  instanceCount,
		program:    f.program,
		vao:        f.vao,
	})
}

func (f *fakeDriver) ReadPixels(width, height int) []byte {
	return make([]byte, width*height*4)
}

func (f *fakeDriver) Info() (renderer, version string) {
	return "fake renderer", "4.1 fake"
}

var _ Driver = (*fakeDriver)(nil)
