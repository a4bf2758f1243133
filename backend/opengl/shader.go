package opengl

import (
	"errors"
	"fmt"
)

// DefaultLogCapacity is the info log size used by the renderer.
const DefaultLogCapacity = 512

// Vertex shader: attribute 0 is the quad corner (pos.xy, uv.zw),
// attribute 1 the per-instance offset (translation.xy, atlas shift.zw).
const vertexShaderBody = `
layout (location = 0) in vec4 vertex;
layout (location = 1) in vec4 offset;

out vec2 TexCoord;

void main() {
    TexCoord = vertex.zw + offset.zw;
    gl_Position = vec4(vertex.x + offset.x, vertex.y + offset.y, 0.0, 1.0);
}
`

const fragmentShaderBody = `
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D texture1;

void main() {
    FragColor = texture(texture1, TexCoord);
}
`

// VertexShaderSource returns the tile vertex shader for this build's GL flavour.
func VertexShaderSource() string { return shaderHeader + vertexShaderBody }

// FragmentShaderSource returns the tile fragment shader for this build's GL flavour.
func FragmentShaderSource() string { return shaderHeader + fragmentShaderBody }

// ProgramResult is the outcome of BuildProgram.
type ProgramResult struct {
	Program          uint32
	VertexCompiled   bool
	FragmentCompiled bool
	Linked           bool

	// Log holds the last diagnostic written, truncated to the requested
	// capacity. A link error overwrites a compile error.
	Log string
}

// OK reports whether both stages compiled and the program linked.
func (r ProgramResult) OK() bool {
	return r.VertexCompiled && r.FragmentCompiled && r.Linked
}

// Err returns nil if OK, otherwise an error naming the failed steps.
func (r ProgramResult) Err() error {
	if r.OK() {
		return nil
	}
	var errs []error
	if !r.VertexCompiled {
		errs = append(errs, errors.New("vertex shader compilation failed"))
	}
	if !r.FragmentCompiled {
		errs = append(errs, errors.New("fragment shader compilation failed"))
	}
	if !r.Linked {
		errs = append(errs, errors.New("shader program linking failed"))
	}
	err := errors.Join(errs...)
	if r.Log == "" {
		return err
	}
	return fmt.Errorf("%w\n%s", err, r.Log)
}

// BuildProgram compiles both stages and links them into a program.
//
// A failed compile does not stop the build: the other stage is still
// compiled and the program is still linked, so every step gets a status.
// Both shader objects are deleted once linking is done. The program id is
// returned even when the result is not OK; callers check OK before use.
func BuildProgram(d Driver, vertexSource, fragmentSource string, logCapacity int) ProgramResult {
	var res ProgramResult
	setLog := func(msg string) {
		if logCapacity >= 0 && len(msg) > logCapacity {
			msg = msg[:logCapacity]
		}
		res.Log = msg
	}

	vertexShader := d.CreateShader(VertexStage)
	res.VertexCompiled = d.CompileShader(vertexShader, vertexSource)
	if !res.VertexCompiled {
		setLog(d.ShaderInfoLog(vertexShader))
	}

	fragmentShader := d.CreateShader(FragmentStage)
	res.FragmentCompiled = d.CompileShader(fragmentShader, fragmentSource)
	if !res.FragmentCompiled {
		setLog(d.ShaderInfoLog(fragmentShader))
	}

	res.Program = d.CreateProgram()
	res.Linked = d.LinkProgram(res.Program, vertexShader, fragmentShader)
	if !res.Linked {
		setLog(d.ProgramInfoLog(res.Program))
	}

	d.DeleteShader(vertexShader)
	d.DeleteShader(fragmentShader)

	return res
}
