package triangle

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// BufferTarget is the binding point a buffer object is bound to.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// Device is the graphics context the load and render steps drive.
// It mirrors the small subset of OpenGL this program needs, so the
// call sequence can be exercised without a window.
//
// A Device is bound to one thread; none of its methods are safe for
// concurrent use.
type Device interface {
	SetClearColor(r, g, b, a float32)
	Clear()

	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	LinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferFloats(target BufferTarget, data []float32)
	BufferIndices(target BufferTarget, data []uint32)
	DeleteBuffer(buffer uint32)

	// VertexAttribPointer describes a tightly packed float attribute
	// starting at offset zero of the bound array buffer.
	VertexAttribPointer(slot uint32, size int32)
	EnableVertexAttribArray(slot uint32)

	// DrawTriangles issues an indexed triangle draw of count uint32
	// indices from the bound element array buffer.
	DrawTriangles(count int32)
}
