package triangle_test

import (
	"fmt"

	"github.com/go-theft-auto/triangle"
)

// fakeDevice records every call and tracks live GPU objects so tests can
// check ordering, uploaded contents and leaks without a GL context.
type fakeDevice struct {
	calls []string
	next  uint32

	shaders  map[uint32]string
	programs map[uint32]bool
	vaos     map[uint32]bool
	buffers  map[uint32]bool

	bound        map[triangle.BufferTarget]uint32
	floats       map[uint32][]float32
	indices      map[uint32][]uint32
	attribs      map[uint32]int32
	enabled      map[uint32]bool
	floatUploads [][]float32
	indexUploads [][]uint32
	drawCounts   []int32
	usedAtDraw   []uint32
	program      uint32

	failCompile map[triangle.ShaderStage]bool
	failLink    bool
	linkLog     string
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		shaders:     make(map[uint32]string),
		programs:    make(map[uint32]bool),
		vaos:        make(map[uint32]bool),
		buffers:     make(map[uint32]bool),
		bound:       make(map[triangle.BufferTarget]uint32),
		floats:      make(map[uint32][]float32),
		indices:     make(map[uint32][]uint32),
		attribs:     make(map[uint32]int32),
		enabled:     make(map[uint32]bool),
		failCompile: make(map[triangle.ShaderStage]bool),
	}
}

func (f *fakeDevice) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeDevice) id() uint32 {
	f.next++
	return f.next
}

func (f *fakeDevice) SetClearColor(r, g, b, a float32) {
	f.record("ClearColor(%g,%g,%g,%g)", r, g, b, a)
}

func (f *fakeDevice) Clear() { f.record("Clear") }

func (f *fakeDevice) CreateShader(stage triangle.ShaderStage) uint32 {
	s := f.id()
	f.shaders[s] = stage.String()
	f.record("CreateShader(%s)", stage)
	return s
}

func (f *fakeDevice) ShaderSource(shader uint32, source string) { f.record("ShaderSource") }
func (f *fakeDevice) CompileShader(shader uint32)               { f.record("CompileShader") }

func (f *fakeDevice) CompileStatus(shader uint32) bool {
	switch f.shaders[shader] {
	case "vertex":
		return !f.failCompile[triangle.VertexStage]
	case "fragment":
		return !f.failCompile[triangle.FragmentStage]
	}
	return false
}

func (f *fakeDevice) ShaderInfoLog(shader uint32) string {
	return "0:1(1): error: syntax error"
}

func (f *fakeDevice) DeleteShader(shader uint32) {
	delete(f.shaders, shader)
	f.record("DeleteShader")
}

func (f *fakeDevice) CreateProgram() uint32 {
	p := f.id()
	f.programs[p] = true
	f.record("CreateProgram")
	return p
}

func (f *fakeDevice) AttachShader(program, shader uint32) { f.record("AttachShader") }
func (f *fakeDevice) DetachShader(program, shader uint32) { f.record("DetachShader") }
func (f *fakeDevice) LinkProgram(program uint32)          { f.record("LinkProgram") }
func (f *fakeDevice) LinkStatus(program uint32) bool      { return !f.failLink }

func (f *fakeDevice) ProgramInfoLog(program uint32) string {
	if !f.failLink {
		return ""
	}
	return f.linkLog
}

func (f *fakeDevice) UseProgram(program uint32) {
	f.program = program
	f.record("UseProgram")
}

func (f *fakeDevice) DeleteProgram(program uint32) {
	delete(f.programs, program)
	f.record("DeleteProgram")
}

func (f *fakeDevice) GenVertexArray() uint32 {
	v := f.id()
	f.vaos[v] = true
	f.record("GenVertexArray")
	return v
}

func (f *fakeDevice) BindVertexArray(vao uint32) {
	if vao == 0 {
		f.record("BindVertexArray(0)")
		return
	}
	f.record("BindVertexArray")
}

func (f *fakeDevice) DeleteVertexArray(vao uint32) {
	delete(f.vaos, vao)
	f.record("DeleteVertexArray")
}

func (f *fakeDevice) GenBuffer() uint32 {
	b := f.id()
	f.buffers[b] = true
	f.record("GenBuffer")
	return b
}

func targetName(t triangle.BufferTarget) string {
	if t == triangle.ElementArrayBuffer {
		return "element"
	}
	return "array"
}

func (f *fakeDevice) BindBuffer(target triangle.BufferTarget, buffer uint32) {
	f.bound[target] = buffer
	if buffer == 0 {
		f.record("BindBuffer(%s,0)", targetName(target))
		return
	}
	f.record("BindBuffer(%s)", targetName(target))
}

func (f *fakeDevice) BufferFloats(target triangle.BufferTarget, data []float32) {
	f.floats[f.bound[target]] = append([]float32(nil), data...)
	f.floatUploads = append(f.floatUploads, f.floats[f.bound[target]])
	f.record("BufferFloats(%s)", targetName(target))
}

func (f *fakeDevice) BufferIndices(target triangle.BufferTarget, data []uint32) {
	f.indices[f.bound[target]] = append([]uint32(nil), data...)
	f.indexUploads = append(f.indexUploads, f.indices[f.bound[target]])
	f.record("BufferIndices(%s)", targetName(target))
}

func (f *fakeDevice) DeleteBuffer(buffer uint32) {
	delete(f.buffers, buffer)
	f.record("DeleteBuffer")
}

func (f *fakeDevice) VertexAttribPointer(slot uint32, size int32) {
	f.attribs[slot] = size
	f.record("VertexAttribPointer(%d,%d)", slot, size)
}

func (f *fakeDevice) EnableVertexAttribArray(slot uint32) {
	f.enabled[slot] = true
	f.record("EnableVertexAttribArray(%d)", slot)
}

func (f *fakeDevice) DrawTriangles(count int32) {
	f.drawCounts = append(f.drawCounts, count)
	f.usedAtDraw = append(f.usedAtDraw, f.program)
	f.record("DrawTriangles(%d)", count)
}

// reset clears the call log, keeping object state.
func (f *fakeDevice) reset() {
	f.calls = nil
}
