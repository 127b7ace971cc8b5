package triangle

import (
	"errors"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrAlreadyLoaded is returned by Load when it is called more than once.
var ErrAlreadyLoaded = errors.New("triangle: app already loaded")

// geometry is one vertex array and the buffers feeding it.
type geometry struct {
	vao                       uint32
	vertices, colors, indices uint32
}

// App owns the graphics state of the program: the device, the linked
// program and, in retained mode, the uploaded geometry.
type App struct {
	dev    Device
	logger *slog.Logger

	clearColor     mgl32.Vec4
	vertexSource   string
	fragmentSource string
	mesh           *Mesh
	retain         bool

	loaded   bool
	program  uint32
	linkErr  error
	retained *geometry
	frames   uint64
}

// New creates an App drawing through dev. Nothing touches the device until
// Load is called.
func New(dev Device, opts ...Option) *App {
	a := &App{
		dev:            dev,
		logger:         newNopLogger(),
		vertexSource:   VertexShaderSource,
		fragmentSource: FragmentShaderSource,
		mesh:           TriangleMesh(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Load prepares the device: it sets the clear color and builds the shader
// program. A link failure is logged and otherwise ignored; rendering goes
// ahead with whatever program resulted. Use LinkErr to inspect it.
func (a *App) Load() error {
	if a.loaded {
		return ErrAlreadyLoaded
	}
	a.loaded = true

	c := a.clearColor
	a.dev.SetClearColor(c.X(), c.Y(), c.Z(), c.W())

	a.program, a.linkErr = LinkProgram(a.dev, a.vertexSource, a.fragmentSource, a.logger)

	if a.retain {
		g := a.upload()
		a.dev.BindVertexArray(0)
		a.retained = &g
	}

	a.logger.Debug("loaded", "program", a.program, "retained", a.retain)
	return nil
}

// Update advances per-frame state. The triangle is static, so there is
// nothing to do.
func (a *App) Update(dt float64) {}

// Render draws one frame.
//
// By default every frame builds a vertex array and three buffers, uploads
// the mesh, draws it and deletes everything again, so no GPU objects
// survive the call. With WithRetainedBuffers the geometry uploaded by Load
// is drawn instead.
//
// Render does nothing until Load has run.
func (a *App) Render(dt float64) {
	if !a.loaded {
		return
	}
	a.frames++

	if a.retained != nil {
		a.dev.Clear()
		a.dev.UseProgram(a.program)
		a.dev.BindVertexArray(a.retained.vao)
		a.dev.DrawTriangles(a.mesh.IndexCount())
		a.dev.BindVertexArray(0)
		return
	}

	a.dev.Clear()

	g := a.upload()

	a.dev.UseProgram(a.program)
	a.dev.DrawTriangles(a.mesh.IndexCount())

	a.dev.BindVertexArray(g.vao)

	a.deleteGeometry(g)
}

// upload creates a vertex array with its three buffers, fills them from the
// mesh and leaves the vertex array bound with the array buffer target
// cleared.
func (a *App) upload() geometry {
	var g geometry

	g.vao = a.dev.GenVertexArray()
	a.dev.BindVertexArray(g.vao)

	g.vertices = a.dev.GenBuffer()
	g.colors = a.dev.GenBuffer()
	g.indices = a.dev.GenBuffer()

	a.dev.BindBuffer(ArrayBuffer, g.vertices)
	a.dev.BufferFloats(ArrayBuffer, a.mesh.PositionData())
	a.dev.VertexAttribPointer(PositionSlot, PositionSize)
	a.dev.EnableVertexAttribArray(PositionSlot)

	a.dev.BindBuffer(ArrayBuffer, g.colors)
	a.dev.BufferFloats(ArrayBuffer, a.mesh.ColorData())
	a.dev.VertexAttribPointer(ColorSlot, ColorSize)
	a.dev.EnableVertexAttribArray(ColorSlot)

	a.dev.BindBuffer(ElementArrayBuffer, g.indices)
	a.dev.BufferIndices(ElementArrayBuffer, a.mesh.Indices)

	a.dev.BindBuffer(ArrayBuffer, 0)

	return g
}

func (a *App) deleteGeometry(g geometry) {
	a.dev.DeleteBuffer(g.vertices)
	a.dev.DeleteBuffer(g.colors)
	a.dev.DeleteBuffer(g.indices)
	a.dev.DeleteVertexArray(g.vao)
}

// Delete releases the program and any retained geometry.
func (a *App) Delete() {
	if a.retained != nil {
		a.deleteGeometry(*a.retained)
		a.retained = nil
	}
	if a.program != 0 {
		a.dev.DeleteProgram(a.program)
		a.program = 0
	}
}

// Program returns the program handle built by Load.
func (a *App) Program() uint32 {
	return a.program
}

// LinkErr returns the link failure recorded by Load, if any.
func (a *App) LinkErr() error {
	return a.linkErr
}

// Frames returns the number of frames rendered so far.
func (a *App) Frames() uint64 {
	return a.frames
}
