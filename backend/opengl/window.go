package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowOptions configures the window and its OpenGL context.
type WindowOptions struct {
	Width  int
	Height int
	Title  string
	VSync  bool

	// Hidden creates the window without showing it.
	Hidden bool
}

// DefaultWindowOptions returns an 800x600 window with vsync enabled.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Width:  800,
		Height: 600,
		Title:  "My first triangle program!",
		VSync:  true,
	}
}

// Loop is driven by Window.Run. Load runs once with the context current,
// then Update and Render run once per frame.
type Loop interface {
	Load() error
	Update(dt float64)
	Render(dt float64)
}

// Window is a GLFW window owning an OpenGL 4.1 core context.
// GLFW must be driven from the main thread; callers lock it with
// runtime.LockOSThread before creating a window.
type Window struct {
	window *glfw.Window
	opts   WindowOptions
	last   float64
}

// NewWindow initializes GLFW, creates the window, makes its context current
// and loads the OpenGL function pointers.
func NewWindow(opts WindowOptions) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return &Window{window: window, opts: opts, last: glfw.GetTime()}, nil
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (width, height int) {
	return w.window.GetSize()
}

// Title returns the title the window was created with.
func (w *Window) Title() string {
	return w.opts.Title
}

// Run calls loop.Load and then drives frames until the window is asked to
// close.
func (w *Window) Run(loop Loop) error {
	if err := loop.Load(); err != nil {
		return fmt.Errorf("load: %w", err)
	}

	w.last = glfw.GetTime()
	for !w.window.ShouldClose() {
		w.Frame(loop)
	}

	return nil
}

// Frame runs a single iteration of the frame loop. dt is measured from the
// previous frame.
func (w *Window) Frame(loop Loop) {
	glfw.PollEvents()

	now := glfw.GetTime()
	dt := now - w.last
	w.last = now

	loop.Update(dt)

	fw, fh := w.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))

	loop.Render(dt)

	w.window.SwapBuffers()
}

// Close asks the frame loop to stop after the current frame.
func (w *Window) Close() {
	w.window.SetShouldClose(true)
}

// Destroy destroys the window and terminates GLFW.
func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}
