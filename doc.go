/*
Package triangle draws a single colored triangle through a small graphics
device abstraction.

An App holds all graphics state. Load builds the shader program once and
Render draws one frame:

	window, err := opengl.NewWindow(opengl.DefaultWindowOptions())
	if err != nil {
	    return err
	}
	defer window.Destroy()

	app := triangle.New(opengl.NewDevice(), triangle.WithLogger(logger))
	defer app.Delete()

	return window.Run(app)

# Frame Sequence

By default each frame clears the framebuffer, creates a vertex array and
three buffers (positions, colors, indices), uploads the mesh, binds the
program, draws three indices as one triangle and deletes the vertex array
and buffers again. Nothing created during a frame outlives it.

This per-frame churn is wasteful. WithRetainedBuffers moves the upload into
Load and keeps the vertex array for the lifetime of the App; the output is
identical.

# Shader Diagnostics

A program that fails to link is not fatal. Load logs the program info log at
error level and rendering continues with the program object as it is.
LinkErr exposes the failure as a *LinkError.
*/
package triangle
