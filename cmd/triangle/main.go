// Command triangle opens an 800x600 window and draws one colored triangle
// per frame. Shader link diagnostics are written to standard output.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	window, err := opengl.NewWindow(opengl.DefaultWindowOptions())
	if err != nil {
		return err
	}
	defer window.Destroy()

	app := triangle.New(opengl.NewDevice(), triangle.WithLogger(logger))
	defer app.Delete()

	return window.Run(app)
}
