package triangle

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used for shader diagnostics.
// A nil logger discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger == nil {
			logger = newNopLogger()
		}
		a.logger = logger
	}
}

// WithClearColor sets the color the framebuffer is cleared to.
func WithClearColor(c mgl32.Vec4) Option {
	return func(a *App) { a.clearColor = c }
}

// WithShaderSources replaces the built-in shader pair.
func WithShaderSources(vertexSource, fragmentSource string) Option {
	return func(a *App) {
		a.vertexSource = vertexSource
		a.fragmentSource = fragmentSource
	}
}

// WithMesh replaces the geometry drawn each frame.
// A nil mesh keeps the default triangle.
func WithMesh(m *Mesh) Option {
	return func(a *App) {
		if m == nil {
			m = TriangleMesh()
		}
		a.mesh = m
	}
}

// WithRetainedBuffers uploads the geometry once during Load and reuses the
// vertex array on every frame instead of rebuilding it per frame.
// The rendered image is the same either way.
func WithRetainedBuffers() Option {
	return func(a *App) { a.retain = true }
}
