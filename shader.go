package triangle

import (
	"fmt"
	"log/slog"
)

// VertexShaderSource passes the per-vertex color through and places the
// vertex at its model position unchanged.
const VertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 vPos;
layout (location = 1) in vec4 vCol;

out vec4 outCol;

void main() {
    outCol = vCol;
    gl_Position = vec4(vPos.x, vPos.y, vPos.z, 1.0);
}
`

// FragmentShaderSource writes the interpolated vertex color.
const FragmentShaderSource = `
#version 330 core
out vec4 FragColor;

in vec4 outCol;

void main() {
    FragColor = outCol;
}
`

// LinkError reports a program that failed to link. The program object
// still exists and is returned alongside the error.
type LinkError struct {
	Program uint32
	Log     string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("error linking shader program %d: %s", e.Program, e.Log)
}

// LinkProgram compiles both stages, links them into a new program and
// releases the stages. The stages are detached and deleted whether or not
// linking succeeds.
//
// Compile failures are logged and do not stop the link attempt; the link
// status is what decides the result. On link failure the program handle is
// returned together with a *LinkError carrying the info log.
func LinkProgram(dev Device, vertexSource, fragmentSource string, logger *slog.Logger) (uint32, error) {
	if logger == nil {
		logger = newNopLogger()
	}

	vshader := dev.CreateShader(VertexStage)
	fshader := dev.CreateShader(FragmentStage)

	dev.ShaderSource(vshader, vertexSource)
	dev.ShaderSource(fshader, fragmentSource)

	compileStage(dev, vshader, VertexStage, logger)
	compileStage(dev, fshader, FragmentStage, logger)

	program := dev.CreateProgram()
	dev.AttachShader(program, vshader)
	dev.AttachShader(program, fshader)
	dev.LinkProgram(program)
	dev.DetachShader(program, vshader)
	dev.DetachShader(program, fshader)
	dev.DeleteShader(vshader)
	dev.DeleteShader(fshader)

	if !dev.LinkStatus(program) {
		err := &LinkError{Program: program, Log: dev.ProgramInfoLog(program)}
		logger.Error("error linking shader", "program", program, "log", err.Log)
		return program, err
	}

	logger.Debug("shader program linked", "program", program)
	return program, nil
}

func compileStage(dev Device, shader uint32, stage ShaderStage, logger *slog.Logger) {
	dev.CompileShader(shader)
	if !dev.CompileStatus(shader) {
		logger.Error("shader compilation failed",
			"stage", stage.String(),
			"shader", shader,
			"log", dev.ShaderInfoLog(shader))
	}
}
