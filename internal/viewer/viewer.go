// Package viewer drives the render loop: it owns the window, the GL
// resources for the loaded mesh and the axis gizmo, and the camera.
package viewer

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/gl/v3.3-core/gl"
	"go.uber.org/zap"

	"github.com/seiya-kumada/meshview/internal/config"
	"github.com/seiya-kumada/meshview/internal/engine/camera"
	"github.com/seiya-kumada/meshview/internal/engine/capture"
	"github.com/seiya-kumada/meshview/internal/engine/input"
	"github.com/seiya-kumada/meshview/internal/engine/lighting"
	"github.com/seiya-kumada/meshview/internal/engine/model"
	"github.com/seiya-kumada/meshview/internal/engine/shader"
	"github.com/seiya-kumada/meshview/internal/engine/shader/shaders"
	"github.com/seiya-kumada/meshview/internal/engine/window"
	"github.com/seiya-kumada/meshview/internal/logger"
	"github.com/seiya-kumada/meshview/pkg/geometry"
	"github.com/seiya-kumada/meshview/pkg/math"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	fieldOfViewDeg = 45.0
	nearPlane      = 0.1
	farPlane       = 100.0
)

// Background clear color.
var backgroundColor = [3]float32{0.2, 0.2, 0.2}

// Viewer holds everything needed to render one model until exit.
type Viewer struct {
	cfg    *config.Config
	window *window.Window
	input  *input.Input

	program    *shader.Program
	meshBuffer *model.Buffer
	axesBuffer *model.Buffer

	camera     *camera.FixedCamera
	light      *lighting.Light
	screenshot *capture.Screenshot

	modelMatrix math.Mat4
	projection  math.Mat4
}

// New creates the window and GL context, uploads the mesh, and
// prepares all render state. On any failure the resources created so
// far are released before returning.
func New(cfg *config.Config, mesh *geometry.Mesh, title string) (*Viewer, error) {
	v := &Viewer{
		cfg:   cfg,
		input: input.New(),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:  title,
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := gl.Init(); err != nil {
		v.window.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.LineWidth(cfg.Viewer.LineWidth)

	v.program, err = compileProgram(cfg)
	if err != nil {
		v.window.Close()
		return nil, err
	}

	v.meshBuffer = model.NewBuffer(model.BuildVertexStream(mesh))
	v.axesBuffer = model.NewBuffer(model.AxesVertices(cfg.Viewer.AxisLength))

	v.camera = camera.NewFixedCamera(cfg.Viewer.CameraDistance, cfg.Viewer.ScrollSensitivity)
	v.light = lighting.NewDefault()
	v.screenshot = capture.NewScreenshot("", "meshview")

	v.modelMatrix = model.ModelMatrix(mesh, cfg.Viewer.DesiredSize)

	width, height := v.window.Size()
	aspect := float32(width) / float32(height)
	fov := float32(fieldOfViewDeg * gomath.Pi / 180.0)
	v.projection = math.Perspective(fov, aspect, nearPlane, farPlane)

	return v, nil
}

// compileProgram builds the shader program, from external files when
// the config points at them, otherwise from the embedded sources.
func compileProgram(cfg *config.Config) (*shader.Program, error) {
	if cfg.Viewer.VertexShader != "" && cfg.Viewer.FragmentShader != "" {
		return shader.CompileFromFiles(cfg.Viewer.VertexShader, cfg.Viewer.FragmentShader)
	}
	return shader.Compile(shaders.BasicVertexShader, shaders.BasicFragmentShader)
}

// Run renders frames until the window is closed or ESC is pressed.
func (v *Viewer) Run() {
	for {
		quit := v.input.Update()
		if quit {
			return
		}
		if v.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			return
		}
		for _, e := range v.input.Events() {
			if e.Type == input.EventScroll {
				v.camera.Dolly(e.ScrollY)
			}
		}

		v.renderFrame()

		if v.input.IsKeyPressed(sdl.SCANCODE_F12) {
			v.saveScreenshot()
		}

		v.window.SwapBuffers()
	}
}

// renderFrame draws the axis gizmo and the model.
func (v *Viewer) renderFrame() {
	gl.ClearColor(backgroundColor[0], backgroundColor[1], backgroundColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	v.program.Use()

	view := v.camera.ViewMatrix()
	v.program.SetMat4("view", view)
	v.program.SetMat4("projection", v.projection)
	v.program.SetVec3("viewPos", v.camera.Position)
	v.light.Apply(v.program)

	// Axes render in world space, untouched by the model transform.
	identity := math.Identity()
	v.program.SetMat4("model", identity)
	v.axesBuffer.Bind()
	gl.DrawArrays(gl.LINES, 0, v.axesBuffer.VertexCount())

	v.program.SetMat4("model", v.modelMatrix)
	v.meshBuffer.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, v.meshBuffer.VertexCount())
	v.meshBuffer.Unbind()
}

// saveScreenshot reads back the framebuffer and writes it as a PNG.
// Called after the frame is drawn but before the buffer swap, so the
// back buffer holds the finished image.
func (v *Viewer) saveScreenshot() {
	width, height := v.window.Size()
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := v.screenshot.SavePixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL resources and the window, in reverse creation order.
func (v *Viewer) Close() {
	if v.meshBuffer != nil {
		v.meshBuffer.Delete()
	}
	if v.axesBuffer != nil {
		v.axesBuffer.Delete()
	}
	if v.program != nil {
		v.program.Delete()
	}
	if v.window != nil {
		v.window.Close()
	}
}
