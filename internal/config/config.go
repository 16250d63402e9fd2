// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings. The window is not resizable, so
// width and height also fix the projection aspect ratio for the session.
type GraphicsConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// ViewerConfig holds scene and interaction settings.
type ViewerConfig struct {
	// DesiredSize is the on-screen model size in world units that the
	// transform pipeline fits the largest mesh dimension to.
	DesiredSize float32 `yaml:"desired_size"`

	// AxisLength is the world-space length of each gizmo axis.
	AxisLength float32 `yaml:"axis_length"`

	// LineWidth is the gizmo line width in pixels.
	LineWidth float32 `yaml:"line_width"`

	// CameraDistance places the camera at (d, d, d) looking at the origin.
	CameraDistance float32 `yaml:"camera_distance"`

	// ScrollSensitivity converts a scroll delta into camera dolly distance.
	ScrollSensitivity float32 `yaml:"scroll_sensitivity"`

	// VertexShader and FragmentShader override the embedded GLSL sources
	// with external files when non-empty.
	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Viewer: ViewerConfig{
			DesiredSize:       1.5,
			AxisLength:        2.0,
			LineWidth:         3.0,
			CameraDistance:    8.0,
			ScrollSensitivity: 0.3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
