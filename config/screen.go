package config

// Viewer window defaults
const (
	// Window dimensions in pixels
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768

	// Probe radius in world units, matching the player's collision radius
	ProbeRadius = 5

	// Light cone shape
	LightConeSegments = 256
	LightConeRadius   = 196
)

// ViewerConfig configures the developer viewer.
type ViewerConfig struct {
	WindowWidth  int  `env:"VIEWER_WINDOW_WIDTH" envDefault:"1024"`
	WindowHeight int  `env:"VIEWER_WINDOW_HEIGHT" envDefault:"768"`
	Fullscreen   bool `env:"VIEWER_FULLSCREEN" envDefault:"false"`

	// Seed for the first dungeon. Zero picks a random seed.
	Seed int64 `env:"VIEWER_SEED" envDefault:"0"`

	// Number of enemies and collectibles to place.
	Enemies int `env:"VIEWER_ENEMIES" envDefault:"20"`
	Gems    int `env:"VIEWER_GEMS" envDefault:"5"`
	Hearts  int `env:"VIEWER_HEARTS" envDefault:"2"`
}

// ViewerFromEnv loads the viewer configuration from VIEWER_* variables.
func ViewerFromEnv() (ViewerConfig, error) {
	var cfg ViewerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ViewerConfig{}, err
	}
	return cfg, nil
}

// GetWindowSize returns the configured window size, falling back to the defaults
func (c ViewerConfig) GetWindowSize() (width, height int) {
	width, height = c.WindowWidth, c.WindowHeight
	if width <= 0 {
		width = DefaultWindowWidth
	}
	if height <= 0 {
		height = DefaultWindowHeight
	}
	return width, height
}
