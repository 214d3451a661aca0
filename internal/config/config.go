// Package config provides YAML-based tuning configuration for the shooter.
package config

// Config contains all tunable parameters for the balloon shooter.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Balloon BalloonConfig `yaml:"balloon"`
	Arrow   ArrowConfig   `yaml:"arrow"`
	Input   InputConfig   `yaml:"input"`
}

// ScreenConfig defines the game-space resolution and frame rate.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`
}

// BalloonConfig defines balloon population and motion parameters.
type BalloonConfig struct {
	// Count is the target population per player.
	Count int `yaml:"count"`
	// Radius is the balloon radius in game units.
	Radius float64 `yaml:"radius"`
	// Speed is the downward drift in game units per millisecond.
	Speed float64 `yaml:"speed"`
	// SpawnMargin keeps spawns away from the screen edges.
	SpawnMargin float64 `yaml:"spawn_margin"`
}

// ArrowConfig defines projectile parameters.
type ArrowConfig struct {
	// Speed is the flight speed in game units per millisecond.
	Speed float64 `yaml:"speed"`
	// CullMargin is how far past the screen edge a flying arrow
	// survives before it is removed.
	CullMargin float64 `yaml:"cull_margin"`
}

// InputConfig defines input conversion constants.
type InputConfig struct {
	// TurnDivisor scales held turn input: a full deflection turns one
	// full circle every TurnDivisor milliseconds.
	TurnDivisor float64 `yaml:"turn_divisor"`
	// Deadzone is the joystick axis magnitude treated as centered.
	Deadzone float64 `yaml:"deadzone"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  1280,
			Height: 720,
			FPS:    60,
		},
		Balloon: BalloonConfig{
			Count:       3,
			Radius:      40,
			Speed:       0.1,
			SpawnMargin: 50,
		},
		Arrow: ArrowConfig{
			Speed:      1.0,
			CullMargin: 20,
		},
		Input: InputConfig{
			TurnDivisor: 2500,
			Deadzone:    0.01,
		},
	}
}
