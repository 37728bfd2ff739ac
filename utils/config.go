// File: utils/config.go
package utils

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable game parameters.
type Config struct {
	// Timing
	GameTickPeriod time.Duration `json:"gameTickPeriod" yaml:"gameTickPeriod"` // Time between game state updates
	StartupDelay   time.Duration `json:"startupDelay" yaml:"startupDelay"`     // Countdown before the first round starts
	RoundDelay     time.Duration `json:"roundDelay" yaml:"roundDelay"`         // Pause between rounds after a point

	// Stage
	StageWidth  float64 `json:"stageWidth" yaml:"stageWidth"`
	StageHeight float64 `json:"stageHeight" yaml:"stageHeight"`

	// Ball
	BallSize  float64 `json:"ballSize" yaml:"ballSize"`   // Side length of the square ball
	BallSpeed float64 `json:"ballSpeed" yaml:"ballSpeed"` // Base horizontal speed per frame

	// Paddles
	PaddleWidth  float64 `json:"paddleWidth" yaml:"paddleWidth"`
	PaddleHeight float64 `json:"paddleHeight" yaml:"paddleHeight"`
	PaddleSpeed  float64 `json:"paddleSpeed" yaml:"paddleSpeed"` // Movement per frame while a key is held
	PaddleInset  float64 `json:"paddleInset" yaml:"paddleInset"` // Horizontal gap between a paddle and its wall

	// Match
	WinningScore int `json:"winningScore" yaml:"winningScore"`

	// Server
	ListenAddr string `json:"listenAddr" yaml:"listenAddr"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		GameTickPeriod: time.Second / 60,
		StartupDelay:   3 * time.Second,
		RoundDelay:     1 * time.Second,

		StageWidth:  800,
		StageHeight: 600,

		BallSize:  20,
		BallSpeed: 5,

		PaddleWidth:  25,
		PaddleHeight: 100,
		PaddleSpeed:  8,
		PaddleInset:  75,

		WinningScore: 9,

		ListenAddr: ":3001",
	}
}

// LoadConfig reads a YAML file and overlays it on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable stage.
func (c Config) Validate() error {
	if c.GameTickPeriod <= 0 {
		return fmt.Errorf("gameTickPeriod must be positive, got %v", c.GameTickPeriod)
	}
	if c.StartupDelay < 0 || c.RoundDelay < 0 {
		return fmt.Errorf("countdown delays must not be negative")
	}
	if c.StageWidth <= 0 || c.StageHeight <= 0 {
		return fmt.Errorf("stage dimensions must be positive, got %gx%g", c.StageWidth, c.StageHeight)
	}
	if c.BallSize <= 0 || c.BallSpeed <= 0 {
		return fmt.Errorf("ball size and speed must be positive")
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 || c.PaddleSpeed <= 0 {
		return fmt.Errorf("paddle dimensions and speed must be positive")
	}
	if c.PaddleHeight > c.StageHeight {
		return fmt.Errorf("paddle height %g does not fit stage height %g", c.PaddleHeight, c.StageHeight)
	}
	if c.PaddleInset+c.PaddleWidth > c.StageWidth/2 {
		return fmt.Errorf("paddle inset %g leaves no room for play", c.PaddleInset)
	}
	if c.WinningScore <= 0 {
		return fmt.Errorf("winningScore must be positive, got %d", c.WinningScore)
	}
	return nil
}

// Paddle1StartX returns the X coordinate paddle 1 resets to.
func (c Config) Paddle1StartX() float64 { return c.PaddleInset }

// Paddle2StartX returns the X coordinate paddle 2 resets to.
func (c Config) Paddle2StartX() float64 { return c.StageWidth - c.PaddleInset - c.PaddleWidth }

// PaddleStartY returns the Y coordinate both paddles reset to.
func (c Config) PaddleStartY() float64 { return (c.StageHeight - c.PaddleHeight) / 2 }

// BallStartX returns the X coordinate the ball serves from.
func (c Config) BallStartX() float64 { return (c.StageWidth - c.BallSize) / 2 }

// BallStartY returns the Y coordinate the ball serves from.
func (c Config) BallStartY() float64 { return (c.StageHeight - c.BallSize) / 2 }
