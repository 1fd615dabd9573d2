package osr

import "time"

const (
	DefaultFrameRate = 60
	MaxFrameRate     = 60
)

// Config holds configuration for a View.
type Config struct {
	// Transparent views paint with a transparent background whatever
	// SetBackgroundColor asks for.
	Transparent bool

	// FrameRate is the begin-frame rate, clamped to 1..MaxFrameRate.
	// 0 means DefaultFrameRate.
	FrameRate int

	// ScaleFactor overrides the device scale factor when non-zero.
	ScaleFactor float32
}

func (c *Config) frameRate() int {
	switch {
	case c.FrameRate <= 0:
		return DefaultFrameRate
	case c.FrameRate > MaxFrameRate:
		return MaxFrameRate
	default:
		return c.FrameRate
	}
}

func (c *Config) frameInterval() time.Duration {
	return time.Second / time.Duration(c.frameRate())
}
