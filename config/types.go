package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

type DandelionConfig struct {
	Input  string
	Output string
	// Size is the required width and height of the input image.
	Size       int
	Seed       int64
	Outer      int
	Inner      int
	Background string
	// Transparent drops the background rect entirely.
	Transparent bool
	LogLevel    zerolog.Level
}

func (c DandelionConfig) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("no input file")
	}
	if c.Output == "" {
		return fmt.Errorf("no output file")
	}
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Outer < 0 || c.Inner < 0 {
		return fmt.Errorf("filament counts must not be negative")
	}
	return nil
}

// BackgroundFill is the fill of the background rect, or "" for none.
func (c DandelionConfig) BackgroundFill() string {
	if c.Transparent {
		return ""
	}
	return c.Background
}
