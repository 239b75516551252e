package config

import "github.com/rs/zerolog"

var Config = Default()

func Default() DandelionConfig {
	return DandelionConfig{
		Input:      "Assets/source.png",
		Output:     "Assets/DandelionSeedIcon_code.svg",
		Size:       1024,
		Seed:       23,
		Outer:      95,
		Inner:      30,
		Background: "#0b0b0b",
		LogLevel:   zerolog.InfoLevel,
	}
}
