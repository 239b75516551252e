package cmd

import (
	"dandelion/config"
	"dandelion/features"
	"dandelion/filaments"
	"dandelion/logging"
	"dandelion/oops"
	"dandelion/pngDecoder"
	"dandelion/svgdoc"
)

type Result struct {
	Core      features.Point
	Seed      features.Point
	Filaments int
	Output    string
}

// Run decodes the input image, locates the core and seed, generates the
// filaments and writes the SVG.
func Run(cfg config.DandelionConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, oops.New(err, "invalid configuration")
	}

	raster, err := pngDecoder.DecodeFile(cfg.Input)
	if err != nil {
		return nil, oops.New(err, "failed to decode %s", cfg.Input)
	}
	if err := raster.ExpectSize(cfg.Size, cfg.Size); err != nil {
		return nil, oops.New(err, "wrong input size")
	}
	logging.Debug().Int("width", raster.Width).Int("height", raster.Height).Msg("Decoded input")

	core := features.EstimateCore(raster)
	seed := features.EstimateSeed(raster, core)

	style := filaments.DefaultStyle()
	style.Outer.Count = cfg.Outer
	style.Inner.Count = cfg.Inner
	generated := filaments.Generate(filaments.NewRand(cfg.Seed), core, style)

	doc := svgdoc.Document{
		Size:       cfg.Size,
		Core:       core,
		Seed:       seed,
		Filaments:  generated,
		Background: cfg.BackgroundFill(),
	}
	if err := svgdoc.WriteFile(cfg.Output, doc); err != nil {
		return nil, oops.New(err, "failed to write %s", cfg.Output)
	}

	return &Result{
		Core:      core,
		Seed:      seed,
		Filaments: len(generated),
		Output:    cfg.Output,
	}, nil
}
