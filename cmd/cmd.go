package cmd

import (
	"fmt"
	"os"

	"dandelion/config"
	"dandelion/logging"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var RootCommand = &cobra.Command{
	Use:   "dandelion",
	Short: "Generate the dandelion seed icon SVG from a reference PNG",
	Long:  "Decode a 1024x1024 RGBA PNG, find its bright core and the seed below it, and draw a seeded burst of filaments, a stem and a seed as SVG.",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		config.Config.LogLevel = level
		logging.SetLevel(level)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		res, err := Run(config.Config)
		if err != nil {
			logging.Error().Err(err).Msg("Failed to generate icon")
			os.Exit(1)
		}
		logging.Info().Str("output", res.Output).Msg("Wrote icon")
		logging.Info().
			Str("center", fmt.Sprintf("%.2f,%.2f", res.Core.X, res.Core.Y)).
			Str("seed", fmt.Sprintf("%.2f,%.2f", res.Seed.X, res.Seed.Y)).
			Int("filaments", res.Filaments).
			Msg("Generated geometry")
	},
}

var logLevel string

func init() {
	flags := RootCommand.Flags()
	cfg := &config.Config
	flags.StringVarP(&cfg.Input, "input", "i", cfg.Input, "reference PNG (8-bit RGBA)")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "SVG file to write")
	flags.IntVar(&cfg.Size, "size", cfg.Size, "required width and height of the input")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the filaments")
	flags.IntVar(&cfg.Outer, "filaments", cfg.Outer, "number of outer filaments to draw before rejection")
	flags.IntVar(&cfg.Inner, "inner", cfg.Inner, "number of inner filaments to draw before rejection")
	flags.StringVar(&cfg.Background, "background", cfg.Background, "background fill colour")
	flags.BoolVar(&cfg.Transparent, "transparent", cfg.Transparent, "omit the background")
	RootCommand.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel.String(), "trace, debug, info, warn or error")
}
