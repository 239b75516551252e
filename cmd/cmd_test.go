package cmd

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"dandelion/config"
	"dandelion/pngDecoder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeInput writes a black square with a white disc centred on (cx, cy).
// One transparent pixel keeps the encoder on 8-bit RGBA.
func writeInput(t *testing.T, size, cx, cy int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{A: 255}
			if dx, dy := x-cx, y-cy; dx*dx+dy*dy <= 9 {
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{})

	name := filepath.Join(t.TempDir(), "input.png")
	f, err := os.Create(name)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return name
}

func testConfig(t *testing.T, input string) config.DandelionConfig {
	cfg := config.Default()
	cfg.Input = input
	cfg.Output = filepath.Join(t.TempDir(), "out", "icon.svg")
	cfg.Size = 64
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t, writeInput(t, 64, 40, 20))

	res, err := Run(cfg)
	require.NoError(t, err)
	assert.InDelta(t, 40, res.Core.X, 1e-6)
	assert.InDelta(t, 20, res.Core.Y, 1e-6)
	assert.InDelta(t, -50, res.Seed.X, 1e-6)
	assert.InDelta(t, 230, res.Seed.Y, 1e-6)
	assert.Greater(t, res.Filaments, 0)
	assert.LessOrEqual(t, res.Filaments, cfg.Outer+cfg.Inner)

	svg, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Contains(t, string(svg), `viewBox="0 0 64 64"`)
	assert.Contains(t, string(svg), `<circle cx="40.00" cy="20.00" r="4" fill="#f8efe3"/>`)
}

func TestRunDeterministic(t *testing.T) {
	input := writeInput(t, 64, 30, 30)
	first := testConfig(t, input)
	second := testConfig(t, input)

	_, err := Run(first)
	require.NoError(t, err)
	_, err = Run(second)
	require.NoError(t, err)

	a, err := os.ReadFile(first.Output)
	require.NoError(t, err)
	b, err := os.ReadFile(second.Output)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunErrors(t *testing.T) {
	t.Run("wrong size", func(t *testing.T) {
		cfg := testConfig(t, writeInput(t, 32, 10, 10))
		_, err := Run(cfg)
		var dimErr *pngDecoder.DimensionError
		assert.True(t, errors.As(err, &dimErr), "%v", err)
	})
	t.Run("not a png", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "input.png")
		require.NoError(t, os.WriteFile(name, []byte("GIF89a"), 0o644))
		_, err := Run(testConfig(t, name))
		var formatErr pngDecoder.FormatError
		assert.True(t, errors.As(err, &formatErr), "%v", err)
	})
	t.Run("missing input", func(t *testing.T) {
		_, err := Run(testConfig(t, filepath.Join(t.TempDir(), "nope.png")))
		assert.True(t, errors.Is(err, os.ErrNotExist), "%v", err)
	})
	t.Run("invalid config", func(t *testing.T) {
		cfg := testConfig(t, "in.png")
		cfg.Size = 0
		_, err := Run(cfg)
		assert.Error(t, err)
	})
}

func TestRootCommand(t *testing.T) {
	saved := config.Config
	defer func() { config.Config = saved }()

	input := writeInput(t, 64, 40, 20)
	output := filepath.Join(t.TempDir(), "icon.svg")
	RootCommand.SetArgs([]string{"-i", input, "-o", output, "--size", "64", "--transparent", "--log-level", "warn"})
	require.NoError(t, RootCommand.Execute())

	svg, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.NotContains(t, string(svg), "<rect")
}
