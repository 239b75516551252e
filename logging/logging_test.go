package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"dandelion/oops"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestPrettyWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(NewPrettyZerologWriter(&buf))

	t.Run("plain message", func(t *testing.T) {
		buf.Reset()
		logger.Info().Msg("wrote icon")
		out := buf.String()
		assert.Contains(t, out, "INFO")
		assert.True(t, strings.HasSuffix(out, ": wrote icon\n"), out)
		assert.NotContains(t, out, "Fields:")
	})

	t.Run("fields and error stack", func(t *testing.T) {
		buf.Reset()
		err := oops.New(errors.New("boom"), "decoding %s", "in.png")
		logger.Error().Stack().Err(err).Str("input", "in.png").Int("filaments", 3).Msg("failed")
		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "-----"), out)
		assert.Contains(t, out, "ERROR")
		assert.Contains(t, out, "decoding in.png: boom")
		assert.Contains(t, out, `input: "in.png"`)
		assert.Contains(t, out, "filaments: 3")
		assert.Contains(t, out, "Stack trace:")
		assert.Contains(t, out, "TestPrettyWriter")
		assert.Less(t, strings.Index(out, "filaments"), strings.Index(out, "input"))
	})

	t.Run("not json", func(t *testing.T) {
		buf.Reset()
		w := NewPrettyZerologWriter(&buf)
		n, err := w.Write([]byte("raw line\n"))
		assert.NoError(t, err)
		assert.Equal(t, 9, n)
		assert.Equal(t, "raw line\n", buf.String())
	})
}

func TestSetLevel(t *testing.T) {
	defer SetLevel(zerolog.GlobalLevel())
	SetLevel(zerolog.WarnLevel)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
