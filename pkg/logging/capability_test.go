package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestCapability(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	capability := NewCapabilityFromLogger(logger)

	capability.Info("Symlink 'data' has been removed.")
	capability.Error("Source directory '/data' does not exist.")

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, "Symlink 'data' has been removed.")
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "Source directory '/data' does not exist.")
}
