package logging

import (
	"github.com/rs/zerolog"

	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/types"
)

// zerologCapability adapts a zerolog.Logger to the types.Logger capability
// the materializer is invoked with.
type zerologCapability struct {
	logger zerolog.Logger
}

// NewCapability returns a types.Logger backed by a component-scoped
// zerolog logger.
func NewCapability(component string) types.Logger {
	return &zerologCapability{logger: GetLogger(component)}
}

// NewCapabilityFromLogger wraps an existing zerolog logger.
func NewCapabilityFromLogger(logger zerolog.Logger) types.Logger {
	return &zerologCapability{logger: logger}
}

func (c *zerologCapability) Info(msg string) {
	c.logger.Info().Msg(msg)
}

func (c *zerologCapability) Error(msg string) {
	c.logger.Error().Msg(msg)
}

// Verify interface compliance
var _ types.Logger = (*zerologCapability)(nil)
