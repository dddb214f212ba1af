package testutil

import (
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/types"
)

// RecordingLogger captures Info and Error messages for assertions.
type RecordingLogger struct {
	Infos  []string
	Errors []string
}

// NewRecordingLogger creates an empty recording logger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) Info(msg string) {
	l.Infos = append(l.Infos, msg)
}

func (l *RecordingLogger) Error(msg string) {
	l.Errors = append(l.Errors, msg)
}

// Verify interface compliance
var _ types.Logger = (*RecordingLogger)(nil)
