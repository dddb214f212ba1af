package output

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/types"
)

func TestRenderSummary(t *testing.T) {
	tests := []struct {
		name         string
		result       *types.Result
		wantContains []string
	}{
		{
			name:         "fresh copy",
			result:       &types.Result{FilesCopied: 12, FilesSkipped: 0},
			wantContains: []string{"12 copied", "0 skipped", "/home/user/data"},
		},
		{
			name:         "stale symlink replaced",
			result:       &types.Result{SymlinkRemoved: true, FilesCopied: 3, FilesSkipped: 9},
			wantContains: []string{"3 copied", "9 skipped", "stale symlink removed"},
		},
		{
			name:         "source missing",
			result:       &types.Result{SourceMissing: true, DirsCreated: 1},
			wantContains: []string{"left empty", "source missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderSummary(tt.result, "/home/user/data")
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestRenderError(t *testing.T) {
	got := RenderError(assert.AnError)
	assert.Contains(t, got, "Error:")
	assert.Contains(t, got, assert.AnError.Error())
}
