package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *HookError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New(ErrSourceMissing, "source directory /data does not exist"),
			want: "[SOURCE_MISSING] source directory /data does not exist",
		},
		{
			name: "with wrapped error",
			err:  Wrap(errors.New("permission denied"), ErrFileCopy, "failed to write data/a.csv"),
			want: "[FILE_COPY] failed to write data/a.csv: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileCopy, "should vanish"))
	assert.Nil(t, Wrapf(nil, ErrFileCopy, "should vanish %s", "too"))
}

func TestHookError_Unwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := Wrap(inner, ErrFileCopy, "copy failed")

	assert.Equal(t, inner, errors.Unwrap(err))
	assert.True(t, errors.Is(err, inner))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrTargetConflict, "target %s exists and is not a directory", "data")

	assert.True(t, IsErrorCode(err, ErrTargetConflict))
	assert.False(t, IsErrorCode(err, ErrSourceMissing))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrTargetConflict))
	assert.False(t, IsErrorCode(nil, ErrTargetConflict))

	// Codes survive further wrapping with fmt
	wrapped := fmt.Errorf("activation failed: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrTargetConflict))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrDirCreate, GetErrorCode(New(ErrDirCreate, "mkdir failed")))
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrTargetConflict, "in the way").
		WithDetail("path", "/home/user/data").
		WithDetail("mode", "-rw-r--r--")

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/home/user/data", details["path"])
	assert.Equal(t, "-rw-r--r--", details["mode"])

	assert.Nil(t, GetErrorDetails(errors.New("plain")))
}
