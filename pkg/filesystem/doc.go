// Package filesystem provides filesystem implementations for the data hook.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed filesystem
// used in tests.
package filesystem
