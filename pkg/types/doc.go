// Package types defines the core types and interfaces used throughout the
// data hook. This includes the FS filesystem abstraction, the Logger
// capability handed to the materializer, and the Result summary of an
// activation run.
package types
