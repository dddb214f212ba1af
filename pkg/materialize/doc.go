// Package materialize implements the data materializer: it normalizes a
// stale symlink at the target into a real directory and incrementally
// mirrors the read-only source tree into it, copying only files that are
// missing or older than the source.
package materialize
