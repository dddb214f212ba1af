package types

// Result summarizes a single activation run. Per-file copy and skip
// decisions are never logged individually; the counts here are the only
// record of them.
type Result struct {
	// SymlinkRemoved is true when the target existed as a symlink and
	// was unlinked during normalization.
	SymlinkRemoved bool

	// FilesCopied counts files written because the destination was
	// missing or older than the source.
	FilesCopied int

	// FilesSkipped counts files left untouched because the destination
	// was already current.
	FilesSkipped int

	// DirsCreated counts destination directories created during the
	// walk, including the target directory itself when it was absent.
	DirsCreated int

	// SourceMissing is true when the source root did not exist and the
	// copy phase was skipped entirely.
	SourceMissing bool
}

// Total returns the number of files considered during the copy phase.
func (r *Result) Total() int {
	return r.FilesCopied + r.FilesSkipped
}
