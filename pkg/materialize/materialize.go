package materialize

import (
	"fmt"
	"os"

	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/errors"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/logging"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/types"
)

// Options configures a materialization run.
type Options struct {
	// SourceRoot is the read-only tree to mirror. Its absence is the one
	// anticipated error condition.
	SourceRoot string

	// TargetPath is the directory to materialize. Callers resolve
	// relative names before invoking (see paths.ResolveTarget).
	TargetPath string
}

// Materialize ensures opts.TargetPath is a real directory holding an
// up-to-date copy of every file under opts.SourceRoot.
//
// The sequence is fixed: symlink normalization, directory ensure, source
// guard, recursive incremental copy. The directory is ensured before the
// source is checked, so a missing source still leaves an (empty) target
// directory behind. A missing source returns an ErrSourceMissing coded
// error after logging; any other filesystem fault aborts the run where it
// happened. The run is synchronous and takes no locks, so external
// modification of the source mid-copy can produce a mixed destination.
func Materialize(fsys types.FS, log types.Logger, opts Options) (*types.Result, error) {
	logger := logging.GetLogger("materialize")
	result := &types.Result{}

	// 1. Symlink normalization: unlink unconditionally, whatever it
	// points to. Real directories and absent paths pass through.
	info, err := fsys.Lstat(opts.TargetPath)
	if err == nil && info.Mode()&os.ModeSymlink != 0 {
		if err := fsys.Remove(opts.TargetPath); err != nil {
			return result, errors.Wrapf(err, errors.ErrSymlinkRemove,
				"failed to remove symlink %s", opts.TargetPath)
		}
		result.SymlinkRemoved = true
		log.Info(fmt.Sprintf("Symlink '%s' has been removed.", opts.TargetPath))
	} else {
		log.Info(fmt.Sprintf("'%s' is not a symlink.", opts.TargetPath))
	}

	// 2. Directory ensure. A pre-existing real directory is reused; a
	// regular file in the way is a conflict MkdirAll would choke on
	// anyway, surfaced with a stable code instead.
	info, err = fsys.Lstat(opts.TargetPath)
	existed := err == nil
	if existed && !info.IsDir() {
		return result, errors.Newf(errors.ErrTargetConflict,
			"target %s exists and is not a directory", opts.TargetPath).
			WithDetail("mode", info.Mode().String())
	}
	if err := fsys.MkdirAll(opts.TargetPath, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create directory %s", opts.TargetPath)
	}
	if !existed {
		result.DirsCreated++
	}
	log.Info(fmt.Sprintf("Directory '%s' has been created.", opts.TargetPath))

	// 3. Source guard, deliberately after the ensure so the empty target
	// survives a missing mount.
	if _, err := fsys.Stat(opts.SourceRoot); err != nil {
		log.Error(fmt.Sprintf("Source directory '%s' does not exist.", opts.SourceRoot))
		result.SourceMissing = true
		return result, errors.Wrapf(err, errors.ErrSourceMissing,
			"source directory %s does not exist", opts.SourceRoot)
	}

	// 4. Recursive incremental copy.
	if err := copyTree(fsys, opts.SourceRoot, opts.TargetPath, result); err != nil {
		return result, err
	}

	logger.Debug().
		Int("copied", result.FilesCopied).
		Int("skipped", result.FilesSkipped).
		Int("dirs", result.DirsCreated).
		Msg("Materialization complete")
	return result, nil
}
