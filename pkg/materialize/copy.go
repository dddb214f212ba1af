package materialize

import (
	"io/fs"
	"path/filepath"

	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/errors"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/logging"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/types"
)

// copyTree mirrors src into dst, merging into directories that already
// exist. Symlinks inside the source are followed, so link targets are
// copied as regular content. Per-entry decisions are trace-level only.
func copyTree(fsys types.FS, src, dst string, res *types.Result) error {
	logger := logging.GetLogger("materialize")

	entries, err := fsys.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrWalk, "failed to read directory %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		// Stat, not Lstat: follow symlinks in the source tree.
		info, err := fsys.Stat(srcPath)
		if err != nil {
			return errors.Wrapf(err, errors.ErrWalk, "failed to stat %s", srcPath)
		}

		if info.IsDir() {
			dstInfo, err := fsys.Lstat(dstPath)
			switch {
			case err != nil:
				if err := fsys.MkdirAll(dstPath, 0755); err != nil {
					return errors.Wrapf(err, errors.ErrDirCreate,
						"failed to create directory %s", dstPath)
				}
				res.DirsCreated++
			case !dstInfo.IsDir():
				return errors.Newf(errors.ErrTargetConflict,
					"destination %s exists and is not a directory", dstPath)
			}
			if err := copyTree(fsys, srcPath, dstPath, res); err != nil {
				return err
			}
			continue
		}

		// The predicate runs per file at traversal time; there is no
		// whole-tree snapshot.
		if !shouldCopy(fsys, info, dstPath) {
			res.FilesSkipped++
			logger.Trace().Str("path", srcPath).Msg("Destination current, skipped")
			continue
		}
		if err := copyFile(fsys, srcPath, dstPath, info); err != nil {
			return err
		}
		res.FilesCopied++
		logger.Trace().Str("path", srcPath).Msg("Copied")
	}
	return nil
}

// shouldCopy reports whether srcInfo's file must be copied to dstPath:
// true when the destination is missing or strictly older than the source.
// Equal timestamps skip, so an identical-age destination wins.
func shouldCopy(fsys types.FS, srcInfo fs.FileInfo, dstPath string) bool {
	dstInfo, err := fsys.Stat(dstPath)
	if err != nil {
		return true
	}
	return srcInfo.ModTime().After(dstInfo.ModTime())
}

// copyFile copies content and preserves metadata the way shutil.copy2
// does: permission bits and modification time match the source afterward.
func copyFile(fsys types.FS, srcPath, dstPath string, srcInfo fs.FileInfo) error {
	data, err := fsys.ReadFile(srcPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to read %s", srcPath)
	}
	if err := fsys.WriteFile(dstPath, data, srcInfo.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to write %s", dstPath)
	}
	// WriteFile's perm only applies on create; an overwritten file keeps
	// its old bits without this.
	if err := fsys.Chmod(dstPath, srcInfo.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to chmod %s", dstPath)
	}
	if err := fsys.Chtimes(dstPath, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to set times on %s", dstPath)
	}
	return nil
}
