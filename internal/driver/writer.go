package driver

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

const filePerm = 0o644

// writeFileAtomic replaces path with data. The content goes to a temporary
// file in the same directory first, which is then renamed over path, so
// readers see either the old or the new file. The existing file mode is
// kept.
func writeFileAtomic(path string, data []byte) error {
	perm := fs.FileMode(filePerm)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "creating temporary file for %s", path)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())

		return errors.Wrapf(err, "writing %s", f.Name())
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return errors.Wrapf(err, "closing %s", f.Name())
	}

	if err := os.Chmod(f.Name(), perm); err != nil {
		_ = os.Remove(f.Name())
		return errors.Wrapf(err, "setting mode of %s", f.Name())
	}

	if err := os.Rename(f.Name(), path); err != nil {
		_ = os.Remove(f.Name())
		return errors.Wrapf(err, "replacing %s", path)
	}

	return nil
}
