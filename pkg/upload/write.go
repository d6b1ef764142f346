package upload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ensureDir creates dir and any missing parents.
func ensureDir(dir string, perm os.FileMode) error {
	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDirectory, dir, err)
	}
	return nil
}

// writeFile writes data to a uniquely named temporary file next to dst and
// renames it over dst, so readers see either the previous file or the complete
// new one. Concurrent writers to the same dst do not coordinate: the last
// rename wins.
func writeFile(dst string, data []byte, perm os.FileMode) (err error) {
	tmp := filepath.Join(filepath.Dir(dst), "."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, dst, err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp) // never leave a partial file behind
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, dst, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, dst, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, dst, err)
	}
	if err = os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, dst, err)
	}
	return nil
}
