package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	AssetsDir = "assets"
	DirPerm   = 0755
	FilePerm  = 0644
)

// IconFileName returns the file name used for an icon of the given size.
func IconFileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// IconPath returns the path of the icon of the given size inside dir.
func IconPath(dir string, size int) string {
	return filepath.Join(dir, IconFileName(size))
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. Any existing file at path is replaced. The parent
// directory must already exist.
func AtomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
