package desktop

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/EKINSOL-DEV/crewhub/internal/shell"
)

// appIcon is the default application icon, used for the tray at rest
// and as the fallback when icons/icon.png is not installed.
//
//go:embed icons/appicon.png
var appIcon []byte

// defaultIconFile restores the plain tray icon when the badge clears.
const defaultIconFile = "icon.png"

// fileIcons loads badge icons from the resources icons directory.
type fileIcons struct {
	dir string
}

func newIconSource(dir string) *fileIcons {
	return &fileIcons{dir: dir}
}

// Icon returns the bytes for a bucket's icon. Badge buckets read their
// fixed file from disk and fail if it is missing; the default bucket
// falls back to the embedded application icon and never fails.
func (f *fileIcons) Icon(bucket shell.Bucket) ([]byte, error) {
	name := bucket.IconFile()
	if name == "" {
		if data, err := os.ReadFile(filepath.Join(f.dir, defaultIconFile)); err == nil {
			return data, nil
		}
		return appIcon, nil
	}
	return os.ReadFile(filepath.Join(f.dir, name))
}
