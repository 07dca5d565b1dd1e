package working_dir

import (
	"path/filepath"

	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
)

type WorkingDir struct {
	root string
}

// NewWorkingDir resolves root to an absolute path without touching the
// filesystem. Downloaders create the directory when they write into it.
func NewWorkingDir(root string) (WorkingDir, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return WorkingDir{}, cerr.Field("root", root).
			Wrap(err).Error("Failed to generate absolute path for working directory")
	}

	return WorkingDir{
		root: absRoot,
	}, nil
}

func (w WorkingDir) Join(elem ...string) string {
	return filepath.Join(append([]string{w.root}, elem...)...)
}
