package testing

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// WriteFile creates a file with the given contents under dir, making any
// parent directories, and returns its path
func WriteFile(dir string, name string, contents string) string {
	path := filepath.Join(dir, name)
	ExpectWithOffset(1, os.MkdirAll(filepath.Dir(path), os.ModePerm)).To(Succeed())
	ExpectWithOffset(1, os.WriteFile(path, []byte(contents), 0o644)).To(Succeed())
	return path
}

// ListFiles returns every regular file below dir, relative to it
func ListFiles(dir string) []string {
	files := []string{}
	err := filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !entry.IsDir() {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, rel)
		}

		return nil
	})
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	return files
}

func SetTestEnv() {
	ExpectWithOffset(1, os.Setenv("ENVIRONMENT", "test")).To(Succeed())
}

// TempDir makes a scratch directory that is removed when the current test ends
func TempDir() string {
	dir, err := os.MkdirTemp("", "uvr-test-")
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	DeferCleanup(os.RemoveAll, dir)
	return dir
}
