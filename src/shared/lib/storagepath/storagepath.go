package storagepath

import (
	"fmt"
	"path/filepath"
)

type Generator struct {
	Host   string
	Bucket string
}

// GeneratePath names the object for a job's file, keeping the local file
// name as the leaf
func (g Generator) GeneratePath(jobID string, localPath string) string {
	return fmt.Sprintf("%s/%s/%s/%s", g.Host, g.Bucket, jobID, filepath.Base(localPath))
}
