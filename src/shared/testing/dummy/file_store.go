package dummy

import (
	"context"
	"os"
	"sync"

	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cloud_storage"
)

var _ filestore.FileStore = &FileStore{}

func NewDummyFileStore() *FileStore {
	return &FileStore{
		Files: make(map[string][]byte),
	}
}

type FileStore struct {
	Unavailable bool
	Files       map[string][]byte
	mutex       sync.Mutex
}

func (f *FileStore) UploadFile(_ context.Context, fileURL string, localPath string) error {
	if f.Unavailable {
		return NetworkFailure
	}

	contents, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.Files[fileURL] = contents
	return nil
}
