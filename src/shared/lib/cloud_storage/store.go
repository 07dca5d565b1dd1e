package filestore

import (
	"context"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"google.golang.org/api/option"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . FileStore
type FileStore interface {
	// UploadFile copies a local file to fileURL, which is
	// {storage host}/{bucket}/{object path}
	UploadFile(ctx context.Context, fileURL string, localPath string) error
}

var _ FileStore = GoogleFileStore{}

type GoogleFileStore struct {
	storageHost   string
	storageClient *storage.Client
}

func NewGoogleFileStore(storageHost string, opts ...option.ClientOption) (GoogleFileStore, error) {
	googleStorageClient, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		return GoogleFileStore{}, cerr.Wrap(err).Error("Failed to create Google Cloud Storage client")
	}

	return GoogleFileStore{
		storageHost:   strings.TrimSuffix(storageHost, "/"),
		storageClient: googleStorageClient,
	}, nil
}

func (g GoogleFileStore) UploadFile(ctx context.Context, fileURL string, localPath string) (err error) {
	errctx := cerr.Field("file_url", fileURL).Field("local_path", localPath)

	bucket, filePath, err := BucketAndPath(g.storageHost, fileURL)
	if err != nil {
		return errctx.Wrap(err).Error("Couldn't extract file path from URL")
	}

	file, err := os.Open(localPath)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to open local file")
	}
	defer file.Close()

	writer := g.storageClient.Bucket(bucket).Object(filePath).NewWriter(ctx)
	defer func() {
		closeErr := writer.Close()
		if err == nil && closeErr != nil {
			err = errctx.Wrap(closeErr).Error("Error occurred when closing the upload stream")
		}
	}()

	if _, err = io.Copy(writer, file); err != nil {
		return errctx.Wrap(err).Error("Error occurred when uploading file")
	}

	return nil
}

func BucketAndPath(storageHost string, fileURL string) (string, string, error) {
	errctx := cerr.Field("file_url", fileURL)
	prefix := strings.TrimSuffix(storageHost, "/") + "/"

	if !strings.HasPrefix(fileURL, prefix) {
		return "", "", errctx.Error("File path given not in the cloud storage format")
	}

	chunks := strings.SplitN(strings.TrimPrefix(fileURL, prefix), "/", 2)
	if len(chunks) != 2 || chunks[0] == "" || chunks[1] == "" {
		return "", "", errctx.Error("File path given not in the cloud storage format")
	}

	return chunks[0], chunks[1], nil
}
