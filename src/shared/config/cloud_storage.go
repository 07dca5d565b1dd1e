package config

import "github.com/veedubyou/chord-paper-uvr/src/shared/config/envvar"

const GOOGLE_STORAGE_HOST = "https://storage.googleapis.com"

type CloudStorage interface {
	GetStorageHost() string
	GetBucket() string
}

var _ CloudStorage = ProdCloudStorage{}

type ProdCloudStorage struct {
	StorageHost string
	SecretKey   string
	BucketName  string
}

func (p ProdCloudStorage) GetStorageHost() string {
	return p.StorageHost
}

func (p ProdCloudStorage) GetBucket() string {
	return p.BucketName
}

var _ CloudStorage = LocalCloudStorage{}

type LocalCloudStorage struct {
	StorageHost  string
	HostEndpoint string
	BucketName   string
}

func (l LocalCloudStorage) GetStorageHost() string {
	return l.StorageHost
}

func (l LocalCloudStorage) GetBucket() string {
	return l.BucketName
}

// LoadCloudStorage returns nil when no bucket is configured; stems then stay
// on local disk only.
func LoadCloudStorage() CloudStorage {
	bucket, ok := envvar.Lookup(envvar.GOOGLE_CLOUD_STORAGE_BUCKET_NAME)
	if !ok || bucket == "" {
		return nil
	}

	return ProdCloudStorage{
		StorageHost: GOOGLE_STORAGE_HOST,
		SecretKey:   envvar.MustGet(envvar.GOOGLE_CLOUD_KEY),
		BucketName:  bucket,
	}
}
