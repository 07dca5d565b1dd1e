package download

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Downloader fetches a remote video to outFilePath. Implementations must
// fail with a NoDownloadableStreamMark before writing anything when the
// source offers nothing usable.
//
//counterfeiter:generate . Downloader
type Downloader interface {
	Download(ctx context.Context, sourceURL string, outFilePath string) error
}
