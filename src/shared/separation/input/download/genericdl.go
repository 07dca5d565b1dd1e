package download

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

var _ Downloader = GenericDLer{}

func NewGenericDLer(client *http.Client) GenericDLer {
	if client == nil {
		client = http.DefaultClient
	}

	return GenericDLer{client: client}
}

// GenericDLer handles direct links to a video file
type GenericDLer struct {
	client *http.Client
}

func (g GenericDLer) Download(ctx context.Context, sourceURL string, outFilePath string) (err error) {
	errctx := cerr.Field("source_url", sourceURL)
	log.WithField("source_url", sourceURL).Info("Running generic-dl")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to build request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to fetch file from provided source")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		err := errors.WithHint(
			mark.Message(separationentity.NoDownloadableStreamMark, "Source responded with a client error"),
			"The remote video could not be downloaded from the provided URL")
		return errctx.Field("status_code", resp.StatusCode).Wrap(err).Error("Cannot download remote video")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errctx.Field("status_code", resp.StatusCode).Error("Unexpected status from source")
	}

	if err := os.MkdirAll(filepath.Dir(outFilePath), os.ModePerm); err != nil {
		return errctx.Wrap(err).Error("Failed to create download directory")
	}

	out, err := os.Create(outFilePath)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to create output file")
	}
	defer func() {
		closeErr := out.Close()
		if err == nil && closeErr != nil {
			err = errctx.Wrap(closeErr).Error("Failed to close output file")
		}
	}()

	if _, err = io.Copy(out, resp.Body); err != nil {
		return errctx.Wrap(err).Error("Failed to write video contents out to file")
	}

	return nil
}
