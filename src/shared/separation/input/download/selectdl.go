package download

import (
	"context"
	"net/url"
	"path"
	"strings"

	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
)

var _ Downloader = SelectDLer{}

func NewSelectDLer(videoExt string, youtubedler Downloader, genericdler Downloader) SelectDLer {
	return SelectDLer{
		videoExt:    videoExt,
		genericdler: genericdler,
		youtubedler: youtubedler,
	}
}

// SelectDLer sends direct file links to the generic downloader and
// everything else through yt-dlp.
type SelectDLer struct {
	videoExt    string
	genericdler Downloader
	youtubedler Downloader
}

func (s SelectDLer) Download(ctx context.Context, sourceURL string, outFilePath string) error {
	parsed, err := url.Parse(sourceURL)
	if err != nil {
		return cerr.Field("source_url", sourceURL).Wrap(err).Error("Failed to parse source URL")
	}

	if s.videoExt != "" && strings.EqualFold(path.Ext(parsed.Path), s.videoExt) {
		return s.genericdler.Download(ctx, sourceURL, outFilePath)
	}

	return s.youtubedler.Download(ctx, sourceURL, outFilePath)
}
