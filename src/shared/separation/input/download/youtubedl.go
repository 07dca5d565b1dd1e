package download

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/executor"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

var _ Downloader = YoutubeDLer{}

func NewYoutubeDLer(youtubedlBinPath string, videoExt string, commandExecutor executor.Executor) YoutubeDLer {
	return YoutubeDLer{
		youtubedlBinPath: youtubedlBinPath,
		videoExt:         strings.TrimPrefix(videoExt, "."),
		commandExecutor:  commandExecutor,
	}
}

type YoutubeDLer struct {
	youtubedlBinPath string
	videoExt         string
	commandExecutor  executor.Executor
}

type Format struct {
	FormatID string  `json:"format_id"`
	Ext      string  `json:"ext"`
	VCodec   string  `json:"vcodec"`
	ACodec   string  `json:"acodec"`
	Protocol string  `json:"protocol"`
	Height   int     `json:"height"`
	Width    int     `json:"width"`
	TBR      float64 `json:"tbr"`
}

type videoInfo struct {
	Formats []Format `json:"formats"`
}

// Progressive formats carry both audio and video in one file
func (f Format) Progressive() bool {
	hasCodec := func(codec string) bool {
		return codec != "" && codec != "none"
	}

	if strings.Contains(f.Protocol, "m3u8") || strings.Contains(f.Protocol, "dash") {
		return false
	}

	return hasCodec(f.VCodec) && hasCodec(f.ACodec)
}

// SelectFormat picks the highest resolution progressive format with the
// given container extension, bitrate breaking ties.
func SelectFormat(formats []Format, ext string) (Format, bool) {
	best := Format{}
	found := false

	for _, format := range formats {
		if !format.Progressive() || !strings.EqualFold(format.Ext, ext) {
			continue
		}

		if !found ||
			format.Height > best.Height ||
			(format.Height == best.Height && format.TBR > best.TBR) {
			best = format
			found = true
		}
	}

	return best, found
}

func (y YoutubeDLer) Download(ctx context.Context, sourceURL string, outFilePath string) error {
	errctx := cerr.Field("source_url", sourceURL)
	logger := log.WithField("source_url", sourceURL)

	logger.Info("Probing remote video formats")
	formats, err := y.listFormats(ctx, sourceURL)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to list remote video formats")
	}

	format, ok := SelectFormat(formats, y.videoExt)
	if !ok {
		hint := fmt.Sprintf("The remote video has no progressive %s stream to download", y.videoExt)
		err := errors.WithHint(mark.Message(separationentity.NoDownloadableStreamMark, "No matching progressive stream"), hint)
		return errctx.Field("format_count", len(formats)).Wrap(err).Error("Cannot download remote video")
	}

	if err := os.MkdirAll(filepath.Dir(outFilePath), os.ModePerm); err != nil {
		return errctx.Wrap(err).Error("Failed to create download directory")
	}

	logger.WithFields(log.Fields{
		"format_id": format.FormatID,
		"height":    format.Height,
	}).Info("Running yt-dlp")

	cmd := y.commandExecutor.Command(ctx, y.youtubedlBinPath,
		"--no-playlist", "--force-overwrites",
		"-f", format.FormatID,
		"-o", outputTemplate(outFilePath),
		sourceURL)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errctx.Field("error_msg", string(output)).
			Wrap(err).Error("Failed to run yt-dlp")
	}

	return nil
}

// outputTemplate keeps yt-dlp from expanding %(field)s sequences in a
// literal path
func outputTemplate(path string) string {
	return strings.ReplaceAll(path, "%", "%%")
}

func (y YoutubeDLer) listFormats(ctx context.Context, sourceURL string) ([]Format, error) {
	cmd := y.commandExecutor.Command(ctx, y.youtubedlBinPath, "--no-playlist", "-J", sourceURL)
	output, err := cmd.Output()
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to run yt-dlp probe")
	}

	info := videoInfo{}
	if err := json.Unmarshal(output, &info); err != nil {
		return nil, cerr.Wrap(err).Error("Failed to parse yt-dlp metadata")
	}

	return info.Formats, nil
}
