package input

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/working_dir"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/input/download"
)

type Config struct {
	DownloadPath string
	VideoExt     string
	AudioExt     string
}

func NewResolver(config Config, downloader download.Downloader, extractor AudioExtractor) (Resolver, error) {
	downloadDir, err := working_dir.NewWorkingDir(config.DownloadPath)
	if err != nil {
		return Resolver{}, cerr.Wrap(err).Error("Failed to resolve download directory")
	}

	return Resolver{
		downloadDir: downloadDir,
		videoExt:    config.VideoExt,
		audioExt:    config.AudioExt,
		downloader:  downloader,
		extractor:   extractor,
	}, nil
}

// Resolver turns an input reference into a local audio file. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	downloadDir working_dir.WorkingDir
	videoExt    string
	audioExt    string
	downloader  download.Downloader
	extractor   AudioExtractor
}

func (r Resolver) Resolve(ctx context.Context, ref *separationentity.InputReference, taskID string) (separationentity.ResolvedAudio, error) {
	if ref == nil {
		return separationentity.ResolvedAudio{},
			mark.Message(separationentity.InvalidRequestMark, "No input reference provided")
	}

	errctx := cerr.Field("task_id", taskID).Field("input_reference", ref.Value)

	switch ref.Kind {
	case separationentity.LocalPath:
		return r.resolveLocal(ctx, ref.Value)

	case separationentity.RemoteVideoURL:
		videoPath := r.DownloadPath(taskID)
		if err := r.downloader.Download(ctx, ref.Value, videoPath); err != nil {
			return separationentity.ResolvedAudio{}, errctx.Wrap(err).Error("Failed to download remote video")
		}

		audioPath, err := r.extract(ctx, videoPath)
		if err != nil {
			return separationentity.ResolvedAudio{}, errctx.Wrap(err).Error("Failed to extract downloaded video")
		}

		return separationentity.ResolvedAudio{
			Path:       audioPath,
			SourceKind: separationentity.DownloadedAndExtracted,
		}, nil

	default:
		return separationentity.ResolvedAudio{},
			errctx.Wrap(mark.Message(separationentity.InvalidRequestMark, "Unknown input kind")).
				Error("Cannot resolve input")
	}
}

func (r Resolver) resolveLocal(ctx context.Context, path string) (separationentity.ResolvedAudio, error) {
	if !hasExt(path, r.videoExt) {
		// existence is the engine's to check
		return separationentity.ResolvedAudio{
			Path:       path,
			SourceKind: separationentity.AlreadyAudio,
		}, nil
	}

	audioPath, err := r.extract(ctx, path)
	if err != nil {
		return separationentity.ResolvedAudio{}, cerr.Wrap(err).Error("Failed to extract local video")
	}

	return separationentity.ResolvedAudio{
		Path:       audioPath,
		SourceKind: separationentity.ExtractedFromVideo,
	}, nil
}

func (r Resolver) extract(ctx context.Context, videoPath string) (string, error) {
	audioPath := r.AudioPathFor(videoPath)

	log.WithFields(log.Fields{
		"video_path": videoPath,
		"audio_path": audioPath,
	}).Info("Extracting audio from video")

	if err := r.extractor.ExtractAudio(ctx, videoPath, audioPath); err != nil {
		return "", err
	}

	return audioPath, nil
}

// AudioPathFor swaps the video extension for the audio one, so the same
// video always extracts to the same sibling file.
func (r Resolver) AudioPathFor(videoPath string) string {
	ext := extOf(videoPath)
	return strings.TrimSuffix(videoPath, ext) + r.audioExt
}

// DownloadPath derives the video file name from the task ID
func (r Resolver) DownloadPath(taskID string) string {
	return r.downloadDir.Join(strings.ReplaceAll(taskID, "-", "_") + r.videoExt)
}

func hasExt(path string, ext string) bool {
	return ext != "" && strings.EqualFold(extOf(path), ext)
}

func extOf(path string) string {
	return filepath.Ext(path)
}
