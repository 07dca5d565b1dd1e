package input

import (
	"context"
	"strings"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/executor"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . AudioExtractor
type AudioExtractor interface {
	ExtractAudio(ctx context.Context, videoPath string, audioPath string) error
}

var _ AudioExtractor = FFmpegExtractor{}

var audioCodecs = map[string]string{
	".mp3":  "libmp3lame",
	".wav":  "pcm_s16le",
	".flac": "flac",
}

func NewFFmpegExtractor(ffmpegBinPath string, ffprobeBinPath string, commandExecutor executor.Executor) FFmpegExtractor {
	return FFmpegExtractor{
		ffmpegBinPath:   ffmpegBinPath,
		ffprobeBinPath:  ffprobeBinPath,
		commandExecutor: commandExecutor,
	}
}

type FFmpegExtractor struct {
	ffmpegBinPath   string
	ffprobeBinPath  string
	commandExecutor executor.Executor
}

func (f FFmpegExtractor) ExtractAudio(ctx context.Context, videoPath string, audioPath string) error {
	errctx := cerr.Field("video_path", videoPath).Field("audio_path", audioPath)

	hasAudio, err := f.hasAudioStream(ctx, videoPath)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to probe video for audio streams")
	}

	if !hasAudio {
		err := errors.WithHint(
			mark.Message(separationentity.ExtractionMark, "Video has no audio track"),
			"The video has no audio track")
		return errctx.Wrap(err).Error("Cannot extract audio")
	}

	logger := log.WithFields(log.Fields{
		"video_path": videoPath,
		"audio_path": audioPath,
	})
	logger.Info("Running ffmpeg to extract audio")

	args := []string{"-y", "-i", videoPath, "-vn"}
	if codec, ok := audioCodecs[strings.ToLower(extOf(audioPath))]; ok {
		args = append(args, "-acodec", codec)
	}
	args = append(args, audioPath)

	cmd := f.commandExecutor.Command(ctx, f.ffmpegBinPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		err = mark.Wrap(err, separationentity.ExtractionMark, "ffmpeg failed")
		return errctx.Field("ffmpeg_output", string(output)).
			Wrap(err).Error("Failed to extract audio track")
	}

	logger.Info("Finished extracting audio")
	return nil
}

func (f FFmpegExtractor) hasAudioStream(ctx context.Context, videoPath string) (bool, error) {
	cmd := f.commandExecutor.Command(ctx, f.ffprobeBinPath,
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=index",
		"-of", "csv=p=0",
		videoPath)

	output, err := cmd.Output()
	if err != nil {
		// ffprobe refuses unreadable or corrupt containers
		err = mark.Wrap(err, separationentity.ExtractionMark, "ffprobe failed")
		return false, cerr.Field("ffprobe_output", string(output)).
			Wrap(err).Error("Video is unreadable")
	}

	return strings.TrimSpace(string(output)) != "", nil
}
