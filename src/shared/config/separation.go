package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veedubyou/chord-paper-uvr/src/shared/config/envvar"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

const (
	DefaultDownloadPath  = "audio/uvr_downloads"
	DefaultProcessedPath = "audio/uvr_processed"
	DefaultModel         = "Kim_Vocal_2.onnx"
	DefaultModelDir      = "models"
	DefaultVideoExt      = "mp4"
	DefaultAudioExt      = "mp3"
)

type Separation struct {
	DownloadPath  string
	ProcessedPath string
	// VideoExt and AudioExt always carry a leading dot
	VideoExt string
	AudioExt string

	Model separationentity.ModelConfig

	AudioSeparatorBinPath string
	FFmpegBinPath         string
	FFprobeBinPath        string
	YoutubeDLBinPath      string

	// EngineLockPath is optional; when set, separations are serialized
	// across every process sharing the file
	EngineLockPath string
}

// LoadSeparation panics on malformed values, configuration problems are
// fatal to startup.
func LoadSeparation() Separation {
	model := separationentity.ModelConfig{
		ModelIdentifier: envvar.Resolve(envvar.UVR_MODEL_PATH, DefaultModel),
		ModelFileDir:    envvar.Resolve(envvar.UVR_MODEL_DIR, DefaultModelDir),
		HopLength:       mustInt(envvar.UVR_MDX_HOP_LENGTH, "1024"),
		SegmentSize:     mustInt(envvar.UVR_MDX_SEGMENT_SIZE, "256"),
		Overlap:         mustFloat(envvar.UVR_MDX_OVERLAP, "0.25"),
		BatchSize:       mustInt(envvar.UVR_MDX_BATCH_SIZE, "24"),
		DenoiseEnabled:  mustBool(envvar.UVR_MDX_ENABLE_DENOISE, "true"),
	}

	if err := model.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid model configuration: %s", err.Error()))
	}

	return Separation{
		DownloadPath:          envvar.Resolve(envvar.UVR_DOWNLOAD_PATH, DefaultDownloadPath),
		ProcessedPath:         envvar.Resolve(envvar.UVR_PROCESSED_PATH, DefaultProcessedPath),
		VideoExt:              NormalizeExt(envvar.Resolve(envvar.UVR_VIDEO_EXT, DefaultVideoExt)),
		AudioExt:              NormalizeExt(envvar.Resolve(envvar.UVR_AUDIO_EXT, DefaultAudioExt)),
		Model:                 model,
		AudioSeparatorBinPath: AudioSeparatorPath(),
		FFmpegBinPath:         FFmpegPath(),
		FFprobeBinPath:        FFprobePath(),
		YoutubeDLBinPath:      YoutubeDLPath(),
		EngineLockPath:        envvar.Resolve(envvar.UVR_ENGINE_LOCK_PATH, ""),
	}
}

// NormalizeExt accepts "mp3", ".mp3" or "MP3" and returns ".mp3". The
// separator CLI always writes lowercase extensions.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}

	return "." + ext
}

func mustInt(key string, defaultVal string) int {
	raw := envvar.Resolve(key, defaultVal)
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		panic(fmt.Sprintf("Env variable %s is not an integer: %q", key, raw))
	}

	return val
}

func mustFloat(key string, defaultVal string) float64 {
	raw := envvar.Resolve(key, defaultVal)
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		panic(fmt.Sprintf("Env variable %s is not a number: %q", key, raw))
	}

	return val
}

func mustBool(key string, defaultVal string) bool {
	raw := envvar.Resolve(key, defaultVal)
	val, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		panic(fmt.Sprintf("Env variable %s is not a boolean: %q", key, raw))
	}

	return val
}
