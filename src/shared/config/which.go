package config

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/veedubyou/chord-paper-uvr/src/shared/config/envvar"
)

func FindBin(bin string) string {
	cmd := exec.Command("which", bin)
	output, err := cmd.CombinedOutput()

	stringOutput := string(output)
	if err != nil {
		panic(fmt.Sprintf("Failed to find %s: %s", bin, stringOutput))
	}

	trimmedOutput := strings.TrimSpace(stringOutput)
	if trimmedOutput == "" {
		panic(fmt.Sprintf("No bin found for %s", bin))
	}

	return trimmedOutput
}

// binPath prefers an explicit env override and only then searches PATH
func binPath(key string, bin string) string {
	if path, ok := envvar.Lookup(key); ok {
		return path
	}

	return FindBin(bin)
}

func AudioSeparatorPath() string {
	return binPath(envvar.AUDIO_SEPARATOR_BIN_PATH, "audio-separator")
}

func FFmpegPath() string {
	return binPath(envvar.FFMPEG_BIN_PATH, "ffmpeg")
}

func FFprobePath() string {
	return binPath(envvar.FFPROBE_BIN_PATH, "ffprobe")
}

func YoutubeDLPath() string {
	return binPath(envvar.YOUTUBEDL_BIN_PATH, "yt-dlp")
}
