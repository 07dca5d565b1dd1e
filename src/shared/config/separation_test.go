package config_test

import (
	"os"

	"github.com/veedubyou/chord-paper-uvr/src/shared/config"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config/envvar"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func setEnv(key string, value string) {
	prev, wasSet := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())

	DeferCleanup(func() {
		if wasSet {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

func unsetEnv(key string) {
	prev, wasSet := os.LookupEnv(key)
	Expect(os.Unsetenv(key)).To(Succeed())

	DeferCleanup(func() {
		if wasSet {
			os.Setenv(key, prev)
		}
	})
}

var _ = Describe("Separation config", func() {
	BeforeEach(func() {
		// keep PATH lookups out of the tests
		setEnv(envvar.AUDIO_SEPARATOR_BIN_PATH, "/opt/bin/audio-separator")
		setEnv(envvar.FFMPEG_BIN_PATH, "/opt/bin/ffmpeg")
		setEnv(envvar.FFPROBE_BIN_PATH, "/opt/bin/ffprobe")
		setEnv(envvar.YOUTUBEDL_BIN_PATH, "/opt/bin/yt-dlp")

		for _, key := range []string{
			envvar.UVR_DOWNLOAD_PATH,
			envvar.UVR_PROCESSED_PATH,
			envvar.UVR_MODEL_PATH,
			envvar.UVR_MODEL_DIR,
			envvar.UVR_VIDEO_EXT,
			envvar.UVR_AUDIO_EXT,
			envvar.UVR_MDX_HOP_LENGTH,
			envvar.UVR_MDX_SEGMENT_SIZE,
			envvar.UVR_MDX_OVERLAP,
			envvar.UVR_MDX_BATCH_SIZE,
			envvar.UVR_MDX_ENABLE_DENOISE,
			envvar.UVR_ENGINE_LOCK_PATH,
		} {
			unsetEnv(key)
		}
	})

	Describe("Resolve", func() {
		It("returns the default when the variable is unset", func() {
			Expect(envvar.Resolve(envvar.UVR_VIDEO_EXT, "mp4")).To(Equal("mp4"))
		})

		It("returns the override when it is set", func() {
			setEnv(envvar.UVR_VIDEO_EXT, "mkv")
			Expect(envvar.Resolve(envvar.UVR_VIDEO_EXT, "mp4")).To(Equal("mkv"))
		})

		It("honours an override set to the empty string", func() {
			setEnv(envvar.UVR_VIDEO_EXT, "")
			Expect(envvar.Resolve(envvar.UVR_VIDEO_EXT, "mp4")).To(Equal(""))
		})
	})

	Describe("LoadSeparation", func() {
		It("lowercases configured extensions", func() {
			setEnv(envvar.UVR_AUDIO_EXT, "MP3")
			setEnv(envvar.UVR_VIDEO_EXT, ".MP4")

			separation := config.LoadSeparation()
			Expect(separation.AudioExt).To(Equal(".mp3"))
			Expect(separation.VideoExt).To(Equal(".mp4"))
		})

		It("falls back to the defaults", func() {
			separation := config.LoadSeparation()

			Expect(separation.DownloadPath).To(Equal(config.DefaultDownloadPath))
			Expect(separation.ProcessedPath).To(Equal(config.DefaultProcessedPath))
			Expect(separation.VideoExt).To(Equal(".mp4"))
			Expect(separation.AudioExt).To(Equal(".mp3"))
			Expect(separation.EngineLockPath).To(BeEmpty())

			Expect(separation.Model.ModelIdentifier).To(Equal("Kim_Vocal_2.onnx"))
			Expect(separation.Model.ModelName()).To(Equal("Kim_Vocal_2"))
			Expect(separation.Model.HopLength).To(Equal(1024))
			Expect(separation.Model.SegmentSize).To(Equal(256))
			Expect(separation.Model.Overlap).To(Equal(0.25))
			Expect(separation.Model.BatchSize).To(Equal(24))
			Expect(separation.Model.DenoiseEnabled).To(BeTrue())
		})

		It("uses the bin path overrides", func() {
			separation := config.LoadSeparation()

			Expect(separation.AudioSeparatorBinPath).To(Equal("/opt/bin/audio-separator"))
			Expect(separation.FFmpegBinPath).To(Equal("/opt/bin/ffmpeg"))
			Expect(separation.FFprobeBinPath).To(Equal("/opt/bin/ffprobe"))
			Expect(separation.YoutubeDLBinPath).To(Equal("/opt/bin/yt-dlp"))
		})

		It("applies every override", func() {
			setEnv(envvar.UVR_DOWNLOAD_PATH, "/data/in")
			setEnv(envvar.UVR_PROCESSED_PATH, "/data/out")
			setEnv(envvar.UVR_MODEL_PATH, "UVR-MDX-NET-Inst_HQ_3.onnx")
			setEnv(envvar.UVR_VIDEO_EXT, ".webm")
			setEnv(envvar.UVR_AUDIO_EXT, "wav")
			setEnv(envvar.UVR_MDX_HOP_LENGTH, "512")
			setEnv(envvar.UVR_MDX_OVERLAP, "0.5")
			setEnv(envvar.UVR_MDX_ENABLE_DENOISE, "false")
			setEnv(envvar.UVR_ENGINE_LOCK_PATH, "/tmp/uvr.lock")

			separation := config.LoadSeparation()

			Expect(separation.DownloadPath).To(Equal("/data/in"))
			Expect(separation.ProcessedPath).To(Equal("/data/out"))
			Expect(separation.VideoExt).To(Equal(".webm"))
			Expect(separation.AudioExt).To(Equal(".wav"))
			Expect(separation.Model.ModelName()).To(Equal("UVR-MDX-NET-Inst_HQ_3"))
			Expect(separation.Model.HopLength).To(Equal(512))
			Expect(separation.Model.Overlap).To(Equal(0.5))
			Expect(separation.Model.DenoiseEnabled).To(BeFalse())
			Expect(separation.EngineLockPath).To(Equal("/tmp/uvr.lock"))
		})

		It("keeps an empty processed path override", func() {
			setEnv(envvar.UVR_PROCESSED_PATH, "")
			Expect(config.LoadSeparation().ProcessedPath).To(Equal(""))
		})

		It("panics on a malformed number", func() {
			setEnv(envvar.UVR_MDX_BATCH_SIZE, "lots")
			Expect(func() { config.LoadSeparation() }).To(Panic())
		})

		It("panics on an invalid model configuration", func() {
			setEnv(envvar.UVR_MDX_OVERLAP, "1.5")
			Expect(func() { config.LoadSeparation() }).To(Panic())
		})
	})

	Describe("NormalizeExt", func() {
		It("adds the leading dot once", func() {
			Expect(config.NormalizeExt("mp3")).To(Equal(".mp3"))
			Expect(config.NormalizeExt(".mp3")).To(Equal(".mp3"))
			Expect(config.NormalizeExt("")).To(Equal(""))
		})

		It("lowercases the extension", func() {
			Expect(config.NormalizeExt("MP3")).To(Equal(".mp3"))
			Expect(config.NormalizeExt(".Mp4")).To(Equal(".mp4"))
		})
	})
})
