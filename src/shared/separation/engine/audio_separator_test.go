package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/executor/executorfakes"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/engine"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/veedubyou/chord-paper-uvr/src/shared/testing"
)

var _ = Describe("AudioSeparator", func() {
	var (
		dir          string
		modelDir     string
		outputDir    string
		fakeExecutor *executorfakes.FakeExecutor
		command      *executorfakes.FakeCommand
		separator    engine.AudioSeparator
	)

	BeforeEach(func() {
		dir = TempDir()
		modelDir = filepath.Join(dir, "models")
		outputDir = filepath.Join(dir, "out")

		command = &executorfakes.FakeCommand{}
		fakeExecutor = &executorfakes.FakeExecutor{}
		fakeExecutor.CommandReturns(command)

		model := validModel()
		model.ModelFileDir = modelDir
		separator = engine.NewAudioSeparator("/bin/audio-separator", model, ".mp3", fakeExecutor)
	})

	Describe("Init", func() {
		It("downloads the model into the model directory", func() {
			Expect(separator.Init(context.Background())).To(Succeed())
			Expect(modelDir).To(BeADirectory())

			_, name, args := fakeExecutor.CommandArgsForCall(0)
			Expect(name).To(Equal("/bin/audio-separator"))
			Expect(args).To(Equal([]string{
				"--model_filename", "Kim_Vocal_2.onnx",
				"--model_file_dir", modelDir,
				"--download_model_only",
			}))
		})

		It("fails when the model cannot be fetched", func() {
			command.CombinedOutputReturns([]byte("404"), errors.New("exit status 1"))
			Expect(separator.Init(context.Background())).NotTo(Succeed())
		})
	})

	Describe("SeparateArgs", func() {
		It("passes every MDX parameter", func() {
			Expect(separator.SeparateArgs("/out")).To(Equal([]string{
				"--output_dir", "/out",
				"--output_format", "MP3",
				"--mdx_hop_length", "1024",
				"--mdx_segment_size", "256",
				"--mdx_overlap", "0.25",
				"--mdx_batch_size", "24",
				"--mdx_enable_denoise",
			}))
		})
	})

	Describe("Separate", func() {
		var (
			audioPath string
			stale     string
		)

		BeforeEach(func() {
			audioPath = WriteFile(dir, "task_1.mp3", "audio")

			stale = WriteFile(outputDir, "task_1_(Other)_Kim_Vocal_2.mp3", "old")
			hourAgo := time.Now().Add(-time.Hour)
			Expect(os.Chtimes(stale, hourAgo, hourAgo)).To(Succeed())

			command.CombinedOutputCalls(func() ([]byte, error) {
				WriteFile(outputDir, "task_1_(Vocals)_Kim_Vocal_2.mp3", "vocals")
				WriteFile(outputDir, "task_1_(Instrumental)_Kim_Vocal_2.mp3", "instrumental")
				WriteFile(outputDir, "unrelated.mp3", "noise")
				return nil, nil
			})
		})

		It("runs the CLI on the input", func() {
			ExpectSuccess(separator.Separate(context.Background(), audioPath, outputDir))

			_, _, args := fakeExecutor.CommandArgsForCall(0)
			Expect(args[0]).To(Equal(audioPath))
			Expect(args).To(ContainElements("--output_dir", outputDir))
		})

		It("reports only the stems written by this run", func() {
			outputs := ExpectSuccess(separator.Separate(context.Background(), audioPath, outputDir))

			Expect(outputs).To(Equal([]string{
				filepath.Join(outputDir, "task_1_(Instrumental)_Kim_Vocal_2.mp3"),
				filepath.Join(outputDir, "task_1_(Vocals)_Kim_Vocal_2.mp3"),
			}))
		})

		It("finds the stems when the extension was configured in uppercase", func() {
			model := validModel()
			model.ModelFileDir = modelDir
			separator = engine.NewAudioSeparator("/bin/audio-separator", model, config.NormalizeExt("MP3"), fakeExecutor)

			outputs := ExpectSuccess(separator.Separate(context.Background(), audioPath, outputDir))
			Expect(outputs).To(HaveLen(2))
		})

		It("fails when the CLI fails", func() {
			command.CombinedOutputCalls(nil)
			command.CombinedOutputReturns([]byte("boom"), errors.New("exit status 1"))

			_, err := separator.Separate(context.Background(), audioPath, outputDir)
			Expect(err).To(HaveOccurred())
		})
	})
})
