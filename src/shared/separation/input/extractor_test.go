package input_test

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/executor"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/executor/executorfakes"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/input"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FFmpeg extractor", func() {
	var (
		fakeExecutor *executorfakes.FakeExecutor
		probe        *executorfakes.FakeCommand
		ffmpeg       *executorfakes.FakeCommand

		extractor input.FFmpegExtractor
		err       error
	)

	BeforeEach(func() {
		probe = &executorfakes.FakeCommand{}
		probe.OutputReturns([]byte("1\n"), nil)
		ffmpeg = &executorfakes.FakeCommand{}

		fakeExecutor = &executorfakes.FakeExecutor{}
		fakeExecutor.CommandCalls(func(_ context.Context, name string, _ ...string) executor.Command {
			if name == "/bin/ffprobe" {
				return probe
			}
			return ffmpeg
		})

		extractor = input.NewFFmpegExtractor("/bin/ffmpeg", "/bin/ffprobe", fakeExecutor)
	})

	JustBeforeEach(func() {
		err = extractor.ExtractAudio(context.Background(), "/data/clip.mp4", "/data/clip.mp3")
	})

	Describe("Video with an audio track", func() {
		It("runs ffmpeg with the mp3 codec", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeExecutor.CommandCallCount()).To(Equal(2))

			_, name, args := fakeExecutor.CommandArgsForCall(1)
			Expect(name).To(Equal("/bin/ffmpeg"))
			Expect(args).To(Equal([]string{"-y", "-i", "/data/clip.mp4", "-vn", "-acodec", "libmp3lame", "/data/clip.mp3"}))
		})
	})

	Describe("Video without an audio track", func() {
		BeforeEach(func() {
			probe.OutputReturns([]byte(""), nil)
		})

		It("fails as an extraction error without running ffmpeg", func() {
			Expect(separationentity.Classify(err)).To(Equal(separationentity.ExtractionError))
			Expect(separationentity.NewError(err).Message).To(Equal("The video has no audio track"))
			Expect(ffmpeg.CombinedOutputCallCount()).To(BeZero())
		})
	})

	Describe("Unreadable video", func() {
		BeforeEach(func() {
			probe.OutputReturns(nil, errors.New("exit status 1"))
		})

		It("fails as an extraction error", func() {
			Expect(separationentity.Classify(err)).To(Equal(separationentity.ExtractionError))
		})
	})

	Describe("ffmpeg fails", func() {
		BeforeEach(func() {
			ffmpeg.CombinedOutputReturns([]byte("moov atom not found"), errors.New("exit status 1"))
		})

		It("fails as an extraction error", func() {
			Expect(separationentity.Classify(err)).To(Equal(separationentity.ExtractionError))
		})
	})
})
