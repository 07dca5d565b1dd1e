package orchestrator_test

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/orchestrator"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/orchestrator/orchestratorfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Orchestrator", func() {
	const (
		processedPath = "/data/processed"
		modelName     = "Kim_Vocal_2"
	)

	var (
		ctx context.Context

		fakeInputResolver *orchestratorfakes.FakeInputResolver
		fakeSeparator     *orchestratorfakes.FakeSeparator
		orch              orchestrator.Orchestrator

		request separationentity.SeparationRequest
		states  []orchestrator.State
		result  separationentity.SeparationResult
		sepErr  *separationentity.Error
	)

	stemsFor := func(outputDir string, audioPath string) []string {
		name := filepath.Base(audioPath)
		base := filepath.Join(outputDir, strings.TrimSuffix(name, filepath.Ext(name)))
		return []string{
			base + "_(Instrumental)_" + modelName + ".mp3",
			base + "_(Vocals)_" + modelName + ".mp3",
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		states = nil

		By("Setting up the fakes", func() {
			fakeInputResolver = &orchestratorfakes.FakeInputResolver{}
			fakeInputResolver.ResolveCalls(func(_ context.Context, ref *separationentity.InputReference, _ string) (separationentity.ResolvedAudio, error) {
				return separationentity.ResolvedAudio{Path: ref.Value, SourceKind: separationentity.AlreadyAudio}, nil
			})

			fakeSeparator = &orchestratorfakes.FakeSeparator{}
			fakeSeparator.ModelNameReturns(modelName)
			fakeSeparator.SeparateCalls(func(_ context.Context, audioPath string, outputDir string) ([]string, error) {
				return stemsFor(outputDir, audioPath), nil
			})
		})

		orch = orchestrator.New(orchestrator.Config{
			ProcessedPath: processedPath,
			AudioExt:      ".mp3",
		}, fakeInputResolver, fakeSeparator)

		request = separationentity.SeparationRequest{
			TaskID:         "t1",
			InputReference: separationentity.NewLocalPath("/data/clip.mp3"),
		}
	})

	JustBeforeEach(func() {
		result, sepErr = orch.HandleWithProgress(ctx, request, func(state orchestrator.State) {
			states = append(states, state)
		})
	})

	Describe("Local audio", func() {
		It("succeeds with two distinct paths", func() {
			Expect(sepErr).To(BeNil())
			Expect(result.VocalPath).To(Equal("/data/processed/clip_(Vocals)_Kim_Vocal_2.mp3"))
			Expect(result.InstrumentalPath).To(Equal("/data/processed/clip_(Instrumental)_Kim_Vocal_2.mp3"))
		})

		It("runs the engine on the input file", func() {
			_, audioPath, outputDir := fakeSeparator.SeparateArgsForCall(0)
			Expect(audioPath).To(Equal("/data/clip.mp3"))
			Expect(outputDir).To(Equal(processedPath))
		})

		It("walks every state in order", func() {
			Expect(states).To(Equal([]orchestrator.State{
				orchestrator.Received,
				orchestrator.Validating,
				orchestrator.ResolvingInput,
				orchestrator.Separating,
				orchestrator.ResolvingOutput,
				orchestrator.Completed,
			}))
		})
	})

	Describe("Local video", func() {
		BeforeEach(func() {
			request.InputReference = separationentity.NewLocalPath("/data/clip.mp4")
			fakeInputResolver.ResolveCalls(nil)
			fakeInputResolver.ResolveReturns(separationentity.ResolvedAudio{
				Path:       "/data/clip.mp3",
				SourceKind: separationentity.ExtractedFromVideo,
			}, nil)
		})

		It("separates the extracted audio", func() {
			Expect(sepErr).To(BeNil())

			_, audioPath, _ := fakeSeparator.SeparateArgsForCall(0)
			Expect(audioPath).To(Equal("/data/clip.mp3"))
			Expect(result.VocalPath).NotTo(BeEmpty())
			Expect(result.InstrumentalPath).NotTo(Equal(result.VocalPath))
		})
	})

	Describe("Output base path", func() {
		BeforeEach(func() {
			request.OutputBasePath = "/elsewhere"
		})

		It("writes the stems there instead", func() {
			Expect(sepErr).To(BeNil())
			Expect(result.VocalPath).To(Equal("/elsewhere/clip_(Vocals)_Kim_Vocal_2.mp3"))
		})
	})

	Describe("Remote video without a usable stream", func() {
		BeforeEach(func() {
			request.InputReference = separationentity.NewRemoteVideoURL("https://video/x")
			fakeInputResolver.ResolveCalls(nil)
			fakeInputResolver.ResolveReturns(separationentity.ResolvedAudio{},
				errors.WithHint(mark.Message(separationentity.NoDownloadableStreamMark, "no progressive mp4"),
					"The remote video has no progressive mp4 stream to download"))
		})

		It("fails with a descriptive client error", func() {
			Expect(sepErr).NotTo(BeNil())
			Expect(sepErr.Kind).To(Equal(separationentity.NoDownloadableStreamError))
			Expect(sepErr.Message).To(Equal("The remote video has no progressive mp4 stream to download"))
		})

		It("never reaches the engine", func() {
			Expect(fakeSeparator.SeparateCallCount()).To(BeZero())
		})

		It("ends in the failed state", func() {
			Expect(states).To(HaveLen(4))
			Expect(states[len(states)-1]).To(Equal(orchestrator.Failed))
		})
	})

	Describe("Engine reports the wrong stems", func() {
		BeforeEach(func() {
			fakeSeparator.SeparateCalls(nil)
			fakeSeparator.SeparateReturns([]string{
				"/data/processed/clip_(Vocals)_Kim_Vocal_2.mp3",
				"/data/processed/clip_(Drums)_Kim_Vocal_2.mp3",
			}, nil)
		})

		It("fails as a separation error with no paths", func() {
			Expect(sepErr).NotTo(BeNil())
			Expect(sepErr.Kind).To(Equal(separationentity.SeparationError))
			Expect(result).To(BeZero())
		})
	})

	Describe("Engine fails", func() {
		BeforeEach(func() {
			fakeSeparator.SeparateCalls(nil)
			fakeSeparator.SeparateReturns(nil, mark.Message(separationentity.SeparationMark, "Unexpected number of outputs"))
		})

		It("fails as a separation error", func() {
			Expect(sepErr.Kind).To(Equal(separationentity.SeparationError))
			Expect(result).To(BeZero())
		})
	})

	Describe("Missing task id", func() {
		BeforeEach(func() {
			request.TaskID = ""
		})

		It("fails as an invalid request", func() {
			Expect(sepErr.Kind).To(Equal(separationentity.InvalidRequestError))
		})

		It("does no I/O", func() {
			Expect(fakeInputResolver.ResolveCallCount()).To(BeZero())
			Expect(fakeSeparator.SeparateCallCount()).To(BeZero())
		})

		It("stops after validating", func() {
			Expect(states).To(Equal([]orchestrator.State{
				orchestrator.Received,
				orchestrator.Validating,
				orchestrator.Failed,
			}))
		})
	})

	Describe("Unexpected failure", func() {
		BeforeEach(func() {
			fakeInputResolver.ResolveCalls(nil)
			fakeInputResolver.ResolveReturns(separationentity.ResolvedAudio{}, errors.New("disk full"))
		})

		It("is reported as internal with a generic message", func() {
			Expect(sepErr.Kind).To(Equal(separationentity.InternalError))
			Expect(sepErr.Message).To(Equal(separationentity.InternalError.DefaultMessage()))
		})
	})

	It("handles without an observer", func() {
		_, err := orch.Handle(ctx, request)
		Expect(err).To(BeNil())
	})
})
