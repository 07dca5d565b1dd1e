package separationentity_test

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Separation entity", func() {
	Describe("InputReference JSON", func() {
		var ref separationentity.InputReference

		unmarshal := func(body string) {
			ref = separationentity.InputReference{}
			Expect(json.Unmarshal([]byte(body), &ref)).To(Succeed())
		}

		It("reads a tagged object", func() {
			unmarshal(`{"kind":"remote_video_url","value":"https://example.com/v"}`)
			Expect(ref).To(Equal(*separationentity.NewRemoteVideoURL("https://example.com/v")))
		})

		It("tags a bare URL string as remote", func() {
			unmarshal(`"https://www.youtube.com/watch?v=abc"`)
			Expect(ref.Kind).To(Equal(separationentity.RemoteVideoURL))
		})

		It("tags a bare path string as local", func() {
			unmarshal(`"/data/song.mp4"`)
			Expect(ref).To(Equal(*separationentity.NewLocalPath("/data/song.mp4")))
		})

		It("does not treat other schemes as remote", func() {
			unmarshal(`"file:///data/song.mp4"`)
			Expect(ref.Kind).To(Equal(separationentity.LocalPath))
		})
	})

	Describe("SeparationRequest.Validate", func() {
		var request separationentity.SeparationRequest

		BeforeEach(func() {
			request = separationentity.SeparationRequest{
				TaskID:         "task-1",
				InputReference: separationentity.NewLocalPath("/data/song.mp3"),
			}
		})

		expectInvalid := func() {
			err := request.Validate()
			Expect(err).To(HaveOccurred())
			Expect(separationentity.Classify(err)).To(Equal(separationentity.InvalidRequestError))
		}

		It("accepts a well formed request", func() {
			Expect(request.Validate()).To(Succeed())
		})

		It("rejects a blank task id", func() {
			request.TaskID = "  "
			expectInvalid()
		})

		It("rejects a task id with a path separator", func() {
			request.TaskID = "../escape"
			expectInvalid()
		})

		It("rejects a task id with a percent sign", func() {
			request.TaskID = "t%(id)s"
			expectInvalid()
		})

		It("rejects a missing reference", func() {
			request.InputReference = nil
			expectInvalid()
		})

		It("rejects an empty reference", func() {
			request.InputReference = separationentity.NewLocalPath("")
			expectInvalid()
		})

		It("rejects a remote reference that is not http", func() {
			request.InputReference = separationentity.NewRemoteVideoURL("ftp://example.com/v.mp4")
			expectInvalid()
		})

		It("rejects an unknown kind", func() {
			request.InputReference = &separationentity.InputReference{Kind: "carrier_pigeon", Value: "coo"}
			expectInvalid()
		})
	})

	Describe("NewError", func() {
		It("classifies marked errors", func() {
			err := mark.Wrap(errors.New("yt-dlp exited 1"), separationentity.NoDownloadableStreamMark, "Probe failed")
			sepErr := separationentity.NewError(err)

			Expect(sepErr.Kind).To(Equal(separationentity.NoDownloadableStreamError))
			Expect(sepErr.Message).To(Equal(separationentity.NoDownloadableStreamError.DefaultMessage()))
			Expect(errors.Is(sepErr, err)).To(BeTrue())
		})

		It("prefers the hint as the message", func() {
			err := errors.WithHint(mark.Message(separationentity.SeparationMark, "count mismatch"), "Expected two stems")
			sepErr := separationentity.NewError(err)

			Expect(sepErr.Kind).To(Equal(separationentity.SeparationError))
			Expect(sepErr.Message).To(Equal("Expected two stems"))
		})

		It("treats unmarked errors as internal", func() {
			sepErr := separationentity.NewError(errors.New("disk on fire"))

			Expect(sepErr.Kind).To(Equal(separationentity.InternalError))
		})
	})

	Describe("SeparationResult.Validate", func() {
		It("rejects identical stem paths", func() {
			result := separationentity.SeparationResult{VocalPath: "/a.mp3", InstrumentalPath: "/a.mp3"}
			Expect(separationentity.Classify(result.Validate())).To(Equal(separationentity.SeparationError))
		})
	})
})
