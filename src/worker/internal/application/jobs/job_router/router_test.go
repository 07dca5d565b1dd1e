package job_router_test

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/message"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/testing/dummy"
	"github.com/veedubyou/chord-paper-uvr/src/worker/internal/application/jobs/job_router"
	"github.com/veedubyou/chord-paper-uvr/src/worker/internal/application/jobs/separate"
	"github.com/veedubyou/chord-paper-uvr/src/worker/internal/application/jobs/separate/separatefakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Job router", func() {
	var (
		fakeHandler     *separatefakes.FakeSeparateJobHandler
		resultPublisher *dummy.RabbitMQ
		router          job_router.JobRouter

		delivery amqp091.Delivery
		err      error
	)

	BeforeEach(func() {
		fakeHandler = &separatefakes.FakeSeparateJobHandler{}
		fakeHandler.HandleSeparateJobReturns(separate.Outcome{
			MessageType: jobmessage.FailedType,
			Params: jobmessage.ResultParams{
				JobIdentifier: jobmessage.JobIdentifier{JobID: "job-id"},
				TaskID:        "task-1",
				ErrorKind:     separationentity.NoDownloadableStreamError,
				Message:       "no stream",
			},
		}, nil)

		resultPublisher = dummy.NewRabbitMQ()
		router = job_router.NewJobRouter(fakeHandler, resultPublisher)

		delivery = amqp091.Delivery{
			Type: jobmessage.SeparateType,
			Body: []byte(`{"job_id":"job-id"}`),
		}
	})

	JustBeforeEach(func() {
		err = router.HandleMessage(context.Background(), delivery)
	})

	Describe("Separate message", func() {
		It("hands the body to the separate handler", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeHandler.HandleSeparateJobCallCount()).To(Equal(1))

			_, body := fakeHandler.HandleSeparateJobArgsForCall(0)
			Expect(body).To(Equal(delivery.Body))
		})

		It("publishes the outcome", func() {
			published := resultPublisher.Drain()
			Expect(published).To(HaveLen(1))
			Expect(published[0].Type).To(Equal(jobmessage.FailedType))

			params := jobmessage.ResultParams{}
			Expect(json.Unmarshal(published[0].Body, &params)).To(Succeed())
			Expect(params.JobID).To(Equal("job-id"))
			Expect(params.ErrorKind).To(Equal(separationentity.NoDownloadableStreamError))
		})

		Describe("When the results queue is down", func() {
			BeforeEach(func() {
				resultPublisher.Unavailable = true
			})

			It("still acks the job", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		Describe("Without a results queue", func() {
			BeforeEach(func() {
				router = job_router.NewJobRouter(fakeHandler, nil)
			})

			It("handles the job", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeHandler.HandleSeparateJobCallCount()).To(Equal(1))
			})
		})

		Describe("When the job cannot be settled", func() {
			BeforeEach(func() {
				fakeHandler.HandleSeparateJobReturns(separate.Outcome{}, errors.New("store down"))
			})

			It("returns an error and publishes nothing", func() {
				Expect(err).To(HaveOccurred())
				Expect(resultPublisher.Drain()).To(BeEmpty())
			})
		})
	})

	Describe("Unknown message", func() {
		BeforeEach(func() {
			delivery.Type = "split_track"
		})

		It("returns an error", func() {
			Expect(err).To(HaveOccurred())
			Expect(fakeHandler.HandleSeparateJobCallCount()).To(BeZero())
		})
	})
})
