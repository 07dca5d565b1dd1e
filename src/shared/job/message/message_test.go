package jobmessage_test

import (
	"context"

	"github.com/veedubyou/chord-paper-uvr/src/shared/job/message"
	"github.com/veedubyou/chord-paper-uvr/src/shared/testing/dummy"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/veedubyou/chord-paper-uvr/src/shared/testing"
)

var _ = Describe("Job messages", func() {
	It("publishes a typed message that reads back", func() {
		publisher := dummy.NewRabbitMQ()

		Expect(jobmessage.Publish(context.Background(), publisher, jobmessage.SeparateType, jobmessage.SeparateParams{
			JobIdentifier: jobmessage.JobIdentifier{JobID: "job-1"},
		})).To(Succeed())

		deliveries := publisher.Drain()
		Expect(deliveries).To(HaveLen(1))
		Expect(deliveries[0].Type).To(Equal(jobmessage.SeparateType))

		params := ExpectSuccess(jobmessage.UnmarshalSeparateParams(deliveries[0].Body))
		Expect(params.JobID).To(Equal("job-1"))
	})

	It("fails when the publisher is down", func() {
		publisher := dummy.NewRabbitMQ()
		publisher.Unavailable = true

		err := jobmessage.Publish(context.Background(), publisher, jobmessage.SeparateType, jobmessage.SeparateParams{})
		Expect(err).To(HaveOccurred())
	})

	It("rejects a message without a job id", func() {
		_, err := jobmessage.UnmarshalSeparateParams([]byte(`{}`))
		Expect(err).To(HaveOccurred())
	})

	It("rejects a message that is not JSON", func() {
		_, err := jobmessage.UnmarshalSeparateParams([]byte(`job-1`))
		Expect(err).To(HaveOccurred())
	})
})
