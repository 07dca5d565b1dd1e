package worker_test

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/chord-paper-uvr/src/shared/testing/dummy"
	"github.com/veedubyou/chord-paper-uvr/src/worker/internal/application/worker"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type handlerFunc func(ctx context.Context, message amqp091.Delivery) error

func (h handlerFunc) HandleMessage(ctx context.Context, message amqp091.Delivery) error {
	return h(ctx, message)
}

var _ = Describe("Queue worker", func() {
	var (
		rabbitMQ    *dummy.RabbitMQ
		queueWorker *worker.QueueWorker
		done        chan error
	)

	BeforeEach(func() {
		rabbitMQ = dummy.NewRabbitMQ()

		queueWorker = worker.NewQueueWorker(rabbitMQ, "separation-jobs", handlerFunc(func(_ context.Context, message amqp091.Delivery) error {
			if message.Type == "bad" {
				return errors.New("cannot handle")
			}
			return nil
		}))

		done = make(chan error, 1)
		go func() {
			done <- queueWorker.Start(context.Background())
		}()
		DeferCleanup(queueWorker.Stop)
	})

	publish := func(messageType string) {
		Expect(rabbitMQ.Publish(context.Background(), amqp091.Publishing{Type: messageType})).To(Succeed())
	}

	It("acks handled messages", func() {
		publish("separate")
		publish("separate")

		Eventually(rabbitMQ.Acks).Should(Equal(2))
		Expect(rabbitMQ.Nacks()).To(BeZero())
	})

	It("nacks messages that fail", func() {
		publish("bad")

		Eventually(rabbitMQ.Nacks).Should(Equal(1))
		Expect(rabbitMQ.Acks()).To(BeZero())
	})

	It("returns once stopped", func() {
		publish("separate")
		Eventually(rabbitMQ.Acks).Should(Equal(1))

		queueWorker.Stop()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("refuses to start again after stopping", func() {
		queueWorker.Stop()
		Eventually(done).Should(Receive())

		Expect(queueWorker.Start(context.Background())).NotTo(Succeed())
	})
})
