package dummy

import (
	"context"
	"sync"

	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/rabbitmq"
)

var _ rabbitmq.Publisher = &RabbitMQ{}
var _ amqp091.Acknowledger = RabbitMQAcknowledger{}

// RabbitMQ doubles as a publisher and as the channel a worker consumes
// from. Close ends the delivery stream.
type RabbitMQ struct {
	Unavailable    bool
	MessageChannel chan amqp091.Delivery

	counterLock sync.Mutex
	ackCounter  int
	nackCounter int
	closeOnce   sync.Once
}

type RabbitMQAcknowledger struct {
	ack  func()
	nack func()
}

func NewRabbitMQ() *RabbitMQ {
	return &RabbitMQ{
		Unavailable:    false,
		MessageChannel: make(chan amqp091.Delivery, 100),
	}
}

func (r *RabbitMQ) Publish(_ context.Context, msg amqp091.Publishing) error {
	if r.Unavailable {
		return NetworkFailure
	}

	acknowledger := RabbitMQAcknowledger{
		ack: func() {
			r.counterLock.Lock()
			defer r.counterLock.Unlock()
			r.ackCounter++
		},
		nack: func() {
			r.counterLock.Lock()
			defer r.counterLock.Unlock()
			r.nackCounter++
		},
	}

	r.MessageChannel <- amqp091.Delivery{
		Acknowledger:    acknowledger,
		ContentType:     msg.ContentType,
		ContentEncoding: msg.ContentEncoding,
		DeliveryMode:    msg.DeliveryMode,
		MessageId:       msg.MessageId,
		Timestamp:       msg.Timestamp,
		Type:            msg.Type,
		Body:            msg.Body,
	}
	return nil
}

func (r *RabbitMQ) Consume(_ string, _ string, _ bool, _ bool, _ bool, _ bool, _ amqp091.Table) (<-chan amqp091.Delivery, error) {
	if r.Unavailable {
		return nil, NetworkFailure
	}

	return r.MessageChannel, nil
}

func (r *RabbitMQ) Close() error {
	r.closeOnce.Do(func() {
		close(r.MessageChannel)
	})
	return nil
}

func (r *RabbitMQ) Acks() int {
	r.counterLock.Lock()
	defer r.counterLock.Unlock()
	return r.ackCounter
}

func (r *RabbitMQ) Nacks() int {
	r.counterLock.Lock()
	defer r.counterLock.Unlock()
	return r.nackCounter
}

// Drain returns whatever has been published and not consumed yet
func (r *RabbitMQ) Drain() []amqp091.Delivery {
	deliveries := []amqp091.Delivery{}
	for {
		select {
		case delivery, ok := <-r.MessageChannel:
			if !ok {
				return deliveries
			}
			deliveries = append(deliveries, delivery)
		default:
			return deliveries
		}
	}
}

func (r RabbitMQAcknowledger) Ack(tag uint64, multiple bool) error {
	r.ack()
	return nil
}

func (r RabbitMQAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	r.nack()
	return nil
}

func (r RabbitMQAcknowledger) Reject(tag uint64, requeue bool) error {
	r.nack()
	return nil
}
