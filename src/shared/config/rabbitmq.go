package config

import "github.com/veedubyou/chord-paper-uvr/src/shared/config/envvar"

type RabbitMQ struct {
	URL       string
	QueueName string
	// ResultsQueueName is optional, completion messages are only
	// published when it is set
	ResultsQueueName string
}

// LoadRabbitMQ returns nil when RABBITMQ_URL is unset.
func LoadRabbitMQ() *RabbitMQ {
	url, ok := envvar.Lookup(envvar.RABBITMQ_URL)
	if !ok || url == "" {
		return nil
	}

	return &RabbitMQ{
		URL:              url,
		QueueName:        envvar.MustGet(envvar.RABBITMQ_QUEUE_NAME),
		ResultsQueueName: envvar.Resolve(envvar.RABBITMQ_RESULTS_QUEUE_NAME, ""),
	}
}
