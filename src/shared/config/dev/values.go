package dev

import "github.com/veedubyou/chord-paper-uvr/src/shared/config"

// DynamoDB
const (
	DynamoAccessKeyID     = "local"
	DynamoSecretAccessKey = "local"
	DynamoDBHost          = "http://localhost:8000"
	DynamoDBRegion        = "localhost"
)

var DynamoConfig = config.LocalDynamo{
	AccessKeyID:     DynamoAccessKeyID,
	SecretAccessKey: DynamoSecretAccessKey,
	Region:          DynamoDBRegion,
	Host:            DynamoDBHost,
}

// RabbitMQ
const (
	RabbitMQHost             = "amqp://localhost:5672"
	RabbitMQQueueName        = "chord-paper-uvr-dev"
	RabbitMQResultsQueueName = "chord-paper-uvr-results-dev"
)

var RabbitMQConfig = config.RabbitMQ{
	URL:              RabbitMQHost,
	QueueName:        RabbitMQQueueName,
	ResultsQueueName: RabbitMQResultsQueueName,
}
