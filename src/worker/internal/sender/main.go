package main

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config/dev"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/message"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/storage"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/command"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/dynamo"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/rabbitmq"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

// uvr-sender queues a job straight onto the dev stack, no server needed
func main() {
	var (
		taskID    string
		input     string
		outputDir string
	)

	cmd := command.New("uvr-sender", "Queue one separation job for a local worker", func(ctx context.Context) error {
		request := separationentity.SeparationRequest{
			TaskID:         taskID,
			InputReference: separationentity.ParseInputReference(input),
			OutputBasePath: outputDir,
		}

		return send(ctx, request)
	})

	cmd.Flags().StringVar(&taskID, "task-id", "", "caller task ID")
	cmd.Flags().StringVar(&input, "input", "", "local path or video URL")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "where the stems go, defaults to the worker's processed path")
	_ = cmd.MarkFlagRequired("task-id")
	_ = cmd.MarkFlagRequired("input")

	command.Execute(cmd)
}

func send(ctx context.Context, request separationentity.SeparationRequest) error {
	if err := request.Validate(); err != nil {
		return cerr.Wrap(err).Error("Invalid separation request")
	}

	dynamoConfig := config.LoadDynamo()
	if dynamoConfig == nil {
		dynamoConfig = dev.DynamoConfig
	}

	rabbitMQConfig := config.LoadRabbitMQ()
	if rabbitMQConfig == nil {
		rabbitMQConfig = &dev.RabbitMQConfig
	}

	db, err := dynamolib.NewFromConfig(dynamoConfig)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to create DynamoDB client")
	}

	publisher, err := rabbitmq.NewQueuePublisher(rabbitMQConfig.URL, rabbitMQConfig.QueueName)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to create rabbitMQ publisher")
	}
	defer publisher.Close()

	job := jobentity.NewJob(uuid.NewString(), request, time.Now())
	if err := jobstorage.NewDB(db).CreateJob(ctx, job); err != nil {
		return cerr.Field("job_id", job.ID).Wrap(err).Error("Failed to create job")
	}

	err = jobmessage.Publish(ctx, publisher, jobmessage.SeparateType, jobmessage.SeparateParams{
		JobIdentifier: jobmessage.JobIdentifier{JobID: job.ID},
	})
	if err != nil {
		return cerr.Field("job_id", job.ID).Wrap(err).Error("Failed to publish separate job")
	}

	log.WithFields(log.Fields{
		"job_id":     job.ID,
		"task_id":    job.TaskID,
		"queue_name": publisher.QueueName(),
	}).Info("Queued separation job")

	return nil
}
