package application

import (
	"context"

	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/storage"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cloud_storage"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/dynamo"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/executor"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/rabbitmq"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/storagepath"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/pipeline"
	"github.com/veedubyou/chord-paper-uvr/src/worker/internal/application/jobs/job_router"
	"github.com/veedubyou/chord-paper-uvr/src/worker/internal/application/jobs/separate"
	"github.com/veedubyou/chord-paper-uvr/src/worker/internal/application/worker"
	"google.golang.org/api/option"
)

type Config struct {
	Separation   config.Separation
	RabbitMQ     config.RabbitMQ
	DynamoConfig config.Dynamo
	// CloudStorageConfig is optional
	CloudStorageConfig config.CloudStorage
}

type App struct {
	worker          *worker.QueueWorker
	consumerConn    *amqp091.Connection
	resultPublisher *rabbitmq.QueuePublisher
}

// NewApp loads the separation model before connecting to anything, so a
// broken model never consumes a job.
func NewApp(ctx context.Context, appConfig Config) (*App, error) {
	if appConfig.DynamoConfig == nil {
		return nil, cerr.Error("The worker requires DynamoDB to track jobs")
	}

	orchestrator, err := pipeline.New(ctx, appConfig.Separation, executor.BinaryFileExecutor{})
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to build separation pipeline")
	}

	dynamoDB, err := dynamolib.NewFromConfig(appConfig.DynamoConfig)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to create DynamoDB client")
	}

	mirror, err := newStemMirror(appConfig.CloudStorageConfig)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to create stem mirror")
	}

	app := &App{}

	var resultPublisher rabbitmq.Publisher
	if appConfig.RabbitMQ.ResultsQueueName != "" {
		app.resultPublisher, err = rabbitmq.NewQueuePublisher(appConfig.RabbitMQ.URL, appConfig.RabbitMQ.ResultsQueueName)
		if err != nil {
			return nil, cerr.Wrap(err).Error("Failed to create results publisher")
		}
		resultPublisher = app.resultPublisher
	}

	handler := separate.NewJobHandler(jobstorage.NewDB(dynamoDB), orchestrator, mirror)
	router := job_router.NewJobRouter(handler, resultPublisher)

	app.consumerConn, err = amqp091.Dial(appConfig.RabbitMQ.URL)
	if err != nil {
		app.Stop()
		return nil, cerr.Wrap(err).Error("Failed to dial rabbitMQ url")
	}

	app.worker, err = worker.NewQueueWorkerFromConnection(app.consumerConn, appConfig.RabbitMQ.QueueName, router)
	if err != nil {
		app.Stop()
		return nil, cerr.Wrap(err).Error("Failed to create queue worker")
	}

	return app, nil
}

func (a *App) Start(ctx context.Context) error {
	err := a.worker.Start(ctx)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to start worker")
	}

	return nil
}

func (a *App) Stop() {
	if a.worker != nil {
		a.worker.Stop()
	}

	if a.consumerConn != nil {
		_ = a.consumerConn.Close()
	}

	if a.resultPublisher != nil {
		a.resultPublisher.Close()
	}
}

func newStemMirror(cloudStorageConfig config.CloudStorage) (*separate.StemMirror, error) {
	if cloudStorageConfig == nil {
		return nil, nil
	}

	var options []option.ClientOption

	switch t := cloudStorageConfig.(type) {
	case config.ProdCloudStorage:
		options = []option.ClientOption{option.WithCredentialsJSON([]byte(t.SecretKey))}

	case config.LocalCloudStorage:
		options = []option.ClientOption{
			option.WithEndpoint(t.HostEndpoint),
			option.WithoutAuthentication(),
		}

	default:
		return nil, cerr.Error("Unrecognized cloud storage config")
	}

	fileStore, err := filestore.NewGoogleFileStore(cloudStorageConfig.GetStorageHost(), options...)
	if err != nil {
		return nil, err
	}

	return &separate.StemMirror{
		FileStore: fileStore,
		PathGenerator: storagepath.Generator{
			Host:   cloudStorageConfig.GetStorageHost(),
			Bucket: cloudStorageConfig.GetBucket(),
		},
	}, nil
}
