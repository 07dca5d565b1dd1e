package main

import (
	"context"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config/dev"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/command"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/env"
	"github.com/veedubyou/chord-paper-uvr/src/worker/application"
)

func main() {
	command.Execute(newRootCommand())
}

func newRootCommand() *cobra.Command {
	return command.New("uvr-worker", "Consume queued separation jobs", run)
}

func run(ctx context.Context) error {
	appConfig := application.Config{
		Separation:         config.LoadSeparation(),
		DynamoConfig:       config.LoadDynamo(),
		CloudStorageConfig: config.LoadCloudStorage(),
	}

	rabbitMQConfig := config.LoadRabbitMQ()

	if env.Get() == env.Development {
		if appConfig.DynamoConfig == nil {
			appConfig.DynamoConfig = dev.DynamoConfig
		}
		if rabbitMQConfig == nil {
			rabbitMQConfig = &dev.RabbitMQConfig
		}
	}

	if rabbitMQConfig == nil {
		return cerr.Error("RABBITMQ_URL is required to run the worker")
	}
	appConfig.RabbitMQ = *rabbitMQConfig

	app, err := application.NewApp(ctx, appConfig)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to create worker app")
	}

	go func() {
		<-ctx.Done()
		log.Info("Stopping worker")
		app.Stop()
	}()

	return app.Start(ctx)
}
