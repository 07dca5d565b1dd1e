package main

import (
	"context"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/veedubyou/chord-paper-uvr/src/server/application"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config/envvar"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/command"
)

const (
	defaultPort     = ":8080"
	shutdownTimeout = 30 * time.Second
)

func main() {
	command.Execute(newRootCommand())
}

func newRootCommand() *cobra.Command {
	return command.New("uvr-server", "Serve the vocal separation API", run)
}

func run(ctx context.Context) error {
	appConfig := application.Config{
		Separation:   config.LoadSeparation(),
		DynamoConfig: config.LoadDynamo(),
		RabbitMQ:     config.LoadRabbitMQ(),
		Port:         listenAddress(envvar.Resolve(envvar.PORT, defaultPort)),
		Log:          true,
	}

	// blocks until the model is ready, no request is accepted before that
	app, err := application.NewApp(ctx, appConfig)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to create server app")
	}

	go func() {
		<-ctx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Stop(shutdownCtx); err != nil {
			cerr.Log(err)
		}
	}()

	return app.Start()
}

// listenAddress accepts a bare port number as well as host:port
func listenAddress(port string) string {
	if port == "" || strings.Contains(port, ":") {
		return port
	}

	return ":" + port
}
