package application

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/separation/gateway"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/separation/usecase"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/storage"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/dynamo"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/executor"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/rabbitmq"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/pipeline"
)

type HTTPMethod string

const (
	GET  HTTPMethod = "GET"
	POST HTTPMethod = "POST"
)

type App struct {
	echo      *echo.Echo
	port      string
	publisher *rabbitmq.QueuePublisher
}

type Config struct {
	Separation config.Separation
	// DynamoConfig and RabbitMQ are both needed for the job endpoints
	DynamoConfig config.Dynamo
	RabbitMQ     *config.RabbitMQ
	Port         string
	Log          bool
}

// Dependencies lets callers swap the separation path and the job
// backends. Anything left nil is built from Config.
type Dependencies struct {
	Orchestrator separationusecase.Orchestrator
	JobStore     jobentity.Store
	Publisher    rabbitmq.Publisher
}

// NewApp does not return until the separation model is loaded
func NewApp(ctx context.Context, appConfig Config) (*App, error) {
	app := &App{port: appConfig.Port}
	deps := Dependencies{}

	orchestrator, err := pipeline.New(ctx, appConfig.Separation, executor.BinaryFileExecutor{})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build separation pipeline")
	}
	deps.Orchestrator = orchestrator

	if appConfig.DynamoConfig != nil && appConfig.RabbitMQ != nil {
		dynamoDB, err := dynamolib.NewFromConfig(appConfig.DynamoConfig)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to create DynamoDB client")
		}
		deps.JobStore = jobstorage.NewDB(dynamoDB)

		app.publisher, err = rabbitmq.NewQueuePublisher(appConfig.RabbitMQ.URL, appConfig.RabbitMQ.QueueName)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to create rabbitMQ publisher")
		}
		deps.Publisher = app.publisher
	}

	app.echo = NewEcho(appConfig, deps)
	return app, nil
}

func NewEcho(appConfig Config, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	if appConfig.Log {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())

	handleRoute := func(method HTTPMethod, path string, handlerFunc echo.HandlerFunc) {
		switch method {
		case GET:
			e.GET(path, handlerFunc)
		case POST:
			e.POST(path, handlerFunc)
		default:
			panic("unhandled http method!")
		}
	}

	usecase := separationusecase.NewUsecase(deps.Orchestrator, deps.JobStore, deps.Publisher)
	separationGateway := separationgateway.NewGateway(usecase)

	// health check
	handleRoute(GET, "/health-check", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	handleRoute(POST, "/api/v1/uvr/infer", separationGateway.Separate)

	handleRoute(POST, "/api/v1/uvr/jobs", separationGateway.EnqueueJob)
	handleRoute(GET, "/api/v1/uvr/jobs/:id", func(c echo.Context) error {
		jobID := c.Param("id")
		return separationGateway.GetJob(c, jobID)
	})

	return e
}

func (a *App) Start() error {
	err := a.echo.Start(a.port)
	if err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "Couldn't start echo server")
	}

	return nil
}

func (a *App) Stop(ctx context.Context) error {
	if a.publisher != nil {
		defer a.publisher.Close()
	}

	err := a.echo.Shutdown(ctx)
	if err != nil {
		return errors.Wrap(err, "Failed to stop echo server")
	}

	return nil
}
