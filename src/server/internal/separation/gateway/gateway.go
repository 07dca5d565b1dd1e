package separationgateway

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/errors/api"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/errors/gateway"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/lib/request"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/separation/errors"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/separation/usecase"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

// RequestBody is the wire form of a separation request. input_path is the
// older local-only field and is used when input_reference is absent.
type RequestBody struct {
	TaskID         string                           `json:"task_id"`
	InputReference *separationentity.InputReference `json:"input_reference"`
	InputPath      string                           `json:"input_path"`
	OutputBasePath string                           `json:"output_base_path"`
}

func (r RequestBody) SeparationRequest() separationentity.SeparationRequest {
	inputReference := r.InputReference
	if inputReference == nil && r.InputPath != "" {
		inputReference = separationentity.NewLocalPath(r.InputPath)
	}

	return separationentity.SeparationRequest{
		TaskID:         r.TaskID,
		InputReference: inputReference,
		OutputBasePath: r.OutputBasePath,
	}
}

type Gateway struct {
	usecase separationusecase.Usecase
}

func NewGateway(usecase separationusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) Separate(c echo.Context) error {
	ctx := request.Context(c)

	separationRequest, apiErr := bindRequest(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	result, apiErr := g.usecase.Separate(ctx, separationRequest)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusCreated, result)
}

func (g Gateway) EnqueueJob(c echo.Context) error {
	ctx := request.Context(c)

	separationRequest, apiErr := bindRequest(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	job, apiErr := g.usecase.EnqueueJob(ctx, separationRequest)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusAccepted, job)
}

func (g Gateway) GetJob(c echo.Context, jobID string) error {
	ctx := request.Context(c)

	job, apiErr := g.usecase.GetJob(ctx, jobID)
	if apiErr != nil {
		apiErr = api.WrapError(apiErr, "Failed to get job")
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusOK, job)
}

func bindRequest(c echo.Context) (separationentity.SeparationRequest, *api.Error) {
	body := RequestBody{}
	err := c.Bind(&body)
	if err != nil {
		err = errors.Wrap(err, "Failed to bind request body to separation request")
		return separationentity.SeparationRequest{}, api.CommitError(err,
			separationerrors.BadRequestDataCode,
			"The request body is not a valid separation request")
	}

	return body.SeparationRequest(), nil
}
