package gateway

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/veedubyou/chord-paper-uvr/src/server/api_error"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/errors/api"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/separation/errors"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
)

var httpStatusCodeMap = map[api.ErrorCode]int{
	api.DefaultErrorCode:                      http.StatusInternalServerError,
	separationerrors.InvalidRequestCode:       http.StatusBadRequest,
	separationerrors.BadRequestDataCode:       http.StatusBadRequest,
	separationerrors.NoDownloadableStreamCode: http.StatusUnprocessableEntity,
	separationerrors.ExtractionFailedCode:     http.StatusInternalServerError,
	separationerrors.SeparationFailedCode:     http.StatusInternalServerError,
	separationerrors.JobNotFoundCode:          http.StatusNotFound,
	separationerrors.JobsUnavailableCode:      http.StatusServiceUnavailable,
}

func StatusCode(code api.ErrorCode) (int, bool) {
	statusCode, ok := httpStatusCodeMap[code]
	return statusCode, ok
}

func ErrorResponse(c echo.Context, err *api.Error) error {
	statusCode, ok := StatusCode(err.ErrorCode)
	if !ok {
		msg := fmt.Sprintf("Error code %s has no HTTP status code mapping", err.ErrorCode)
		panic(msg)
	}

	if statusCode >= http.StatusInternalServerError {
		cerr.Log(cerr.Fields(cerr.F{
			"error_code": err.ErrorCode,
			"path":       c.Path(),
		}).Wrap(err.InternalError).Error("Request failed"))
	}

	return c.JSON(statusCode, api_error.JSONAPIError{
		Code:    string(err.ErrorCode),
		Message: err.UserMessage,
	})
}
