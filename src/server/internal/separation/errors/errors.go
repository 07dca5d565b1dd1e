package separationerrors

import (
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/errors/api"
)

const (
	InvalidRequestCode       = api.ErrorCode("invalid_request")
	BadRequestDataCode       = api.ErrorCode("bad_request_data")
	NoDownloadableStreamCode = api.ErrorCode("no_downloadable_stream")
	ExtractionFailedCode     = api.ErrorCode("extraction_failed")
	SeparationFailedCode     = api.ErrorCode("separation_failed")
	JobNotFoundCode          = api.ErrorCode("job_not_found")
	JobsUnavailableCode      = api.ErrorCode("jobs_unavailable")
)
