package separationentity

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/markers"
)

// Marks are attached by the components with mark.Wrap and read back by
// Classify. Anything unmarked is an InternalError.
var (
	InvalidRequestMark       = errors.New("invalid separation request")
	NoDownloadableStreamMark = errors.New("no downloadable stream")
	ExtractionMark           = errors.New("audio extraction failed")
	SeparationMark           = errors.New("separation failed")
)

type ErrorKind string

const (
	InvalidRequestError       ErrorKind = "invalid_request"
	NoDownloadableStreamError ErrorKind = "no_downloadable_stream"
	ExtractionError           ErrorKind = "extraction_failed"
	SeparationError           ErrorKind = "separation_failed"
	InternalError             ErrorKind = "internal_error"
)

var defaultMessages = map[ErrorKind]string{
	InvalidRequestError:       "The separation request is malformed",
	NoDownloadableStreamError: "The remote video has no downloadable stream in the required format",
	ExtractionError:           "Failed to extract an audio track from the video",
	SeparationError:           "The separation engine failed to produce the vocal and instrumental stems",
	InternalError:             "Something unexpected happened while processing the request",
}

func (k ErrorKind) DefaultMessage() string {
	msg, ok := defaultMessages[k]
	if !ok {
		return defaultMessages[InternalError]
	}

	return msg
}

func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case markers.Is(err, InvalidRequestMark):
		return InvalidRequestError
	case markers.Is(err, NoDownloadableStreamMark):
		return NoDownloadableStreamError
	case markers.Is(err, ExtractionMark):
		return ExtractionError
	case markers.Is(err, SeparationMark):
		return SeparationError
	default:
		return InternalError
	}
}

var _ error = &Error{}

// Error is the only failure shape that leaves the orchestrator. Message is
// safe to show to a caller; Cause is for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func NewError(err error) *Error {
	kind := Classify(err)

	message := kind.DefaultMessage()
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		message = hints[0]
	}

	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}
