package jobmessage

import (
	"context"
	"encoding/json"

	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/rabbitmq"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

const (
	SeparateType  = "separate"
	CompletedType = "separation_completed"
	FailedType    = "separation_failed"
)

type JobIdentifier struct {
	JobID string `json:"job_id"`
}

type SeparateParams struct {
	JobIdentifier
}

type ResultParams struct {
	JobIdentifier
	TaskID           string                     `json:"task_id"`
	VocalPath        string                     `json:"vocal_path,omitempty"`
	InstrumentalPath string                     `json:"instrumental_path,omitempty"`
	StemURLs         map[string]string          `json:"stem_urls,omitempty"`
	ErrorKind        separationentity.ErrorKind `json:"error_kind,omitempty"`
	Message          string                     `json:"message,omitempty"`
}

func Publish(ctx context.Context, publisher rabbitmq.Publisher, messageType string, params any) error {
	errctx := cerr.Field("message_type", messageType)

	body, err := json.Marshal(params)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to marshal message params")
	}

	err = publisher.Publish(ctx, amqp091.Publishing{
		Type: messageType,
		Body: body,
	})
	if err != nil {
		return errctx.Wrap(err).Error("Failed to publish message")
	}

	return nil
}

func UnmarshalSeparateParams(body []byte) (SeparateParams, error) {
	params := SeparateParams{}
	if err := json.Unmarshal(body, &params); err != nil {
		return SeparateParams{}, cerr.Wrap(err).Error("Failed to unmarshal message JSON")
	}

	if params.JobID == "" {
		return SeparateParams{}, cerr.Field("job_params", params).Error("Missing job ID")
	}

	return params, nil
}
