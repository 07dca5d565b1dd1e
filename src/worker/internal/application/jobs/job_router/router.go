package job_router

import (
	"context"

	"github.com/apex/log"
	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/message"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/rabbitmq"
	"github.com/veedubyou/chord-paper-uvr/src/worker/internal/application/jobs/separate"
)

// NewJobRouter takes a nil resultPublisher when no results queue is
// configured
func NewJobRouter(separateHandler separate.SeparateJobHandler, resultPublisher rabbitmq.Publisher) JobRouter {
	return JobRouter{
		separateHandler: separateHandler,
		resultPublisher: resultPublisher,
	}
}

type JobRouter struct {
	separateHandler separate.SeparateJobHandler
	resultPublisher rabbitmq.Publisher
}

func (j JobRouter) HandleMessage(ctx context.Context, message amqp091.Delivery) error {
	errctx := cerr.Field("message_type", message.Type).Field("message_id", message.MessageId)

	switch message.Type {
	case separate.JobType:
		outcome, err := j.separateHandler.HandleSeparateJob(ctx, message.Body)
		if err != nil {
			return errctx.Wrap(err).Error(separate.ErrorMessage)
		}

		return j.publishOutcome(ctx, outcome)

	default:
		return errctx.Error("Unrecognized message type")
	}
}

func (j JobRouter) publishOutcome(ctx context.Context, outcome separate.Outcome) error {
	if j.resultPublisher == nil {
		return nil
	}

	err := jobmessage.Publish(ctx, j.resultPublisher, outcome.MessageType, outcome.Params)
	if err != nil {
		// the job record already holds the outcome, don't redeliver the job
		cerr.Log(cerr.Field("job_id", outcome.Params.JobID).Wrap(err).Error("Failed to publish job outcome"))
		return nil
	}

	log.WithFields(log.Fields{
		"job_id":       outcome.Params.JobID,
		"message_type": outcome.MessageType,
	}).Info("Published job outcome")

	return nil
}
