package separationusecase

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/markers"
	"github.com/google/uuid"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/errors/api"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/separation/errors"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/message"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/storage"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/rabbitmq"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

var errorCodes = map[separationentity.ErrorKind]api.ErrorCode{
	separationentity.InvalidRequestError:       separationerrors.InvalidRequestCode,
	separationentity.NoDownloadableStreamError: separationerrors.NoDownloadableStreamCode,
	separationentity.ExtractionError:           separationerrors.ExtractionFailedCode,
	separationentity.SeparationError:           separationerrors.SeparationFailedCode,
	separationentity.InternalError:             api.DefaultErrorCode,
}

func ErrorCodeFor(kind separationentity.ErrorKind) api.ErrorCode {
	code, ok := errorCodes[kind]
	if !ok {
		return api.DefaultErrorCode
	}

	return code
}

type Orchestrator interface {
	Handle(ctx context.Context, request separationentity.SeparationRequest) (separationentity.SeparationResult, *separationentity.Error)
}

// NewUsecase takes a nil jobStore or publisher when asynchronous jobs are
// not configured
func NewUsecase(orchestrator Orchestrator, jobStore jobentity.Store, publisher rabbitmq.Publisher) Usecase {
	return Usecase{
		orchestrator: orchestrator,
		jobStore:     jobStore,
		publisher:    publisher,
		newID:        uuid.NewString,
		now:          time.Now,
	}
}

type Usecase struct {
	orchestrator Orchestrator
	jobStore     jobentity.Store
	publisher    rabbitmq.Publisher
	newID        func() string
	now          func() time.Time
}

func (u Usecase) Separate(ctx context.Context, request separationentity.SeparationRequest) (separationentity.SeparationResult, *api.Error) {
	result, sepErr := u.orchestrator.Handle(ctx, request)
	if sepErr != nil {
		return separationentity.SeparationResult{}, api.CommitError(sepErr, ErrorCodeFor(sepErr.Kind), sepErr.Message)
	}

	return result, nil
}

func (u Usecase) JobsEnabled() bool {
	return u.jobStore != nil && u.publisher != nil
}

func (u Usecase) EnqueueJob(ctx context.Context, request separationentity.SeparationRequest) (jobentity.Job, *api.Error) {
	if !u.JobsEnabled() {
		return jobentity.Job{}, jobsUnavailable()
	}

	if err := request.Validate(); err != nil {
		sepErr := separationentity.NewError(err)
		return jobentity.Job{}, api.CommitError(err, ErrorCodeFor(sepErr.Kind), sepErr.Message)
	}

	job := jobentity.NewJob(u.newID(), request, u.now())

	err := u.jobStore.CreateJob(ctx, job)
	if err != nil {
		err = errors.Wrap(err, "Failed to create job")
		return jobentity.Job{}, api.CommitError(err,
			api.DefaultErrorCode,
			"Unknown error: Failed to create the separation job")
	}

	err = jobmessage.Publish(ctx, u.publisher, jobmessage.SeparateType, jobmessage.SeparateParams{
		JobIdentifier: jobmessage.JobIdentifier{JobID: job.ID},
	})
	if err != nil {
		err = errors.Wrap(err, "Failed to publish separate job")
		u.markJobFailed(job.ID, err)
		return jobentity.Job{}, api.CommitError(err,
			api.DefaultErrorCode,
			"Unknown error: Failed to queue the separation job")
	}

	log.WithFields(log.Fields{
		"job_id":  job.ID,
		"task_id": job.TaskID,
	}).Info("Queued separation job")

	return job, nil
}

func (u Usecase) GetJob(ctx context.Context, jobID string) (jobentity.Job, *api.Error) {
	if u.jobStore == nil {
		return jobentity.Job{}, jobsUnavailable()
	}

	job, err := u.jobStore.GetJob(ctx, jobID)
	if err != nil {
		err = errors.Wrap(err, "Failed to get job from DB")
		switch {
		case markers.Is(err, jobstorage.JobNotFoundMark), markers.Is(err, jobstorage.IDEmptyMark):
			return jobentity.Job{}, api.CommitError(err,
				separationerrors.JobNotFoundCode,
				"The separation job could not be found")

		default:
			return jobentity.Job{}, api.CommitError(err,
				api.DefaultErrorCode,
				"Unknown error: Failed to fetch the separation job")
		}
	}

	return job, nil
}

func (u Usecase) markJobFailed(jobID string, cause error) {
	_, err := u.jobStore.UpdateJob(context.Background(), jobID, func(job jobentity.Job) (jobentity.Job, error) {
		job.Fail(&separationentity.Error{
			Kind:    separationentity.InternalError,
			Message: "The job could not be queued",
			Cause:   cause,
		})
		return job, nil
	})

	if err != nil {
		log.WithField("job_id", jobID).
			WithError(err).
			Error("Failed to mark unqueued job as failed")
	}
}

func jobsUnavailable() *api.Error {
	return api.CommitError(errors.New("Job queue or job store is not configured"),
		separationerrors.JobsUnavailableCode,
		"Asynchronous separation jobs are not enabled on this server")
}
