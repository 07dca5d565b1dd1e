package separate

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/message"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cloud_storage"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/storagepath"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/orchestrator"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const JobType = jobmessage.SeparateType
const ErrorMessage = "Failed to process the separation job"

const (
	VocalsStemKey       = "vocals"
	InstrumentalStemKey = "instrumental"
)

// Outcome is what the worker reports once a job is settled
type Outcome struct {
	MessageType string
	Params      jobmessage.ResultParams
}

//counterfeiter:generate . SeparateJobHandler
type SeparateJobHandler interface {
	HandleSeparateJob(ctx context.Context, message []byte) (Outcome, error)
}

type Orchestrator interface {
	HandleWithProgress(ctx context.Context, request separationentity.SeparationRequest, observer orchestrator.StateObserver) (separationentity.SeparationResult, *separationentity.Error)
}

// StemMirror is optional, without it stems only live on local disk
type StemMirror struct {
	FileStore     filestore.FileStore
	PathGenerator storagepath.Generator
}

func NewJobHandler(jobStore jobentity.Store, orchestrator Orchestrator, mirror *StemMirror) JobHandler {
	return JobHandler{
		jobStore:     jobStore,
		orchestrator: orchestrator,
		mirror:       mirror,
	}
}

type JobHandler struct {
	jobStore     jobentity.Store
	orchestrator Orchestrator
	mirror       *StemMirror
}

// HandleSeparateJob only returns an error when the job could not be
// settled at all. A failed separation is a normal outcome.
func (h JobHandler) HandleSeparateJob(ctx context.Context, message []byte) (Outcome, error) {
	params, err := jobmessage.UnmarshalSeparateParams(message)
	if err != nil {
		return Outcome{}, cerr.Wrap(err).Error("Failed to unmarshal message JSON")
	}

	errctx := cerr.Field("job_id", params.JobID)
	logger := log.WithField("job_id", params.JobID)

	job, err := h.jobStore.UpdateJob(ctx, params.JobID, func(job jobentity.Job) (jobentity.Job, error) {
		if job.Status != jobentity.QueuedStatus {
			return jobentity.Job{}, errctx.Field("status", job.Status).
				Error("Job is not in queued status, abort processing to be safe")
		}

		job.Status = jobentity.RunningStatus
		return job, nil
	})
	if err != nil {
		return Outcome{}, errctx.Wrap(err).Error("Failed to mark job as running")
	}

	logger.WithField("task_id", job.TaskID).Info("Processing separation job")

	result, sepErr := h.orchestrator.HandleWithProgress(ctx, job.Request(), h.stateRecorder(ctx, job.ID))
	if sepErr != nil {
		return h.settleFailure(ctx, job, sepErr)
	}

	stemURLs, err := h.mirrorStems(ctx, job.ID, result)
	if err != nil {
		cerr.Log(errctx.Wrap(err).Error("Failed to mirror stems"))
		return h.settleFailure(ctx, job, &separationentity.Error{
			Kind:    separationentity.InternalError,
			Message: "Failed to upload the separated stems",
			Cause:   err,
		})
	}

	job, err = h.jobStore.UpdateJob(ctx, job.ID, func(job jobentity.Job) (jobentity.Job, error) {
		job.Complete(result)
		return job, nil
	})
	if err != nil {
		return Outcome{}, errctx.Wrap(err).Error("Failed to mark job as completed")
	}

	logger.Info("Separation job completed")

	return Outcome{
		MessageType: jobmessage.CompletedType,
		Params: jobmessage.ResultParams{
			JobIdentifier:    jobmessage.JobIdentifier{JobID: job.ID},
			TaskID:           job.TaskID,
			VocalPath:        result.VocalPath,
			InstrumentalPath: result.InstrumentalPath,
			StemURLs:         stemURLs,
		},
	}, nil
}

func (h JobHandler) settleFailure(ctx context.Context, job jobentity.Job, sepErr *separationentity.Error) (Outcome, error) {
	_, err := h.jobStore.UpdateJob(ctx, job.ID, func(job jobentity.Job) (jobentity.Job, error) {
		job.Fail(sepErr)
		return job, nil
	})
	if err != nil {
		return Outcome{}, cerr.Field("job_id", job.ID).Wrap(err).Error("Failed to mark job as failed")
	}

	return Outcome{
		MessageType: jobmessage.FailedType,
		Params: jobmessage.ResultParams{
			JobIdentifier: jobmessage.JobIdentifier{JobID: job.ID},
			TaskID:        job.TaskID,
			ErrorKind:     sepErr.Kind,
			Message:       sepErr.Message,
		},
	}, nil
}

// stateRecorder writes each state onto the job. Losing one of these
// updates is not worth failing a separation over.
func (h JobHandler) stateRecorder(ctx context.Context, jobID string) orchestrator.StateObserver {
	return func(state orchestrator.State) {
		_, err := h.jobStore.UpdateJob(ctx, jobID, func(job jobentity.Job) (jobentity.Job, error) {
			job.State = string(state)
			return job, nil
		})

		if err != nil {
			cerr.Log(cerr.Fields(cerr.F{
				"job_id": jobID,
				"state":  state,
			}).Wrap(err).Error("Failed to record job state"))
		}
	}
}

func (h JobHandler) mirrorStems(ctx context.Context, jobID string, result separationentity.SeparationResult) (map[string]string, error) {
	if h.mirror == nil {
		return nil, nil
	}

	uploadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Minute)
	defer cancel()

	stemURLs := map[string]string{}
	for stem, localPath := range map[string]string{
		VocalsStemKey:       result.VocalPath,
		InstrumentalStemKey: result.InstrumentalPath,
	} {
		fileURL := h.mirror.PathGenerator.GeneratePath(jobID, localPath)
		if err := h.mirror.FileStore.UploadFile(uploadCtx, fileURL, localPath); err != nil {
			return nil, cerr.Field("stem", stem).Wrap(err).Error("Failed to upload stem")
		}

		stemURLs[stem] = fileURL
	}

	if err := h.jobStore.SetStemURLs(ctx, jobID, stemURLs); err != nil {
		return nil, cerr.Wrap(err).Error("Failed to record stem URLs")
	}

	return stemURLs, nil
}
