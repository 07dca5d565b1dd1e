package jobentity

import (
	"time"

	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

type Status string

const (
	QueuedStatus    Status = "queued"
	RunningStatus   Status = "running"
	CompletedStatus Status = "completed"
	FailedStatus    Status = "failed"
)

// Job is the persisted record of one asynchronous separation. The request
// is stored flat so the table stays queryable.
type Job struct {
	ID             string                     `dynamo:"id,hash" json:"id"`
	TaskID         string                     `dynamo:"task_id" json:"task_id"`
	InputKind      separationentity.InputKind `dynamo:"input_kind" json:"input_kind"`
	InputValue     string                     `dynamo:"input_value" json:"input_value"`
	OutputBasePath string                     `dynamo:"output_base_path" json:"output_base_path,omitempty"`

	Status Status `dynamo:"status" json:"status"`
	// State is the last orchestrator state the job reached
	State string `dynamo:"state" json:"state,omitempty"`

	VocalPath        string            `dynamo:"vocal_path" json:"vocal_path,omitempty"`
	InstrumentalPath string            `dynamo:"instrumental_path" json:"instrumental_path,omitempty"`
	StemURLs         map[string]string `dynamo:"stem_urls,omitempty" json:"stem_urls,omitempty"`

	ErrorKind    separationentity.ErrorKind `dynamo:"error_kind" json:"error_kind,omitempty"`
	ErrorMessage string                     `dynamo:"error_message" json:"error_message,omitempty"`

	CreatedAt time.Time `dynamo:"created_at" json:"created_at"`
	UpdatedAt time.Time `dynamo:"updated_at" json:"updated_at"`
}

func NewJob(id string, request separationentity.SeparationRequest, now time.Time) Job {
	job := Job{
		ID:             id,
		TaskID:         request.TaskID,
		OutputBasePath: request.OutputBasePath,
		Status:         QueuedStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if request.InputReference != nil {
		job.InputKind = request.InputReference.Kind
		job.InputValue = request.InputReference.Value
	}

	return job
}

func (j Job) Request() separationentity.SeparationRequest {
	request := separationentity.SeparationRequest{
		TaskID:         j.TaskID,
		OutputBasePath: j.OutputBasePath,
	}

	if j.InputValue != "" {
		request.InputReference = &separationentity.InputReference{
			Kind:  j.InputKind,
			Value: j.InputValue,
		}
	}

	return request
}

func (j *Job) Complete(result separationentity.SeparationResult) {
	j.Status = CompletedStatus
	j.VocalPath = result.VocalPath
	j.InstrumentalPath = result.InstrumentalPath
	j.ErrorKind = ""
	j.ErrorMessage = ""
}

func (j *Job) Fail(err *separationentity.Error) {
	j.Status = FailedStatus
	j.ErrorKind = err.Kind
	j.ErrorMessage = err.Message
}
