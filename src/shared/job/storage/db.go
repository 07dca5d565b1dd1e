package jobstorage

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/markers"
	"github.com/guregu/dynamo"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/dynamo"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
)

const (
	JobsTable = "SeparationJobs"
	idKey     = "id"

	updatedAtKey = "updated_at"
	stemURLsKey  = "stem_urls"
	maxAttempts  = 3
)

var _ jobentity.Store = DB{}

type DB struct {
	dynamoDB dynamolib.DynamoDBWrapper
	now      func() time.Time
}

func NewDB(dynamoDB dynamolib.DynamoDBWrapper) DB {
	return DB{
		dynamoDB: dynamoDB,
		now:      time.Now,
	}
}

func (d DB) CreateJob(ctx context.Context, job jobentity.Job) error {
	if job.ID == "" {
		return mark.Message(IDEmptyMark, "Job ID is not defined")
	}

	err := d.dynamoDB.Table(JobsTable).
		Put(job).
		If("attribute_not_exists($)", idKey).
		RunWithContext(ctx)

	if err != nil {
		if isConditionalCheckErr(err) {
			return mark.Wrap(err, JobExistsMark, "A job with this ID already exists")
		}

		return mark.Wrap(err, DefaultErrorMark, "Failed to put the job in the DB")
	}

	return nil
}

func (d DB) GetJob(ctx context.Context, jobID string) (jobentity.Job, error) {
	if jobID == "" {
		return jobentity.Job{}, mark.Message(IDEmptyMark, "No job ID was provided")
	}

	job := jobentity.Job{}
	err := d.dynamoDB.Table(JobsTable).
		Get(idKey, jobID).
		OneWithContext(ctx, &job)

	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return jobentity.Job{}, mark.Wrap(err, JobNotFoundMark, "Job is not found")
		}

		return jobentity.Job{}, mark.Wrap(err, DefaultErrorMark, "Failed to fetch job")
	}

	return job, nil
}

// UpdateJob applies updater and writes the job back only if no one else
// changed it in between, retrying a few times on conflict.
func (d DB) UpdateJob(ctx context.Context, jobID string, updater jobentity.JobUpdater) (jobentity.Job, error) {
	var err error
	for i := 0; i < maxAttempts; i++ {
		var job jobentity.Job
		job, err = d.updateOnce(ctx, jobID, updater)
		if err == nil {
			return job, nil
		}

		if !markers.Is(err, ConflictMark) {
			return jobentity.Job{}, err
		}
	}

	return jobentity.Job{}, errors.Wrap(err, "Gave up updating job after repeated conflicts")
}

func (d DB) updateOnce(ctx context.Context, jobID string, updater jobentity.JobUpdater) (jobentity.Job, error) {
	previous, err := d.GetJob(ctx, jobID)
	if err != nil {
		return jobentity.Job{}, errors.Wrap(err, "Can't find the job")
	}

	updated, err := updater(previous)
	if err != nil {
		return jobentity.Job{}, mark.Wrap(err, DefaultErrorMark, "The updater failed to make changes to the job")
	}

	updated.ID = previous.ID
	updated.CreatedAt = previous.CreatedAt
	updated.UpdatedAt = d.now()

	err = d.dynamoDB.Table(JobsTable).
		Put(updated).
		If("$ = ?", updatedAtKey, previous.UpdatedAt).
		RunWithContext(ctx)

	if err != nil {
		if isConditionalCheckErr(err) {
			return jobentity.Job{}, mark.Wrap(err, ConflictMark, "Job changed during update")
		}

		return jobentity.Job{}, mark.Wrap(err, DefaultErrorMark, "Failed to put the updated job")
	}

	return updated, nil
}

// SetStemURLs records where the stems were mirrored without touching the
// rest of the job
func (d DB) SetStemURLs(ctx context.Context, jobID string, stemURLs map[string]string) error {
	if jobID == "" {
		return mark.Message(IDEmptyMark, "No job ID was provided")
	}

	urls := map[string]any{}
	for stem, url := range stemURLs {
		urls[stem] = url
	}

	err := d.dynamoDB.Table(JobsTable).
		Update(idKey, jobID).
		Set(stemURLsKey, urls).
		If("attribute_exists($)", idKey).
		RunWithContext(ctx)

	if err != nil {
		if isConditionalCheckErr(err) {
			return mark.Wrap(err, JobNotFoundMark, "Job is not found")
		}

		return mark.Wrap(err, DefaultErrorMark, "Failed to set stem URLs on job")
	}

	return nil
}
