package dummy

import (
	"context"
	"sync"
	"time"

	"github.com/veedubyou/chord-paper-uvr/src/shared/job/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/storage"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
)

var _ jobentity.Store = &JobStore{}

func NewDummyJobStore() *JobStore {
	return &JobStore{
		Unavailable: false,
		State:       make(map[string]jobentity.Job),
	}
}

// JobStore keeps jobs in memory and records every status it was written
// with, in order.
type JobStore struct {
	Unavailable bool
	State       map[string]jobentity.Job
	History     map[string][]jobentity.Job
	mutex       sync.RWMutex
}

func (j *JobStore) CreateJob(ctx context.Context, job jobentity.Job) error {
	if j.Unavailable {
		return NetworkFailure
	}

	j.mutex.Lock()
	defer j.mutex.Unlock()

	if _, exists := j.State[job.ID]; exists {
		return mark.Message(jobstorage.JobExistsMark, "Job already exists")
	}

	j.set(job)
	return nil
}

func (j *JobStore) GetJob(ctx context.Context, jobID string) (jobentity.Job, error) {
	if j.Unavailable {
		return jobentity.Job{}, NetworkFailure
	}

	j.mutex.RLock()
	defer j.mutex.RUnlock()

	job, ok := j.State[jobID]
	if !ok {
		return jobentity.Job{}, mark.Message(jobstorage.JobNotFoundMark, "Job is not found")
	}

	return job, nil
}

func (j *JobStore) UpdateJob(ctx context.Context, jobID string, updater jobentity.JobUpdater) (jobentity.Job, error) {
	if j.Unavailable {
		return jobentity.Job{}, NetworkFailure
	}

	j.mutex.Lock()
	defer j.mutex.Unlock()

	job, ok := j.State[jobID]
	if !ok {
		return jobentity.Job{}, mark.Message(jobstorage.JobNotFoundMark, "Job is not found")
	}

	updated, err := updater(job)
	if err != nil {
		return jobentity.Job{}, cerr.Wrap(err).Error("Job update function failed")
	}

	updated.UpdatedAt = time.Now()
	j.set(updated)
	return updated, nil
}

func (j *JobStore) SetStemURLs(ctx context.Context, jobID string, stemURLs map[string]string) error {
	_, err := j.UpdateJob(ctx, jobID, func(job jobentity.Job) (jobentity.Job, error) {
		job.StemURLs = stemURLs
		return job, nil
	})

	return err
}

func (j *JobStore) StatusHistory(jobID string) []jobentity.Status {
	j.mutex.RLock()
	defer j.mutex.RUnlock()

	statuses := []jobentity.Status{}
	for _, job := range j.History[jobID] {
		statuses = append(statuses, job.Status)
	}

	return statuses
}

func (j *JobStore) set(job jobentity.Job) {
	if j.History == nil {
		j.History = make(map[string][]jobentity.Job)
	}

	j.State[job.ID] = job
	j.History[job.ID] = append(j.History[job.ID], job)
}
