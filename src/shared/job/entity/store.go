package jobentity

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type JobUpdater func(job Job) (Job, error)

//counterfeiter:generate . Store
type Store interface {
	CreateJob(ctx context.Context, job Job) error
	GetJob(ctx context.Context, jobID string) (Job, error)
	UpdateJob(ctx context.Context, jobID string, updater JobUpdater) (Job, error)
	SetStemURLs(ctx context.Context, jobID string, stemURLs map[string]string) error
}
