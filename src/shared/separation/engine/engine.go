package engine

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Engine is the raw separation capability. It is not assumed to be
// reentrant; callers go through a Handle.
//
//counterfeiter:generate . Engine
type Engine interface {
	// Init loads the model, blocking until it is ready
	Init(ctx context.Context) error
	// Separate writes the stems for audioPath into outputDir and reports
	// every file it produced, in no particular order
	Separate(ctx context.Context, audioPath string, outputDir string) ([]string, error)
}
