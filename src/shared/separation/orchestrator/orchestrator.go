package orchestrator

import (
	"context"
	"path/filepath"

	"github.com/apex/log"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/output"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . InputResolver
type InputResolver interface {
	Resolve(ctx context.Context, ref *separationentity.InputReference, taskID string) (separationentity.ResolvedAudio, error)
}

//counterfeiter:generate . Separator
type Separator interface {
	Separate(ctx context.Context, audioPath string, outputDir string) ([]string, error)
	ModelName() string
}

type State string

const (
	Received        State = "received"
	Validating      State = "validating"
	ResolvingInput  State = "resolving_input"
	Separating      State = "separating"
	ResolvingOutput State = "resolving_output"
	Completed       State = "completed"
	Failed          State = "failed"
)

// StateObserver is told about every transition, Failed included
type StateObserver func(state State)

type Config struct {
	// ProcessedPath is the output directory when a request names none
	ProcessedPath string
	AudioExt      string
}

func New(config Config, inputResolver InputResolver, separator Separator) Orchestrator {
	return Orchestrator{
		processedPath:  config.ProcessedPath,
		inputResolver:  inputResolver,
		separator:      separator,
		outputResolver: output.NewResolver(config.AudioExt),
	}
}

type Orchestrator struct {
	processedPath  string
	inputResolver  InputResolver
	separator      Separator
	outputResolver output.Resolver
}

func (o Orchestrator) Handle(ctx context.Context, request separationentity.SeparationRequest) (separationentity.SeparationResult, *separationentity.Error) {
	return o.HandleWithProgress(ctx, request, nil)
}

// HandleWithProgress drives one request to Completed or Failed. Any error
// returned has already been classified and logged.
func (o Orchestrator) HandleWithProgress(ctx context.Context, request separationentity.SeparationRequest, observer StateObserver) (separationentity.SeparationResult, *separationentity.Error) {
	run := requestRun{
		orchestrator: o,
		request:      request,
		observer:     observer,
		logger:       log.WithField("task_id", request.TaskID),
	}

	result, err := run.execute(ctx)
	if err != nil {
		run.transition(Failed)

		classified := separationentity.NewError(err)
		cerr.Log(cerr.Fields(cerr.F{
			"task_id":     request.TaskID,
			"error_kind":  classified.Kind,
			"failed_from": run.state,
		}).Wrap(err).Error("Separation request failed"))

		return separationentity.SeparationResult{}, classified
	}

	run.transition(Completed)
	return result, nil
}

type requestRun struct {
	orchestrator Orchestrator
	request      separationentity.SeparationRequest
	observer     StateObserver
	logger       *log.Entry
	state        State
}

func (r *requestRun) transition(state State) {
	// keep the last working state so failures report where they happened
	if state != Failed {
		r.state = state
	}

	r.logger.WithField("state", state).Debug("Separation state changed")
	if r.observer != nil {
		r.observer(state)
	}
}

func (r *requestRun) execute(ctx context.Context) (separationentity.SeparationResult, error) {
	o := r.orchestrator
	r.transition(Received)

	r.transition(Validating)
	if err := r.request.Validate(); err != nil {
		return separationentity.SeparationResult{}, err
	}

	r.transition(ResolvingInput)
	resolved, err := o.inputResolver.Resolve(ctx, r.request.InputReference, r.request.TaskID)
	if err != nil {
		return separationentity.SeparationResult{}, cerr.Wrap(err).Error("Failed to resolve input audio")
	}

	r.logger.WithFields(log.Fields{
		"audio_path":  resolved.Path,
		"source_kind": resolved.SourceKind,
	}).Info("Resolved input audio")

	outputDir := r.request.OutputBasePath
	if outputDir == "" {
		outputDir = o.processedPath
	}

	r.transition(Separating)
	reported, err := o.separator.Separate(ctx, resolved.Path, outputDir)
	if err != nil {
		return separationentity.SeparationResult{}, err
	}

	r.transition(ResolvingOutput)
	basePath := o.outputResolver.BasePath(outputDir, resolved.Path)
	result := o.outputResolver.Resolve(basePath, o.separator.ModelName())
	if err := result.Validate(); err != nil {
		return separationentity.SeparationResult{}, err
	}

	if err := confirmReported(result, reported); err != nil {
		return separationentity.SeparationResult{}, err
	}

	return result, nil
}

// confirmReported checks the derived stem paths against what the engine
// says it wrote. Its ordering is never trusted.
func confirmReported(result separationentity.SeparationResult, reported []string) error {
	seen := map[string]bool{}
	for _, path := range reported {
		seen[filepath.Clean(path)] = true
	}

	for _, expected := range []string{result.VocalPath, result.InstrumentalPath} {
		if !seen[filepath.Clean(expected)] {
			return cerr.Fields(cerr.F{
				"expected": expected,
				"reported": reported,
			}).Wrap(mark.Message(separationentity.SeparationMark, "Engine did not report an expected stem")).
				Error("Stem paths do not match engine output")
		}
	}

	return nil
}
