package pipeline

import (
	"context"
	"net/http"

	"github.com/veedubyou/chord-paper-uvr/src/shared/config"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/executor"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/engine"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/input"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/input/download"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/orchestrator"
)

// NewEngineHandle loads the model and blocks until it is ready
func NewEngineHandle(ctx context.Context, separationConfig config.Separation, commandExecutor executor.Executor) (*engine.Handle, error) {
	audioSeparator := engine.NewAudioSeparator(
		separationConfig.AudioSeparatorBinPath,
		separationConfig.Model,
		separationConfig.AudioExt,
		commandExecutor,
	)

	return engine.NewHandle(ctx, engine.HandleConfig{
		Model:    separationConfig.Model,
		LockPath: separationConfig.EngineLockPath,
	}, audioSeparator)
}

func NewInputResolver(separationConfig config.Separation, commandExecutor executor.Executor) (input.Resolver, error) {
	downloader := download.NewSelectDLer(
		separationConfig.VideoExt,
		download.NewYoutubeDLer(separationConfig.YoutubeDLBinPath, separationConfig.VideoExt, commandExecutor),
		download.NewGenericDLer(http.DefaultClient),
	)

	extractor := input.NewFFmpegExtractor(separationConfig.FFmpegBinPath, separationConfig.FFprobeBinPath, commandExecutor)

	return input.NewResolver(input.Config{
		DownloadPath: separationConfig.DownloadPath,
		VideoExt:     separationConfig.VideoExt,
		AudioExt:     separationConfig.AudioExt,
	}, downloader, extractor)
}

func NewOrchestrator(separationConfig config.Separation, inputResolver orchestrator.InputResolver, separator orchestrator.Separator) orchestrator.Orchestrator {
	return orchestrator.New(orchestrator.Config{
		ProcessedPath: separationConfig.ProcessedPath,
		AudioExt:      separationConfig.AudioExt,
	}, inputResolver, separator)
}

// New assembles the whole request path. Engine initialization happens
// here, so a failure must stop the process.
func New(ctx context.Context, separationConfig config.Separation, commandExecutor executor.Executor) (orchestrator.Orchestrator, error) {
	handle, err := NewEngineHandle(ctx, separationConfig, commandExecutor)
	if err != nil {
		return orchestrator.Orchestrator{}, cerr.Wrap(err).Error("Failed to create engine handle")
	}

	inputResolver, err := NewInputResolver(separationConfig, commandExecutor)
	if err != nil {
		return orchestrator.Orchestrator{}, cerr.Wrap(err).Error("Failed to create input resolver")
	}

	return NewOrchestrator(separationConfig, inputResolver, handle), nil
}
