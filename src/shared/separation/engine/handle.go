package engine

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/gofrs/flock"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

const expectedOutputCount = 2

type HandleConfig struct {
	Model separationentity.ModelConfig
	// LockPath extends single-flight across processes, e.g. the server and
	// a worker on the same machine sharing one GPU
	LockPath string
}

// Handle owns the one engine instance of the process and lets at most one
// separation run at a time. Waiting callers block; nothing is dropped.
type Handle struct {
	engine   Engine
	model    separationentity.ModelConfig
	mu       sync.Mutex
	fileLock *flock.Flock
}

// NewHandle initializes the engine before returning. An error here means
// the process should not start.
func NewHandle(ctx context.Context, config HandleConfig, engine Engine) (*Handle, error) {
	if err := config.Model.Validate(); err != nil {
		return nil, cerr.Wrap(err).Error("Invalid model configuration")
	}

	handle := &Handle{
		engine: engine,
		model:  config.Model,
	}

	if config.LockPath != "" {
		if err := os.MkdirAll(filepath.Dir(config.LockPath), os.ModePerm); err != nil {
			return nil, cerr.Field("lock_path", config.LockPath).
				Wrap(err).Error("Failed to create engine lock directory")
		}
		handle.fileLock = flock.New(config.LockPath)
	}

	if err := engine.Init(ctx); err != nil {
		return nil, cerr.Field("model", config.Model.ModelIdentifier).
			Wrap(err).Error("Failed to initialize separation engine")
	}

	return handle, nil
}

func (h *Handle) ModelName() string {
	return h.model.ModelName()
}

func (h *Handle) Model() separationentity.ModelConfig {
	return h.model
}

// Separate runs the engine once and guarantees exactly two outputs. Every
// failure is marked as a separation failure.
//
// Cancelling ctx does not abort a run that has started; its result is
// simply returned to nobody.
func (h *Handle) Separate(ctx context.Context, audioPath string, outputDir string) ([]string, error) {
	errctx := cerr.Field("audio_path", audioPath)

	if _, err := os.Stat(audioPath); err != nil {
		err = errors.WithHint(mark.Wrap(err, separationentity.SeparationMark, "Input audio is not readable"),
			"The audio file to separate does not exist")
		return nil, errctx.Wrap(err).Error("Cannot separate audio")
	}

	unlock, err := h.acquire()
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to acquire engine")
	}
	defer unlock()

	log.WithField("audio_path", audioPath).Info("Running separation")
	outputs, err := h.engine.Separate(context.WithoutCancel(ctx), audioPath, outputDir)
	if err != nil {
		return nil, errctx.Wrap(mark.Wrap(err, separationentity.SeparationMark, "Engine failed")).
			Error("Separation failed")
	}

	if len(outputs) != expectedOutputCount {
		err := mark.Message(separationentity.SeparationMark, "Unexpected number of outputs")
		return nil, errctx.Fields(cerr.F{
			"output_count": len(outputs),
			"outputs":      outputs,
		}).Wrap(err).Error("Separation failed")
	}

	return outputs, nil
}

func (h *Handle) acquire() (func(), error) {
	h.mu.Lock()

	if h.fileLock == nil {
		return h.mu.Unlock, nil
	}

	if err := h.fileLock.Lock(); err != nil {
		h.mu.Unlock()
		return nil, cerr.Field("lock_path", h.fileLock.Path()).
			Wrap(err).Error("Failed to lock engine file")
	}

	return func() {
		if err := h.fileLock.Unlock(); err != nil {
			cerr.Log(cerr.Field("lock_path", h.fileLock.Path()).Wrap(err).Error("Failed to unlock engine file"))
		}
		h.mu.Unlock()
	}, nil
}
