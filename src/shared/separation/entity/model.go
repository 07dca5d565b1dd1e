package separationentity

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ModelConfig is fixed for the lifetime of the process.
type ModelConfig struct {
	// ModelIdentifier is the model file name, e.g. Kim_Vocal_2.onnx
	ModelIdentifier string
	ModelFileDir    string
	HopLength       int
	SegmentSize     int
	Overlap         float64
	BatchSize       int
	DenoiseEnabled  bool
}

// ModelName is the identifier the engine stamps into output file names.
func (m ModelConfig) ModelName() string {
	base := filepath.Base(m.ModelIdentifier)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (m ModelConfig) Validate() error {
	if strings.TrimSpace(m.ModelIdentifier) == "" {
		return errors.New("Model identifier is empty")
	}

	if m.HopLength <= 0 {
		return errors.Newf("Hop length must be positive, got %d", m.HopLength)
	}

	if m.SegmentSize <= 0 {
		return errors.Newf("Segment size must be positive, got %d", m.SegmentSize)
	}

	if m.BatchSize <= 0 {
		return errors.Newf("Batch size must be positive, got %d", m.BatchSize)
	}

	if m.Overlap < 0 || m.Overlap >= 1 {
		return errors.Newf("Overlap must be in [0, 1), got %v", m.Overlap)
	}

	return nil
}
