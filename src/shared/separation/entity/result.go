package separationentity

import (
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
)

type SeparationResult struct {
	VocalPath        string `json:"vocal_path"`
	InstrumentalPath string `json:"instrumental_path"`
}

func (s SeparationResult) Validate() error {
	if s.VocalPath == "" || s.InstrumentalPath == "" {
		return mark.Message(SeparationMark, "A stem path is empty")
	}

	if s.VocalPath == s.InstrumentalPath {
		return mark.Message(SeparationMark, "Vocal and instrumental stems resolved to the same path")
	}

	return nil
}
