package output

import (
	"path/filepath"
	"strings"

	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

const (
	vocalsStem       = "Vocals"
	instrumentalStem = "Instrumental"
)

// Resolver owns the stem naming convention of the engine:
//
//	{base}_(Vocals)_{model}{ext}
//	{base}_(Instrumental)_{model}{ext}
type Resolver struct {
	AudioExt string
}

func NewResolver(audioExt string) Resolver {
	return Resolver{AudioExt: audioExt}
}

func (r Resolver) Resolve(basePath string, modelName string) separationentity.SeparationResult {
	return separationentity.SeparationResult{
		VocalPath:        r.stemPath(basePath, vocalsStem, modelName),
		InstrumentalPath: r.stemPath(basePath, instrumentalStem, modelName),
	}
}

// BasePath is where the stems of audioPath land inside outputDir
func (r Resolver) BasePath(outputDir string, audioPath string) string {
	name := filepath.Base(audioPath)
	return filepath.Join(outputDir, strings.TrimSuffix(name, filepath.Ext(name)))
}

func (r Resolver) stemPath(basePath string, stem string, modelName string) string {
	return basePath + "_(" + stem + ")_" + modelName + r.AudioExt
}
