package engine

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/executor"
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/entity"
)

var _ Engine = AudioSeparator{}

func NewAudioSeparator(binPath string, model separationentity.ModelConfig, audioExt string, commandExecutor executor.Executor) AudioSeparator {
	return AudioSeparator{
		binPath:         binPath,
		model:           model,
		audioExt:        audioExt,
		commandExecutor: commandExecutor,
	}
}

// AudioSeparator drives the audio-separator CLI with an MDX model
type AudioSeparator struct {
	binPath         string
	model           separationentity.ModelConfig
	audioExt        string
	commandExecutor executor.Executor
}

func (a AudioSeparator) Init(ctx context.Context) error {
	errctx := cerr.Fields(cerr.F{
		"model":     a.model.ModelIdentifier,
		"model_dir": a.model.ModelFileDir,
	})

	log.WithField("model", a.model.ModelIdentifier).Info("Loading separation model")

	if a.model.ModelFileDir != "" {
		if err := os.MkdirAll(a.model.ModelFileDir, os.ModePerm); err != nil {
			return errctx.Wrap(err).Error("Failed to create model directory")
		}
	}

	cmd := a.commandExecutor.Command(ctx, a.binPath, append(a.modelArgs(), "--download_model_only")...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errctx.Field("error_msg", string(output)).Wrap(err).Error("Failed to load separation model")
	}

	return nil
}

func (a AudioSeparator) Separate(ctx context.Context, audioPath string, outputDir string) ([]string, error) {
	errctx := cerr.Fields(cerr.F{
		"audio_path": audioPath,
		"output_dir": outputDir,
	})

	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, errctx.Wrap(err).Error("Failed to create output directory")
	}

	// filesystems with coarse mtimes would otherwise hide fresh outputs
	start := time.Now().Truncate(time.Second)

	args := append([]string{audioPath}, a.modelArgs()...)
	args = append(args, a.SeparateArgs(outputDir)...)

	cmd := a.commandExecutor.Command(ctx, a.binPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, errctx.Field("error_msg", string(output)).Wrap(err).Error("Failed to run audio-separator")
	}

	outputs, err := a.findOutputs(audioPath, outputDir, start)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to collect separated stems")
	}

	return outputs, nil
}

func (a AudioSeparator) modelArgs() []string {
	args := []string{"--model_filename", a.model.ModelIdentifier}
	if a.model.ModelFileDir != "" {
		args = append(args, "--model_file_dir", a.model.ModelFileDir)
	}

	return args
}

func (a AudioSeparator) SeparateArgs(outputDir string) []string {
	args := []string{
		"--output_dir", outputDir,
		"--output_format", strings.ToUpper(strings.TrimPrefix(a.audioExt, ".")),
		"--mdx_hop_length", strconv.Itoa(a.model.HopLength),
		"--mdx_segment_size", strconv.Itoa(a.model.SegmentSize),
		"--mdx_overlap", strconv.FormatFloat(a.model.Overlap, 'f', -1, 64),
		"--mdx_batch_size", strconv.Itoa(a.model.BatchSize),
	}

	if a.model.DenoiseEnabled {
		args = append(args, "--mdx_enable_denoise")
	}

	return args
}

// findOutputs lists {stem}_(<Stem>)_{model}{ext} files written since start.
// The CLI's own log output is not a reliable record of what it wrote.
func (a AudioSeparator) findOutputs(audioPath string, outputDir string, start time.Time) ([]string, error) {
	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	pattern := filepath.Join(outputDir,
		globEscape(stem)+"_(*)_"+globEscape(a.model.ModelName())+globEscape(a.audioExt))

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, cerr.Field("pattern", pattern).Wrap(err).Error("Invalid output pattern")
	}

	outputs := []string{}
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			return nil, cerr.Field("path", match).Wrap(err).Error("Failed to stat output file")
		}

		if info.ModTime().Before(start) {
			continue
		}

		outputs = append(outputs, match)
	}

	sort.Strings(outputs)
	return outputs, nil
}

func globEscape(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`, "[", `\[`)
	return replacer.Replace(s)
}
