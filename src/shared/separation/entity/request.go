package separationentity

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/errors/mark"
)

type InputKind string

const (
	LocalPath      InputKind = "local_path"
	RemoteVideoURL InputKind = "remote_video_url"
)

type InputReference struct {
	Kind  InputKind `json:"kind"`
	Value string    `json:"value"`
}

func NewLocalPath(path string) *InputReference {
	return &InputReference{Kind: LocalPath, Value: path}
}

func NewRemoteVideoURL(rawURL string) *InputReference {
	return &InputReference{Kind: RemoteVideoURL, Value: rawURL}
}

// ParseInputReference tags a bare string: absolute http(s) URLs are remote
// videos, everything else is a local path.
func ParseInputReference(raw string) *InputReference {
	parsed, err := url.Parse(raw)
	if err == nil && parsed.Host != "" && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		return NewRemoteVideoURL(raw)
	}

	return NewLocalPath(raw)
}

func (i *InputReference) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return errors.Wrap(err, "Failed to unmarshal input reference string")
		}

		*i = *ParseInputReference(raw)
		return nil
	}

	type tagged InputReference
	value := tagged{}
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return errors.Wrap(err, "Failed to unmarshal tagged input reference")
	}

	*i = InputReference(value)
	return nil
}

type SeparationRequest struct {
	TaskID         string          `json:"task_id"`
	InputReference *InputReference `json:"input_reference"`
	OutputBasePath string          `json:"output_base_path,omitempty"`
}

func invalid(msg string) error {
	return errors.WithHint(mark.Message(InvalidRequestMark, msg), msg)
}

func (s SeparationRequest) Validate() error {
	taskID := strings.TrimSpace(s.TaskID)
	if taskID == "" {
		return invalid("task_id is required")
	}

	// the task ID becomes part of a filename
	if strings.ContainsAny(taskID, `/\`) || strings.Contains(taskID, "..") {
		return invalid("task_id must not contain path separators or '..'")
	}

	if strings.Contains(taskID, "%") {
		return invalid("task_id must not contain '%'")
	}

	if s.InputReference == nil {
		return invalid("input_reference is required")
	}

	return s.InputReference.Validate()
}

func (i InputReference) Validate() error {
	if strings.TrimSpace(i.Value) == "" {
		return invalid("input_reference must not be empty")
	}

	switch i.Kind {
	case LocalPath:
		return nil

	case RemoteVideoURL:
		parsed, err := url.Parse(i.Value)
		if err != nil || parsed.Host == "" {
			return invalid("input_reference is not a valid URL")
		}

		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return invalid("input_reference URL must use http or https")
		}

		return nil

	default:
		return invalid("input_reference kind must be local_path or remote_video_url")
	}
}
