package envvar

import (
	"fmt"
	"os"
)

const (
	ENVIRONMENT = "ENVIRONMENT"
	LOG_LEVEL   = "LOG_LEVEL"
	PORT        = "PORT"

	UVR_DOWNLOAD_PATH      = "UVR_DOWNLOAD_PATH"
	UVR_PROCESSED_PATH     = "UVR_PROCESSED_PATH"
	UVR_MODEL_PATH         = "UVR_MODEL_PATH"
	UVR_MODEL_DIR          = "UVR_MODEL_DIR"
	UVR_VIDEO_EXT          = "UVR_VIDEO_EXT"
	UVR_AUDIO_EXT          = "UVR_AUDIO_EXT"
	UVR_MDX_HOP_LENGTH     = "UVR_MDX_HOP_LENGTH"
	UVR_MDX_SEGMENT_SIZE   = "UVR_MDX_SEGMENT_SIZE"
	UVR_MDX_OVERLAP        = "UVR_MDX_OVERLAP"
	UVR_MDX_BATCH_SIZE     = "UVR_MDX_BATCH_SIZE"
	UVR_MDX_ENABLE_DENOISE = "UVR_MDX_ENABLE_DENOISE"
	UVR_ENGINE_LOCK_PATH   = "UVR_ENGINE_LOCK_PATH"

	AUDIO_SEPARATOR_BIN_PATH = "AUDIO_SEPARATOR_BIN_PATH"
	FFMPEG_BIN_PATH          = "FFMPEG_BIN_PATH"
	FFPROBE_BIN_PATH         = "FFPROBE_BIN_PATH"
	YOUTUBEDL_BIN_PATH       = "YOUTUBEDL_BIN_PATH"

	AWS_ACCESS_KEY_ID                = "AWS_ACCESS_KEY_ID"
	AWS_SECRET_ACCESS_KEY            = "AWS_SECRET_ACCESS_KEY"
	DYNAMODB_REGION                  = "DYNAMODB_REGION"
	DYNAMODB_ENDPOINT                = "DYNAMODB_ENDPOINT"
	RABBITMQ_URL                     = "RABBITMQ_URL"
	RABBITMQ_QUEUE_NAME              = "RABBITMQ_QUEUE_NAME"
	RABBITMQ_RESULTS_QUEUE_NAME      = "RABBITMQ_RESULTS_QUEUE_NAME"
	GOOGLE_CLOUD_KEY                 = "GOOGLE_CLOUD_KEY"
	GOOGLE_CLOUD_STORAGE_BUCKET_NAME = "GOOGLE_CLOUD_STORAGE_BUCKET_NAME"
)

// Resolve returns the value of the named variable when it is set, even if it
// is set to the empty string, and defaultVal otherwise.
func Resolve(key string, defaultVal string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet {
		return defaultVal
	}

	return val
}

func Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func MustGet(key string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	if val == "" {
		panic(fmt.Sprintf("Env variable is empty for key %s", key))
	}

	return val
}
