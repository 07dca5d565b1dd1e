package jobstorage

import (
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/cockroachdb/errors"
)

var (
	DefaultErrorMark = errors.New("job storage error")
	JobNotFoundMark  = errors.New("job not found")
	JobExistsMark    = errors.New("job already exists")
	IDEmptyMark      = errors.New("job id is empty")
	ConflictMark     = errors.New("job was modified concurrently")
)

func isConditionalCheckErr(err error) bool {
	var condErr *dynamodb.ConditionalCheckFailedException
	return errors.As(err, &condErr)
}
