package dynamolib

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/cockroachdb/errors"
	"github.com/guregu/dynamo"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config"
)

var encoder = dynamodbattribute.NewEncoder(func(e *dynamodbattribute.Encoder) {
	e.MarshalOptions.EnableEmptyCollections = true
	e.NullEmptyString = false
	e.NullEmptyByteSlice = false
})

type putMap map[string]any

func (p putMap) MarshalDynamo() (*dynamodb.AttributeValue, error) {
	var fields map[string]any = p
	return encoder.Encode(fields)
}

func NewDynamoDBWrapper(db *dynamo.DB) DynamoDBWrapper {
	return DynamoDBWrapper{DB: db}
}

// NewFromConfig opens a DynamoDB client for either the hosted service or a
// local endpoint
func NewFromConfig(dynamoConfig config.Dynamo) (DynamoDBWrapper, error) {
	dbSession, err := session.NewSession()
	if err != nil {
		return DynamoDBWrapper{}, errors.Wrap(err, "Failed to create AWS session")
	}

	var dbConfig *aws.Config

	switch t := dynamoConfig.(type) {
	case config.ProdDynamo:
		dbConfig = aws.NewConfig().
			WithCredentials(credentials.NewStaticCredentials(
				t.AccessKeyID,
				t.SecretAccessKey,
				"",
			)).
			WithRegion(t.Region)

	case config.LocalDynamo:
		dbConfig = aws.NewConfig().
			WithCredentials(credentials.NewStaticCredentials(
				t.AccessKeyID,
				t.SecretAccessKey,
				"",
			)).
			WithRegion(t.Region).
			WithEndpoint(t.Host)

	default:
		return DynamoDBWrapper{}, errors.Newf("Unexpected dynamo config type %T", dynamoConfig)
	}

	return NewDynamoDBWrapper(dynamo.New(dbSession, dbConfig)), nil
}

type DynamoDBWrapper struct {
	*dynamo.DB
}

type DynamoTableWrapper struct {
	dynamo.Table
}

type DynamoUpdateWrapper struct {
	*dynamo.Update
}

func (d DynamoDBWrapper) Table(tableName string) DynamoTableWrapper {
	return DynamoTableWrapper{
		Table: d.DB.Table(tableName),
	}
}

// Put keeps empty strings and collections in generic maps instead of
// letting them collapse to NULL
func (d DynamoTableWrapper) Put(item any) *dynamo.Put {
	if fields, ok := item.(map[string]any); ok {
		return d.Table.Put(putMap(fields))
	}

	return d.Table.Put(item)
}

func (d DynamoTableWrapper) Update(hashKey string, value any) DynamoUpdateWrapper {
	return DynamoUpdateWrapper{
		Update: d.Table.Update(hashKey, value),
	}
}

func (d DynamoUpdateWrapper) Set(path string, value map[string]any) DynamoUpdateWrapper {
	return DynamoUpdateWrapper{
		Update: d.Update.Set(path, putMap(value)),
	}
}
