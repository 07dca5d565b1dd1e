package config

import "github.com/veedubyou/chord-paper-uvr/src/shared/config/envvar"

type Dynamo interface {
	DynamoConfig()
}

var _ Dynamo = ProdDynamo{}

type ProdDynamo struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

func (p ProdDynamo) DynamoConfig() {}

var _ Dynamo = LocalDynamo{}

type LocalDynamo struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Host            string
}

func (l LocalDynamo) DynamoConfig() {}

// LoadDynamo returns nil when no credentials are configured, which turns the
// job ledger off.
func LoadDynamo() Dynamo {
	accessKeyID, ok := envvar.Lookup(envvar.AWS_ACCESS_KEY_ID)
	if !ok {
		return nil
	}

	secretAccessKey := envvar.MustGet(envvar.AWS_SECRET_ACCESS_KEY)
	region := envvar.MustGet(envvar.DYNAMODB_REGION)

	if endpoint, ok := envvar.Lookup(envvar.DYNAMODB_ENDPOINT); ok {
		return LocalDynamo{
			AccessKeyID:     accessKeyID,
			SecretAccessKey: secretAccessKey,
			Region:          region,
			Host:            endpoint,
		}
	}

	return ProdDynamo{
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
		Region:          region,
	}
}
