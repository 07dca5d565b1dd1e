package testing

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/guregu/dynamo"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config/dev"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config/envvar"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/entity"
	"github.com/veedubyou/chord-paper-uvr/src/shared/job/storage"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/dynamo"
)

// DynamoDBHost is where DynamoDB local is expected for the storage
// integration tests, DYNAMODB_ENDPOINT overrides it
func DynamoDBHost() string {
	return envvar.Resolve(envvar.DYNAMODB_ENDPOINT, dev.DynamoDBHost)
}

func LocalDynamoEnabled() bool {
	_, ok := os.LookupEnv("UVR_INTEGRATION_TESTS")
	return ok
}

// RequireLocalDynamo skips the calling test unless UVR_INTEGRATION_TESTS is set
func RequireLocalDynamo() {
	if !LocalDynamoEnabled() {
		Skip("set UVR_INTEGRATION_TESTS to run against DynamoDB local")
	}
}

func MakeTestDB(testRegion string) dynamolib.DynamoDBWrapper {
	dbSession := session.Must(session.NewSession())

	config := aws.NewConfig().
		WithCredentials(credentials.NewStaticCredentials(dev.DynamoAccessKeyID, dev.DynamoSecretAccessKey, "")).
		WithEndpoint(DynamoDBHost()).
		WithRegion(testRegion)

	db := dynamo.New(dbSession, config)
	return dynamolib.NewDynamoDBWrapper(db)
}

func ResetDB(db dynamolib.DynamoDBWrapper) {
	DeleteAllTables(db)
	CreateAllTables(db)
}

func AfterSuiteDB(db dynamolib.DynamoDBWrapper) {
	DeleteAllTables(db)
}

func CreateAllTables(db dynamolib.DynamoDBWrapper) {
	err := db.CreateTable(jobstorage.JobsTable, jobentity.Job{}).Run()
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
}

func DeleteAllTables(db dynamolib.DynamoDBWrapper) {
	tableResults := db.ListTables()
	tableNames := ExpectSuccess(tableResults.All())

	for _, tableName := range tableNames {
		err := db.Table(tableName).DeleteTable().Run()
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
	}
}
