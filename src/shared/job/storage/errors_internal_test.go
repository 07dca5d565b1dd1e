package jobstorage

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/cockroachdb/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Conditional check errors", func() {
	var condErr *dynamodb.ConditionalCheckFailedException

	BeforeEach(func() {
		condErr = &dynamodb.ConditionalCheckFailedException{
			Message_: aws.String("The conditional request failed"),
		}
	})

	It("recognizes the SDK exception", func() {
		Expect(isConditionalCheckErr(condErr)).To(BeTrue())
	})

	It("recognizes it through wrapping", func() {
		err := errors.Wrap(condErr, "Failed to put the job")
		Expect(isConditionalCheckErr(err)).To(BeTrue())
	})

	It("ignores other failures", func() {
		Expect(isConditionalCheckErr(errors.New("connection reset"))).To(BeFalse())
		Expect(isConditionalCheckErr(&dynamodb.ResourceNotFoundException{
			Message_: aws.String("Requested resource not found"),
		})).To(BeFalse())
		Expect(isConditionalCheckErr(nil)).To(BeFalse())
	})
})
