package gateway_test

import (
	"net/http"

	"github.com/veedubyou/chord-paper-uvr/src/server/internal/errors/api"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/errors/gateway"
	"github.com/veedubyou/chord-paper-uvr/src/server/internal/separation/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Gateway errors", func() {
	It("maps every declared error code to a status", func() {
		for _, errorCode := range allErrorCodes {
			_, ok := gateway.StatusCode(errorCode)
			Expect(ok).To(BeTrue(), "error code %s has no status mapping", errorCode)
		}
	})

	It("keeps client errors in the 4xx range", func() {
		for code, expected := range map[api.ErrorCode]int{
			separationerrors.InvalidRequestCode:       http.StatusBadRequest,
			separationerrors.BadRequestDataCode:       http.StatusBadRequest,
			separationerrors.NoDownloadableStreamCode: http.StatusUnprocessableEntity,
			separationerrors.JobNotFoundCode:          http.StatusNotFound,
		} {
			status, ok := gateway.StatusCode(code)
			Expect(ok).To(BeTrue())
			Expect(status).To(Equal(expected))
		}
	})

	It("keeps internal failures in the 5xx range", func() {
		for _, code := range []api.ErrorCode{
			api.DefaultErrorCode,
			separationerrors.ExtractionFailedCode,
			separationerrors.SeparationFailedCode,
			separationerrors.JobsUnavailableCode,
		} {
			status, ok := gateway.StatusCode(code)
			Expect(ok).To(BeTrue())
			Expect(status).To(BeNumerically(">=", http.StatusInternalServerError))
		}
	})
})
