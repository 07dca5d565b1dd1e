package cerr_test

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/cerr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Contextual errors", func() {
	It("keeps the cause reachable", func() {
		root := errors.New("root")
		err := cerr.Field("a", 1).Wrap(root).Error("outer")

		Expect(errors.Is(err, root)).To(BeTrue())
		Expect(err.Error()).To(Equal("outer: root"))
	})

	It("merges fields from inner errors", func() {
		inner := cerr.Fields(cerr.F{"a": 1, "b": "inner"}).Error("inner")
		outer := cerr.Field("b", "outer").Field("c", true).Wrap(inner).Error("outer")

		var ctxErr cerr.ContextualError
		Expect(errors.As(outer, &ctxErr)).To(BeTrue())
		Expect(ctxErr.Context.ContextFields).To(Equal(cerr.F{"a": 1, "b": "inner", "c": true}))
	})

	It("makes a fresh error when there is no cause", func() {
		err := cerr.Field("a", 1).Wrap(nil).Error("fresh")
		Expect(err.Error()).To(Equal("fresh"))
	})

	Describe("Log", func() {
		var handler *memory.Handler

		BeforeEach(func() {
			handler = memory.New()
			log.SetHandler(handler)
		})

		It("logs the fields", func() {
			cerr.Log(cerr.Field("job_id", "j1").Error("boom"))

			Expect(handler.Entries).To(HaveLen(1))
			Expect(handler.Entries[0].Fields).To(HaveKeyWithValue("job_id", "j1"))
			Expect(handler.Entries[0].Level).To(Equal(log.ErrorLevel))
		})

		It("logs plain errors", func() {
			cerr.Log(errors.New("plain"))
			Expect(handler.Entries).To(HaveLen(1))
			Expect(handler.Entries[0].Message).To(Equal("plain"))
		})
	})
})
