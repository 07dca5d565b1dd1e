package output_test

import (
	"github.com/veedubyou/chord-paper-uvr/src/shared/separation/output"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Output resolver", func() {
	var resolver output.Resolver

	BeforeEach(func() {
		resolver = output.NewResolver(".mp3")
	})

	It("derives both stem paths from the base", func() {
		result := resolver.Resolve("/out/task_1", "Kim_Vocal_2")

		Expect(result.VocalPath).To(Equal("/out/task_1_(Vocals)_Kim_Vocal_2.mp3"))
		Expect(result.InstrumentalPath).To(Equal("/out/task_1_(Instrumental)_Kim_Vocal_2.mp3"))
		Expect(result.Validate()).To(Succeed())
	})

	It("returns the same paths every time", func() {
		first := resolver.Resolve("/out/task_1", "Kim_Vocal_2")
		second := resolver.Resolve("/out/task_1", "Kim_Vocal_2")
		Expect(first).To(Equal(second))
	})

	It("does not touch the filesystem", func() {
		result := resolver.Resolve("/definitely/not/a/dir/base", "m")
		Expect(result.VocalPath).To(Equal("/definitely/not/a/dir/base_(Vocals)_m.mp3"))
	})

	It("places the base inside the output directory", func() {
		Expect(resolver.BasePath("/out", "/in/task_1.mp3")).To(Equal("/out/task_1"))
		Expect(resolver.BasePath("/out/", "task_1.wav")).To(Equal("/out/task_1"))
	})
})
