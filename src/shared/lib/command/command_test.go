package command_test

import (
	"context"
	"os"
	"path/filepath"

	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/command"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/veedubyou/chord-paper-uvr/src/shared/testing"
)

var _ = Describe("Command", func() {
	const key = "UVR_COMMAND_TEST_VALUE"

	var dir string

	BeforeEach(func() {
		dir = TempDir()
		Expect(os.Unsetenv(key)).To(Succeed())
		DeferCleanup(os.Unsetenv, key)
		SetTestEnv()
	})

	Describe("LoadEnvFile", func() {
		It("loads variables from the file", func() {
			path := WriteFile(dir, ".env", key+"=from_file\n")

			Expect(command.LoadEnvFile(path, true)).To(Succeed())
			Expect(os.Getenv(key)).To(Equal("from_file"))
		})

		It("does not override the environment", func() {
			path := WriteFile(dir, ".env", key+"=from_file\n")
			Expect(os.Setenv(key, "from_env")).To(Succeed())

			Expect(command.LoadEnvFile(path, true)).To(Succeed())
			Expect(os.Getenv(key)).To(Equal("from_env"))
		})

		It("tolerates a missing default file", func() {
			Expect(command.LoadEnvFile(filepath.Join(dir, ".env"), false)).To(Succeed())
		})

		It("fails on a missing file that was asked for", func() {
			Expect(command.LoadEnvFile(filepath.Join(dir, ".env"), true)).NotTo(Succeed())
		})
	})

	Describe("New", func() {
		It("loads the env file before running", func() {
			path := WriteFile(dir, "custom.env", key+"=custom\n")

			var seen string
			cmd := command.New("uvr-test", "test", func(ctx context.Context) error {
				seen = os.Getenv(key)
				return nil
			})
			cmd.SetArgs([]string{"--env-file", path})

			Expect(cmd.ExecuteContext(context.Background())).To(Succeed())
			Expect(seen).To(Equal("custom"))
		})

		It("rejects positional arguments", func() {
			cmd := command.New("uvr-test", "test", func(ctx context.Context) error { return nil })
			cmd.SetArgs([]string{"--env-file", filepath.Join(dir, "none.env"), "extra"})

			Expect(cmd.ExecuteContext(context.Background())).NotTo(Succeed())
		})
	})
})
