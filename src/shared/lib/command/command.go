package command

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/env"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/logging"
)

const (
	DefaultEnvFile = ".env"
	envFileFlag    = "env-file"
)

// New builds a process entry point. Before run is called the dotenv file is
// loaded (variables already set in the environment win) and logging is
// configured.
func New(use string, short string, run func(ctx context.Context) error) *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := LoadEnvFile(envFile, cmd.Flags().Changed(envFileFlag)); err != nil {
				return err
			}

			logging.Setup(env.Get())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, envFileFlag, DefaultEnvFile, "dotenv file to load before reading configuration")
	return cmd
}

// LoadEnvFile tolerates a missing file unless it was asked for explicitly
func LoadEnvFile(path string, required bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return errors.Wrapf(err, "Failed to load env file %s", path)
}

// Execute runs cmd until it returns or the process is interrupted
func Execute(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
