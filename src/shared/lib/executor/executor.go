package executor

import (
	"context"
	"os/exec"
)

var _ Executor = BinaryFileExecutor{}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Executor
type Executor interface {
	Command(ctx context.Context, name string, arg ...string) Command
}

//counterfeiter:generate . Command
type Command interface {
	SetDir(dir string)
	Output() ([]byte, error)
	CombinedOutput() ([]byte, error)
}

// the only reason this is here is to create an interface for testing
type BinaryFileExecutor struct{}

func (b BinaryFileExecutor) Command(ctx context.Context, name string, arg ...string) Command {
	return binaryCommand{Cmd: exec.CommandContext(ctx, name, arg...)}
}

type binaryCommand struct {
	*exec.Cmd
}

func (b binaryCommand) SetDir(dir string) {
	b.Cmd.Dir = dir
}
