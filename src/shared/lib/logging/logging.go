package logging

import (
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
	"github.com/mattn/go-isatty"
	"github.com/veedubyou/chord-paper-uvr/src/shared/config/envvar"
	"github.com/veedubyou/chord-paper-uvr/src/shared/lib/env"
)

// Setup installs the process-wide apex handler. Terminals get the human
// readable cli handler, everything else (and production) gets JSON lines.
func Setup(environment env.Environment) {
	SetupWithWriter(environment, os.Stderr, isTerminal(os.Stderr))
}

func SetupWithWriter(environment env.Environment, w io.Writer, terminal bool) {
	if environment != env.Production && terminal {
		log.SetHandler(cli.New(w))
	} else {
		log.SetHandler(json.New(w))
	}

	levelName := envvar.Resolve(envvar.LOG_LEVEL, "info")
	level, err := log.ParseLevel(levelName)
	if err != nil {
		level = log.InfoLevel
		log.WithField("log_level", levelName).Warn("Unrecognized log level, falling back to info")
	}

	log.SetLevel(level)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
