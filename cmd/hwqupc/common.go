package main

import (
	"fmt"
	"io"
	"time"

	"github.com/maruel/subcommands"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
)

// commonFlags are shared by every subcommand.
type commonFlags struct {
	subcommands.CommandRunBase

	logLevel string
	seed     uint64

	log *logging.Logger
}

func (c *commonFlags) registerCommonFlags() {
	c.Flags.StringVar(&c.logLevel, "log-level", "info", "Logging level: critical, error, warning, notice, info or debug.")
	c.Flags.Uint64Var(&c.seed, "seed", 0, "Random seed. Zero picks one from the current time.")
}

// setup configures logging and resolves the seed. It must be called at the
// start of Run.
func (c *commonFlags) setup(a subcommands.Application) error {
	level, err := logging.LogLevel(c.logLevel)
	if err != nil {
		return errors.Wrapf(err, "bad -log-level %q", c.logLevel)
	}
	c.log = newLogger(a.GetErr(), level)
	if c.seed == 0 {
		c.seed = uint64(time.Now().UnixNano())
	}
	c.log.Debugf("seed %d", c.seed)
	return nil
}

func newLogger(w io.Writer, level logging.Level) *logging.Logger {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), logFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
	return logging.MustGetLogger("hwqupc")
}

// fail reports err and returns the process exit code for it.
func (c *commonFlags) fail(a subcommands.Application, err error) int {
	if c.log != nil {
		c.log.Errorf("%s", err)
	} else {
		fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
	}
	return 1
}
