package cli

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// LogLevelEnv overrides the log level (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG).
const LogLevelEnv = "WHERE_LOG_LEVEL"

var log = logging.MustGetLogger("where")

var stderrFormat = logging.MustStringFormatter(
	`%{color}where ▶ %{level:.4s} %{message}%{color:reset}`,
)

// SetupLogging points the package logger at w. The level is WARNING, or DEBUG when
// verbose, unless WHERE_LOG_LEVEL names another one.
func SetupLogging(prefix string, w io.Writer, verbose bool) *logging.Logger {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, stderrFormat)
	leveled := logging.AddModuleLevel(formatted)

	level := logging.WARNING
	if verbose {
		level = logging.DEBUG
	}
	if env, err := logging.LogLevel(os.Getenv(LogLevelEnv)); err == nil {
		level = env
	}
	leveled.SetLevel(level, prefix)

	log.SetBackend(leveled)
	return log
}
