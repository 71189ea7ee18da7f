package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
}

// ParseLevel maps a level name to a zerolog level, case-insensitively.
func ParseLevel(level string) (zerolog.Level, bool) {
	l, ok := logLevelMatches[strings.ToUpper(level)]
	return l, ok
}

func isTerminalAttached(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}

func consoleWriter(out *os.File) io.Writer {
	if isTerminalAttached(out) {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	return out
}

// Setup configures the global logger. Logs go to stderr, pretty-printed when
// it is a terminal, or appended to file when one is given. The returned
// func closes the file.
func Setup(level, file string) (func(), error) {
	logLevel, ok := ParseLevel(level)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	zerolog.SetGlobalLevel(logLevel)

	if file == "" {
		log.Logger = log.Output(consoleWriter(os.Stderr))
		return func() {}, nil
	}

	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = log.Output(f)
	return func() { _ = f.Close() }, nil
}

// Silence drops all log output. The live viewer owns the terminal, so it
// calls this when no log file was configured.
func Silence() {
	log.Logger = log.Output(io.Discard)
}

// Enabled checks if a specific logging level is enabled
func Enabled(level zerolog.Level) bool {
	return level >= zerolog.GlobalLevel()
}
