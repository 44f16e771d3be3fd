package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// New builds a logger writing to w. Only warnings and errors are reported
// unless debug is set.
func New(w io.Writer, debug, noColor bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    debug,
		ReportTimestamp: false,
		Prefix:          "RICKROLL",
	})

	l.SetLevel(log.WarnLevel)
	if debug {
		l.SetLevel(log.DebugLevel)
	}

	l.SetColorProfile(termenv.ANSI256)
	if noColor {
		l.SetColorProfile(termenv.Ascii)
	}

	return l
}

// Init installs the default logger on stderr
func Init(debug, noColor bool) {
	log.SetDefault(New(os.Stderr, debug, noColor))
}
