// Package logging configures the standard logger for terminal output.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	prefix      = "esdemo: "
	colorPrefix = "\x1b[36mesdemo:\x1b[0m "
)

var debug bool

// Setup directs the standard logger to stderr. On a colour-capable terminal
// the output goes through a colorable writer and the prefix is coloured.
// In debug mode timestamps carry microseconds and the call site.
func Setup(debugMode bool) {
	debug = debugMode
	out, color := terminal()
	log.SetOutput(out)
	if color {
		log.SetPrefix(colorPrefix)
	} else {
		log.SetPrefix(prefix)
	}
	if debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

func terminal() (io.Writer, bool) {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return colorable.NewColorableStderr(), true
	}
	return os.Stderr, false
}

// Debug reports whether debug logging is enabled.
func Debug() bool {
	return debug
}

// Debugf logs only in debug mode.
func Debugf(format string, v ...interface{}) {
	if debug {
		log.Output(2, "[debug] "+fmt.Sprintf(format, v...))
	}
}
