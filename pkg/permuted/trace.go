package permuted

import (
	"log"
	"os"
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Lightweight, opt-in tracing for the candidate search.
// Enable by setting env var PERMUTED_TRACE=1 or by calling EnableTrace.
// Trace lines go to the standard logger (stderr), never to stdout.

// TraceInterval is how many candidates pass between progress lines.
const TraceInterval = 100_000

var searchTraceEnabled atomic.Bool

var tracePrinter = message.NewPrinter(language.English)

func init() {
	if os.Getenv("PERMUTED_TRACE") == "1" {
		searchTraceEnabled.Store(true)
	}
}

// EnableTrace turns on search progress logging.
func EnableTrace() { searchTraceEnabled.Store(true) }

// DisableTrace turns off search progress logging.
func DisableTrace() { searchTraceEnabled.Store(false) }

func searchTracef(format string, args ...any) {
	if !searchTraceEnabled.Load() {
		return
	}
	log.Print("[SEARCH] " + tracePrinter.Sprintf(format, args...))
}
