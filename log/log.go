package log

import (
	"io"
	"log"
	"os"
)

// TraceEnvVar enables trace logging when set to 1.
const TraceEnvVar = "LATTICE_POSE_TRACE"

var (
	Trace   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
)

func init() {
	InitLog()
}

// InitLog wires the package loggers. Trace output is discarded unless
// the trace environment variable is set.
func InitLog() {
	traceDst := io.Discard

	if os.Getenv(TraceEnvVar) == "1" {
		traceDst = os.Stdout
	}

	Trace = log.New(traceDst, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(os.Stdout, "", 0)
	Warning = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime)
	Error = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// EnableTrace redirects trace logging to stdout regardless of the
// environment.
func EnableTrace() {
	Trace = log.New(os.Stdout, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
}
