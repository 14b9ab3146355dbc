package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables a timestamp in the log line.
	Verbose bool
}

// HandleError logs err to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[vistree] %s %s [%s]: %v\n", err.Timestamp.Format("15:04:05.000"), err.Op, err.Kind, err.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "[vistree] %s: %v\n", err.Op, err.Err)
}
