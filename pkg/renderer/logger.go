package renderer

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NewDefaultLogger creates a logger that writes renderer progress to stderr
func NewDefaultLogger() core.Logger {
	return NewLogger(os.Stderr)
}

// NewLogger creates a timestamped renderer logger writing to w
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "renderer",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
}
