package facet

import (
	"io"

	"github.com/charmbracelet/log"
)

// logger traces layout training and assembly at debug level.
// It discards everything until SetLogger is called.
var logger = log.New(io.Discard)

// SetLogger routes the package's debug tracing to l. A nil l restores
// the discarding default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
