package image

import (
	"log/slog"

	"github.com/gogpu/pixconv"
)

// slogger returns the logger configured with pixconv.SetLogger.
func slogger() *slog.Logger { return pixconv.Logger() }
