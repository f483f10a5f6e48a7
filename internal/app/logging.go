package app

import (
	"log/slog"

	"github.com/treykane/composer/internal/logging"
)

// appLog is the package-level structured logger for the app package, tagged
// component=app. Output goes to stderr or COMPOSER_LOG_FILE (see the logging
// package), never to the terminal UI on stdout.
var appLog = logging.New("app")

// setStatusError updates the status bar with a user-facing message and logs
// the error with any extra slog-style key-value attrs.
//
//	m.setStatusError("Clipboard paste failed", err)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
