package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	gerrors "github.com/goregress/goregress/pkg/errors"
)

// SetupWarningLogger routes library warnings (IllConditionedWarning,
// UndefinedMetricWarning, ...) to a zerolog logger writing to w. Warning
// types implementing zerolog.LogObjectMarshaler are logged with their
// structured fields, others with the plain error message.
func SetupWarningLogger(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(w).With().Timestamp().Logger()

	gerrors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev.EmbedObject(obj).Msg("warning")
			return
		}
		ev.Err(warning).Msg("warning")
	})
}
