package audit

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogSink writes audit events to a zerolog logger.
type LogSink struct {
	logger zerolog.Logger
}

var _ Sink = (*LogSink)(nil)

func NewLogSink() *LogSink {
	return &LogSink{logger: log.Logger.With().Str("component", "audit").Logger()}
}

func NewLogSinkWithLogger(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (ls *LogSink) LogEvent(identity string, summary string, detail string) error {
	ls.logger.Info().Str("identity", identity).Str("detail", detail).Msg(summary)
	return nil
}
