package llm

import (
	"time"

	"go.uber.org/zap"
)

// AttemptEvent records one completion attempt
type AttemptEvent struct {
	Provider string
	Model    string
	Attempt  int
	Latency  time.Duration
	Err      error
}

// Observer receives an event after every completion attempt
type Observer interface {
	OnAttempt(event AttemptEvent)
}

// LogObserver writes attempt events to a zap logger
type LogObserver struct {
	log *zap.Logger
}

func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnAttempt(event AttemptEvent) {
	fields := []zap.Field{
		zap.String("provider", event.Provider),
		zap.String("model", event.Model),
		zap.Int("attempt", event.Attempt),
		zap.Duration("latency", event.Latency),
	}
	if event.Err != nil {
		o.log.Warn("completion attempt failed", append(fields, zap.Error(event.Err))...)
		return
	}
	o.log.Debug("completion attempt succeeded", fields...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnAttempt(AttemptEvent) {}
