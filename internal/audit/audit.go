package audit

import (
	"errors"
	"time"
)

// Sink receives security audit events. Implementations report failures to the caller but callers are expected to
// treat those failures as non-fatal.
type Sink interface {
	LogEvent(identity string, summary string, detail string) error
}

type Event struct {
	ID        string
	Timestamp time.Time
	Identity  string
	Summary   string
	Detail    string
}

type multiSink struct {
	sinks []Sink
}

// Multi returns a Sink that hands every event to all of the given sinks, even when an earlier one fails.
func Multi(sinks ...Sink) Sink {
	return &multiSink{sinks: sinks}
}

func (m *multiSink) LogEvent(identity string, summary string, detail string) error {
	var errs []error
	for _, curr := range m.sinks {
		if err := curr.LogEvent(identity, summary, detail); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
