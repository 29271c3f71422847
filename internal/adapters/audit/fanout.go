package audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
)

// FanoutSink forwards every entry to all of its sinks and joins their failures.
type FanoutSink struct {
	sinks []portsrepo.AuditSink
}

// NewFanoutSink creates a sink that writes to every non-nil sink.
func NewFanoutSink(sinks ...portsrepo.AuditSink) *FanoutSink {
	kept := make([]portsrepo.AuditSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &FanoutSink{sinks: kept}
}

var _ portsrepo.AuditSink = (*FanoutSink)(nil)

func (f *FanoutSink) Log(ctx context.Context, entry domain.AuditEntry) error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.Log(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Select builds the sink named by mode: "log", "postgres" or "both".
func Select(mode string, store portsrepo.AuditSink) (portsrepo.AuditSink, error) {
	switch mode {
	case "log":
		return NewLogSink(), nil
	case "postgres":
		return store, nil
	case "both":
		return NewFanoutSink(store, NewLogSink()), nil
	default:
		return nil, fmt.Errorf("unknown audit sink %q", mode)
	}
}
