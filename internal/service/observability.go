package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// OperationEvent records one finished service operation: what ran, how long
// it took, and whether it succeeded.
type OperationEvent struct {
	Name      string
	StartedAt time.Time
	Elapsed   time.Duration
	Err       error
	Fields    map[string]any
}

// OperationObserver receives operation events from the service layer.
type OperationObserver interface {
	ObserveOperation(ctx context.Context, event OperationEvent)
}

// NoopObserver discards every event.
type NoopObserver struct{}

func (NoopObserver) ObserveOperation(context.Context, OperationEvent) {}

// NewLogObserver logs operation events to w as slog text lines. Errors log
// at error level, everything else at info.
func NewLogObserver(w io.Writer) OperationObserver {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

type logObserver struct {
	logger *slog.Logger
}

func (o *logObserver) ObserveOperation(ctx context.Context, event OperationEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"op", event.Name,
		"elapsed_ms", event.Elapsed.Milliseconds(),
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "operation", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "operation", attrs...)
}

func observerOrNoop(observers []OperationObserver) OperationObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopObserver{}
}

// observe emits one event for a finished operation. Call via defer with a
// named error return.
func observe(ctx context.Context, obs OperationObserver, name string, startedAt time.Time, fields map[string]any, err error) {
	obs.ObserveOperation(ctx, OperationEvent{
		Name:      name,
		StartedAt: startedAt,
		Elapsed:   time.Since(startedAt),
		Err:       err,
		Fields:    fields,
	})
}
