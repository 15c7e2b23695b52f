package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dantte-lp/goribd/internal/rib"
)

// Submitter applies events to the RIB. *rib.Engine implements it.
type Submitter interface {
	Submit(ctx context.Context, ev rib.Event) error
}

// submitDiff submits the events that turn prev into next. Events the
// engine rejects are logged and skipped so that one bad entry does not
// block the rest of the change. It stops when the engine stops or ctx
// ends.
func submitDiff(ctx context.Context, sub Submitter, prev, next *rib.ConfigSnapshot, logger *slog.Logger) (int, error) {
	applied := 0
	for _, ev := range rib.DiffSnapshots(prev, next) {
		err := sub.Submit(ctx, ev)
		switch {
		case err == nil:
			applied++
		case errors.Is(err, rib.ErrEngineStopped), ctx.Err() != nil:
			return applied, err
		default:
			logger.Warn("configuration change rejected",
				slog.String("event", ev.Type()),
				slog.String("detail", ev.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return applied, nil
}
