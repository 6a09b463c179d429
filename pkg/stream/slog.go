package stream

import (
	"context"
	"log/slog"
)

// Slog is a pass-through stage that logs each carrier with its index and its
// rendered string. Items carrying a per-item error are logged at error level,
// the others at info level. The carrier is forwarded unchanged.
func Slog[S Carrier[S]](label string) ProcessorFunc[S] {
	return func(ctx context.Context, in <-chan S) <-chan S {
		return Async(ctx, in, func(ctx context.Context, item S) S {
			s := item.UTF8String()
			if err := item.GetError(); err != nil {
				slog.Error(label, "err", err, "index", item.GetIndex(), "string", s)
			} else {
				slog.Info(label, "index", item.GetIndex(), "string", s)
			}
			return item
		})
	}
}
