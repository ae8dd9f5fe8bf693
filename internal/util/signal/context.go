package signal

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

// NotifyContext returns a context that is cancelled on the first of the given
// signals. A second signal terminates the process at once.
func NotifyContext(ctx context.Context, log *slog.Logger, sig ...os.Signal) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, sig...)

	go func() {
		select {
		case s := <-sigCh:
			log.Warn("interrupted, finishing current operation", slog.String("signal", s.String()))
			cancel()
		case <-ctx.Done():
			return
		}
		<-sigCh
		os.Exit(1)
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}
