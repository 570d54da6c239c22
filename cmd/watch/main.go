// Command watch follows a bundle's live assembly progress from a terminal.
// It subscribes to the bundle's event stream and keeps the subscription
// alive across drops, re-rendering from each full snapshot it receives.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"packline/internal/domain/entity"
	"packline/internal/util"
	"packline/watch"

	"github.com/google/uuid"
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8080", "assembly API base URL")
		token    = flag.String("token", "", "bearer token for the API")
		bundle   = flag.String("bundle", "", "bundle ID to watch")
		delay    = flag.Duration("reconnect-delay", watch.DefaultReconnectDelay, "delay between reconnect attempts")
		logLevel = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	bundleID, err := uuid.Parse(*bundle)
	if err != nil {
		fmt.Fprintln(os.Stderr, "watch: -bundle must be a valid bundle ID")
		os.Exit(2)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	started := time.Now()
	transport := watch.NewSSETransport(*baseURL, *token, nil)
	watcher := watch.NewWatcher(transport, bundleID, watch.Config{
		ReconnectDelay: *delay,
		Logger:         logger,
		OnState: func(state watch.State) {
			fmt.Printf("-- %s\n", state)
		},
		OnEvent: func(event *entity.AssemblyEvent) {
			renderEvent(event, started)
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher.Start(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	watcher.Stop()
}

func renderEvent(event *entity.AssemblyEvent, started time.Time) {
	switch event.Type {
	case entity.EventTypeScanError:
		message := ""
		if event.Message != nil {
			message = *event.Message
		}
		fmt.Printf("scan rejected: %s\n", message)
	case entity.EventTypeAssemblyComplete:
		if event.Payload != nil {
			fmt.Printf("bundle complete: %d/%d after %s\n",
				event.Payload.ScannedCount,
				event.Payload.TargetCount,
				util.FormatDuration(time.Since(started)),
			)
		}
	default:
		if event.Payload != nil {
			fmt.Printf("[%s] %d/%d scanned, %d remaining\n",
				event.Payload.Status,
				event.Payload.ScannedCount,
				event.Payload.TargetCount,
				event.Payload.Remaining,
			)
		}
	}
}
