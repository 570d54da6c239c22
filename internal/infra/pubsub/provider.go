package pubsub

import (
	"context"
	"log/slog"

	"packline/config"
	"packline/internal/domain/constants"
	"packline/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopBridge is a no-op implementation when Pub/Sub is disabled
type noopBridge struct {
	logger *slog.Logger
}

func (p *noopBridge) PublishBundleCompleted(ctx context.Context, event *service.BundleCompletedEvent) error {
	p.logger.Debug("[NoopPubSub] Completion announcements disabled, skipping",
		slog.String("bundle_id", event.BundleID.String()),
	)

	return nil
}

func (p *noopBridge) Close() error {
	return nil
}

// BridgeParams holds dependencies for EventBridge, injected by Fx
type BridgeParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventBridge creates an EventBridge based on configuration
func NewEventBridge(params BridgeParams) (service.EventBridge, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op bridge
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op bridge")

		return &noopBridge{logger: logger}, nil
	}

	var bridge service.EventBridge
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP bridge for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		bridge = NewLocalHTTPBridge(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub bridge",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		bridge, err = NewGooglePubSubBridge(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close bridge on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventBridge")

			return bridge.Close()
		},
	})

	return bridge, nil
}
