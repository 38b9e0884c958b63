package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/vikasavnish/marketpulse/internal/models"
	"github.com/vikasavnish/marketpulse/internal/services"
)

// MessageTypeMarketOverview tags overview snapshots sent to dashboard clients
const MessageTypeMarketOverview = "market_overview"

// Broadcaster pushes a message to connected dashboard clients
type Broadcaster interface {
	Broadcast(ctx context.Context, msg models.Message) error
}

// SnapshotSink receives the encoded overview for consumers outside this process
type SnapshotSink interface {
	Publish(ctx context.Context, payload []byte) error
}

// MarketSnapshotTask periodically re-derives the market overview and pushes
// it out. Snapshots only flow outward; nothing reads them back.
type MarketSnapshotTask struct {
	market      services.MarketService
	broadcaster Broadcaster
	sink        SnapshotSink
	interval    time.Duration
	logger      *zap.Logger
}

// NewMarketSnapshotTask creates the task. sink may be nil when no external
// publisher is configured.
func NewMarketSnapshotTask(market services.MarketService, broadcaster Broadcaster, sink SnapshotSink, interval time.Duration, logger *zap.Logger) *MarketSnapshotTask {
	return &MarketSnapshotTask{
		market:      market,
		broadcaster: broadcaster,
		sink:        sink,
		interval:    interval,
		logger:      logger,
	}
}

func (t *MarketSnapshotTask) Name() string {
	return "market-snapshot"
}

// Run publishes once immediately and then on every tick until ctx is done.
func (t *MarketSnapshotTask) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.publish(ctx)
	for {
		select {
		case <-ticker.C:
			t.publish(ctx)
		case <-ctx.Done():
			return nil
		}
	}
}

func (t *MarketSnapshotTask) publish(ctx context.Context) {
	overview := t.market.Overview()

	err := t.broadcaster.Broadcast(ctx, models.Message{Type: MessageTypeMarketOverview, Content: overview})
	if err != nil && !errors.Is(err, context.Canceled) {
		t.logger.Warn("market snapshot broadcast failed", zap.Error(err))
	}

	if t.sink == nil {
		return
	}
	payload, err := json.Marshal(overview)
	if err != nil {
		t.logger.Error("market snapshot encode failed", zap.Error(err))
		return
	}
	if err := t.sink.Publish(ctx, payload); err != nil && ctx.Err() == nil {
		t.logger.Warn("market snapshot publish failed", zap.Error(err))
	}
}
