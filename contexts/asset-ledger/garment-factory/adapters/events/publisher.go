package events

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"atelier/contexts/asset-ledger/garment-factory/ports"
	sharedevents "atelier/internal/shared/events"

	"github.com/google/uuid"
)

// Topic carries every creation event on the ledger bus.
const Topic = "asset.creations"

// Bus is the messaging surface the publisher writes to.
type Bus interface {
	Publish(ctx context.Context, topic string, event sharedevents.Envelope) error
}

// Publisher wraps creation payloads in the shared envelope and hands them to
// the platform bus.
type Publisher struct {
	bus    Bus
	logger *slog.Logger
}

func NewPublisher(bus Bus, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{bus: bus, logger: logger}
}

func (p Publisher) PublishMaterialsCreated(ctx context.Context, event ports.ChildrenCreated) error {
	entityID := ""
	if len(event.IDs) > 0 {
		entityID = strconv.FormatUint(event.IDs[0], 10)
	}
	return p.publish(ctx, sharedevents.TypeMaterialsCreated, "material", entityID, event)
}

func (p Publisher) PublishGarmentCreated(ctx context.Context, event ports.GarmentCreated) error {
	return p.publish(ctx, sharedevents.TypeGarmentCreated, "garment",
		strconv.FormatUint(event.GarmentTokenID, 10), event)
}

func (p Publisher) publish(ctx context.Context, eventType string, entityType string, entityID string, payload any) error {
	envelope := sharedevents.Envelope{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		SourceService:  "asset-ledger/garment-factory",
		OccurredAtUTC:  time.Now().UTC(),
		EntityType:     entityType,
		EntityID:       entityID,
		PayloadVersion: 1,
		Payload:        payload,
	}
	if err := p.bus.Publish(ctx, Topic, envelope); err != nil {
		return err
	}
	p.logger.Debug("creation event published",
		"event", "factory_creation_published",
		"module", "asset-ledger/garment-factory",
		"layer", "adapter",
		"event_id", envelope.EventID,
		"event_type", eventType,
	)
	return nil
}
