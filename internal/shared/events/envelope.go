package events

import "time"

// Envelope is the shared event shape published on the ledger bus.
// Creation events from the garment factory are the only producers today.
type Envelope struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	SourceService  string    `json:"source_service"`
	OccurredAtUTC  time.Time `json:"occurred_at_utc"`
	EntityType     string    `json:"entity_type"`
	EntityID       string    `json:"entity_id"`
	PayloadVersion int       `json:"payload_version"`
	Payload        any       `json:"payload"`
}

// Event types emitted by the asset-ledger context.
const (
	TypeMaterialsCreated = "asset.materials_created"
	TypeGarmentCreated   = "asset.garment_created"
)
