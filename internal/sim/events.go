package sim

import (
	"encoding/json"
	"log/slog"

	"github.com/pixil98/go-rts/internal/game"
)

// EventSubject is the messaging subject all simulation events are
// published on.
const EventSubject = "rts.events"

type EventType string

const (
	EventTrainingQueued   EventType = "training-queued"
	EventUnitSpawned      EventType = "unit-spawned"
	EventDelivery         EventType = "delivery"
	EventNodeDepleted     EventType = "node-depleted"
	EventResourcesChanged EventType = "resources-changed"
)

// Event is the JSON payload published for every simulation happening.
// Fields are filled per type; consumers ignore what they don't need.
type Event struct {
	Type EventType `json:"type"`

	Unit     string `json:"unit,omitempty"`
	UnitKind string `json:"unit_kind,omitempty"`
	Building string `json:"building,omitempty"`
	Node     string `json:"node,omitempty"`
	NodeKind string `json:"node_kind,omitempty"`

	Resources map[game.ResourceKind]int `json:"resources,omitempty"`
}

// Publisher sends event payloads to a messaging subject. The embedded
// NATS server implements it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

func (m *Manager) publish(ev Event) {
	if m.pub == nil {
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		slog.Warn("marshalling event", "type", ev.Type, "error", err)
		return
	}
	if err := m.pub.Publish(EventSubject, data); err != nil {
		slog.Warn("publishing event", "type", ev.Type, "error", err)
	}
}
