package game

import "github.com/pixil98/go-rts/internal/geom"

// Describable is implemented by every entity variant so presentation
// code can render names, icons, and health bars without inspecting
// concrete types.
type Describable interface {
	DisplayName() string
	DisplayIcon() string

	// HealthPair returns (current, max). For resource nodes this is
	// (remaining, capacity).
	HealthPair() (int, int)
}

// Entity is a Describable with a world position, the shape the picking
// query works over.
type Entity interface {
	Describable
	EntityPosition() geom.Vec3
}
