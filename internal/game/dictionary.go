package game

import (
	"fmt"

	"github.com/pixil98/go-rts/internal/storage"
)

// Dictionary holds all game definition stores. It provides a single
// reference that can be passed to resolution methods so they all
// share the same signature.
type Dictionary struct {
	Units     storage.Storer[*UnitSpec]
	Buildings storage.Storer[*BuildingSpec]
	Nodes     storage.Storer[*NodeSpec]
	Scenarios storage.Storer[*Scenario]
}

// Resolve resolves all foreign key references between asset types.
func (d *Dictionary) Resolve() error {
	for id, b := range d.Buildings.GetAll() {
		if err := b.Resolve(d); err != nil {
			return fmt.Errorf("building %s: %w", id, err)
		}
	}

	for id, s := range d.Scenarios.GetAll() {
		if err := s.Resolve(d); err != nil {
			return fmt.Errorf("scenario %s: %w", id, err)
		}
	}
	return nil
}
