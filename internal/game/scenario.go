package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rts/internal/geom"
	"github.com/pixil98/go-rts/internal/storage"
)

// Scenario defines a starting world state loaded from asset files: one
// production building, a field of resource nodes, initial workers, and
// the opening stockpile.
type Scenario struct {
	// Name is the display label (e.g., "Forest Clearing")
	Name string `json:"name"`

	StartingResources map[ResourceKind]int `json:"starting_resources,omitempty"`

	Building ScenarioBuilding `json:"building"`
	Nodes    []ScenarioNode   `json:"nodes"`
	Workers  ScenarioWorkers  `json:"workers"`
}

// ScenarioBuilding places the starting production building.
type ScenarioBuilding struct {
	Kind     storage.SmartIdentifier[*BuildingSpec] `json:"kind"`
	Position geom.Vec3                              `json:"position"`
}

// ScenarioNode places one resource node.
type ScenarioNode struct {
	Kind     storage.SmartIdentifier[*NodeSpec] `json:"kind"`
	Position geom.Vec3                          `json:"position"`
}

// ScenarioWorkers names the starting worker kind and count. Workers
// spawn around the building like trained units do.
type ScenarioWorkers struct {
	Kind  storage.SmartIdentifier[*UnitSpec] `json:"kind"`
	Count int                                `json:"count"`
}

// Validate satisfies storage.ValidatingSpec.
func (s *Scenario) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("scenario name is required"))
	}
	for kind, amt := range s.StartingResources {
		if !kind.Valid() {
			el.Add(fmt.Errorf("unknown starting resource kind %q", kind))
		}
		if amt < 0 {
			el.Add(fmt.Errorf("%s: starting amount must not be negative", kind))
		}
	}
	el.Add(s.Building.Kind.Validate())
	if len(s.Nodes) == 0 {
		el.Add(fmt.Errorf("scenario needs at least one resource node"))
	}
	for i, n := range s.Nodes {
		if err := n.Kind.Validate(); err != nil {
			el.Add(fmt.Errorf("nodes[%d]: %w", i, err))
		}
	}
	el.Add(s.Workers.Kind.Validate())
	if s.Workers.Count < 0 {
		el.Add(fmt.Errorf("worker count must not be negative"))
	}

	return el.Err()
}

// Resolve resolves foreign keys from the dictionary.
func (s *Scenario) Resolve(dict *Dictionary) error {
	el := errors.NewErrorList()

	el.Add(s.Building.Kind.Resolve(dict.Buildings))
	for i := range s.Nodes {
		el.Add(s.Nodes[i].Kind.Resolve(dict.Nodes))
	}
	el.Add(s.Workers.Kind.Resolve(dict.Units))

	return el.Err()
}
