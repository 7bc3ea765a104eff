package game

import (
	"testing"

	"github.com/pixil98/go-rts/internal/storage"
	"github.com/pixil98/go-testutil"
)

// mapStorer backs a Dictionary with fixed specs for resolution tests.
type mapStorer[T storage.ValidatingSpec] map[storage.Identifier]T

func (m mapStorer[T]) Save(id storage.Identifier, v T) error { m[id] = v; return nil }
func (m mapStorer[T]) Get(id storage.Identifier) T           { return m[id] }
func (m mapStorer[T]) GetAll() map[storage.Identifier]T      { return m }

func testDictionary() *Dictionary {
	return &Dictionary{
		Units: mapStorer[*UnitSpec]{
			"worker": {Name: "Worker", MoveSpeed: 3, MaxHealth: 50, TrainTime: "4s", Worker: true},
		},
		Buildings: mapStorer[*BuildingSpec]{
			"base": {Name: "Base", MaxHealth: 500, SpawnRadius: 5,
				Trains: []storage.SmartIdentifier[*UnitSpec]{storage.NewSmartIdentifier[*UnitSpec]("worker")}},
		},
		Nodes: mapStorer[*NodeSpec]{
			"tree": {Name: "Tree", Resource: ResourceWood, CapacityMin: 40, CapacityMax: 80},
		},
		Scenarios: mapStorer[*Scenario]{},
	}
}

func testScenario() *Scenario {
	return &Scenario{
		Name:              "Test",
		StartingResources: map[ResourceKind]int{ResourceWood: 100},
		Building:          ScenarioBuilding{Kind: storage.NewSmartIdentifier[*BuildingSpec]("base")},
		Nodes:             []ScenarioNode{{Kind: storage.NewSmartIdentifier[*NodeSpec]("tree")}},
		Workers:           ScenarioWorkers{Kind: storage.NewSmartIdentifier[*UnitSpec]("worker"), Count: 3},
	}
}

func TestScenarioValidate(t *testing.T) {
	tests := map[string]struct {
		mutate func(s *Scenario)
		expErr bool
	}{
		"valid": {
			mutate: func(s *Scenario) {},
		},
		"missing name": {
			mutate: func(s *Scenario) { s.Name = "" },
			expErr: true,
		},
		"unknown starting resource": {
			mutate: func(s *Scenario) { s.StartingResources = map[ResourceKind]int{"mana": 1} },
			expErr: true,
		},
		"negative starting amount": {
			mutate: func(s *Scenario) { s.StartingResources = map[ResourceKind]int{ResourceWood: -1} },
			expErr: true,
		},
		"no nodes": {
			mutate: func(s *Scenario) { s.Nodes = nil },
			expErr: true,
		},
		"negative worker count": {
			mutate: func(s *Scenario) { s.Workers.Count = -1 },
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := testScenario()
			tt.mutate(s)
			err := s.Validate()
			testutil.AssertEqual(t, "error", err != nil, tt.expErr)
		})
	}
}

func TestDictionaryResolve(t *testing.T) {
	dict := testDictionary()
	scn := testScenario()
	dict.Scenarios.Save("test", scn)

	if err := dict.Resolve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if scn.Building.Kind.Get() == nil {
		t.Error("building kind not resolved")
	}
	if scn.Nodes[0].Kind.Get() == nil {
		t.Error("node kind not resolved")
	}
	if scn.Workers.Kind.Get() == nil {
		t.Error("worker kind not resolved")
	}

	base := dict.Buildings.Get("base")
	if base.Trains[0].Get() == nil {
		t.Error("building train ref not resolved")
	}
}

func TestDictionaryResolveMissingRef(t *testing.T) {
	dict := testDictionary()
	scn := testScenario()
	scn.Building.Kind = storage.NewSmartIdentifier[*BuildingSpec]("castle")
	dict.Scenarios.Save("test", scn)

	if err := dict.Resolve(); err == nil {
		t.Error("expected error for unknown building kind")
	}
}
