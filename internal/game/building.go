package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rts/internal/geom"
	"github.com/pixil98/go-rts/internal/storage"
)

const spawnAngleCount = 8

// BuildingSpec defines a type of production building loaded from asset
// files (e.g., "base").
type BuildingSpec struct {
	// Name is the display label (e.g., "Base")
	Name string `json:"name"`

	// Icon is the glyph shown next to the name in listings
	Icon string `json:"icon"`

	MaxHealth int `json:"max_health"`

	// SpawnRadius is how far from the building's center trained units
	// appear
	SpawnRadius float64 `json:"spawn_radius"`

	// Trains lists the unit kinds this building can produce
	Trains []storage.SmartIdentifier[*UnitSpec] `json:"trains"`
}

// Validate satisfies storage.ValidatingSpec.
func (b *BuildingSpec) Validate() error {
	el := errors.NewErrorList()

	if b.Name == "" {
		el.Add(fmt.Errorf("building name is required"))
	}
	if b.MaxHealth <= 0 {
		el.Add(fmt.Errorf("max_health must be positive"))
	}
	if b.SpawnRadius <= 0 {
		el.Add(fmt.Errorf("spawn_radius must be positive"))
	}
	for i, tr := range b.Trains {
		if err := tr.Validate(); err != nil {
			el.Add(fmt.Errorf("trains[%d]: %w", i, err))
		}
	}

	return el.Err()
}

// Resolve resolves trained-unit foreign keys from the dictionary.
func (b *BuildingSpec) Resolve(dict *Dictionary) error {
	el := errors.NewErrorList()
	for i := range b.Trains {
		el.Add(b.Trains[i].Resolve(dict.Units))
	}
	return el.Err()
}

// spawnMark remembers a recently used spawn point so the next spawn
// avoids stacking units on top of each other.
type spawnMark struct {
	point geom.Vec3
	at    time.Time
}

// BuildingInstance is a single placed production building with its
// training queue.
type BuildingInstance struct {
	InstanceId string
	Spec       storage.SmartIdentifier[*BuildingSpec]
	Position   geom.Vec3

	CurrentHP int
	MaxHP     int

	Queue *ProductionQueue

	recentSpawns []spawnMark
}

// NewBuildingInstance places a building at full health with an empty
// training queue.
func NewBuildingInstance(spec storage.SmartIdentifier[*BuildingSpec], pos geom.Vec3) (*BuildingInstance, error) {
	def := spec.Get()
	if def == nil {
		return nil, fmt.Errorf("unable to place instance of unresolved building %q", spec.Key())
	}

	return &BuildingInstance{
		InstanceId: uuid.NewString(),
		Spec:       spec,
		Position:   pos,
		CurrentHP:  def.MaxHealth,
		MaxHP:      def.MaxHealth,
		Queue:      NewProductionQueue(),
	}, nil
}

// Trains reports whether this building can produce the given unit kind.
func (b *BuildingInstance) Trains(kind storage.Identifier) bool {
	for _, tr := range b.Spec.Get().Trains {
		if tr.Key() == kind {
			return true
		}
	}
	return false
}

// TrainableUnit returns the spec for a unit kind this building trains,
// or nil.
func (b *BuildingInstance) TrainableUnit(kind storage.Identifier) *UnitSpec {
	for _, tr := range b.Spec.Get().Trains {
		if tr.Key() == kind {
			return tr.Get()
		}
	}
	return nil
}

// TrainRef returns the resolved reference for a unit kind this building
// trains, for spawning instances from it.
func (b *BuildingInstance) TrainRef(kind storage.Identifier) (storage.SmartIdentifier[*UnitSpec], bool) {
	for _, tr := range b.Spec.Get().Trains {
		if tr.Key() == kind {
			return tr, true
		}
	}
	return storage.SmartIdentifier[*UnitSpec]{}, false
}

// SpawnPoint picks where a freshly trained unit appears: the first of 8
// fixed angles around the building whose candidate point keeps the
// minimum separation from every recently used spawn point, or a
// uniformly random angle when all 8 are crowded. Either way the point
// lies exactly SpawnRadius from the building.
func (b *BuildingInstance) SpawnPoint(now time.Time, separation float64, expiry time.Duration, rng *rand.Rand) geom.Vec3 {
	b.expireSpawns(now, expiry)

	radius := b.Spec.Get().SpawnRadius

	for i := 0; i < spawnAngleCount; i++ {
		angle := float64(i) * 2 * math.Pi / spawnAngleCount
		candidate := b.spawnAt(angle, radius)
		if b.spawnClear(candidate, separation) {
			b.recentSpawns = append(b.recentSpawns, spawnMark{point: candidate, at: now})
			return candidate
		}
	}

	// All preferred angles occupied; accept overlap at a random angle
	// rather than stalling the queue.
	candidate := b.spawnAt(rng.Float64()*2*math.Pi, radius)
	b.recentSpawns = append(b.recentSpawns, spawnMark{point: candidate, at: now})
	return candidate
}

func (b *BuildingInstance) spawnAt(angle, radius float64) geom.Vec3 {
	return geom.Vec3{
		X: b.Position.X + radius*math.Cos(angle),
		Y: b.Position.Y,
		Z: b.Position.Z + radius*math.Sin(angle),
	}
}

func (b *BuildingInstance) spawnClear(p geom.Vec3, separation float64) bool {
	for _, mark := range b.recentSpawns {
		if mark.point.DistanceTo(p) <= separation {
			return false
		}
	}
	return true
}

func (b *BuildingInstance) expireSpawns(now time.Time, expiry time.Duration) {
	kept := b.recentSpawns[:0]
	for _, mark := range b.recentSpawns {
		if now.Sub(mark.at) < expiry {
			kept = append(kept, mark)
		}
	}
	b.recentSpawns = kept
}

func (b *BuildingInstance) DisplayName() string {
	return b.Spec.Get().Name
}

func (b *BuildingInstance) DisplayIcon() string {
	return b.Spec.Get().Icon
}

func (b *BuildingInstance) HealthPair() (int, int) {
	return b.CurrentHP, b.MaxHP
}

func (b *BuildingInstance) EntityPosition() geom.Vec3 {
	return b.Position
}
