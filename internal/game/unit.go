package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rts/internal/geom"
	"github.com/pixil98/go-rts/internal/storage"
)

// UnitSpec defines a type of mobile unit loaded from asset files.
// Multiple instances can be trained from one definition.
type UnitSpec struct {
	// Name is the display label (e.g., "Worker")
	Name string `json:"name"`

	// Icon is the glyph shown next to the name in listings
	Icon string `json:"icon"`

	// MoveSpeed is world units per second
	MoveSpeed float64 `json:"move_speed"`

	MaxHealth int `json:"max_health"`

	// TrainTime is how long one training order takes (e.g., "5s")
	TrainTime string `json:"train_time"`

	// Cost is deducted from the stockpile when training is queued
	Cost Cost `json:"cost,omitempty"`

	// Worker marks units that can be assigned to harvest
	Worker bool `json:"worker,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (u *UnitSpec) Validate() error {
	el := errors.NewErrorList()

	if u.Name == "" {
		el.Add(fmt.Errorf("unit name is required"))
	}
	if u.MoveSpeed <= 0 {
		el.Add(fmt.Errorf("move_speed must be positive"))
	}
	if u.MaxHealth <= 0 {
		el.Add(fmt.Errorf("max_health must be positive"))
	}
	if u.TrainTime == "" {
		el.Add(fmt.Errorf("train_time is required"))
	} else {
		d, err := time.ParseDuration(u.TrainTime)
		if err != nil {
			el.Add(fmt.Errorf("invalid train_time %q: %w", u.TrainTime, err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("train_time must be positive"))
		}
	}
	el.Add(u.Cost.Validate())

	return el.Err()
}

// TrainDuration returns the parsed training time. Validate guarantees
// it parses.
func (u *UnitSpec) TrainDuration() time.Duration {
	d, _ := time.ParseDuration(u.TrainTime)
	return d
}

// UnitInstance is a single spawned unit: a position, an optional
// movement target, and health. Movement converges on the target,
// distance never increases while moving.
type UnitInstance struct {
	InstanceId string
	Spec       storage.SmartIdentifier[*UnitSpec]
	Position   geom.Vec3

	CurrentHP int
	MaxHP     int

	target *geom.Vec3
}

// NewUnitInstance spawns a unit of the given definition at full health.
func NewUnitInstance(spec storage.SmartIdentifier[*UnitSpec], pos geom.Vec3) (*UnitInstance, error) {
	def := spec.Get()
	if def == nil {
		return nil, fmt.Errorf("unable to spawn instance of unresolved unit %q", spec.Key())
	}

	return &UnitInstance{
		InstanceId: uuid.NewString(),
		Spec:       spec,
		Position:   pos,
		CurrentHP:  def.MaxHealth,
		MaxHP:      def.MaxHealth,
	}, nil
}

// MoveTo sets the movement target.
func (u *UnitInstance) MoveTo(p geom.Vec3) {
	target := p
	u.target = &target
}

// StopMoving cancels any movement in progress.
func (u *UnitInstance) StopMoving() {
	u.target = nil
}

// Moving reports whether the unit has an unreached target.
func (u *UnitInstance) Moving() bool {
	return u.target != nil
}

// Target returns the current movement target, if any.
func (u *UnitInstance) Target() (geom.Vec3, bool) {
	if u.target == nil {
		return geom.Vec3{}, false
	}
	return *u.target, true
}

// Advance moves the unit toward its target for dt seconds. Arrival
// lands exactly on the target and clears it.
func (u *UnitInstance) Advance(dt float64) {
	if u.target == nil {
		return
	}

	u.Position = u.Position.MoveToward(*u.target, u.Spec.Get().MoveSpeed*dt)
	if u.Position == *u.target {
		u.target = nil
	}
}

// Regenerate restores up to n hit points, clamped at max.
func (u *UnitInstance) Regenerate(n int) {
	u.CurrentHP += n
	if u.CurrentHP > u.MaxHP {
		u.CurrentHP = u.MaxHP
	}
}

func (u *UnitInstance) DisplayName() string {
	return u.Spec.Get().Name
}

func (u *UnitInstance) DisplayIcon() string {
	return u.Spec.Get().Icon
}

func (u *UnitInstance) HealthPair() (int, int) {
	return u.CurrentHP, u.MaxHP
}

func (u *UnitInstance) EntityPosition() geom.Vec3 {
	return u.Position
}
