package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// Tuning holds the gameplay constants shared by every worker and
// building. Tests run with accelerated values; the defaults match the
// shipped balance.
type Tuning struct {
	// HarvestRate is resource units gathered per whole second at a node.
	HarvestRate float64

	// HarvestRange is how close a worker must be to a node to gather.
	HarvestRange float64

	// DeliveryRange is how close a worker must be to its home building
	// to hand over its load.
	DeliveryRange float64

	// CarryCapacity caps the carried amount per resource kind.
	CarryCapacity int

	// SeekRadius bounds the search for a replacement node when a
	// worker's node runs out.
	SeekRadius float64

	// SpawnSeparation is the minimum distance between freshly spawned
	// units.
	SpawnSeparation float64

	// SpawnExpiry is how long a spawn point counts as occupied.
	SpawnExpiry time.Duration
}

// DefaultTuning returns the shipped balance values.
func DefaultTuning() Tuning {
	return Tuning{
		HarvestRate:     5,
		HarvestRange:    2,
		DeliveryRange:   3,
		CarryCapacity:   10,
		SeekRadius:      15,
		SpawnSeparation: 1.5,
		SpawnExpiry:     2 * time.Second,
	}
}

func (t Tuning) Validate() error {
	el := errors.NewErrorList()

	if t.HarvestRate <= 0 {
		el.Add(fmt.Errorf("harvest rate must be positive"))
	}
	if t.HarvestRange <= 0 {
		el.Add(fmt.Errorf("harvest range must be positive"))
	}
	if t.DeliveryRange <= 0 {
		el.Add(fmt.Errorf("delivery range must be positive"))
	}
	if t.CarryCapacity <= 0 {
		el.Add(fmt.Errorf("carry capacity must be positive"))
	}
	if t.SeekRadius <= 0 {
		el.Add(fmt.Errorf("seek radius must be positive"))
	}
	if t.SpawnSeparation < 0 {
		el.Add(fmt.Errorf("spawn separation must not be negative"))
	}
	if t.SpawnExpiry < 0 {
		el.Add(fmt.Errorf("spawn expiry must not be negative"))
	}

	return el.Err()
}
