package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// ResourceKind identifies one of the stockpiled resource types.
type ResourceKind string

const (
	ResourceWood  ResourceKind = "wood"
	ResourceFood  ResourceKind = "food"
	ResourceStone ResourceKind = "stone"
	ResourceGold  ResourceKind = "gold"
	ResourceIron  ResourceKind = "iron"
	ResourceTools ResourceKind = "tools"
)

// ResourceKinds lists every kind in display order.
var ResourceKinds = []ResourceKind{
	ResourceWood,
	ResourceFood,
	ResourceStone,
	ResourceGold,
	ResourceIron,
	ResourceTools,
}

func (k ResourceKind) Valid() bool {
	for _, known := range ResourceKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Cost is a partial mapping of resource kinds to required amounts.
// Kinds not present are not required.
type Cost map[ResourceKind]int

func (c Cost) Validate() error {
	el := errors.NewErrorList()

	for kind, amt := range c {
		if !kind.Valid() {
			el.Add(fmt.Errorf("unknown resource kind %q", kind))
		}
		if amt < 0 {
			el.Add(fmt.Errorf("%s: cost must not be negative", kind))
		}
	}

	return el.Err()
}
