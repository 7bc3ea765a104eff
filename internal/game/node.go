package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rts/internal/geom"
	"github.com/pixil98/go-rts/internal/storage"
)

// NodeSpec defines a type of harvestable resource node loaded from
// asset files (e.g., "tree", "stone-outcrop"). Multiple instances can
// be placed from one definition.
type NodeSpec struct {
	// Name is the display label (e.g., "Tree")
	Name string `json:"name"`

	// Icon is the glyph shown next to the name in listings
	Icon string `json:"icon"`

	// Resource is the kind this node yields when harvested
	Resource ResourceKind `json:"resource"`

	// CapacityMin and CapacityMax bound the randomized starting
	// capacity of each placed instance
	CapacityMin int `json:"capacity_min"`
	CapacityMax int `json:"capacity_max"`
}

// Validate satisfies storage.ValidatingSpec.
func (n *NodeSpec) Validate() error {
	el := errors.NewErrorList()

	if n.Name == "" {
		el.Add(fmt.Errorf("node name is required"))
	}
	if !n.Resource.Valid() {
		el.Add(fmt.Errorf("unknown resource kind %q", n.Resource))
	}
	if n.CapacityMin <= 0 {
		el.Add(fmt.Errorf("capacity_min must be positive"))
	}
	if n.CapacityMax < n.CapacityMin {
		el.Add(fmt.Errorf("capacity_max must not be less than capacity_min"))
	}

	return el.Err()
}

// NodeInstance is a single placed resource node. Position and capacity
// are fixed at placement; remaining only ever goes down.
type NodeInstance struct {
	InstanceId string
	Spec       storage.SmartIdentifier[*NodeSpec]
	Position   geom.Vec3

	capacity       int
	remaining      int
	beingHarvested bool
}

// NewNodeInstance places a node with a capacity rolled uniformly in
// [CapacityMin, CapacityMax].
func NewNodeInstance(spec storage.SmartIdentifier[*NodeSpec], pos geom.Vec3, rng *rand.Rand) (*NodeInstance, error) {
	def := spec.Get()
	if def == nil {
		return nil, fmt.Errorf("unable to place instance of unresolved node %q", spec.Key())
	}

	capacity := def.CapacityMin
	if spread := def.CapacityMax - def.CapacityMin; spread > 0 {
		capacity += rng.Intn(spread + 1)
	}

	return &NodeInstance{
		InstanceId: uuid.NewString(),
		Spec:       spec,
		Position:   pos,
		capacity:   capacity,
		remaining:  capacity,
	}, nil
}

// Harvest removes up to requested units and returns the amount actually
// taken, which is zero once the node is depleted. It never fails.
func (n *NodeInstance) Harvest(requested int) int {
	if requested < 0 {
		return 0
	}
	actual := requested
	if actual > n.remaining {
		actual = n.remaining
	}
	n.remaining -= actual
	return actual
}

func (n *NodeInstance) Depleted() bool {
	return n.remaining <= 0
}

func (n *NodeInstance) Remaining() int {
	return n.remaining
}

func (n *NodeInstance) Capacity() int {
	return n.capacity
}

// SetBeingHarvested marks the node as actively worked. This is display
// state, not mutual exclusion; two workers racing the same node down is
// allowed.
func (n *NodeInstance) SetBeingHarvested(v bool) {
	n.beingHarvested = v
}

func (n *NodeInstance) BeingHarvested() bool {
	return n.beingHarvested
}

func (n *NodeInstance) Resource() ResourceKind {
	return n.Spec.Get().Resource
}

func (n *NodeInstance) DisplayName() string {
	return n.Spec.Get().Name
}

func (n *NodeInstance) DisplayIcon() string {
	return n.Spec.Get().Icon
}

func (n *NodeInstance) HealthPair() (int, int) {
	return n.remaining, n.capacity
}

func (n *NodeInstance) EntityPosition() geom.Vec3 {
	return n.Position
}
