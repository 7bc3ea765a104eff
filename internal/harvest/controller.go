package harvest

import (
	"math"

	"github.com/pixil98/go-rts/internal/game"
	"github.com/pixil98/go-rts/internal/geom"
)

// approachFactor puts the worker's stopping point just inside harvest
// range instead of at the node's center.
const approachFactor = 0.8

// arriveEpsilon absorbs float error when checking the delivery range at
// the exact standoff distance.
const arriveEpsilon = 1e-6

// State is a worker's position in the harvest cycle.
type State int

const (
	StateIdle State = iota
	StateMovingToResource
	StateHarvesting
	StateReturning
	StateDelivering
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMovingToResource:
		return "moving"
	case StateHarvesting:
		return "harvesting"
	case StateReturning:
		return "returning"
	case StateDelivering:
		return "delivering"
	default:
		return "unknown"
	}
}

// NodeFinder locates a replacement node when a worker's node runs out.
// game.WorldState implements it.
type NodeFinder interface {
	NearestNode(pos geom.Vec3, radius float64) *game.NodeInstance
}

// Controller runs one worker's harvest cycle: walk to a node, gather
// until full or the node runs dry, walk home, wait for the delivery to
// be collected, repeat. The assigned node is sticky; the worker returns
// to it after each delivery until it depletes.
type Controller struct {
	unit   *game.UnitInstance
	tuning game.Tuning
	finder NodeFinder

	state    State
	assigned *game.NodeInstance
	target   *game.NodeInstance
	home     *game.BuildingInstance
	carried  map[game.ResourceKind]int
	accum    float64
}

// NewController creates an idle controller for the given worker unit.
func NewController(unit *game.UnitInstance, tuning game.Tuning, finder NodeFinder) *Controller {
	return &Controller{
		unit:    unit,
		tuning:  tuning,
		finder:  finder,
		carried: make(map[game.ResourceKind]int),
	}
}

// Assign tasks the worker with harvesting node and delivering to home.
// Valid from any state; re-tasking overrides the current task and
// releases the previous node's being-harvested mark.
func (c *Controller) Assign(node *game.NodeInstance, home *game.BuildingInstance) {
	if c.target != nil && c.target != node {
		c.target.SetBeingHarvested(false)
	}

	c.assigned = node
	c.target = node
	c.home = home
	c.accum = 0
	c.moveToTarget()
}

// Stop abandons the current task: clears the assignment, releases the
// node, cancels movement, and goes idle. Anything carried stays carried.
func (c *Controller) Stop() {
	if c.target != nil {
		c.target.SetBeingHarvested(false)
	}
	c.assigned = nil
	c.target = nil
	c.accum = 0
	c.state = StateIdle
	c.unit.StopMoving()
}

// Advance runs one state-machine step covering dt seconds.
func (c *Controller) Advance(dt float64) {
	switch c.state {
	case StateIdle, StateDelivering:
		// Idle waits for Assign; Delivering waits for CollectCarried.

	case StateMovingToResource:
		c.unit.Advance(dt)
		if c.unit.Moving() {
			return
		}
		if c.target == nil || c.target.Depleted() {
			c.reseek()
			return
		}
		if c.unit.Position.DistanceTo(c.target.Position) <= c.tuning.HarvestRange {
			c.accum = 0
			c.state = StateHarvesting
			c.target.SetBeingHarvested(true)
			return
		}
		// Stopped short somehow; walk the rest of the way.
		c.moveToTarget()

	case StateHarvesting:
		c.advanceHarvest(dt)

	case StateReturning:
		c.unit.Advance(dt)
		if c.unit.Moving() {
			return
		}
		if c.unit.Position.DistanceTo(c.home.Position) <= c.tuning.DeliveryRange+arriveEpsilon {
			c.state = StateDelivering
			return
		}
		c.moveHome()
	}
}

func (c *Controller) advanceHarvest(dt float64) {
	if c.target == nil || c.target.Depleted() {
		c.releaseTarget()
		c.reseek()
		return
	}

	kind := c.target.Resource()

	c.accum += dt
	if whole := math.Floor(c.accum); whole >= 1 {
		requested := int(whole * c.tuning.HarvestRate)
		if space := c.tuning.CarryCapacity - c.carried[kind]; requested > space {
			requested = space
		}
		c.carried[kind] += c.target.Harvest(requested)
		c.accum -= whole
	}

	if c.carried[kind] >= c.tuning.CarryCapacity {
		c.releaseTarget()
		c.returnHome()
		return
	}
	if c.target.Depleted() {
		c.releaseTarget()
		c.reseek()
	}
}

// reseek picks the next node after depletion or delivery: the sticky
// assigned node if it still has anything, otherwise the nearest live
// node in seek range. With nothing to harvest the worker heads home if
// loaded, or goes idle.
func (c *Controller) reseek() {
	if c.assigned != nil && !c.assigned.Depleted() {
		c.target = c.assigned
		c.moveToTarget()
		return
	}

	if found := c.finder.NearestNode(c.unit.Position, c.tuning.SeekRadius); found != nil {
		c.assigned = found
		c.target = found
		c.moveToTarget()
		return
	}

	if c.totalCarried() > 0 {
		c.assigned = nil
		c.target = nil
		c.returnHome()
		return
	}

	c.assigned = nil
	c.target = nil
	c.state = StateIdle
	c.unit.StopMoving()
}

// ReadyToDeliver reports whether the worker is parked at its home
// building waiting for its load to be collected.
func (c *Controller) ReadyToDeliver() bool {
	return c.state == StateDelivering
}

// CollectCarried drains the carried load and returns it; a second call
// returns nothing. When collected mid-delivery the worker resumes its
// cycle immediately.
func (c *Controller) CollectCarried() map[game.ResourceKind]int {
	load := make(map[game.ResourceKind]int)
	for kind, amt := range c.carried {
		if amt > 0 {
			load[kind] = amt
		}
		delete(c.carried, kind)
	}

	if c.state == StateDelivering {
		c.reseek()
	}
	return load
}

func (c *Controller) releaseTarget() {
	if c.target != nil {
		c.target.SetBeingHarvested(false)
	}
}

func (c *Controller) moveToTarget() {
	c.state = StateMovingToResource
	standoff := approachFactor * c.tuning.HarvestRange
	c.unit.MoveTo(geom.ApproachPoint(c.unit.Position, c.target.Position, standoff))
}

func (c *Controller) moveHome() {
	c.unit.MoveTo(geom.ApproachPoint(c.unit.Position, c.home.Position, c.tuning.DeliveryRange))
}

func (c *Controller) returnHome() {
	c.state = StateReturning
	c.moveHome()
}

func (c *Controller) totalCarried() int {
	total := 0
	for _, amt := range c.carried {
		total += amt
	}
	return total
}

// State returns the current task state.
func (c *Controller) State() State {
	return c.state
}

// Unit returns the worker this controller drives.
func (c *Controller) Unit() *game.UnitInstance {
	return c.unit
}

// Target returns the node currently being worked, if any.
func (c *Controller) Target() *game.NodeInstance {
	return c.target
}

// Home returns the delivery building, if a task has been assigned.
func (c *Controller) Home() *game.BuildingInstance {
	return c.home
}

// Carried returns a copy of the carried amounts.
func (c *Controller) Carried() map[game.ResourceKind]int {
	out := make(map[game.ResourceKind]int, len(c.carried))
	for kind, amt := range c.carried {
		out[kind] = amt
	}
	return out
}
