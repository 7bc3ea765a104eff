package game

import (
	"sync"

	"github.com/pixil98/go-rts/internal/geom"
)

// pickTolerance is how far an entity's center may sit from a pick ray
// and still count as hit.
const pickTolerance = 1.0

// WorldState is the single source of truth for all placed entities.
// The simulation mutates it once per frame; console sessions read it
// through these methods, so access is guarded.
type WorldState struct {
	mu        sync.RWMutex
	nodes     []*NodeInstance
	buildings []*BuildingInstance
	units     []*UnitInstance
}

func NewWorldState() *WorldState {
	return &WorldState{}
}

// AddNode registers a placed resource node. Creation order is
// preserved; the nearest-node query scans in this order.
func (w *WorldState) AddNode(n *NodeInstance) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nodes = append(w.nodes, n)
}

// AddBuilding registers a placed building.
func (w *WorldState) AddBuilding(b *BuildingInstance) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buildings = append(w.buildings, b)
}

// AddUnit registers a spawned unit.
func (w *WorldState) AddUnit(u *UnitInstance) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.units = append(w.units, u)
}

// Nodes returns a copy of the node list.
func (w *WorldState) Nodes() []*NodeInstance {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]*NodeInstance(nil), w.nodes...)
}

// Buildings returns a copy of the building list.
func (w *WorldState) Buildings() []*BuildingInstance {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]*BuildingInstance(nil), w.buildings...)
}

// Units returns a copy of the unit list.
func (w *WorldState) Units() []*UnitInstance {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]*UnitInstance(nil), w.units...)
}

// NearestNode returns the closest non-depleted node within radius of
// pos, or nil. Distances tie by strict less-than, so among equally near
// nodes the earliest-placed one wins.
func (w *WorldState) NearestNode(pos geom.Vec3, radius float64) *NodeInstance {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var best *NodeInstance
	bestDist := radius
	for _, n := range w.nodes {
		if n.Depleted() {
			continue
		}
		d := n.Position.DistanceTo(pos)
		if d <= radius && (best == nil || d < bestDist) {
			best = n
			bestDist = d
		}
	}
	return best
}

// PruneDepleted removes depleted nodes from the world and returns them.
func (w *WorldState) PruneDepleted() []*NodeInstance {
	w.mu.Lock()
	defer w.mu.Unlock()

	var removed []*NodeInstance
	kept := w.nodes[:0]
	for _, n := range w.nodes {
		if n.Depleted() {
			removed = append(removed, n)
		} else {
			kept = append(kept, n)
		}
	}
	w.nodes = kept
	return removed
}

// PickEntity casts a ray through the entity list and returns the hit
// closest to the ray origin, or nil. Every entity variant participates
// through the Entity interface.
func (w *WorldState) PickEntity(origin, dir geom.Vec3, maxDist float64) Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var best Entity
	bestAlong := maxDist
	consider := func(e Entity) {
		perp, along := geom.DistanceToRay(e.EntityPosition(), origin, dir)
		if perp <= pickTolerance && along <= maxDist && (best == nil || along < bestAlong) {
			best = e
			bestAlong = along
		}
	}

	for _, b := range w.buildings {
		consider(b)
	}
	for _, u := range w.units {
		consider(u)
	}
	for _, n := range w.nodes {
		consider(n)
	}
	return best
}
