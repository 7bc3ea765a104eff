package sim

import (
	"github.com/pixil98/go-rts/internal/game"
	"github.com/pixil98/go-rts/internal/geom"
	"github.com/pixil98/go-rts/internal/harvest"
)

// Status is a read-only snapshot of the match for display. Slice order
// is stable between frames except where entities are removed, so
// ordinals shown to a spectator resolve against a fresh snapshot.
type Status struct {
	Resources map[game.ResourceKind]int
	Buildings []BuildingStatus
	Workers   []WorkerStatus
	Nodes     []NodeStatus
}

type BuildingStatus struct {
	Id        string
	Name      string
	Icon      string
	CurrentHP int
	MaxHP     int
	QueueLen  int
	Progress  float64
	Orders    []string
}

type WorkerStatus struct {
	Id        string
	Name      string
	Icon      string
	State     string
	CurrentHP int
	MaxHP     int
	Carried   map[game.ResourceKind]int
	Position  geom.Vec3
}

type NodeStatus struct {
	Id             string
	Name           string
	Icon           string
	Remaining      int
	Capacity       int
	BeingHarvested bool
	Position       geom.Vec3
}

// Status captures the current match state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := Status{Resources: m.stock.Snapshot()}

	for _, b := range m.world.Buildings() {
		bs := BuildingStatus{
			Id:       b.InstanceId,
			Name:     b.DisplayName(),
			Icon:     b.DisplayIcon(),
			QueueLen: b.Queue.Len(),
			Progress: b.Queue.ProgressFraction(),
		}
		bs.CurrentHP, bs.MaxHP = b.HealthPair()
		for _, o := range b.Queue.Orders() {
			bs.Orders = append(bs.Orders, o.Kind.String())
		}
		st.Buildings = append(st.Buildings, bs)
	}

	m.workers.ForEach(func(c *harvest.Controller) {
		u := c.Unit()
		ws := WorkerStatus{
			Id:       u.InstanceId,
			Name:     u.DisplayName(),
			Icon:     u.DisplayIcon(),
			State:    c.State().String(),
			Carried:  c.Carried(),
			Position: u.Position,
		}
		ws.CurrentHP, ws.MaxHP = u.HealthPair()
		st.Workers = append(st.Workers, ws)
	})

	for _, n := range m.world.Nodes() {
		ns := NodeStatus{
			Id:             n.InstanceId,
			Name:           n.DisplayName(),
			Icon:           n.DisplayIcon(),
			BeingHarvested: n.BeingHarvested(),
			Position:       n.Position,
		}
		ns.Remaining, ns.Capacity = n.HealthPair()
		st.Nodes = append(st.Nodes, ns)
	}

	return st
}
