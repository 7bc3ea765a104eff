package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/pixil98/go-rts/internal/game"
	"github.com/pixil98/go-rts/internal/harvest"
	"github.com/pixil98/go-rts/internal/storage"
)

var (
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrWorkerNotFound        = errors.New("worker not found")
	ErrNodeNotFound          = errors.New("node not found")
	ErrBuildingNotFound      = errors.New("building not found")
)

// Manager owns one running match: the world, the stockpile, and every
// worker controller. Its Advance is the frame: building queues step
// first, then workers, so a spawn always lands before worker updates in
// the same frame, and a worker spawned this frame is not stepped until
// the next.
type Manager struct {
	mu      sync.Mutex
	world   *game.WorldState
	stock   *game.Stockpile
	workers *harvest.Manager
	tuning  game.Tuning

	pub Publisher
	rng *rand.Rand
	now func() time.Time

	// controllers created this frame, registered after the worker pass
	pending []*harvest.Controller
}

// NewManager builds a match from a scenario: places the building,
// rolls and places the nodes, spawns the starting workers around the
// building, and seeds the stockpile.
func NewManager(scn *game.Scenario, tuning game.Tuning, opts ...ManagerOpt) (*Manager, error) {
	m := &Manager{
		world:  game.NewWorldState(),
		stock:  game.NewStockpile(scn.StartingResources),
		tuning: tuning,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
	m.workers = harvest.NewManager(m)

	for _, opt := range opts {
		opt(m)
	}

	m.stock.OnChange(func(snap map[game.ResourceKind]int) {
		m.publish(Event{Type: EventResourcesChanged, Resources: snap})
	})

	building, err := game.NewBuildingInstance(scn.Building.Kind, scn.Building.Position)
	if err != nil {
		return nil, fmt.Errorf("placing building: %w", err)
	}
	m.world.AddBuilding(building)

	for i, sn := range scn.Nodes {
		node, err := game.NewNodeInstance(sn.Kind, sn.Position, m.rng)
		if err != nil {
			return nil, fmt.Errorf("placing node %d: %w", i, err)
		}
		m.world.AddNode(node)
	}

	for i := 0; i < scn.Workers.Count; i++ {
		pos := building.SpawnPoint(m.now(), tuning.SpawnSeparation, tuning.SpawnExpiry, m.rng)
		unit, err := game.NewUnitInstance(scn.Workers.Kind, pos)
		if err != nil {
			return nil, fmt.Errorf("spawning starting worker %d: %w", i, err)
		}
		m.world.AddUnit(unit)
		if scn.Workers.Kind.Get().Worker {
			if err := m.workers.Add(harvest.NewController(unit, tuning, m.world)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Advance runs one simulation frame covering dt. Satisfies the driver's
// Manager interface.
func (m *Manager) Advance(ctx context.Context, dt time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Production first: spawns must land before worker updates.
	for _, b := range m.world.Buildings() {
		b.Queue.Advance(dt)
		if b.Queue.HasReady() {
			if err := m.spawnUnit(ctx, b, b.Queue.ConsumeReady()); err != nil {
				return err
			}
		}
	}

	m.workers.Advance(dt.Seconds())

	for _, n := range m.world.PruneDepleted() {
		slog.InfoContext(ctx, "node depleted", "node", n.InstanceId, "kind", n.Spec.Key())
		m.publish(Event{Type: EventNodeDepleted, Node: n.InstanceId, NodeKind: n.Spec.Key().String()})
	}

	// Workers spawned this frame join the advance order now.
	for _, c := range m.pending {
		if err := m.workers.Add(c); err != nil {
			return err
		}
	}
	m.pending = nil

	// Units sitting idle slowly recover.
	for _, u := range m.world.Units() {
		if u.CurrentHP < u.MaxHP && m.unitIdle(u) {
			u.Regenerate(1)
		}
	}

	return nil
}

func (m *Manager) unitIdle(u *game.UnitInstance) bool {
	c := m.workers.Get(u.InstanceId)
	return c == nil || c.State() == harvest.StateIdle
}

func (m *Manager) spawnUnit(ctx context.Context, b *game.BuildingInstance, kind storage.Identifier) error {
	ref, ok := b.TrainRef(kind)
	if !ok {
		return fmt.Errorf("building %s finished training unknown kind %q", b.InstanceId, kind)
	}

	pos := b.SpawnPoint(m.now(), m.tuning.SpawnSeparation, m.tuning.SpawnExpiry, m.rng)
	unit, err := game.NewUnitInstance(ref, pos)
	if err != nil {
		return fmt.Errorf("spawning unit: %w", err)
	}
	m.world.AddUnit(unit)

	if ref.Get().Worker {
		m.pending = append(m.pending, harvest.NewController(unit, m.tuning, m.world))
	}

	slog.InfoContext(ctx, "unit spawned", "unit", unit.InstanceId, "kind", kind)
	m.publish(Event{
		Type:     EventUnitSpawned,
		Unit:     unit.InstanceId,
		UnitKind: kind.String(),
		Building: b.InstanceId,
	})
	return nil
}

// OnDelivery credits a worker's load to the stockpile. Satisfies
// harvest.DeliveryHandler; called from inside Advance.
func (m *Manager) OnDelivery(worker *game.UnitInstance, home *game.BuildingInstance, load map[game.ResourceKind]int) {
	for kind, amt := range load {
		m.stock.Add(kind, amt)
	}
	m.publish(Event{
		Type:      EventDelivery,
		Unit:      worker.InstanceId,
		Building:  home.InstanceId,
		Resources: load,
	})
}

// Train deducts the unit's cost and queues a training order on the
// given building. Insufficient resources refuse the order; nothing is
// deducted.
func (m *Manager) Train(buildingID string, kind storage.Identifier) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.findBuilding(buildingID)
	if b == nil {
		return ErrBuildingNotFound
	}

	spec := b.TrainableUnit(kind)
	if spec == nil {
		return fmt.Errorf("%s does not train %q", b.DisplayName(), kind)
	}

	if !m.stock.DeductCost(spec.Cost) {
		return ErrInsufficientResources
	}

	b.Queue.Enqueue(kind, spec.TrainDuration())
	m.publish(Event{Type: EventTrainingQueued, UnitKind: kind.String(), Building: b.InstanceId})
	return nil
}

// AssignWorker tasks a worker with harvesting the given node,
// delivering to the building nearest the worker.
func (m *Manager) AssignWorker(unitID, nodeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.findController(unitID)
	if c == nil {
		return ErrWorkerNotFound
	}

	var node *game.NodeInstance
	for _, n := range m.world.Nodes() {
		if n.InstanceId == nodeID {
			node = n
			break
		}
	}
	if node == nil || node.Depleted() {
		return ErrNodeNotFound
	}

	home := m.nearestBuilding(c.Unit())
	if home == nil {
		return ErrBuildingNotFound
	}

	c.Assign(node, home)
	return nil
}

// StopWorker abandons a worker's current task.
func (m *Manager) StopWorker(unitID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.findController(unitID)
	if c == nil {
		return ErrWorkerNotFound
	}
	c.Stop()
	return nil
}

func (m *Manager) findController(unitID string) *harvest.Controller {
	if c := m.workers.Get(unitID); c != nil {
		return c
	}
	for _, c := range m.pending {
		if c.Unit().InstanceId == unitID {
			return c
		}
	}
	return nil
}

func (m *Manager) findBuilding(id string) *game.BuildingInstance {
	buildings := m.world.Buildings()
	if id == "" && len(buildings) > 0 {
		return buildings[0]
	}
	for _, b := range buildings {
		if b.InstanceId == id {
			return b
		}
	}
	return nil
}

func (m *Manager) nearestBuilding(u *game.UnitInstance) *game.BuildingInstance {
	var best *game.BuildingInstance
	bestDist := 0.0
	for _, b := range m.world.Buildings() {
		d := b.Position.DistanceTo(u.Position)
		if best == nil || d < bestDist {
			best = b
			bestDist = d
		}
	}
	return best
}

// World returns the entity registry for read-only queries.
func (m *Manager) World() *game.WorldState {
	return m.world
}

// Stockpile returns the player's resource counts.
func (m *Manager) Stockpile() *game.Stockpile {
	return m.stock
}

// Workers returns the worker controller registry.
func (m *Manager) Workers() *harvest.Manager {
	return m.workers
}
