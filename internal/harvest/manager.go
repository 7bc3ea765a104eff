package harvest

import (
	"fmt"
	"sync"

	"github.com/pixil98/go-rts/internal/game"
)

// DeliveryHandler receives completed deliveries so game-level logic can
// credit the stockpile.
type DeliveryHandler interface {
	OnDelivery(worker *game.UnitInstance, home *game.BuildingInstance, load map[game.ResourceKind]int)
}

// Manager tracks every active worker controller and advances them once
// per frame in registration order. Ready deliveries are drained into
// the handler during the same pass, so the frame's single writer hands
// resources over.
type Manager struct {
	mu          sync.Mutex
	handler     DeliveryHandler
	order       []string
	controllers map[string]*Controller
}

func NewManager(handler DeliveryHandler) *Manager {
	return &Manager{
		handler:     handler,
		controllers: make(map[string]*Controller),
	}
}

// Add registers a controller. The worker joins the advance order at the
// end, so a worker added mid-frame is not stepped until the next frame.
func (m *Manager) Add(c *Controller) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := c.Unit().InstanceId
	if _, exists := m.controllers[id]; exists {
		return fmt.Errorf("worker %s already managed", id)
	}
	m.controllers[id] = c
	m.order = append(m.order, id)
	return nil
}

// Remove unregisters a worker's controller by unit instance id.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.controllers[id]; !ok {
		return
	}
	delete(m.controllers, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Get returns the controller for a unit instance id, or nil.
func (m *Manager) Get(id string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.controllers[id]
}

// ForEach calls fn for each controller in registration order.
func (m *Manager) ForEach(fn func(*Controller)) {
	m.mu.Lock()
	order := append([]string(nil), m.order...)
	controllers := make([]*Controller, 0, len(order))
	for _, id := range order {
		controllers = append(controllers, m.controllers[id])
	}
	m.mu.Unlock()

	for _, c := range controllers {
		fn(c)
	}
}

// Count returns the number of managed workers.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.controllers)
}

// Advance steps every controller by dt seconds and drains any worker
// that finished a delivery. Controllers registered during the pass are
// not stepped until the next one.
func (m *Manager) Advance(dt float64) {
	m.ForEach(func(c *Controller) {
		c.Advance(dt)
		if c.ReadyToDeliver() {
			load := c.CollectCarried()
			if len(load) > 0 && m.handler != nil {
				m.handler.OnDelivery(c.Unit(), c.Home(), load)
			}
		}
	})
}
