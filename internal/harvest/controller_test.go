package harvest

import (
	"math/rand"
	"testing"

	"github.com/pixil98/go-rts/internal/game"
	"github.com/pixil98/go-rts/internal/geom"
	"github.com/pixil98/go-rts/internal/storage"
	"github.com/pixil98/go-testutil"
)

func testTuning() game.Tuning {
	t := game.DefaultTuning()
	return t
}

func testWorkerUnit(t *testing.T, pos geom.Vec3, speed float64) *game.UnitInstance {
	t.Helper()
	ref := storage.NewResolvedSmartIdentifier("worker", &game.UnitSpec{
		Name: "Worker", MoveSpeed: speed, MaxHealth: 50, TrainTime: "4s", Worker: true,
	})
	u, err := game.NewUnitInstance(ref, pos)
	if err != nil {
		t.Fatalf("creating unit: %v", err)
	}
	return u
}

func testNode(t *testing.T, pos geom.Vec3, capacity int) *game.NodeInstance {
	t.Helper()
	ref := storage.NewResolvedSmartIdentifier("tree", &game.NodeSpec{
		Name: "Tree", Resource: game.ResourceWood, CapacityMin: capacity, CapacityMax: capacity,
	})
	n, err := game.NewNodeInstance(ref, pos, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("creating node: %v", err)
	}
	return n
}

func testHome(t *testing.T, pos geom.Vec3) *game.BuildingInstance {
	t.Helper()
	ref := storage.NewResolvedSmartIdentifier("base", &game.BuildingSpec{
		Name: "Base", MaxHealth: 500, SpawnRadius: 5,
	})
	b, err := game.NewBuildingInstance(ref, pos)
	if err != nil {
		t.Fatalf("creating building: %v", err)
	}
	return b
}

// advanceFor steps the controller in half-second frames.
func advanceFor(c *Controller, seconds float64) {
	for t := 0.0; t < seconds; t += 0.5 {
		c.Advance(0.5)
	}
}

func TestControllerFullCycle(t *testing.T) {
	world := game.NewWorldState()
	node := testNode(t, geom.Vec3{X: 5}, 60)
	world.AddNode(node)
	home := testHome(t, geom.Vec3{})
	worker := testWorkerUnit(t, geom.Vec3{}, 10)

	c := NewController(worker, testTuning(), world)
	testutil.AssertEqual(t, "initial state", c.State(), StateIdle)

	c.Assign(node, home)
	testutil.AssertEqual(t, "after assign", c.State(), StateMovingToResource)

	// One half second of walking reaches the node
	c.Advance(0.5)
	testutil.AssertEqual(t, "arrived", c.State(), StateHarvesting)
	testutil.AssertEqual(t, "node marked", node.BeingHarvested(), true)

	// Rate 5 and capacity 10 fill the worker in two whole seconds
	advanceFor(c, 2)
	testutil.AssertEqual(t, "full", c.State(), StateReturning)
	testutil.AssertEqual(t, "carried", c.Carried()[game.ResourceWood], 10)
	testutil.AssertEqual(t, "node remaining", node.Remaining(), 50)
	testutil.AssertEqual(t, "node released", node.BeingHarvested(), false)

	// Walk home and park for delivery
	advanceFor(c, 1)
	testutil.AssertEqual(t, "delivering", c.State(), StateDelivering)
	testutil.AssertEqual(t, "ready", c.ReadyToDeliver(), true)

	// Parked worker stays parked until collected
	advanceFor(c, 5)
	testutil.AssertEqual(t, "still delivering", c.State(), StateDelivering)

	load := c.CollectCarried()
	testutil.AssertEqual(t, "load", load[game.ResourceWood], 10)
	testutil.AssertEqual(t, "resumes toward sticky node", c.State(), StateMovingToResource)
	testutil.AssertEqual(t, "same node", c.Target().InstanceId, node.InstanceId)
}

func TestCollectCarriedDrainsExactlyOnce(t *testing.T) {
	world := game.NewWorldState()
	node := testNode(t, geom.Vec3{X: 5}, 60)
	world.AddNode(node)
	worker := testWorkerUnit(t, geom.Vec3{}, 10)

	c := NewController(worker, testTuning(), world)
	c.Assign(node, testHome(t, geom.Vec3{}))
	advanceFor(c, 5)
	testutil.AssertEqual(t, "delivering", c.ReadyToDeliver(), true)

	first := c.CollectCarried()
	testutil.AssertEqual(t, "first load", first[game.ResourceWood], 10)

	second := c.CollectCarried()
	testutil.AssertEqual(t, "second load empty", len(second), 0)
}

func TestControllerReseeksWhenNodeDepletes(t *testing.T) {
	world := game.NewWorldState()
	small := testNode(t, geom.Vec3{X: 5}, 5)
	other := testNode(t, geom.Vec3{X: 8}, 60)
	world.AddNode(small)
	world.AddNode(other)
	worker := testWorkerUnit(t, geom.Vec3{}, 10)

	c := NewController(worker, testTuning(), world)
	c.Assign(small, testHome(t, geom.Vec3{}))

	// The small node runs dry before the worker fills up
	advanceFor(c, 2)
	testutil.AssertEqual(t, "small node depleted", small.Depleted(), true)
	testutil.AssertEqual(t, "moved on", c.Target().InstanceId, other.InstanceId)
	testutil.AssertEqual(t, "partial load kept", c.Carried()[game.ResourceWood], 5)
}

func TestControllerReturnsLoadedWhenNothingLeft(t *testing.T) {
	world := game.NewWorldState()
	only := testNode(t, geom.Vec3{X: 5}, 5)
	world.AddNode(only)
	worker := testWorkerUnit(t, geom.Vec3{}, 10)

	c := NewController(worker, testTuning(), world)
	c.Assign(only, testHome(t, geom.Vec3{}))

	advanceFor(c, 5)
	testutil.AssertEqual(t, "delivering partial load", c.ReadyToDeliver(), true)
	testutil.AssertEqual(t, "carried", c.Carried()[game.ResourceWood], 5)

	// Nothing to go back to afterwards
	c.CollectCarried()
	testutil.AssertEqual(t, "idle", c.State(), StateIdle)
}

func TestControllerIdlesEmptyHandedWhenNothingLeft(t *testing.T) {
	world := game.NewWorldState()
	worker := testWorkerUnit(t, geom.Vec3{X: 3.4}, 10)
	node := testNode(t, geom.Vec3{X: 5}, 60)
	world.AddNode(node)

	c := NewController(worker, testTuning(), world)
	c.Assign(node, testHome(t, geom.Vec3{}))
	c.Advance(0.5)
	testutil.AssertEqual(t, "harvesting", c.State(), StateHarvesting)

	// The node vanishes with the worker empty handed
	node.Harvest(60)
	world.PruneDepleted()
	c.Advance(0.5)

	testutil.AssertEqual(t, "idle", c.State(), StateIdle)
	testutil.AssertEqual(t, "no target", c.Target() == nil, true)
}

func TestReassignReleasesPreviousNode(t *testing.T) {
	world := game.NewWorldState()
	first := testNode(t, geom.Vec3{X: 5}, 60)
	second := testNode(t, geom.Vec3{Z: 5}, 60)
	world.AddNode(first)
	world.AddNode(second)
	worker := testWorkerUnit(t, geom.Vec3{}, 10)
	home := testHome(t, geom.Vec3{})

	c := NewController(worker, testTuning(), world)
	c.Assign(first, home)
	c.Advance(0.5)
	testutil.AssertEqual(t, "first marked", first.BeingHarvested(), true)

	c.Assign(second, home)
	testutil.AssertEqual(t, "first released", first.BeingHarvested(), false)
	testutil.AssertEqual(t, "target switched", c.Target().InstanceId, second.InstanceId)
	testutil.AssertEqual(t, "walking", c.State(), StateMovingToResource)
}

func TestStopKeepsLoad(t *testing.T) {
	world := game.NewWorldState()
	node := testNode(t, geom.Vec3{X: 5}, 60)
	world.AddNode(node)
	worker := testWorkerUnit(t, geom.Vec3{}, 10)

	c := NewController(worker, testTuning(), world)
	c.Assign(node, testHome(t, geom.Vec3{}))
	advanceFor(c, 1.5)
	testutil.AssertEqual(t, "partially loaded", c.Carried()[game.ResourceWood], 5)

	c.Stop()

	testutil.AssertEqual(t, "idle", c.State(), StateIdle)
	testutil.AssertEqual(t, "node released", node.BeingHarvested(), false)
	testutil.AssertEqual(t, "not moving", worker.Moving(), false)
	testutil.AssertEqual(t, "load kept", c.Carried()[game.ResourceWood], 5)

	// A stopped worker does nothing on later frames
	pos := worker.Position
	advanceFor(c, 2)
	testutil.AssertEqual(t, "stays put", worker.Position, pos)
}
