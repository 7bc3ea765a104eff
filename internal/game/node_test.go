package game

import (
	"math/rand"
	"testing"

	"github.com/pixil98/go-rts/internal/geom"
	"github.com/pixil98/go-rts/internal/storage"
	"github.com/pixil98/go-testutil"
)

func testNodeRef(min, max int) storage.SmartIdentifier[*NodeSpec] {
	return storage.NewResolvedSmartIdentifier("tree", &NodeSpec{
		Name:        "Tree",
		Resource:    ResourceWood,
		CapacityMin: min,
		CapacityMax: max,
	})
}

func TestNewNodeInstanceCapacityRoll(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		n, err := NewNodeInstance(testNodeRef(40, 80), geom.Vec3{}, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Capacity() < 40 || n.Capacity() > 80 {
			t.Errorf("capacity %d outside [40, 80]", n.Capacity())
		}
		testutil.AssertEqual(t, "remaining starts full", n.Remaining(), n.Capacity())
	}
}

func TestNewNodeInstanceFixedCapacity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	n, err := NewNodeInstance(testNodeRef(60, 60), geom.Vec3{}, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "capacity", n.Capacity(), 60)
}

func TestNewNodeInstanceUnresolved(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := NewNodeInstance(storage.NewSmartIdentifier[*NodeSpec]("missing"), geom.Vec3{}, rng)
	if err == nil {
		t.Error("expected error for unresolved spec")
	}
}

func TestNodeHarvest(t *testing.T) {
	tests := map[string]struct {
		capacity  int
		requests  []int
		expTaken  []int
		expLeft   int
		expDeplete bool
	}{
		"partial": {
			capacity: 50,
			requests: []int{10},
			expTaken: []int{10},
			expLeft:  40,
		},
		"clamped at remaining": {
			capacity:   50,
			requests:   []int{40, 40},
			expTaken:   []int{40, 10},
			expLeft:    0,
			expDeplete: true,
		},
		"depleted yields zero": {
			capacity:   10,
			requests:   []int{10, 5},
			expTaken:   []int{10, 0},
			expLeft:    0,
			expDeplete: true,
		},
		"negative request": {
			capacity: 10,
			requests: []int{-5},
			expTaken: []int{0},
			expLeft:  10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			n, err := NewNodeInstance(testNodeRef(tt.capacity, tt.capacity), geom.Vec3{}, rng)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for i, req := range tt.requests {
				taken := n.Harvest(req)
				testutil.AssertEqual(t, "taken", taken, tt.expTaken[i])
			}
			testutil.AssertEqual(t, "remaining", n.Remaining(), tt.expLeft)
			testutil.AssertEqual(t, "depleted", n.Depleted(), tt.expDeplete)
		})
	}
}

func TestNodeSpecValidate(t *testing.T) {
	tests := map[string]struct {
		spec   NodeSpec
		expErr bool
	}{
		"valid": {
			spec: NodeSpec{Name: "Tree", Resource: ResourceWood, CapacityMin: 10, CapacityMax: 20},
		},
		"missing name": {
			spec:   NodeSpec{Resource: ResourceWood, CapacityMin: 10, CapacityMax: 20},
			expErr: true,
		},
		"unknown resource": {
			spec:   NodeSpec{Name: "Tree", Resource: "plutonium", CapacityMin: 10, CapacityMax: 20},
			expErr: true,
		},
		"max below min": {
			spec:   NodeSpec{Name: "Tree", Resource: ResourceWood, CapacityMin: 20, CapacityMax: 10},
			expErr: true,
		},
		"zero min": {
			spec:   NodeSpec{Name: "Tree", Resource: ResourceWood, CapacityMax: 10},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.spec.Validate()
			testutil.AssertEqual(t, "error", err != nil, tt.expErr)
		})
	}
}
