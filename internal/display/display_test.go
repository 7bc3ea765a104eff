package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-rts/internal/game"
	"github.com/pixil98/go-rts/internal/sim"
	"github.com/pixil98/go-testutil"
)

func TestBarWidth(t *testing.T) {
	tests := map[string]struct {
		fraction float64
		width    int
		exp      string
	}{
		"empty":       {fraction: 0, width: 10, exp: "[>         ]   0%"},
		"half":        {fraction: 0.5, width: 10, exp: "[=====>    ]  50%"},
		"full":        {fraction: 1, width: 10, exp: "[==========] 100%"},
		"clamped low": {fraction: -0.5, width: 10, exp: "[>         ]   0%"},
		"clamped high": {fraction: 1.5, width: 10, exp: "[==========] 100%"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "bar", BarWidth(tt.fraction, tt.width), tt.exp)
		})
	}
}

func TestHealthBar(t *testing.T) {
	testutil.AssertEqual(t, "zero max", HealthBar(5, 0), "[                    ] 5/0")
	testutil.AssertEqual(t, "full", HealthBar(100, 100), "[====================] 100/100")

	half := HealthBar(50, 100)
	if !strings.HasSuffix(half, " 50/100") {
		t.Errorf("unexpected suffix: %q", half)
	}
	testutil.AssertEqual(t, "half fill", strings.Count(half, "="), 10)
}

func TestResourceLine(t *testing.T) {
	line := ResourceLine(map[game.ResourceKind]int{
		game.ResourceWood: 100,
		game.ResourceFood: 50,
	})

	// Every kind appears, in display order, missing kinds as zero
	testutil.AssertEqual(t, "line", line, "wood:100  food:50  stone:0  gold:0  iron:0  tools:0")
}

func TestCarriedLine(t *testing.T) {
	tests := map[string]struct {
		carried map[game.ResourceKind]int
		exp     string
	}{
		"empty":       {carried: nil, exp: ""},
		"zeros hidden": {carried: map[game.ResourceKind]int{game.ResourceWood: 0}, exp: ""},
		"sorted": {
			carried: map[game.ResourceKind]int{game.ResourceWood: 5, game.ResourceFood: 2},
			exp:     "food:2 wood:5",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "line", CarriedLine(tt.carried), tt.exp)
		})
	}
}

func TestRenderStatus(t *testing.T) {
	st := sim.Status{
		Resources: map[game.ResourceKind]int{game.ResourceWood: 100},
		Buildings: []sim.BuildingStatus{{
			Name: "Base", Icon: "B", CurrentHP: 500, MaxHP: 500,
			QueueLen: 2, Progress: 0.5, Orders: []string{"worker", "worker"},
		}},
		Workers: []sim.WorkerStatus{{
			Name: "Worker", Icon: "W", State: "harvesting", CurrentHP: 50, MaxHP: 50,
			Carried: map[game.ResourceKind]int{game.ResourceWood: 5},
		}},
		Nodes: []sim.NodeStatus{{
			Name: "Tree", Icon: "T", Remaining: 40, Capacity: 60, BeingHarvested: true,
		}},
	}

	out := RenderStatus(st)

	for _, want := range []string{
		"wood:100",
		"Base",
		"training worker",
		"(2 queued)",
		"1. W Worker",
		"carrying wood:5",
		"1. T Tree  40/60",
		"(worked)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEvent(t *testing.T) {
	tests := map[string]struct {
		ev  sim.Event
		exp string
	}{
		"training queued": {
			ev:  sim.Event{Type: sim.EventTrainingQueued, UnitKind: "worker"},
			exp: "Training queued: worker",
		},
		"unit spawned": {
			ev:  sim.Event{Type: sim.EventUnitSpawned, UnitKind: "worker", Unit: "abcdef1234567890"},
			exp: "A new worker is ready (abcdef12)",
		},
		"delivery": {
			ev: sim.Event{
				Type: sim.EventDelivery, Unit: "abcdef1234567890",
				Resources: map[game.ResourceKind]int{game.ResourceWood: 10},
			},
			exp: "Worker abcdef12 delivered 10 wood",
		},
		"node depleted": {
			ev:  sim.Event{Type: sim.EventNodeDepleted, NodeKind: "tree"},
			exp: "A tree has been exhausted",
		},
		"unknown type": {
			ev:  sim.Event{Type: "mystery"},
			exp: "[mystery]",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "line", RenderEvent(tt.ev), tt.exp)
		})
	}
}

func TestCapitalize(t *testing.T) {
	testutil.AssertEqual(t, "word", Capitalize("tree"), "Tree")
	testutil.AssertEqual(t, "empty", Capitalize(""), "")
	testutil.AssertEqual(t, "already upper", Capitalize("Tree"), "Tree")
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("word ", 40)
	for _, line := range strings.Split(Wrap(long), "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line longer than %d: %q", DefaultWidth, line)
		}
	}
}
