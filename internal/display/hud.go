package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-rts/internal/game"
	"github.com/pixil98/go-rts/internal/sim"
)

// ResourceLine renders the stockpile as one line, every kind in display
// order.
func ResourceLine(resources map[game.ResourceKind]int) string {
	parts := make([]string, 0, len(game.ResourceKinds))
	for _, kind := range game.ResourceKinds {
		parts = append(parts, fmt.Sprintf("%s:%d", kind, resources[kind]))
	}
	return strings.Join(parts, "  ")
}

// CarriedLine renders only the non-zero carried amounts, sorted by kind
// so output is stable. Returns "" for an empty load.
func CarriedLine(carried map[game.ResourceKind]int) string {
	var kinds []string
	for kind, amt := range carried {
		if amt > 0 {
			kinds = append(kinds, fmt.Sprintf("%s:%d", kind, amt))
		}
	}
	sort.Strings(kinds)
	return strings.Join(kinds, " ")
}

// RenderStatus renders the full spectator HUD for one snapshot.
func RenderStatus(st sim.Status) string {
	var b strings.Builder

	b.WriteString("Resources: ")
	b.WriteString(ResourceLine(st.Resources))
	b.WriteString("\n\n")

	for _, bs := range st.Buildings {
		fmt.Fprintf(&b, "%s %s  %s\n", bs.Icon, bs.Name, HealthBar(bs.CurrentHP, bs.MaxHP))
		if bs.QueueLen > 0 {
			fmt.Fprintf(&b, "  training %s %s (%d queued)\n", bs.Orders[0], Bar(bs.Progress), bs.QueueLen)
		} else {
			b.WriteString("  training queue empty\n")
		}
	}

	if len(st.Workers) > 0 {
		b.WriteString("\nWorkers:\n")
		for i, ws := range st.Workers {
			fmt.Fprintf(&b, " %2d. %s %s  %-10s  %s", i+1, ws.Icon, ws.Name, ws.State, HealthBar(ws.CurrentHP, ws.MaxHP))
			if carried := CarriedLine(ws.Carried); carried != "" {
				fmt.Fprintf(&b, "  carrying %s", carried)
			}
			b.WriteByte('\n')
		}
	}

	if len(st.Nodes) > 0 {
		b.WriteString("\nNodes:\n")
		for i, ns := range st.Nodes {
			fmt.Fprintf(&b, " %2d. %s %s  %d/%d", i+1, ns.Icon, ns.Name, ns.Remaining, ns.Capacity)
			if ns.BeingHarvested {
				b.WriteString("  (worked)")
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}
