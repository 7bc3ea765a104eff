package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pixil98/go-rts/internal/display"
	"github.com/pixil98/go-rts/internal/sim"
	"github.com/pixil98/go-rts/internal/storage"
)

var helpText = strings.TrimSpace(`
Available commands:
  status                  full match overview
  resources               stockpile totals
  units                   numbered worker list
  nodes                   numbered resource node list
  train <kind> [bld#]     queue a unit at a building (first building by default)
  assign <worker#> <node#> send a worker to harvest a node
  stop <worker#>          halt a worker
  inspect <kind> <#>      detail view, e.g. 'inspect worker 2'
  quit                    leave the console
`)

// dispatch runs one command line. Returns true when the session should end.
func (s *session) dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "status":
		s.writeLine(display.RenderStatus(s.m.sim.Status()))
	case "resources":
		s.writeLine(display.ResourceLine(s.m.sim.Status().Resources))
	case "units", "workers":
		s.showWorkers()
	case "nodes":
		s.showNodes()
	case "train":
		err = s.cmdTrain(args)
	case "assign":
		err = s.cmdAssign(args)
	case "stop":
		err = s.cmdStop(args)
	case "inspect":
		err = s.cmdInspect(args)
	case "help":
		s.writeLine(helpText)
	case "quit", "exit":
		return true
	default:
		s.writeLine(fmt.Sprintf("Unknown command %q. Type 'help' for commands.", cmd))
	}

	if err != nil {
		s.writeLine(err.Error())
	}
	return false
}

func (s *session) showWorkers() {
	st := s.m.sim.Status()
	if len(st.Workers) == 0 {
		s.writeLine("No workers.")
		return
	}
	var b strings.Builder
	for i, ws := range st.Workers {
		fmt.Fprintf(&b, " %2d. %s %s  %-10s  %s", i+1, ws.Icon, ws.Name, ws.State, display.HealthBar(ws.CurrentHP, ws.MaxHP))
		if carried := display.CarriedLine(ws.Carried); carried != "" {
			fmt.Fprintf(&b, "  carrying %s", carried)
		}
		b.WriteByte('\n')
	}
	s.Write([]byte(b.String()))
}

func (s *session) showNodes() {
	st := s.m.sim.Status()
	if len(st.Nodes) == 0 {
		s.writeLine("No nodes remain.")
		return
	}
	var b strings.Builder
	for i, ns := range st.Nodes {
		fmt.Fprintf(&b, " %2d. %s %s  %d/%d", i+1, ns.Icon, ns.Name, ns.Remaining, ns.Capacity)
		if ns.BeingHarvested {
			b.WriteString("  (worked)")
		}
		b.WriteByte('\n')
	}
	s.Write([]byte(b.String()))
}

func (s *session) cmdTrain(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: train <kind> [building#]")
	}
	kind := storage.Identifier(strings.ToLower(args[0]))

	buildingID := ""
	if len(args) == 2 {
		st := s.m.sim.Status()
		idx, err := parseOrdinal(args[1], len(st.Buildings), "building")
		if err != nil {
			return err
		}
		buildingID = st.Buildings[idx].Id
	}

	err := s.m.sim.Train(buildingID, kind)
	switch {
	case errors.Is(err, sim.ErrInsufficientResources):
		return fmt.Errorf("not enough resources to train %s", kind)
	case err != nil:
		return err
	}

	s.writeLine(fmt.Sprintf("Queued %s for training.", kind))
	return nil
}

func (s *session) cmdAssign(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: assign <worker#> <node#>")
	}
	st := s.m.sim.Status()

	wi, err := parseOrdinal(args[0], len(st.Workers), "worker")
	if err != nil {
		return err
	}
	ni, err := parseOrdinal(args[1], len(st.Nodes), "node")
	if err != nil {
		return err
	}

	if err := s.m.sim.AssignWorker(st.Workers[wi].Id, st.Nodes[ni].Id); err != nil {
		return err
	}

	s.writeLine(fmt.Sprintf("%s sent to %s.", st.Workers[wi].Name, st.Nodes[ni].Name))
	return nil
}

func (s *session) cmdStop(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: stop <worker#>")
	}
	st := s.m.sim.Status()

	wi, err := parseOrdinal(args[0], len(st.Workers), "worker")
	if err != nil {
		return err
	}

	if err := s.m.sim.StopWorker(st.Workers[wi].Id); err != nil {
		return err
	}

	s.writeLine(fmt.Sprintf("%s is standing down.", st.Workers[wi].Name))
	return nil
}

func (s *session) cmdInspect(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: inspect <worker|node|building> <#>")
	}
	st := s.m.sim.Status()

	switch strings.ToLower(args[0]) {
	case "worker", "unit":
		idx, err := parseOrdinal(args[1], len(st.Workers), "worker")
		if err != nil {
			return err
		}
		ws := st.Workers[idx]
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s\n", ws.Icon, ws.Name)
		fmt.Fprintf(&b, "  health   %s\n", display.HealthBar(ws.CurrentHP, ws.MaxHP))
		fmt.Fprintf(&b, "  state    %s\n", ws.State)
		fmt.Fprintf(&b, "  position (%.1f, %.1f, %.1f)\n", ws.Position.X, ws.Position.Y, ws.Position.Z)
		if carried := display.CarriedLine(ws.Carried); carried != "" {
			fmt.Fprintf(&b, "  carrying %s\n", carried)
		}
		s.Write([]byte(b.String()))

	case "node":
		idx, err := parseOrdinal(args[1], len(st.Nodes), "node")
		if err != nil {
			return err
		}
		ns := st.Nodes[idx]
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s\n", ns.Icon, ns.Name)
		fmt.Fprintf(&b, "  remaining %d/%d\n", ns.Remaining, ns.Capacity)
		fmt.Fprintf(&b, "  position  (%.1f, %.1f, %.1f)\n", ns.Position.X, ns.Position.Y, ns.Position.Z)
		if ns.BeingHarvested {
			b.WriteString("  a worker is gathering here\n")
		}
		s.Write([]byte(b.String()))

	case "building":
		idx, err := parseOrdinal(args[1], len(st.Buildings), "building")
		if err != nil {
			return err
		}
		bs := st.Buildings[idx]
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s\n", bs.Icon, bs.Name)
		fmt.Fprintf(&b, "  health %s\n", display.HealthBar(bs.CurrentHP, bs.MaxHP))
		if bs.QueueLen > 0 {
			fmt.Fprintf(&b, "  training %s %s\n", bs.Orders[0], display.Bar(bs.Progress))
			fmt.Fprintf(&b, "  queue    %s\n", strings.Join(bs.Orders, ", "))
		} else {
			b.WriteString("  training queue empty\n")
		}
		s.Write([]byte(b.String()))

	default:
		return fmt.Errorf("usage: inspect <worker|node|building> <#>")
	}

	return nil
}

// parseOrdinal converts 1-based display numbers into slice indexes.
func parseOrdinal(arg string, count int, noun string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not a %s number", arg, noun)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("no %s numbered %d", noun, n)
	}
	return n - 1, nil
}
