package display

import (
	"fmt"

	"github.com/pixil98/go-rts/internal/sim"
)

// eventTemplates maps each simulation event type to its announcement
// line. Unknown types fall back to the raw type name.
var eventTemplates = map[sim.EventType]string{
	sim.EventTrainingQueued: "Training queued: {{ .UnitKind }}",
	sim.EventUnitSpawned:    "A new {{ .UnitKind }} is ready ({{ .Unit | trunc 8 }})",
	sim.EventDelivery:       "Worker {{ .Unit | trunc 8 }} delivered{{ range $k, $v := .Resources }} {{ $v }} {{ $k }}{{ end }}",
	sim.EventNodeDepleted:   "A {{ .NodeKind }} has been exhausted",
}

// RenderEvent renders one simulation event as an announcement line.
func RenderEvent(ev sim.Event) string {
	tmpl, ok := eventTemplates[ev.Type]
	if !ok {
		return fmt.Sprintf("[%s]", ev.Type)
	}

	out, err := ExpandTemplate(tmpl, ev)
	if err != nil {
		return fmt.Sprintf("[%s]", ev.Type)
	}
	return out
}
