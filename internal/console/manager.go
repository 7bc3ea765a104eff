package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sync"

	"github.com/pixil98/go-rts/internal/display"
	"github.com/pixil98/go-rts/internal/sim"
)

// Subscriber delivers match events to live sessions.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

var namePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]{1,15}$`)

// Manager runs spectator sessions against a single match.
type Manager struct {
	sim     *sim.Manager
	sub     Subscriber
	welcome string
}

func NewManager(s *sim.Manager, sub Subscriber, opts ...ManagerOpt) *Manager {
	m := &Manager{
		sim:     s,
		sub:     sub,
		welcome: "Welcome spectator.",
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RunSession drives one spectator connection until it quits or drops.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	s := &session{
		m:    m,
		conn: conn,
		br:   bufio.NewReader(conn),
	}

	s.writeLine(m.welcome)

	name, err := Prompt(s.br, s, "What shall we call you? ",
		WithValidator(func(str string) (bool, string) {
			if !namePattern.MatchString(str) {
				return false, "names are 2-16 letters and digits, starting with a letter\n"
			}
			return true, ""
		}),
		WithMaxTries(3),
	)
	if err != nil {
		return err
	}
	s.name = name

	slog.InfoContext(ctx, "spectator joined", "name", name)
	defer slog.InfoContext(ctx, "spectator left", "name", name)

	if m.sub != nil {
		unsub, err := m.sub.Subscribe(sim.EventSubject, func(data []byte) {
			var ev sim.Event
			if err := json.Unmarshal(data, &ev); err != nil {
				return
			}
			s.writeLine(display.Wrap(display.RenderEvent(ev)))
		})
		if err != nil {
			slog.WarnContext(ctx, "subscribing to match events", "error", err)
		} else {
			defer unsub()
		}
	}

	s.writeLine("Type 'help' for commands.")

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := Prompt(s.br, s, "> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}

		quit := s.dispatch(line)
		if quit {
			s.writeLine(fmt.Sprintf("Goodbye, %s.", name))
			return nil
		}
	}
}

// session serializes writes so event lines don't tear through prompts.
type session struct {
	m    *Manager
	conn io.ReadWriter
	br   *bufio.Reader
	name string

	mu sync.Mutex
}

func (s *session) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conn.Write(p)
}

func (s *session) writeLine(text string) {
	s.Write([]byte(text + "\n"))
}
