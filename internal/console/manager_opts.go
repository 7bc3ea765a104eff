package console

type ManagerOpt func(*Manager)

// WithWelcome overrides the greeting shown when a session starts.
func WithWelcome(msg string) ManagerOpt {
	return func(m *Manager) {
		m.welcome = msg
	}
}
