package driver

import (
	"context"
	"time"
)

const (
	DefaultFrameInterval = 100 * time.Millisecond
)

// Manager is advanced once per frame with the elapsed time since the
// previous frame.
type Manager interface {
	Advance(ctx context.Context, dt time.Duration) error
}

// SimDriver runs the frame loop: it samples the wall clock each tick
// and hands the measured delta to every manager, in order. Managers
// never see a zero or negative delta.
type SimDriver struct {
	frameInterval time.Duration
	managers      []Manager
}

func NewSimDriver(managers []Manager, opts ...SimDriverOpt) *SimDriver {
	d := &SimDriver{
		frameInterval: DefaultFrameInterval,
		managers:      managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *SimDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt <= 0 {
				continue
			}
			if err := d.Step(ctx, dt); err != nil {
				return err
			}
		}
	}
}

// Step advances every manager by dt. Exposed so tests can drive frames
// without the ticker.
func (d *SimDriver) Step(ctx context.Context, dt time.Duration) error {
	for _, m := range d.managers {
		if err := m.Advance(ctx, dt); err != nil {
			return err
		}
	}
	return nil
}
