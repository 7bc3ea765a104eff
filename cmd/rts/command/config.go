package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	FrameInterval string           `json:"frame_interval"`
	Listeners     []ListenerConfig `json:"listeners"`
	Storage       StorageConfig    `json:"storage"`
	Nats          NatsConfig       `json:"nats"`
	Sim           SimConfig        `json:"sim"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.FrameInterval != "" {
		d, err := time.ParseDuration(c.FrameInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing frame_interval: %w", err))
		} else if d < 10*time.Millisecond {
			el.Add(fmt.Errorf("frame_interval must be at least 10ms"))
		}
	}

	for i, l := range c.Listeners {
		err := l.Validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.Validate())
	el.Add(c.Nats.Validate())
	el.Add(c.Sim.Validate())

	return el.Err()
}

func (c *Config) frameInterval() (time.Duration, error) {
	if c.FrameInterval == "" {
		return 0, nil
	}
	return time.ParseDuration(c.FrameInterval)
}
