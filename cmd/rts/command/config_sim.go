package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rts/internal/game"
)

// SimConfig selects the scenario to run and optionally overrides the
// shipped balance values. Zero fields keep the defaults.
type SimConfig struct {
	Scenario        string  `json:"scenario"`
	HarvestRate     float64 `json:"harvest_rate,omitempty"`
	HarvestRange    float64 `json:"harvest_range,omitempty"`
	DeliveryRange   float64 `json:"delivery_range,omitempty"`
	CarryCapacity   int     `json:"carry_capacity,omitempty"`
	SeekRadius      float64 `json:"seek_radius,omitempty"`
	SpawnSeparation float64 `json:"spawn_separation,omitempty"`
	SpawnExpiry     string  `json:"spawn_expiry,omitempty"`
}

func (c *SimConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Scenario == "" {
		el.Add(fmt.Errorf("scenario is required"))
	}

	if c.SpawnExpiry != "" {
		_, err := time.ParseDuration(c.SpawnExpiry)
		if err != nil {
			el.Add(fmt.Errorf("parsing spawn_expiry: %w", err))
		}
	}

	_, err := c.BuildTuning()
	if err != nil {
		el.Add(err)
	}

	return el.Err()
}

func (c *SimConfig) BuildTuning() (game.Tuning, error) {
	t := game.DefaultTuning()

	if c.HarvestRate != 0 {
		t.HarvestRate = c.HarvestRate
	}
	if c.HarvestRange != 0 {
		t.HarvestRange = c.HarvestRange
	}
	if c.DeliveryRange != 0 {
		t.DeliveryRange = c.DeliveryRange
	}
	if c.CarryCapacity != 0 {
		t.CarryCapacity = c.CarryCapacity
	}
	if c.SeekRadius != 0 {
		t.SeekRadius = c.SeekRadius
	}
	if c.SpawnSeparation != 0 {
		t.SpawnSeparation = c.SpawnSeparation
	}
	if c.SpawnExpiry != "" {
		d, err := time.ParseDuration(c.SpawnExpiry)
		if err != nil {
			return t, fmt.Errorf("parsing spawn_expiry: %w", err)
		}
		t.SpawnExpiry = d
	}

	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning: %w", err)
	}

	return t, nil
}
