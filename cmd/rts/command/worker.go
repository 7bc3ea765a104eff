package command

import (
	"fmt"

	"github.com/pixil98/go-rts/internal/console"
	"github.com/pixil98/go-rts/internal/driver"
	"github.com/pixil98/go-rts/internal/listener"
	"github.com/pixil98/go-rts/internal/sim"
	"github.com/pixil98/go-rts/internal/storage"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Embedded event bus
	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Load game definitions
	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}

	scn := dict.Scenarios.Get(storage.Identifier(cfg.Sim.Scenario))
	if scn == nil {
		return nil, fmt.Errorf("unknown scenario %q", cfg.Sim.Scenario)
	}

	tuning, err := cfg.Sim.BuildTuning()
	if err != nil {
		return nil, err
	}

	// Set up the match
	simManager, err := sim.NewManager(scn, tuning, sim.WithPublisher(natsServer))
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}

	frameInterval, err := cfg.frameInterval()
	if err != nil {
		return nil, fmt.Errorf("parsing frame_interval: %w", err)
	}
	var driverOpts []driver.SimDriverOpt
	if frameInterval > 0 {
		driverOpts = append(driverOpts, driver.WithFrameInterval(frameInterval))
	}
	simDriver := driver.NewSimDriver([]driver.Manager{simManager}, driverOpts...)

	// Spectator console behind the listeners
	consoleManager := console.NewManager(simManager, natsServer)
	connManager := listener.NewConnectionManager(consoleManager)

	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(connManager)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	return service.WorkerList{
		"nats":      natsServer,
		"driver":    simDriver,
		"listeners": &listeners,
	}, nil
}
