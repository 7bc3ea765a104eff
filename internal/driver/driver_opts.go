package driver

import "time"

type SimDriverOpt func(*SimDriver)

func WithFrameInterval(frameInterval time.Duration) SimDriverOpt {
	return func(d *SimDriver) {
		d.frameInterval = frameInterval
	}
}
