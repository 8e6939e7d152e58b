package configs

import "time"

// Pacing tunes the budget pacing control loop. The defaults match the
// dashboard behaviour the loop replaces: a 60 second refresh with short,
// bounded store round trips.
type Pacing struct {
	// Interval is the period of the evaluation loop.
	Interval time.Duration `env:"INTERVAL" envDefault:"60s"`
	// StoreTimeout bounds each store operation within one campaign
	// evaluation. On timeout that campaign is skipped until the next tick.
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
	// Concurrency caps parallel campaign evaluations per owner.
	Concurrency int `env:"CONCURRENCY" envDefault:"4"`
	// AutoPause enables automatic pausing of overspending campaigns.
	AutoPause bool `env:"AUTO_PAUSE" envDefault:"true"`
}
