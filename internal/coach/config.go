package coach

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"fitscan/internal/vision"
)

// DefaultSimulationDelay mimics model latency in simulation mode.
const DefaultSimulationDelay = 1500 * time.Millisecond

// Completer is the model API used for real analysis. *vision.Client
// satisfies it.
type Completer interface {
	Complete(ctx context.Context, req vision.Request) (string, error)
}

// Config encapsulates all tunables for Service construction.
type Config struct {
	// AI is the model API. Nil selects simulation mode.
	AI Completer
	// SimulationDelay is applied before every rule-based result. Negative
	// disables it; zero uses DefaultSimulationDelay.
	SimulationDelay time.Duration
	// Rand drives the randomized parts of the fallback results.
	Rand   *rand.Rand
	Logger *zerolog.Logger
}

// New constructs a Service from Config.
func New(cfg Config) *Service {
	s := &Service{
		ai:       cfg.AI,
		delay:    cfg.SimulationDelay,
		rng:      cfg.Rand,
		log:      zerolog.Nop(),
		validate: newValidator(),
	}
	if s.delay == 0 {
		s.delay = DefaultSimulationDelay
	} else if s.delay < 0 {
		s.delay = 0
	}
	if s.rng == nil {
		now := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(now, now>>17|1))
	}
	if cfg.Logger != nil {
		s.log = *cfg.Logger
	}
	return s
}
