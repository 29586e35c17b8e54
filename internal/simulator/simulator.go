// Package simulator plays many automated rounds to measure how often a hold
// strategy clears the chip target.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/drawround/internal/game"
	"github.com/lox/drawround/internal/randutil"
	"github.com/lox/drawround/internal/statistics"
	"github.com/lox/drawround/poker"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Strategy string
	Seed     int64
	Workers  int // Defaults to GOMAXPROCS
	Rules    game.Rules
	Logger   *log.Logger
}

// Simulator runs independent rounds in parallel
type Simulator struct {
	config   Config
	strategy Strategy
	logger   *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", config.Rounds)
	}
	if config.Strategy == "" {
		config.Strategy = "pairs"
	}
	strategy, err := LookupStrategy(config.Strategy)
	if err != nil {
		return nil, err
	}
	if config.Rules == (game.Rules{}) {
		config.Rules = game.DefaultRules()
	}
	if err := config.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}

	return &Simulator{
		config:   config,
		strategy: strategy,
		logger:   config.Logger.WithPrefix("simulator"),
	}, nil
}

// Run plays every round and returns the aggregated statistics. Round i is
// seeded from the configured seed and i, so results do not depend on the
// number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]statistics.RoundResult, s.config.Rounds)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Rounds {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.playRound(randutil.Derive(s.config.Seed, i))
			if err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Debug("Simulation complete",
		"rounds", stats.Rounds,
		"strategy", s.strategy.Name(),
		"clearRate", stats.ClearRate(),
		"meanChips", stats.Mean())
	return stats, nil
}

func (s *Simulator) playRound(seed int64) (statistics.RoundResult, error) {
	session, err := game.NewSession(game.SessionConfig{
		Rules:      s.config.Rules,
		RNG:        randutil.New(seed),
		Clock:      quartz.NewReal(),
		MaxEntries: 32,
	})
	if err != nil {
		return statistics.RoundResult{}, err
	}

	result, err := PlayRound(session, s.strategy, randutil.New(^seed))
	result.Seed = seed
	return result, err
}

// PlayRound drives a session from its current state until no hands are left,
// discarding whenever the strategy wants to and the budget allows.
func PlayRound(session *game.Session, strategy Strategy, rng *rand.Rand) (statistics.RoundResult, error) {
	var result statistics.RoundResult

	for session.Snapshot().HandsLeft > 0 {
		if err := session.Deal(); err != nil && !errors.Is(err, game.ErrAlreadyDealt) {
			return result, err
		}

		for session.Snapshot().DiscardsLeft > 0 {
			snap := session.Snapshot()
			want := strategy.Holds(snap.Hand, rng)
			if want == allHeld {
				break
			}
			for i := range snap.Hand {
				if snap.Held[i] != want[i] {
					if err := session.ToggleHold(i); err != nil {
						return result, err
					}
				}
			}
			if err := session.Discard(); err != nil {
				return result, err
			}
			result.Discards++
		}

		score, err := session.Play()
		if err != nil {
			return result, err
		}
		result.HandTypes = append(result.HandTypes, score.Type)
	}

	snap := session.Snapshot()
	result.Chips = snap.Chips
	result.Target = snap.Target
	result.Cleared = snap.Outcome == game.Cleared
	return result, nil
}

var allHeld = [poker.HandSize]bool{true, true, true, true, true}
