package cfra

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/errgroup"

	"github.com/Myst4ke/cfra-project/internal/key"
	"github.com/Myst4ke/cfra-project/internal/logger"
	"github.com/Myst4ke/cfra-project/internal/metrics"
	"github.com/Myst4ke/cfra-project/sampler"
)

// Search modes, used as metric labels.
const (
	modeFindOne = "find_one"
	modeFindAll = "find_all"
)

// errStopSearch cancels outstanding parallel work once find-one succeeds.
var errStopSearch = errors.New("stop search")

// Engine drives the guess-and-check search for Nash-stable assignments.
//
// The engine iterates center hypotheses (outer), activity subsets, and
// sampled colourings (inner), feeding every triple to the stability
// verifier. Verification of distinct triples is independent and
// side-effect-free, so the engine can distribute (hypothesis, subset) units
// across worker goroutines when Config.Parallelism is above 1; workers
// share only read access to the immutable game.
//
// Reproducibility: every search unit derives its own random source from
// (Config.Seed, unit index), so the colourings drawn for a unit do not
// depend on the parallelism level or on scheduling.
//
// Thread Safety:
//   - FindOne and FindAll may be called from any goroutine, one search at
//     a time per Engine
//   - State and Stats are safe for concurrent use
//   - With Parallelism above 1, hooks may fire from several worker
//     goroutines
type Engine struct {
	cfg     Config
	game    *Game
	sampler ColouringSampler

	// Optional dependencies
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger

	verifier *Verifier

	// State management
	state    atomic.Int32 // State
	verified *xsync.Counter
	found    *xsync.Counter
}

// searchUnit is one (hypothesis, subset) pair of the traversal, numbered in
// traversal order.
type searchUnit struct {
	index  uint64
	hyp    CenterHypothesis
	subset []string
}

// New creates a search Engine for the given game.
//
// Returns a concrete *Engine struct following the "accept interfaces,
// return structs" principle. Consumers can define their own interfaces for
// testing if needed.
//
// Parameters:
//   - cfg: Runtime configuration (seed, parallelism, subset restriction)
//   - game: Validated immutable game model
//   - colouringSampler: Sampling strategy for find-one searches
//   - opts: Optional configuration (hooks, metrics, logger)
//
// Returns:
//   - *Engine: Initialized engine instance
//   - error: Validation error if configuration is invalid
//
// Example:
//
//	cfg := cfra.Config{Seed: 42}
//	eng, err := cfra.New(&cfg, game, sampler.NewUniform())
func New(cfg *Config, game *Game, colouringSampler ColouringSampler, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if game == nil {
		return nil, ErrGameRequired
	}
	if colouringSampler == nil {
		return nil, ErrSamplerRequired
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Apply options
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	hooksInstance := options.hooks
	if hooksInstance == nil {
		hooksInstance = &Hooks{}
	}

	e := &Engine{
		cfg:      *cfg,
		game:     game,
		sampler:  colouringSampler,
		hooks:    hooksInstance,
		metrics:  metricsCollector,
		logger:   loggerInstance,
		verifier: NewVerifier(game, metricsCollector),
		verified: xsync.NewCounter(),
		found:    xsync.NewCounter(),
	}
	e.state.Store(int32(StateIdle))

	return e, nil
}

// State returns the current search state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Stats reports cumulative search counters.
type Stats struct {
	// Verified is the number of candidate colourings checked.
	Verified int64

	// Found is the number of stable assignments emitted.
	Found int64
}

// Stats returns the cumulative counters of this engine.
func (e *Engine) Stats() Stats {
	return Stats{Verified: e.verified.Value(), Found: e.found.Value()}
}

// FindOne searches for the first stable assignment.
//
// Hypotheses are traversed in generator order, subsets within each
// hypothesis, colourings within each subset. The first stable triple
// short-circuits all further iteration. With Parallelism above 1, units
// are verified concurrently and the first stable assignment any worker
// reports wins; outstanding work is cancelled.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - Assignment: The stable assignment found
//   - error: ErrExhausted when the explored space holds no stable
//     assignment, or the context error on cancellation
func (e *Engine) FindOne(ctx context.Context) (Assignment, error) {
	units := e.units()
	start := time.Now()
	defer func() {
		e.metrics.RecordSearchDuration(time.Since(start).Seconds(), modeFindOne)
	}()

	e.logger.Info("starting search",
		"mode", modeFindOne,
		"sampler", e.sampler.Name(),
		"style", e.game.Style().String(),
		"units", len(units),
		"parallelism", e.cfg.Parallelism,
	)

	if e.cfg.Parallelism > 1 {
		return e.findOneParallel(ctx, units)
	}

	for i, u := range units {
		if err := ctx.Err(); err != nil {
			return Assignment{}, err
		}
		if i == 0 || units[i-1].hyp != u.hyp {
			e.setState(ctx, StateSelectCenter)
		}
		e.setState(ctx, StateSelectSubset)

		var result Assignment
		found := false
		e.runUnit(ctx, e.sampler, u, func(a Assignment) bool {
			result, found = a, true

			return false
		})
		if found {
			e.setState(ctx, StateFound)
			e.emit(ctx, result, modeFindOne)

			return result, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return Assignment{}, err
	}
	e.setState(ctx, StateExhausted)
	e.logger.Info("search exhausted", "mode", modeFindOne, "verified", e.verified.Value())

	return Assignment{}, ErrExhausted
}

func (e *Engine) findOneParallel(ctx context.Context, units []searchUnit) (Assignment, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Parallelism)

	var (
		mu     sync.Mutex
		result Assignment
		found  bool
	)
	for _, u := range units {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			stop := false
			e.runUnit(gctx, e.sampler, u, func(a Assignment) bool {
				mu.Lock()
				if !found {
					result, found = a, true
				}
				mu.Unlock()
				stop = true

				return false
			})
			if stop {
				return errStopSearch
			}

			return nil
		})
	}

	err := g.Wait()
	if found {
		e.setState(ctx, StateFound)
		e.emit(ctx, result, modeFindOne)

		return result, nil
	}
	if err != nil && !errors.Is(err, errStopSearch) {
		return Assignment{}, err
	}
	if err := ctx.Err(); err != nil {
		return Assignment{}, err
	}
	e.setState(ctx, StateExhausted)

	return Assignment{}, ErrExhausted
}

// FindAll searches the complete space and returns every stable assignment.
//
// FindAll always enumerates with the exhaustive sampler, regardless of the
// sampler the engine was built with: completeness for the explored subset
// space is the point of the mode. Duplicate assignments reachable through
// several (hypothesis, subset) routes are collapsed.
//
// With Parallelism of 1 the result order is deterministic: hypothesis
// order, then subset order, then enumeration order. Parallel runs return
// the same set with no ordering guarantee.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - []Assignment: Every stable assignment found (possibly empty)
//   - error: Context error on cancellation, nil otherwise
func (e *Engine) FindAll(ctx context.Context) ([]Assignment, error) {
	units := e.units()
	exhaustive := sampler.NewExhaustive()
	start := time.Now()
	defer func() {
		e.metrics.RecordSearchDuration(time.Since(start).Seconds(), modeFindAll)
	}()

	e.logger.Info("starting search",
		"mode", modeFindAll,
		"sampler", exhaustive.Name(),
		"style", e.game.Style().String(),
		"units", len(units),
		"parallelism", e.cfg.Parallelism,
	)

	if e.cfg.Parallelism > 1 {
		return e.findAllParallel(ctx, units, exhaustive)
	}

	var out []Assignment
	seen := make(map[uint64]struct{})
	for i, u := range units {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i == 0 || units[i-1].hyp != u.hyp {
			e.setState(ctx, StateSelectCenter)
		}
		e.setState(ctx, StateSelectSubset)

		e.runUnit(ctx, exhaustive, u, func(a Assignment) bool {
			digest := key.Digest(a)
			if _, dup := seen[digest]; dup {
				return true
			}
			seen[digest] = struct{}{}
			out = append(out, a)
			e.emit(ctx, a, modeFindAll)

			return true
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.setState(ctx, StateExhausted)
	e.logger.Info("search complete", "mode", modeFindAll, "stable", len(out), "verified", e.verified.Value())

	return out, nil
}

func (e *Engine) findAllParallel(ctx context.Context, units []searchUnit, exhaustive ColouringSampler) ([]Assignment, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Parallelism)

	var (
		mu   sync.Mutex
		out  []Assignment
		seen = xsync.NewMap[uint64, struct{}]()
	)
	for _, u := range units {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			e.runUnit(gctx, exhaustive, u, func(a Assignment) bool {
				if _, dup := seen.LoadOrStore(key.Digest(a), struct{}{}); dup {
					return true
				}
				mu.Lock()
				out = append(out, a)
				mu.Unlock()
				e.emit(gctx, a, modeFindAll)

				return true
			})

			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.setState(ctx, StateExhausted)

	return out, nil
}

// runUnit samples and verifies one (hypothesis, subset) pair, invoking emit
// for every stable assignment found. emit returning false stops the unit.
func (e *Engine) runUnit(ctx context.Context, s ColouringSampler, u searchUnit, emit func(Assignment) bool) {
	e.setState(ctx, StateSample)
	rng := rand.New(rand.NewPCG(e.cfg.Seed, u.index))

	verifying := false
	for colouring := range s.Colourings(e.game, u.subset, rng) {
		if ctx.Err() != nil {
			return
		}
		if !verifying {
			e.setState(ctx, StateVerify)
			verifying = true
		}
		e.verified.Inc()
		if e.verifier.Stable(u.hyp, u.subset, colouring) {
			a := Assignment{
				Center:         e.game.CentralPlayer(),
				CenterActivity: u.hyp.Activity,
				GroupSize:      u.hyp.GroupSize,
				Leaves:         colouring.Clone(),
			}
			if !emit(a) {
				return
			}
		}
	}
}

// units materializes the (hypothesis, subset) traversal in search order.
func (e *Engine) units() []searchUnit {
	hyps := CenterHypotheses(e.game)
	subsets := ActivitySubsets(e.game, e.cfg.UnrestrictedSubsets)
	e.metrics.RecordHypothesisCount(len(hyps))

	out := make([]searchUnit, 0, len(hyps)*len(subsets))
	index := uint64(0)
	for _, hyp := range hyps {
		for _, subset := range subsets {
			out = append(out, searchUnit{index: index, hyp: hyp, subset: subset})
			index++
		}
	}

	return out
}

// emit records and publishes one stable assignment.
func (e *Engine) emit(ctx context.Context, a Assignment, mode string) {
	e.found.Inc()
	e.metrics.RecordStableFound(mode)
	e.logger.Debug("stable assignment found", "mode", mode, "assignment", a.String())
	if e.hooks.OnStableFound != nil {
		if err := e.hooks.OnStableFound(ctx, a); err != nil {
			e.logger.Warn("stable assignment hook failed", "error", err)
		}
	}
}

// setState transitions the search state, recording the transition and
// firing the state hook. Hook errors are logged, never propagated.
func (e *Engine) setState(ctx context.Context, to State) {
	from := State(e.state.Swap(int32(to)))
	if from == to {
		return
	}
	e.metrics.RecordStateTransition(from, to)
	if e.hooks.OnStateChanged != nil {
		if err := e.hooks.OnStateChanged(ctx, from, to); err != nil {
			e.logger.Warn("state hook failed", "from", from.String(), "to", to.String(), "error", err)
		}
	}
}
