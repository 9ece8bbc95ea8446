package genetic

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/linecrunch/linecrunch/internal/dfs"
)

// batchSize is the number of fresh random lineups created per generation.
// Not a tunable yet; nothing downstream depends on the exact count.
const batchSize = 10

// topParents is how many of the fresh batch are mated pairwise each
// generation (pair 0x1, 0x2, 1x2).
const topParents = 3

// State tracks the evolver lifecycle. Running is the only state with
// internal iteration.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateFinished State = "finished"
)

// Options configures a single search run.
type Options struct {
	Rules         Rules
	NumLineups    int           // elite population capacity
	Duration      time.Duration // wall-clock budget; checked at generation boundaries
	MaxRetries    int           // rejection sampling cap per lineup
	MutationDraws int           // fresh picks injected per position group in crossover
	Seed          int64
}

// Result is the final output of a run, handed off to the exporter.
type Result struct {
	Lineups     []*Lineup     `json:"lineups"`
	Generations int           `json:"generations"`
	Exhaustions int           `json:"sampling_exhaustions"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Evolver owns the elite population, the generator, and the random source
// for the duration of a run. It is the sole mutator of all three; the search
// is strictly single-threaded and fully reproducible from the seed.
type Evolver struct {
	gen         *Generator
	pop         *ElitePopulation
	rng         *rand.Rand
	log         *logrus.Entry
	opts        Options
	state       State
	exhaustions int
}

// NewEvolver validates the pools and assembles a run. Pool validation
// failures are configuration errors: the run must not start.
func NewEvolver(pools *dfs.Pools, opts Options, log *logrus.Entry) (*Evolver, error) {
	if err := pools.Validate(opts.Rules.MinTeams); err != nil {
		return nil, fmt.Errorf("invalid player pools: %w", err)
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	return &Evolver{
		gen:   NewGenerator(pools, opts.Rules, opts.MaxRetries, opts.MutationDraws, rng),
		pop:   NewElitePopulation(opts.NumLineups),
		rng:   rng,
		log:   log,
		opts:  opts,
		state: StateIdle,
	}, nil
}

// State returns the current lifecycle state.
func (e *Evolver) State() State {
	return e.state
}

// Run drives generations until the wall-clock budget is spent, then returns
// the final elite population. The deadline is checked cooperatively after
// each generation, so the generation in flight always completes and a zero
// duration still runs exactly one generation.
func (e *Evolver) Run() *Result {
	e.state = StateRunning
	start := time.Now()
	deadline := start.Add(e.opts.Duration)

	e.log.WithFields(logrus.Fields{
		"capacity":    e.opts.NumLineups,
		"duration":    e.opts.Duration.String(),
		"salary_cap":  e.opts.Rules.SalaryCap,
		"min_teams":   e.opts.Rules.MinTeams,
		"max_retries": e.opts.MaxRetries,
		"seed":        e.opts.Seed,
	}).Info("Starting lineup search")

	generations := 0
	for {
		e.runGeneration()
		generations++
		if !time.Now().Before(deadline) {
			break
		}
	}

	e.state = StateFinished
	elapsed := time.Since(start)

	fields := logrus.Fields{
		"generations":          generations,
		"population_size":      e.pop.Len(),
		"sampling_exhaustions": e.exhaustions,
		"elapsed_ms":           elapsed.Milliseconds(),
	}
	if best := e.pop.TopK(1); len(best) == 1 {
		fields["best_points"] = best[0].ProjectedPoints
	}
	e.log.WithFields(fields).Info("Lineup search finished")

	return &Result{
		Lineups:     e.pop.Members(),
		Generations: generations,
		Exhaustions: e.exhaustions,
		Elapsed:     elapsed,
	}
}

// runGeneration performs one full generation: a fresh batch of random
// lineups, pairwise crossover of the batch's best three, and a greedy second
// crossover of each offspring against a random member of the already-updated
// population, then the sort-and-truncate checkpoint.
//
// Sampling exhaustion anywhere just skips that lineup for this generation;
// it is counted and logged, never fatal.
func (e *Evolver) runGeneration() {
	fresh := make([]*Lineup, 0, batchSize)
	for i := 0; i < batchSize; i++ {
		lineup, err := e.gen.Generate()
		if err != nil {
			e.countExhaustion("generate")
			continue
		}
		fresh = append(fresh, lineup)
		e.pop.Insert(lineup)
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].ProjectedPoints > fresh[j].ProjectedPoints
	})

	var offspring []*Lineup
	if len(fresh) >= topParents {
		pairs := [][2]int{{0, 1}, {0, 2}, {1, 2}}
		for _, pair := range pairs {
			child, err := e.gen.Mate(fresh[pair[0]], fresh[pair[1]])
			if err != nil {
				e.countExhaustion("crossover")
				continue
			}
			offspring = append(offspring, child)
		}
	}

	// Greedy step: each offspring mates once more with a random member of
	// the population as updated by this generation's fresh batch.
	var greedy []*Lineup
	for _, child := range offspring {
		partner, err := e.pop.RandomMember(e.rng)
		if err != nil {
			break
		}
		grandchild, err := e.gen.Mate(child, partner)
		if err != nil {
			e.countExhaustion("greedy_crossover")
			continue
		}
		greedy = append(greedy, grandchild)
	}

	for _, lineup := range offspring {
		e.pop.Insert(lineup)
	}
	for _, lineup := range greedy {
		e.pop.Insert(lineup)
	}

	e.pop.SortAndTruncate()

	e.log.WithFields(logrus.Fields{
		"fresh":           len(fresh),
		"offspring":       len(offspring),
		"greedy":          len(greedy),
		"population_size": e.pop.Len(),
	}).Debug("Generation complete")
}

func (e *Evolver) countExhaustion(stage string) {
	e.exhaustions++
	e.log.WithFields(logrus.Fields{
		"stage":                stage,
		"sampling_exhaustions": e.exhaustions,
	}).Warn("Sampling retries exhausted, skipping lineup")
}
