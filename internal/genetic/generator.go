package genetic

import (
	"errors"
	"math/rand"

	"github.com/linecrunch/linecrunch/internal/dfs"
)

// ErrRetriesExhausted is returned when rejection sampling fails to produce a
// valid lineup within the configured retry budget. Repeated exhaustion means
// the pools are too small or too concentrated on one team to satisfy the
// lineup constraints.
var ErrRetriesExhausted = errors.New("retry budget exhausted without a valid lineup")

// Generator builds random valid lineups from the position pools via
// rejection sampling: draw one player per slot, assemble, validate, retry.
// It also hosts the crossover operator since both share the pools, the rules,
// and the retry budget.
type Generator struct {
	pools         *dfs.Pools
	rules         Rules
	maxRetries    int
	mutationDraws int
	rng           *rand.Rand
}

// NewGenerator wires a generator to its pools and random source. The caller
// must have validated the pools first; draws from an empty pool panic.
func NewGenerator(pools *dfs.Pools, rules Rules, maxRetries, mutationDraws int, rng *rand.Rand) *Generator {
	return &Generator{
		pools:         pools,
		rules:         rules,
		maxRetries:    maxRetries,
		mutationDraws: mutationDraws,
		rng:           rng,
	}
}

// Generate produces one valid random lineup, or ErrRetriesExhausted when the
// retry budget runs out.
func (g *Generator) Generate() (*Lineup, error) {
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		var players [LineupSize]dfs.Player
		for i, slot := range slotPositions {
			players[i] = g.draw(g.pools.ForSlot(slot))
		}
		if lineup, ok := buildLineup(players, g.rules); ok {
			return lineup, nil
		}
	}
	return nil, ErrRetriesExhausted
}

// draw picks one player uniformly at random, with replacement across draws.
func (g *Generator) draw(pool []dfs.Player) dfs.Player {
	return pool[g.rng.Intn(len(pool))]
}
