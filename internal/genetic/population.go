package genetic

import (
	"errors"
	"math/rand"
	"sort"
)

// ErrEmptyPopulation is returned by RandomMember before any lineup has been
// inserted. The evolution loop always inserts its fresh batch before mating
// against the population, so hitting this is a sequencing bug in the caller.
var ErrEmptyPopulation = errors.New("elite population is empty")

// ElitePopulation is the bounded pool of the best lineups seen so far,
// ordered by projected points descending. Inserts only append; ordering and
// the capacity bound are restored by SortAndTruncate at generation
// boundaries, not per insert.
type ElitePopulation struct {
	capacity int
	members  []*Lineup
}

func NewElitePopulation(capacity int) *ElitePopulation {
	return &ElitePopulation{
		capacity: capacity,
		members:  make([]*Lineup, 0, capacity),
	}
}

// Insert appends a lineup. The population may temporarily exceed capacity
// until the next SortAndTruncate checkpoint.
func (ep *ElitePopulation) Insert(lineup *Lineup) {
	ep.members = append(ep.members, lineup)
}

// SortAndTruncate restores descending-score order and drops everything past
// capacity. The sort is stable: equal scores keep insertion order.
func (ep *ElitePopulation) SortAndTruncate() {
	sort.SliceStable(ep.members, func(i, j int) bool {
		return ep.members[i].ProjectedPoints > ep.members[j].ProjectedPoints
	})
	if len(ep.members) > ep.capacity {
		ep.members = ep.members[:ep.capacity]
	}
}

// TopK returns a read-only view of the k best members as of the last
// checkpoint. Asking for more members than exist returns them all.
func (ep *ElitePopulation) TopK(k int) []*Lineup {
	if k > len(ep.members) {
		k = len(ep.members)
	}
	return ep.members[:k]
}

// RandomMember returns one uniformly random member, used to pick a mating
// partner for the greedy exploitation step.
func (ep *ElitePopulation) RandomMember(rng *rand.Rand) (*Lineup, error) {
	if len(ep.members) == 0 {
		return nil, ErrEmptyPopulation
	}
	return ep.members[rng.Intn(len(ep.members))], nil
}

// Members returns the population contents in their current order.
func (ep *ElitePopulation) Members() []*Lineup {
	return ep.members
}

func (ep *ElitePopulation) Len() int {
	return len(ep.members)
}
