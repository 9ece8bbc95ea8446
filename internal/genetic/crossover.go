package genetic

import "github.com/linecrunch/linecrunch/internal/dfs"

// Mate recombines two valid parent lineups into a child lineup. For each
// position group the candidate set is both parents' incumbents (deduplicated
// by player ID) plus a small number of fresh random draws from that group's
// pool, and the group's slots are filled by sampling without replacement
// from the set. The fresh draws are the mutation that keeps the search
// exploring beyond parent material.
//
// The assembled child goes through the same validity check as generated
// lineups. On failure the whole child is rebuilt from fresh candidate sets,
// up to the shared retry budget; Mate either returns a valid lineup or
// ErrRetriesExhausted, never a malformed one.
func (g *Generator) Mate(a, b *Lineup) (*Lineup, error) {
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		var players [LineupSize]dfs.Player
		for _, group := range slotGroups {
			pool := g.pools.ForSlot(group.pos)
			set := g.candidateSet(a.Players[group.start:group.end], b.Players[group.start:group.end], pool)
			g.fillGroup(players[group.start:group.end], set, pool)
		}
		if lineup, ok := buildLineup(players, g.rules); ok {
			return lineup, nil
		}
	}
	return nil, ErrRetriesExhausted
}

// candidateSet merges the two parents' players for one position group,
// dropping duplicate IDs, then injects mutationDraws fresh picks from the
// pool. The injected picks are not deduplicated; a collision just biases a
// slot back toward parent material for this attempt.
func (g *Generator) candidateSet(fromA, fromB []dfs.Player, pool []dfs.Player) []dfs.Player {
	set := make([]dfs.Player, 0, len(fromA)+len(fromB)+g.mutationDraws)
	seen := make(map[string]struct{}, len(fromA)+len(fromB))
	for _, parent := range [][]dfs.Player{fromA, fromB} {
		for _, player := range parent {
			if _, dup := seen[player.ID]; dup {
				continue
			}
			seen[player.ID] = struct{}{}
			set = append(set, player)
		}
	}
	for i := 0; i < g.mutationDraws; i++ {
		set = append(set, g.draw(pool))
	}
	return set
}

// fillGroup samples len(slots) players from the candidate set without
// replacement. A set smaller than the slot count is topped up with fresh
// pool draws first.
func (g *Generator) fillGroup(slots []dfs.Player, set []dfs.Player, pool []dfs.Player) {
	for len(set) < len(slots) {
		set = append(set, g.draw(pool))
	}
	for i := range slots {
		pick := g.rng.Intn(len(set))
		slots[i] = set[pick]
		set[pick] = set[len(set)-1]
		set = set[:len(set)-1]
	}
}
