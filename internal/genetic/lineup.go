package genetic

import "github.com/linecrunch/linecrunch/internal/dfs"

// LineupSize is the number of roster slots in a DraftKings NHL classic lineup.
const LineupSize = 9

// slotPositions is the fixed slot layout: 2 C, 3 W, 2 D, 1 G, 1 UTIL.
// The UTIL slot accepts any skater.
var slotPositions = [LineupSize]dfs.Position{
	dfs.PositionCenter,
	dfs.PositionCenter,
	dfs.PositionWinger,
	dfs.PositionWinger,
	dfs.PositionWinger,
	dfs.PositionDefenseman,
	dfs.PositionDefenseman,
	dfs.PositionGoalie,
	dfs.PositionUtil,
}

// slotGroups indexes contiguous [start,end) slot ranges per position group,
// in slot order. Crossover recombines group by group.
var slotGroups = []struct {
	pos        dfs.Position
	start, end int
}{
	{dfs.PositionCenter, 0, 2},
	{dfs.PositionWinger, 2, 5},
	{dfs.PositionDefenseman, 5, 7},
	{dfs.PositionGoalie, 7, 8},
	{dfs.PositionUtil, 8, 9},
}

// Rules holds the hard lineup constraints beyond the slot pattern itself.
type Rules struct {
	SalaryCap int `json:"salary_cap"`
	MinTeams  int `json:"min_teams"`
}

// DefaultRules matches DraftKings NHL classic contests.
func DefaultRules() Rules {
	return Rules{SalaryCap: 50000, MinTeams: 3}
}

// Lineup is a validated roster. It is built by buildLineup and never mutated
// afterwards, only replaced.
type Lineup struct {
	Players         [LineupSize]dfs.Player `json:"players"`
	TotalSalary     int                    `json:"total_salary"`
	ProjectedPoints float64                `json:"projected_points"`
}

// slotAllows reports whether a player position may fill a roster slot.
func slotAllows(slot, pos dfs.Position) bool {
	if slot == dfs.PositionUtil {
		return pos != dfs.PositionGoalie
	}
	return slot == pos
}

// buildLineup totals a candidate roster and checks every lineup invariant:
// the slot pattern, pairwise-distinct players, the salary cap, and the
// minimum team spread. Returns nil and false when any check fails.
func buildLineup(players [LineupSize]dfs.Player, rules Rules) (*Lineup, bool) {
	salary := 0
	points := 0.0
	teams := make(map[string]struct{}, LineupSize)
	used := make(map[string]struct{}, LineupSize)

	for i, player := range players {
		if !slotAllows(slotPositions[i], player.Position) {
			return nil, false
		}
		if _, dup := used[player.ID]; dup {
			return nil, false
		}
		used[player.ID] = struct{}{}
		teams[player.Team] = struct{}{}
		salary += player.Salary
		points += player.AvgPoints
	}

	if salary > rules.SalaryCap {
		return nil, false
	}
	if len(teams) < rules.MinTeams {
		return nil, false
	}

	return &Lineup{
		Players:         players,
		TotalSalary:     salary,
		ProjectedPoints: points,
	}, true
}
