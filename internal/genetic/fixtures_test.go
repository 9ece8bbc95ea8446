package genetic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linecrunch/linecrunch/internal/dfs"
)

func player(id, name string, pos dfs.Position, team string, salary int, points float64) dfs.Player {
	return dfs.Player{ID: id, Name: name, Position: pos, Team: team, Salary: salary, AvgPoints: points}
}

// testPools returns a roomy slate spanning four teams, cheap enough that the
// cap almost never binds.
func testPools() *dfs.Pools {
	pools := &dfs.Pools{}
	players := []dfs.Player{
		player("c1", "McDavid", dfs.PositionCenter, "EDM", 6200, 22.5),
		player("c2", "Crosby", dfs.PositionCenter, "PIT", 5400, 19.1),
		player("c3", "Barkov", dfs.PositionCenter, "FLA", 4800, 17.8),
		player("c4", "Point", dfs.PositionCenter, "TBL", 5000, 18.4),
		player("w1", "Pastrnak", dfs.PositionWinger, "BOS", 5800, 20.3),
		player("w2", "Kucherov", dfs.PositionWinger, "TBL", 6000, 21.6),
		player("w3", "Marchand", dfs.PositionWinger, "BOS", 4600, 16.9),
		player("w4", "Draisaitl", dfs.PositionWinger, "EDM", 5900, 20.8),
		player("w5", "Guentzel", dfs.PositionWinger, "PIT", 4100, 14.7),
		player("w6", "Tkachuk", dfs.PositionWinger, "FLA", 4300, 15.5),
		player("d1", "Makar", dfs.PositionDefenseman, "COL", 5300, 17.2),
		player("d2", "Hedman", dfs.PositionDefenseman, "TBL", 4700, 14.9),
		player("d3", "Fox", dfs.PositionDefenseman, "NYR", 4900, 15.8),
		player("d4", "Bouchard", dfs.PositionDefenseman, "EDM", 3900, 13.1),
		player("g1", "Vasilevskiy", dfs.PositionGoalie, "TBL", 5500, 16.4),
		player("g2", "Shesterkin", dfs.PositionGoalie, "NYR", 5200, 15.9),
	}
	for _, p := range players {
		pools.Add(p)
	}
	return pools
}

// tightPools carries the minimum players per slot plus one spare skater for
// the UTIL slot, so exactly one roster combination exists per fixed slot
// group.
func tightPools() *dfs.Pools {
	pools := &dfs.Pools{}
	players := []dfs.Player{
		player("c1", "CenterOne", dfs.PositionCenter, "EDM", 5000, 12.0),
		player("c2", "CenterTwo", dfs.PositionCenter, "PIT", 5000, 11.0),
		player("w1", "WingOne", dfs.PositionWinger, "BOS", 5000, 10.0),
		player("w2", "WingTwo", dfs.PositionWinger, "EDM", 5000, 9.0),
		player("w3", "WingThree", dfs.PositionWinger, "PIT", 5000, 8.0),
		player("w4", "WingSpare", dfs.PositionWinger, "BOS", 5000, 7.0),
		player("d1", "DefOne", dfs.PositionDefenseman, "BOS", 5000, 6.0),
		player("d2", "DefTwo", dfs.PositionDefenseman, "EDM", 5000, 5.0),
		player("g1", "GoalieOne", dfs.PositionGoalie, "PIT", 5000, 13.0),
	}
	for _, p := range players {
		pools.Add(p)
	}
	return pools
}

// singleTeamPools makes the team-spread constraint unsatisfiable.
func singleTeamPools() *dfs.Pools {
	pools := &dfs.Pools{}
	for i := 0; i < 4; i++ {
		pools.Add(player(fmt.Sprintf("c%d", i), "C", dfs.PositionCenter, "EDM", 4000, 10))
		pools.Add(player(fmt.Sprintf("w%d", i), "W", dfs.PositionWinger, "EDM", 4000, 10))
		pools.Add(player(fmt.Sprintf("d%d", i), "D", dfs.PositionDefenseman, "EDM", 4000, 10))
	}
	pools.Add(player("g0", "G", dfs.PositionGoalie, "EDM", 4000, 10))
	return pools
}

// requireValidLineup asserts every lineup invariant the search promises.
func requireValidLineup(t *testing.T, lineup *Lineup, rules Rules) {
	t.Helper()
	require.NotNil(t, lineup)

	seen := make(map[string]struct{})
	teams := make(map[string]struct{})
	salary := 0
	for i, p := range lineup.Players {
		require.True(t, slotAllows(slotPositions[i], p.Position),
			"slot %d (%s) filled by %s %s", i, slotPositions[i], p.Position, p.Name)
		_, dup := seen[p.ID]
		require.False(t, dup, "duplicate player %s", p.Name)
		seen[p.ID] = struct{}{}
		teams[p.Team] = struct{}{}
		salary += p.Salary
	}
	require.Equal(t, salary, lineup.TotalSalary)
	require.LessOrEqual(t, lineup.TotalSalary, rules.SalaryCap)
	require.GreaterOrEqual(t, len(teams), rules.MinTeams)
}
