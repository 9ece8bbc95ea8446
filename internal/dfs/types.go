package dfs

import "fmt"

// Position represents an NHL roster position as used by DraftKings classic
// contests. UTIL is a flex slot open to any skater.
type Position string

const (
	PositionCenter     Position = "C"
	PositionWinger     Position = "W"
	PositionDefenseman Position = "D"
	PositionGoalie     Position = "G"
	PositionUtil       Position = "UTIL"
)

// Player is a single salary-sheet entry. Players are loaded once and never
// mutated for the lifetime of a run.
type Player struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Position  Position `json:"position"`
	Team      string   `json:"team"`
	Salary    int      `json:"salary"`
	AvgPoints float64  `json:"avg_points"`
}

// Pools groups the active player pool by roster position. Utils holds every
// skater (any non-goalie) and backs the UTIL flex slot.
type Pools struct {
	Centers    []Player
	Wingers    []Player
	Defensemen []Player
	Goalies    []Player
	Utils      []Player
}

// ForSlot returns the pool a roster slot draws from.
func (p *Pools) ForSlot(pos Position) []Player {
	switch pos {
	case PositionCenter:
		return p.Centers
	case PositionWinger:
		return p.Wingers
	case PositionDefenseman:
		return p.Defensemen
	case PositionGoalie:
		return p.Goalies
	case PositionUtil:
		return p.Utils
	}
	return nil
}

// Add places a player into their positional pool, and into the UTIL pool as
// well when they are a skater.
func (p *Pools) Add(player Player) {
	switch player.Position {
	case PositionCenter:
		p.Centers = append(p.Centers, player)
	case PositionWinger:
		p.Wingers = append(p.Wingers, player)
	case PositionDefenseman:
		p.Defensemen = append(p.Defensemen, player)
	case PositionGoalie:
		p.Goalies = append(p.Goalies, player)
	}
	if player.Position != PositionGoalie && player.Position != "" {
		p.Utils = append(p.Utils, player)
	}
}

// TotalPlayers returns the number of players across the positional pools.
// UTIL members are not counted twice.
func (p *Pools) TotalPlayers() int {
	return len(p.Centers) + len(p.Wingers) + len(p.Defensemen) + len(p.Goalies)
}

// Teams returns the distinct team abbreviations present across all pools.
func (p *Pools) Teams() []string {
	seen := make(map[string]struct{})
	var teams []string
	for _, pool := range [][]Player{p.Centers, p.Wingers, p.Defensemen, p.Goalies} {
		for _, player := range pool {
			if _, ok := seen[player.Team]; !ok {
				seen[player.Team] = struct{}{}
				teams = append(teams, player.Team)
			}
		}
	}
	return teams
}

// Validate checks that a lineup search can succeed at all: every positional
// pool must be non-empty and the pools must span at least minTeams distinct
// teams. A failure here is a configuration error and the run must not start.
func (p *Pools) Validate(minTeams int) error {
	required := []struct {
		pos  Position
		pool []Player
	}{
		{PositionCenter, p.Centers},
		{PositionWinger, p.Wingers},
		{PositionDefenseman, p.Defensemen},
		{PositionGoalie, p.Goalies},
		{PositionUtil, p.Utils},
	}
	for _, r := range required {
		if len(r.pool) == 0 {
			return fmt.Errorf("pool for position %s is empty", r.pos)
		}
	}
	if teams := p.Teams(); len(teams) < minTeams {
		return fmt.Errorf("pools span %d team(s), need at least %d", len(teams), minTeams)
	}
	return nil
}
