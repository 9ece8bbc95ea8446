package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/linecrunch/linecrunch/internal/dfs"
)

// DraftKings DKSalaries export layout: the file opens with instruction rows,
// then each data row carries the draftable-player block in these columns.
const (
	skipRows = 8

	colNameAndID  = 11 // "Name + ID", the string DraftKings expects on upload
	colPlayerID   = 13
	colRosterPos  = 14
	colSalary     = 15
	colTeam       = 17
	colAvgPoints  = 18
	minRowColumns = 19
)

// LoadFile parses a DKSalaries CSV export into position pools.
func LoadFile(path string, log *logrus.Entry) (*dfs.Pools, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open salaries file: %w", err)
	}
	defer f.Close()
	pools, err := Load(f, log)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return pools, nil
}

// Load parses the salary sheet into position pools. Players with a zero
// point average are dropped as inactive; the caller is expected to have
// already pruned injured or non-starting players and replaced the averages
// with their own projections. Skaters join the UTIL pool as well.
func Load(r io.Reader, log *logrus.Entry) (*dfs.Pools, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	pools := &dfs.Pools{}
	inactive := 0
	skipped := 0

	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv read error at row %d: %w", row+1, err)
		}
		if row < skipRows {
			continue
		}
		if len(record) < minRowColumns {
			skipped++
			continue
		}

		player, err := parsePlayer(record)
		if err != nil {
			skipped++
			log.WithFields(logrus.Fields{
				"row":   row + 1,
				"error": err.Error(),
			}).Debug("Skipping unparseable salary row")
			continue
		}

		if player.AvgPoints == 0 {
			inactive++
			continue
		}
		pools.Add(player)
	}

	log.WithFields(logrus.Fields{
		"centers":    len(pools.Centers),
		"wingers":    len(pools.Wingers),
		"defensemen": len(pools.Defensemen),
		"goalies":    len(pools.Goalies),
		"utils":      len(pools.Utils),
		"inactive":   inactive,
		"skipped":    skipped,
	}).Info("Roster loaded")

	return pools, nil
}

func parsePlayer(record []string) (dfs.Player, error) {
	salary, err := strconv.Atoi(record[colSalary])
	if err != nil {
		return dfs.Player{}, fmt.Errorf("bad salary %q: %w", record[colSalary], err)
	}
	avgPoints, err := strconv.ParseFloat(record[colAvgPoints], 64)
	if err != nil {
		return dfs.Player{}, fmt.Errorf("bad point average %q: %w", record[colAvgPoints], err)
	}
	if record[colRosterPos] == "" {
		return dfs.Player{}, fmt.Errorf("missing roster position")
	}
	if salary < 0 {
		return dfs.Player{}, fmt.Errorf("negative salary %d", salary)
	}

	// Roster position can read "C", "W", "D", "G" or a slash list like
	// "C/UTIL"; the leading letter identifies the true position.
	pos := dfs.Position(record[colRosterPos][:1])
	switch pos {
	case dfs.PositionCenter, dfs.PositionWinger, dfs.PositionDefenseman, dfs.PositionGoalie:
	default:
		return dfs.Player{}, fmt.Errorf("unknown roster position %q", record[colRosterPos])
	}

	return dfs.Player{
		ID:        record[colPlayerID],
		Name:      record[colNameAndID],
		Position:  pos,
		Team:      record[colTeam],
		Salary:    salary,
		AvgPoints: avgPoints,
	}, nil
}
