package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linecrunch/linecrunch/internal/dfs"
	"github.com/linecrunch/linecrunch/internal/genetic"
)

func quietLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func fixtureLineup(idPrefix string, points float64) *genetic.Lineup {
	var players [genetic.LineupSize]dfs.Player
	names := []string{"C1", "C2", "W1", "W2", "W3", "D1", "D2", "G1", "U1"}
	for i, name := range names {
		players[i] = dfs.Player{
			ID:     idPrefix + name,
			Name:   name + " (" + idPrefix + ")",
			Team:   "EDM",
			Salary: 5000,
		}
	}
	return &genetic.Lineup{Players: players, TotalSalary: 45000, ProjectedPoints: points}
}

func TestWriteLineups_FullSheet(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLineups(&buf, []*genetic.Lineup{fixtureLineup("a", 123.456)}, true)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"C", "C", "W", "W", "W", "D", "D", "G", "UTIL", "Salary", "Projection"}, records[0])
	row := records[1]
	require.Len(t, row, 11)
	assert.Equal(t, "C1 (a)", row[0])
	assert.Equal(t, "U1 (a)", row[8])
	assert.Equal(t, "45000", row[9])
	assert.Equal(t, "123.46", row[10])
}

func TestWriteLineups_UploadSheetHasNoTotals(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLineups(&buf, []*genetic.Lineup{fixtureLineup("a", 100)}, false)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"C", "C", "W", "W", "W", "D", "D", "G", "UTIL"}, records[0])
	assert.Len(t, records[1], 9)
}

func TestDedupeAdjacent(t *testing.T) {
	a := fixtureLineup("a", 100)
	b := fixtureLineup("b", 90)

	out := dedupeAdjacent([]*genetic.Lineup{a, a, b, b, a})
	require.Len(t, out, 3)
	assert.Same(t, a, out[0])
	assert.Same(t, b, out[1])
	assert.Same(t, a, out[2])
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	lineups := []*genetic.Lineup{
		fixtureLineup("a", 100),
		fixtureLineup("a", 100), // duplicate, dropped from both sheets
		fixtureLineup("b", 90),
	}

	require.NoError(t, WriteFiles(dir, lineups, quietLog()))

	for _, name := range []string{FullFileName, UploadFileName} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, 3, "%s should hold header plus two deduped lineups", name)
	}
}
