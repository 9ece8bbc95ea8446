// Package export serializes a finished lineup pool to DraftKings CSV files:
// a full sheet with salary and projection columns, and an upload-ready sheet
// with the nine name+id columns DraftKings accepts directly.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/linecrunch/linecrunch/internal/genetic"
)

const (
	FullFileName   = "lineups.csv"
	UploadFileName = "lineups_for_upload.csv"
)

var (
	uploadHeader = []string{"C", "C", "W", "W", "W", "D", "D", "G", "UTIL"}
	fullHeader   = append(append([]string{}, uploadHeader...), "Salary", "Projection")
)

// WriteFiles writes both CSV files into dir, suppressing lineups whose
// content repeats their predecessor. The pool arrives sorted by score, so
// adjacent comparison is enough to drop exact duplicates.
func WriteFiles(dir string, lineups []*genetic.Lineup, log *logrus.Entry) error {
	deduped := dedupeAdjacent(lineups)

	files := []struct {
		name          string
		includeTotals bool
	}{
		{FullFileName, true},
		{UploadFileName, false},
	}
	for _, file := range files {
		path := filepath.Join(dir, file.name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := WriteLineups(f, deduped, file.includeTotals); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", path, err)
		}
	}

	log.WithFields(logrus.Fields{
		"lineups":    len(lineups),
		"exported":   len(deduped),
		"duplicates": len(lineups) - len(deduped),
		"dir":        dir,
	}).Info("Lineups exported")

	return nil
}

// WriteLineups writes one CSV sheet. With includeTotals the salary and
// projection columns are appended to each row.
func WriteLineups(w io.Writer, lineups []*genetic.Lineup, includeTotals bool) error {
	writer := csv.NewWriter(w)

	header := uploadHeader
	if includeTotals {
		header = fullHeader
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, lineup := range lineups {
		row := make([]string, 0, len(header))
		for _, player := range lineup.Players {
			row = append(row, player.Name)
		}
		if includeTotals {
			row = append(row,
				strconv.Itoa(lineup.TotalSalary),
				strconv.FormatFloat(lineup.ProjectedPoints, 'f', 2, 64))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// dedupeAdjacent drops lineups identical to their immediate predecessor.
func dedupeAdjacent(lineups []*genetic.Lineup) []*genetic.Lineup {
	out := make([]*genetic.Lineup, 0, len(lineups))
	for i, lineup := range lineups {
		if i > 0 && samePlayers(lineup, lineups[i-1]) {
			continue
		}
		out = append(out, lineup)
	}
	return out
}

func samePlayers(a, b *genetic.Lineup) bool {
	for i := range a.Players {
		if a.Players[i].ID != b.Players[i].ID {
			return false
		}
	}
	return true
}
