package aggregator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mcpscan/mcpscan/internal/models"
)

// SummaryRows builds one table row per repository from the persistent
// violations files in the results directory. Registered scanners' temp files
// are excluded from the scan.
func (a *Aggregator) SummaryRows(resultsDir string) ([]models.SummaryRow, error) {
	matches, err := filepath.Glob(filepath.Join(resultsDir, "*-*-violations.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob results directory: %w", err)
	}

	var rows []models.SummaryRow
	for _, path := range matches {
		fileName := filepath.Base(path)
		if a.registry.IsTempFileName(fileName) {
			continue
		}

		// org-repo-violations.json -> org/repo. Repo names may contain
		// dashes, so only the first dash splits org from repo.
		stem := strings.TrimSuffix(fileName, ".json")
		stem = strings.Replace(stem, "-violations", "", 1)
		parts := strings.SplitN(stem, "-", 2)
		if len(parts) != 2 {
			continue
		}
		orgRepo := parts[0] + "/" + parts[1]

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		results := models.ScannerResults{}
		if err := json.Unmarshal(data, &results); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		all := results.Flatten()
		rows = append(rows, models.SummaryRow{
			OrgRepo:        orgRepo,
			FileName:       fileName,
			Total:          len(all),
			SeverityCounts: models.CountBySeverity(all),
			Fixable:        models.CountFixable(all),
			Scanners:       results.ScannerNames(),
			Worst:          models.WorstSeverity(all),
		})
	}

	sortRows(rows)
	return rows, nil
}

// sortRows orders rows by negated severity rank ascending, then org/repo.
// Clean repositories sort first and the worst offenders end up at the bottom
// of the table.
func sortRows(rows []models.SummaryRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri := -models.SeverityRank(rows[i].Worst)
		rj := -models.SeverityRank(rows[j].Worst)
		if ri != rj {
			return ri < rj
		}
		return rows[i].OrgRepo < rows[j].OrgRepo
	})
}
