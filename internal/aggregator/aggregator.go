package aggregator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcpscan/mcpscan/internal/models"
	"github.com/mcpscan/mcpscan/internal/scanners"
)

// Aggregator merges per-scanner temp files into persistent per-repository
// violation files. The scanner registry is injected so the set of temp files
// to merge and delete is explicit, not a hidden global.
type Aggregator struct {
	registry *scanners.Registry
	logf     func(format string, args ...any)
}

// New creates an aggregator over the given scanner registry.
func New(registry *scanners.Registry) *Aggregator {
	return &Aggregator{
		registry: registry,
		logf:     func(string, ...any) {},
	}
}

// SetLogf installs a progress logger. The CLI routes this to stdout.
func (a *Aggregator) SetLogf(logf func(format string, args ...any)) {
	if logf != nil {
		a.logf = logf
	}
}

// PerRepoFileName returns the persistent violations file name for a
// repository.
func PerRepoFileName(org, repo string) string {
	return fmt.Sprintf("%s-%s-violations.json", org, repo)
}

// Aggregate loads the repository's existing violations file, then merges in
// every registered scanner's temp file found in the results directory. A
// scanner's temp file overwrites that scanner's prior entry wholesale, so
// re-merging is idempotent. Missing files are simply absent contributions;
// a file that exists but fails to parse is corrupt state and propagates.
func (a *Aggregator) Aggregate(org, repo, resultsDir string) (models.ScannerResults, error) {
	aggregated := models.ScannerResults{}

	perRepoPath := filepath.Join(resultsDir, PerRepoFileName(org, repo))
	if err := loadResults(perRepoPath, &aggregated); err != nil {
		return nil, err
	}

	for _, scanner := range a.registry.Names() {
		tempPath := filepath.Join(resultsDir, a.registry.TempFileName(scanner))

		scannerData := models.ScannerResults{}
		if err := loadResults(tempPath, &scannerData); err != nil {
			return nil, err
		}

		for name, violations := range scannerData {
			aggregated[name] = violations
		}
	}

	return aggregated, nil
}

// Save writes the merged mapping as indented JSON to the repository's
// violations file, then deletes every registered scanner's temp file.
func (a *Aggregator) Save(org, repo string, results models.ScannerResults, resultsDir string) error {
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	path := filepath.Join(resultsDir, PerRepoFileName(org, repo))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	a.logf("Saved results to %s", path)

	for _, fileName := range a.registry.TempFileNames() {
		tempPath := filepath.Join(resultsDir, fileName)
		if err := os.Remove(tempPath); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to remove temp file: %w", err)
		}
		a.logf("Removed temporary scanner file: %s", tempPath)
	}

	return nil
}

// loadResults reads a scanner-results file into dst. A missing file leaves
// dst untouched; read and parse failures propagate.
func loadResults(path string, dst *models.ScannerResults) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
