package scanners

import "fmt"

// tempFilePattern is the naming convention for a scanner's ephemeral output
// file inside the results directory.
const tempFilePattern = "%s-violations.json"

// DefaultNames is the ordered set of scanner identifiers mcpscan knows about.
// The order controls merge order during aggregation.
var DefaultNames = []string{
	"trivy",
	"grype",
	"semgrep",
	"bandit",
}

// Registry is the injected set of known scanner identifiers. The aggregator
// uses it to decide which temp files to merge and delete, and the summary uses
// it to exclude temp files from the per-repository glob.
type Registry struct {
	names []string
}

// NewRegistry builds a registry from an ordered list of scanner names.
// Duplicates are dropped, keeping the first occurrence.
func NewRegistry(names []string) *Registry {
	seen := make(map[string]bool, len(names))
	ordered := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		ordered = append(ordered, name)
	}
	return &Registry{names: ordered}
}

// Default returns a registry with the built-in scanner set.
func Default() *Registry {
	return NewRegistry(DefaultNames)
}

// Names returns the scanner identifiers in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Contains reports whether a scanner identifier is registered.
func (r *Registry) Contains(name string) bool {
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}

// TempFileName returns the ephemeral output file name for a scanner.
func (r *Registry) TempFileName(scanner string) string {
	return fmt.Sprintf(tempFilePattern, scanner)
}

// TempFileNames returns the ephemeral file names for every registered scanner,
// in registration order.
func (r *Registry) TempFileNames() []string {
	files := make([]string, 0, len(r.names))
	for _, name := range r.names {
		files = append(files, r.TempFileName(name))
	}
	return files
}

// IsTempFileName reports whether a file name is a registered scanner's
// ephemeral output file.
func (r *Registry) IsTempFileName(fileName string) bool {
	for _, name := range r.names {
		if r.TempFileName(name) == fileName {
			return true
		}
	}
	return false
}
