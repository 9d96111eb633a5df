package detector

import (
	"os"
	"path/filepath"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/mcpscan/mcpscan/internal/models"
)

// Config holds configuration for the detector.
type Config struct {
	// Excludes are doublestar globs matched against repo-relative paths.
	// A matching directory is skipped entirely. Empty by default so a scan
	// covers the whole tree, vendored code included.
	Excludes []string
	Verbose  bool
}

// Detector finds MCP tool definitions in a repository checkout. Detection is
// deliberately heuristic: regular expressions over raw source text, not a
// parser. Exotic formatting can slip through; that trade-off is accepted.
type Detector struct {
	repoPath string
	config   Config
	tools    []models.Tool
}

// New creates a detector rooted at the given repository path.
func New(repoPath string, config Config) *Detector {
	return &Detector{
		repoPath: repoPath,
		config:   config,
	}
}

// Detect walks the repository and returns every tool definition found.
// Files that cannot be read are skipped; a missing repository root is the
// only fatal condition. When nothing matches but the dependency manifests
// reference the MCP ecosystem, a single synthetic placeholder tool is
// returned so the repository still shows up as an MCP server.
func (d *Detector) Detect() ([]models.Tool, error) {
	d.tools = nil

	for _, lang := range languages {
		files, err := d.findSourceFiles(lang)
		if err != nil {
			return nil, err
		}

		for _, path := range files {
			d.detectFile(lang, path)
		}
	}

	if len(d.tools) == 0 && d.isMCPServer() {
		d.tools = append(d.tools, models.Tool{
			Name:        "unknown",
			FilePath:    d.repoPath,
			Description: "MCP server with undetected tools",
		})
	}

	return d.tools, nil
}

// ToolsByFile groups the tools found by the last Detect call by their source
// file. Order within a file is detection order.
func (d *Detector) ToolsByFile() map[string][]models.Tool {
	byFile := make(map[string][]models.Tool)
	for _, tool := range d.tools {
		byFile[tool.FilePath] = append(byFile[tool.FilePath], tool)
	}
	return byFile
}

// findSourceFiles walks the repository collecting files that match a
// language's glob patterns, honoring the configured excludes.
func (d *Detector) findSourceFiles(lang language) ([]string, error) {
	var files []string

	err := filepath.Walk(d.repoPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == d.repoPath {
				return err
			}
			// Unreadable subtree: skip it, keep scanning.
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(d.repoPath, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if rel != "." && d.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.excluded(rel) {
			return nil
		}

		if lang.matches(rel) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// excluded reports whether a repo-relative path matches an exclude glob.
func (d *Detector) excluded(rel string) bool {
	for _, glob := range d.config.Excludes {
		if ok, _ := doublestar.Match(glob, rel); ok {
			return true
		}
	}
	return false
}

// detectFile runs a language's rule set over one file. Read failures are
// swallowed: the file contributes nothing and the pass continues.
func (d *Detector) detectFile(lang language, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	rel, err := filepath.Rel(d.repoPath, path)
	if err != nil {
		return
	}

	d.tools = append(d.tools, lang.detect(string(data), filepath.ToSlash(rel))...)
}
