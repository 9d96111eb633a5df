package detector

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// pythonManifests are checked for an MCP reference by raw substring match.
var pythonManifests = []string{"requirements.txt", "pyproject.toml", "Pipfile"}

// isMCPServer checks whether the repository's dependency manifests reference
// the MCP ecosystem. Used only as a fallback when pattern matching found
// nothing. Malformed manifests count as no reference.
func (d *Detector) isMCPServer() bool {
	for _, name := range pythonManifests {
		data, err := os.ReadFile(filepath.Join(d.repoPath, name))
		if err != nil {
			continue
		}
		content := string(data)
		if strings.Contains(content, "mcp") || strings.Contains(content, "fastmcp") {
			return true
		}
	}

	return d.packageJSONReferencesMCP()
}

// packageJSONReferencesMCP checks package.json dependency names for an MCP
// reference.
func (d *Detector) packageJSONReferencesMCP() bool {
	data, err := os.ReadFile(filepath.Join(d.repoPath, "package.json"))
	if err != nil {
		return false
	}

	var manifest struct {
		Dependencies    map[string]json.RawMessage `json:"dependencies"`
		DevDependencies map[string]json.RawMessage `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return false
	}

	for dep := range manifest.Dependencies {
		if isMCPDependency(dep) {
			return true
		}
	}
	for dep := range manifest.DevDependencies {
		if isMCPDependency(dep) {
			return true
		}
	}
	return false
}

func isMCPDependency(name string) bool {
	return strings.Contains(name, "modelcontextprotocol") || strings.Contains(name, "mcp")
}
