package reporter

import (
	"encoding/json"
	"io"

	"github.com/mcpscan/mcpscan/internal/models"
)

// JSONReporter generates machine-readable tool inventories.
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(writer io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{
		writer: writer,
		pretty: pretty,
	}
}

// inventory is the JSON shape of a detection pass.
type inventory struct {
	Repository  string                   `json:"repository"`
	Total       int                      `json:"total"`
	Tools       []models.Tool            `json:"tools"`
	ToolsByFile map[string][]models.Tool `json:"tools_by_file"`
}

// Generate writes the tool inventory for one repository.
func (r *JSONReporter) Generate(repoPath string, tools []models.Tool, byFile map[string][]models.Tool) error {
	if tools == nil {
		tools = []models.Tool{}
	}
	if byFile == nil {
		byFile = map[string][]models.Tool{}
	}

	inv := inventory{
		Repository:  repoPath,
		Total:       len(tools),
		Tools:       tools,
		ToolsByFile: byFile,
	}

	var data []byte
	var err error
	if r.pretty {
		data, err = json.MarshalIndent(inv, "", "  ")
	} else {
		data, err = json.Marshal(inv)
	}
	if err != nil {
		return err
	}

	if _, err := r.writer.Write(data); err != nil {
		return err
	}

	// Trailing newline for terminal output
	_, err = r.writer.Write([]byte("\n"))
	return err
}
