package reporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/mcpscan/mcpscan/internal/models"
)

// TextReporter prints a human-readable tool inventory.
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(writer io.Writer) *TextReporter {
	return &TextReporter{
		writer: writer,
	}
}

// Generate writes the tool inventory for one repository.
func (r *TextReporter) Generate(repoPath string, tools []models.Tool, byFile map[string][]models.Tool) error {
	r.printHeader()
	r.printf("Repository: %s\n", repoPath)
	r.printf("Tools detected: %d\n\n", len(tools))

	if len(tools) == 0 {
		r.printf("No MCP tools detected.\n")
		return nil
	}

	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		r.printf("%s\n", file)
		r.printf("--------------------------------------------------\n")
		for _, tool := range byFile[file] {
			if tool.LineNumber > 0 {
				r.printf("  L%d  %s", tool.LineNumber, tool.Name)
			} else {
				r.printf("  %s", tool.Name)
			}
			if tool.Description != "" {
				r.printf(" - %s", tool.Description)
			}
			r.printf("\n")
		}
		r.printf("\n")
	}

	return nil
}

func (r *TextReporter) printHeader() {
	r.printf("╔════════════════════════════════════════════╗\n")
	r.printf("║          mcpscan Tool Inventory            ║\n")
	r.printf("╚════════════════════════════════════════════╝\n\n")
}

func (r *TextReporter) printf(format string, args ...any) {
	fmt.Fprintf(r.writer, format, args...)
}
