package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mcpscan/mcpscan/internal/models"
)

func TestJSONReporterShape(t *testing.T) {
	tools := []models.Tool{
		{Name: "fetch", FilePath: "server.py", Description: "Fetch a page.", LineNumber: 3},
	}
	byFile := map[string][]models.Tool{"server.py": tools}

	var buf bytes.Buffer
	if err := NewJSONReporter(&buf, false).Generate("/tmp/repo", tools, byFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Repository  string                   `json:"repository"`
		Total       int                      `json:"total"`
		Tools       []models.Tool            `json:"tools"`
		ToolsByFile map[string][]models.Tool `json:"tools_by_file"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if decoded.Repository != "/tmp/repo" {
		t.Fatalf("unexpected repository: %s", decoded.Repository)
	}
	if decoded.Total != 1 || len(decoded.Tools) != 1 {
		t.Fatalf("unexpected totals: %+v", decoded)
	}
	if decoded.Tools[0].Name != "fetch" || decoded.Tools[0].LineNumber != 3 {
		t.Fatalf("unexpected tool: %+v", decoded.Tools[0])
	}
	if len(decoded.ToolsByFile["server.py"]) != 1 {
		t.Fatalf("unexpected grouping: %+v", decoded.ToolsByFile)
	}
}

func TestJSONReporterEmptyInventory(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf, false).Generate("/tmp/repo", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"tools":[]`) {
		t.Fatalf("expected empty tools array, got: %s", out)
	}
	if strings.Contains(out, "null") {
		t.Fatalf("expected no null fields, got: %s", out)
	}
}

func TestJSONReporterPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf, true).Generate("/tmp/repo", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("expected indented output, got: %s", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatalf("expected trailing newline")
	}
}
