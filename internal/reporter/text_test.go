package reporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mcpscan/mcpscan/internal/models"
)

func TestTextReporterInventory(t *testing.T) {
	tools := []models.Tool{
		{Name: "fetch", FilePath: "server.py", Description: "Fetch a page.", LineNumber: 3},
		{Name: "store", FilePath: "server.py", LineNumber: 9},
		{Name: "render", FilePath: "app/view.tsx", LineNumber: 1},
	}
	byFile := map[string][]models.Tool{
		"server.py":    {tools[0], tools[1]},
		"app/view.tsx": {tools[2]},
	}

	var buf bytes.Buffer
	if err := NewTextReporter(&buf).Generate("/tmp/repo", tools, byFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Repository: /tmp/repo",
		"Tools detected: 3",
		"server.py",
		"L3  fetch - Fetch a page.",
		"L9  store",
		"app/view.tsx",
		"L1  render",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	// Files print in sorted order.
	if strings.Index(out, "app/view.tsx") > strings.Index(out, "server.py") {
		t.Fatalf("expected app/view.tsx before server.py:\n%s", out)
	}
}

func TestTextReporterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextReporter(&buf).Generate("/tmp/repo", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "No MCP tools detected.") {
		t.Fatalf("expected empty notice:\n%s", buf.String())
	}
}

func TestTextReporterSyntheticTool(t *testing.T) {
	tools := []models.Tool{
		{Name: "unknown", FilePath: "/tmp/repo", Description: "MCP server with undetected tools"},
	}
	byFile := map[string][]models.Tool{"/tmp/repo": tools}

	var buf bytes.Buffer
	if err := NewTextReporter(&buf).Generate("/tmp/repo", tools, byFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Line 0 means synthetic; no line prefix is printed.
	if strings.Contains(buf.String(), "L0") {
		t.Fatalf("synthetic tool should not show a line number:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "unknown - MCP server with undetected tools") {
		t.Fatalf("expected synthetic tool line:\n%s", buf.String())
	}
}
