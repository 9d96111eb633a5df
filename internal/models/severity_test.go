package models

import "testing"

func TestSeverityRank(t *testing.T) {
	tests := []struct {
		name     string
		severity string
		expected int
	}{
		{"critical", SeverityCritical, 0},
		{"high", SeverityHigh, 1},
		{"medium", SeverityMedium, 2},
		{"low", SeverityLow, 3},
		{"unknown", SeverityUnknown, 4},
		{"warning", SeverityWarning, 5},
		{"none", SeverityNone, 6},
		{"unrecognized", "BANANAS", unrankedSeverity},
		{"lowercase not recognized", "critical", unrankedSeverity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := SeverityRank(tt.severity); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWorstSeverity(t *testing.T) {
	tests := []struct {
		name       string
		severities []string
		expected   string
	}{
		{"empty", nil, SeverityNone},
		{"single low", []string{"LOW"}, SeverityLow},
		{"critical wins", []string{"LOW", "CRITICAL", "MEDIUM"}, SeverityCritical},
		{"warning over none", []string{"NONE", "WARNING"}, SeverityWarning},
		{"missing severity counts as unknown", []string{""}, SeverityUnknown},
		{"order independent", []string{"HIGH", "CRITICAL"}, SeverityCritical},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			violations := make([]Violation, 0, len(tt.severities))
			for _, s := range tt.severities {
				v := Violation{}
				if s != "" {
					v["severity"] = s
				}
				violations = append(violations, v)
			}

			if got := WorstSeverity(violations); got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCountBySeverity(t *testing.T) {
	violations := []Violation{
		{"severity": "CRITICAL"},
		{"severity": "CRITICAL"},
		{"severity": "HIGH"},
		{"severity": "LOW"},
		{"severity": "WARNING"},
		{},
	}

	counts := CountBySeverity(violations)

	expected := map[string]int{
		SeverityCritical: 2,
		SeverityHigh:     1,
		SeverityMedium:   0,
		SeverityLow:      1,
	}
	for severity, want := range expected {
		if counts[severity] != want {
			t.Fatalf("severity %s: expected %d, got %d", severity, want, counts[severity])
		}
	}
	if _, ok := counts[SeverityWarning]; ok {
		t.Fatalf("WARNING should not appear in per-severity counts")
	}
}

func TestCountFixable(t *testing.T) {
	tests := []struct {
		name       string
		violations []Violation
		expected   int
	}{
		{"empty", nil, 0},
		{"no fixes", []Violation{{"severity": "HIGH"}}, 0},
		{"empty string not fixable", []Violation{{"fixed_version": ""}}, 0},
		{"non-string ignored", []Violation{{"fixed_version": 2.0}}, 0},
		{
			"mixed",
			[]Violation{
				{"fixed_version": "1.2.3"},
				{"fixed_version": ""},
				{"fixed_version": "4.5.6"},
				{"severity": "LOW"},
			},
			2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := CountFixable(tt.violations); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestStatusEmoji(t *testing.T) {
	tests := []struct {
		name     string
		severity string
		expected string
	}{
		{"critical", SeverityCritical, "🔴"},
		{"high", SeverityHigh, "🔴"},
		{"medium", SeverityMedium, "🟡"},
		{"low", SeverityLow, "🟡"},
		{"unknown", SeverityUnknown, "🟡"},
		{"warning", SeverityWarning, "🟡"},
		{"none", SeverityNone, "🟢"},
		{"unrecognized", "WHATEVER", "⚪"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusEmoji(tt.severity); got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestScannerNames(t *testing.T) {
	tests := []struct {
		name     string
		results  ScannerResults
		expected string
	}{
		{"empty", ScannerResults{}, "None"},
		{"single", ScannerResults{"trivy": nil}, "trivy"},
		{
			"sorted",
			ScannerResults{"semgrep": nil, "bandit": nil, "trivy": nil},
			"bandit, semgrep, trivy",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.results.ScannerNames(); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	results := ScannerResults{
		"trivy":  {{"id": "a"}, {"id": "b"}},
		"grype":  {{"id": "c"}},
		"bandit": {},
	}

	all := results.Flatten()

	if len(all) != 3 {
		t.Fatalf("expected 3 findings, got %d", len(all))
	}
	// Scanner keys visit in sorted order: bandit, grype, trivy.
	if all[0]["id"] != "c" || all[1]["id"] != "a" || all[2]["id"] != "b" {
		t.Fatalf("unexpected flatten order: %v", all)
	}
}
