package coreconfig

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sparkentic/sparkentic/internal/templates"
)

const validConfig = `name: my-core
version: "1.2.0"
workflow:
  - architect
  - builder
agents:
  - name: architect
    role: designs
    command: spk-architect
    prompt: agents/architect.md
  - name: builder
    role: builds
    prompt: agents/builder.md
paths:
  docs: docs
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := &Config{
		Name:     "my-core",
		Version:  "1.2.0",
		Workflow: []string{"architect", "builder"},
		Agents: []Agent{
			{Name: "architect", Role: "designs", Command: "spk-architect", Prompt: "agents/architect.md"},
			{Name: "builder", Role: "builds", Prompt: "agents/builder.md"},
		},
		Paths: map[string]string{"docs": "docs"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("name: [unterminated")); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestUnassignedStages(t *testing.T) {
	cfg := &Config{
		Workflow: []string{"architect", "builder", "tester"},
		Agents:   []Agent{{Name: "architect"}, {Name: "tester"}},
	}
	if diff := cmp.Diff([]string{"builder"}, cfg.UnassignedStages()); diff != "" {
		t.Errorf("UnassignedStages mismatch (-want +got):\n%s", diff)
	}

	if a, ok := cfg.Agent("tester"); !ok || a.Name != "tester" {
		t.Errorf("Agent(tester) = %v, %v", a, ok)
	}
	if _, ok := cfg.Agent("deployer"); ok {
		t.Error("Agent(deployer) should not be found")
	}
}

func TestValidateBundledConfig(t *testing.T) {
	data, err := templates.BundledCoreConfig()
	if err != nil {
		t.Fatalf("BundledCoreConfig: %v", err)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("bundled config is invalid: %v", result.Issues)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if missing := cfg.UnassignedStages(); len(missing) > 0 {
		t.Errorf("bundled workflow stages without agents: %v", missing)
	}
}

func TestValidateValid(t *testing.T) {
	result, err := Validate([]byte(validConfig))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %v", result.Issues)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantPath string
	}{
		{
			name:     "missing name",
			yaml:     strings.Replace(validConfig, "name: my-core\n", "", 1),
			wantPath: "",
		},
		{
			name:     "bad version",
			yaml:     strings.Replace(validConfig, `version: "1.2.0"`, `version: "latest"`, 1),
			wantPath: "/version",
		},
		{
			name:     "agent missing prompt",
			yaml:     strings.Replace(validConfig, "    prompt: agents/builder.md\n", "", 1),
			wantPath: "/agents/1",
		},
		{
			name:     "unknown top-level key",
			yaml:     validConfig + "extra: true\n",
			wantPath: "",
		},
		{
			name:     "empty workflow",
			yaml:     strings.Replace(validConfig, "workflow:\n  - architect\n  - builder\n", "workflow: []\n", 1),
			wantPath: "/workflow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid")
			}
			if len(result.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}

			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue at %q has empty message", issue.Path)
				}
			}
			if !found {
				t.Errorf("no issue at %q, got %v", tt.wantPath, result.Issues)
			}
		})
	}
}

func TestValidateInvalidYAML(t *testing.T) {
	if _, err := Validate([]byte("agents: [")); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidationIssueString(t *testing.T) {
	if got := (ValidationIssue{Path: "/name", Message: "bad"}).String(); got != "/name: bad" {
		t.Errorf("String() = %q", got)
	}
	if got := (ValidationIssue{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q", got)
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.1.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"v1.2.3", "1.2.3", 0},
		{"1.0.0-beta.1", "1.0.0", -1},
	}

	for _, tt := range tests {
		got, err := CompareVersions(tt.a, tt.b)
		if err != nil {
			t.Errorf("CompareVersions(%q, %q) error: %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsOutdated(t *testing.T) {
	outdated, err := IsOutdated("0.9.0", "1.0.0")
	if err != nil || !outdated {
		t.Errorf("IsOutdated(0.9.0, 1.0.0) = %v, %v; want true", outdated, err)
	}
	outdated, err = IsOutdated("1.0.0", "1.0.0")
	if err != nil || outdated {
		t.Errorf("IsOutdated(1.0.0, 1.0.0) = %v, %v; want false", outdated, err)
	}
	if _, err := IsOutdated("not-a-version", "1.0.0"); err == nil {
		t.Error("expected error for invalid version")
	}
}
