package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadColumnsFile(t *testing.T) {
	content := `columns:
  - name: Exports
    base: 10
    amplitude: 1.5
    phaseDays: 45
    noiseSigma: 0.3
  - name: Index
    base: 0.2
    cumulative: true
    offset: 1000
`
	path := filepath.Join(t.TempDir(), "columns.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	specs, err := LoadColumnsFile(path)
	if err != nil {
		t.Fatalf("LoadColumnsFile() error = %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("len(specs) = %d, want 2", len(specs))
	}
	if specs[0].Name != "Exports" || specs[0].PhaseDays != 45 {
		t.Errorf("first spec = %+v", specs[0])
	}
	if !specs[1].Cumulative || specs[1].Offset != 1000 {
		t.Errorf("second spec = %+v", specs[1])
	}
}

func TestLoadColumnsFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty list", content: "columns: []\n"},
		{name: "unnamed column", content: "columns:\n  - base: 1\n"},
		{name: "invalid yaml", content: "columns: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "columns.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadColumnsFile(path); err == nil {
				t.Error("LoadColumnsFile() expected error, got nil")
			}
		})
	}

	if _, err := LoadColumnsFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadColumnsFile() expected error for missing file, got nil")
	}
}
