package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type columnsFile struct {
	Columns []ColumnSpec `yaml:"columns"`
}

// LoadColumnsFile reads generator column definitions from a YAML file. The
// file holds a top-level "columns" list with name/base/amplitude/phaseDays/
// noiseSigma entries, overriding the built-in indicators wholesale.
func LoadColumnsFile(path string) ([]ColumnSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading columns file: %w", err)
	}

	var parsed columnsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing columns file: %w", err)
	}
	if len(parsed.Columns) == 0 {
		return nil, fmt.Errorf("columns file %s defines no columns", path)
	}
	for i, spec := range parsed.Columns {
		if spec.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
	}
	return parsed.Columns, nil
}
