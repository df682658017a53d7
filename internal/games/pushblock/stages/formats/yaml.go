// Package formats provides pluggable stage file format parsers.
package formats

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// YAMLStage represents the YAML structure for a stage file.
type YAMLStage struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Stage represents a parsed stage ready for validation.
type Stage struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Rows     []string
	Metadata map[string]string
}

// ParseYAML parses a YAML stage file. All rows must have the same width.
func ParseYAML(data []byte) (Stage, error) {
	var ys YAMLStage
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Stage{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if ys.ID == "" {
		return Stage{}, fmt.Errorf("missing id")
	}
	if len(ys.Rows) == 0 {
		return Stage{}, fmt.Errorf("stage %s: no rows", ys.ID)
	}

	stage := Stage{
		ID:       ys.ID,
		Name:     ys.Name,
		Height:   len(ys.Rows),
		Rows:     make([]string, len(ys.Rows)),
		Metadata: ys.Metadata,
	}
	if stage.Name == "" {
		stage.Name = ys.ID
	}

	for i, row := range ys.Rows {
		width := utf8.RuneCountInString(row)
		if i == 0 {
			stage.Width = width
		} else if width != stage.Width {
			return Stage{}, fmt.Errorf("stage %s: row %d has width %d, expected %d", ys.ID, i, width, stage.Width)
		}
		stage.Rows[i] = row
	}
	if stage.Width == 0 {
		return Stage{}, fmt.Errorf("stage %s: empty rows", ys.ID)
	}

	return stage, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
