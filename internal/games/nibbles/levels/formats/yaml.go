// Package formats provides level file format parsers.
package formats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/nibbles/internal/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Spawns []YAMLSpawn `yaml:"spawns"`
	Walls  []YAMLWall  `yaml:"walls,omitempty"`
}

// YAMLSpawn is one player's start tuple.
type YAMLSpawn struct {
	U       float64 `yaml:"u"`
	V       float64 `yaml:"v"`
	Heading Heading `yaml:"heading"`
}

// YAMLWall is one wall draw in cell units.
// hline uses len (or w), vline uses len (or h), rect uses w and h.
type YAMLWall struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Len  int    `yaml:"len,omitempty"`
	W    int    `yaml:"w,omitempty"`
	H    int    `yaml:"h,omitempty"`
}

// Heading accepts a direction name (right, down, left, up) or radians.
type Heading float64

var headingNames = map[string]float64{
	"right": core.HeadingRight,
	"down":  core.HeadingDown,
	"left":  core.HeadingLeft,
	"up":    core.HeadingUp,
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *Heading) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("heading: expected scalar at line %d", node.Line)
	}
	if v, ok := headingNames[strings.ToLower(node.Value)]; ok {
		*h = Heading(v)
		return nil
	}
	v, err := strconv.ParseFloat(node.Value, 64)
	if err != nil {
		return fmt.Errorf("heading: %q at line %d is neither a direction nor radians", node.Value, node.Line)
	}
	*h = Heading(v)
	return nil
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (YAMLLevel, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return YAMLLevel{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return YAMLLevel{}, fmt.Errorf("level has no id")
	}
	if len(yl.Spawns) != 2 {
		return YAMLLevel{}, fmt.Errorf("level %s: expected 2 spawns, got %d", yl.ID, len(yl.Spawns))
	}
	return yl, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
