// Package diagram loads diagram model files: the shape collections produced
// by the diagram parser, serialized as JSON or YAML.
package diagram

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agenthands/sketchont/internal/core/common"
	"github.com/agenthands/sketchont/internal/core/model"
)

func Load(path string) (*model.Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read diagram '%s': %w", path, err)
	}

	var d *model.Diagram
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		d, err = common.DecodeAs[*model.Diagram](data, common.FormatJSON)
	case ".yaml", ".yml":
		d, err = common.DecodeAs[*model.Diagram](data, common.FormatYAML)
	default:
		d, _, err = common.Decode[*model.Diagram](data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode diagram '%s': %w", path, err)
	}
	if err := Check(d); err != nil {
		return nil, fmt.Errorf("invalid diagram '%s': %w", path, err)
	}
	return d, nil
}

func Parse(data []byte) (*model.Diagram, error) {
	d, _, err := common.Decode[*model.Diagram](data)
	if err != nil {
		return nil, err
	}
	if err := Check(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Check rejects documents the pipeline cannot walk: null entries and ids
// shared between collections. Dangling references are allowed.
func Check(d *model.Diagram) error {
	if d == nil {
		return fmt.Errorf("empty diagram")
	}

	owners := make(map[string]string)
	claim := func(kind, id string) error {
		if other, ok := owners[id]; ok {
			return fmt.Errorf("id '%s' is used by both %s and %s", id, other, kind)
		}
		owners[id] = kind
		return nil
	}

	for id := range d.Concepts.All() {
		if err := claim("concepts", id); err != nil {
			return err
		}
	}
	for id, block := range d.AttributeBlocks.All() {
		if err := claim("attribute_blocks", id); err != nil {
			return err
		}
		for i, attribute := range block.Attributes {
			if attribute == nil {
				return fmt.Errorf("attribute block '%s': attribute %d is null", id, i)
			}
		}
	}
	for id := range d.Relations.All() {
		if err := claim("relations", id); err != nil {
			return err
		}
	}
	for id := range d.Rhombuses.All() {
		if err := claim("rhombuses", id); err != nil {
			return err
		}
	}
	for id := range d.Individuals.All() {
		if err := claim("individuals", id); err != nil {
			return err
		}
	}
	for id := range d.Hexagons.All() {
		if err := claim("hexagons", id); err != nil {
			return err
		}
	}
	for id := range d.Values.All() {
		if err := claim("values", id); err != nil {
			return err
		}
	}
	return nil
}
