// Package localefile loads locale name tables from YAML files.
package localefile

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/username/calgrid/pkg/locale"
)

// fileSchema is the on-disk shape of a locale file. Every field is
// optional; whatever is omitted keeps its English default.
//
//	divider: "."
//	date_field_order: dmy
//	names:
//	  monday: Montag
//	  abbr_monday: Mo
//	  short_monday: M
//	  march: März
type fileSchema struct {
	Divider        string            `yaml:"divider"`
	DateFieldOrder string            `yaml:"date_field_order"`
	Names          map[string]string `yaml:"names"`
}

// Load reads a YAML locale file and returns the English locale overlaid
// with its entries. Unknown name keys are logged and skipped.
func Load(path string, logger *zap.Logger) (*locale.Locale, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file: %w", err)
	}

	var schema fileSchema
	if err := yaml.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", path, err)
	}

	loc := locale.English()
	if schema.Divider != "" {
		loc.Divider = schema.Divider
	}
	if schema.DateFieldOrder != "" {
		order, err := locale.ParseFieldOrder(schema.DateFieldOrder)
		if err != nil {
			return nil, fmt.Errorf("invalid locale file %s: %w", path, err)
		}
		loc.FieldOrder = order
	}

	applied := 0
	for key, value := range schema.Names {
		if err := loc.SetKey(key, value); err != nil {
			logger.Warn("Skipping unknown locale entry",
				zap.String("file", path),
				zap.String("key", key))
			continue
		}
		applied++
	}

	logger.Info("Loaded locale file",
		zap.String("file", path),
		zap.Int("names", applied))
	return loc, nil
}
