package checks

import (
	"context"
	"fmt"

	"inventory-manager/core/source"
	"inventory-manager/feature/inventory"
)

// DefinitionsReport lists which definition files parse.
type DefinitionsReport struct {
	Total   int               `json:"total"`
	Valid   []string          `json:"valid"`
	Invalid map[string]string `json:"invalid"`
}

// CheckDefinitions parses every definition file found by src without staging
// anything, so every broken file is reported instead of only the first one.
func CheckDefinitions(ctx context.Context, src source.Source) (*DefinitionsReport, error) {
	docs, err := src.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to discover extensions: %w", err)
	}

	report := &DefinitionsReport{
		Total:   len(docs),
		Valid:   []string{},
		Invalid: map[string]string{},
	}
	for _, doc := range docs {
		if _, err := inventory.ParseDocument(doc); err != nil {
			report.Invalid[doc.Name] = err.Error()
			continue
		}
		report.Valid = append(report.Valid, doc.Name)
	}

	return report, nil
}
