package audit

import (
	"sort"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

// BuildRegistry folds raw hits into one record per variable name. Hits must
// already be in deterministic order: the first default encountered wins when
// files disagree.
func BuildRegistry(hits []types.RawHit, extraSensitive []string) *types.Registry {
	grouped := make(map[string][]types.RawHit)
	var order []string
	for _, hit := range hits {
		if _, seen := grouped[hit.Name]; !seen {
			order = append(order, hit.Name)
		}
		grouped[hit.Name] = append(grouped[hit.Name], hit)
	}

	records := make([]*types.VariableRecord, 0, len(order))
	for _, name := range order {
		group := grouped[name]

		fileSet := make(map[string]bool)
		var def *string
		for _, hit := range group {
			fileSet[hit.File] = true
			if def == nil && hit.Default != nil {
				def = hit.Default
			}
		}

		files := make([]string, 0, len(fileSet))
		for file := range fileSet {
			files = append(files, file)
		}
		sort.Strings(files)

		category := types.Categorize(name)
		records = append(records, &types.VariableRecord{
			Name:        name,
			Category:    category,
			Description: types.Describe(name),
			Files:       files,
			Occurrences: len(group),
			Required:    def == nil,
			Sensitive:   types.IsSensitive(name, extraSensitive),
			Default:     def,
		})
	}

	return types.NewRegistry(records)
}
