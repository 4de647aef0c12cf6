package export

import (
	"encoding/json"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

// JSONRenderer serializes the registry as an object keyed by variable name.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (j *JSONRenderer) Name() string {
	return "json"
}

func (j *JSONRenderer) Render(reg *types.Registry) ([]byte, error) {
	byName := make(map[string]*types.VariableRecord, reg.Len())
	for _, rec := range reg.Records() {
		byName[rec.Name] = rec
	}
	return json.MarshalIndent(byName, "", "  ")
}

// ParseJSON reverses Render, rebuilding the registry from its JSON form.
func ParseJSON(data []byte) (*types.Registry, error) {
	var byName map[string]*types.VariableRecord
	if err := json.Unmarshal(data, &byName); err != nil {
		return nil, err
	}

	records := make([]*types.VariableRecord, 0, len(byName))
	for _, rec := range byName {
		records = append(records, rec)
	}
	return types.NewRegistry(records), nil
}
