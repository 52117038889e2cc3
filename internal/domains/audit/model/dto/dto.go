package dto

import (
	"cardex/internal/domains/audit/model"
	"cardex/shared/constant"
)

type LogResponse struct {
	ID               string `json:"id"`
	ClientID         string `json:"client_id"`
	ModifiedBy       string `json:"modified_by"`
	ModificationDate string `json:"modification_date"`
	Action           string `json:"action"`
	FieldChanged     string `json:"field_changed"`
	OldValue         string `json:"old_value"`
	NewValue         string `json:"new_value"`
}

func (r *LogResponse) FromModel(mod model.LogEntry) {
	r.ID = mod.ID
	r.ClientID = mod.ClientID
	r.ModifiedBy = mod.ModifiedBy
	r.ModificationDate = mod.ModificationDate.Format(constant.DateTimeFormat)
	r.Action = mod.Action
	r.FieldChanged = stringValue(mod.FieldChanged)
	r.OldValue = stringValue(mod.OldValue)
	r.NewValue = stringValue(mod.NewValue)
}

func FromModels(models []model.LogEntry) []LogResponse {
	entries := make([]LogResponse, len(models))
	for i, mod := range models {
		entries[i].FromModel(mod)
	}

	return entries
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
