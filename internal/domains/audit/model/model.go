package model

import "time"

const (
	TableName  = "modification_log"
	EntityName = "modification log"

	FieldID               = "id"
	FieldClientID         = "client_id"
	FieldModificationDate = "modification_date"

	ActionCreated = "Created"
	ActionUpdated = "Updated"

	// CreationFieldLabel is recorded in field_changed for Created entries.
	CreationFieldLabel = "New submission"

	// SystemActor is the modified_by value for entries not triggered by a
	// staff member.
	SystemActor = "system"
)

// LogEntry is one append-only audit record. Entries are never updated or
// deleted; FieldChanged, OldValue, and NewValue are null for creation events'
// value columns.
type LogEntry struct {
	ID               string    `db:"id"`
	ClientID         string    `db:"client_id"`
	ModifiedBy       string    `db:"modified_by"`
	ModificationDate time.Time `db:"modification_date"`
	Action           string    `db:"action"`
	FieldChanged     *string   `db:"field_changed"`
	OldValue         *string   `db:"old_value"`
	NewValue         *string   `db:"new_value"`
}
