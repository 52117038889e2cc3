package model

import "time"

const (
	TableName  = "client_notes"
	EntityName = "client note"

	FieldID          = "id"
	FieldClientID    = "client_id"
	FieldCreatedDate = "created_date"
)

// Note is a free-form staff annotation on a client record. The author column
// carries what the API exposes as "user"; "user" itself is a reserved word in
// Postgres.
type Note struct {
	ID          string    `db:"id"`
	ClientID    string    `db:"client_id"`
	Author      string    `db:"author"`
	Note        string    `db:"note"`
	CreatedDate time.Time `db:"created_date"`
}
