package model

const (
	TravelerTableName  = "additional_travelers"
	TravelerEntityName = "additional traveler"

	TravelerFieldID       = "id"
	TravelerFieldClientID = "client_id"
	TravelerFieldNumber   = "traveler_number"
)

// Traveler is a companion attached to a client submission. TravelerNumber
// is the caller-assigned ordinal and is stored verbatim, gaps and all.
type Traveler struct {
	ID                  string `db:"id"`
	ClientID            string `db:"client_id"`
	TravelerNumber      int    `db:"traveler_number"`
	Name                string `db:"name"`
	Email               string `db:"email"`
	Phone               string `db:"phone"`
	AgeGroup            string `db:"age_group"`
	Relationship        string `db:"relationship"`
	DietaryRestrictions string `db:"dietary_restrictions"`
	SpecialNotes        string `db:"special_notes"`
}
