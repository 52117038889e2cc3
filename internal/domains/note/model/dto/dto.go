package dto

import (
	"cardex/internal/domains/note/model"
	"cardex/shared/constant"
	"cardex/shared/timezone"

	"github.com/google/uuid"
)

type AddNoteRequest struct {
	User string `json:"user" validate:"required,max=100"`
	Note string `json:"note" validate:"required"`
}

func (a *AddNoteRequest) ToModel(clientID string) model.Note {
	return model.Note{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		Author:      a.User,
		Note:        a.Note,
		CreatedDate: timezone.Now(),
	}
}

type NoteResponse struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	User        string `json:"user"`
	Note        string `json:"note"`
	CreatedDate string `json:"created_date"`
}

func (r *NoteResponse) FromModel(mod model.Note) {
	r.ID = mod.ID
	r.ClientID = mod.ClientID
	r.User = mod.Author
	r.Note = mod.Note
	r.CreatedDate = mod.CreatedDate.Format(constant.DateTimeFormat)
}

func FromModels(models []model.Note) []NoteResponse {
	notes := make([]NoteResponse, len(models))
	for i, mod := range models {
		notes[i].FromModel(mod)
	}

	return notes
}
