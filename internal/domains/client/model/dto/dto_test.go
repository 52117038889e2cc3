package dto_test

import (
	"testing"
	"time"

	"cardex/internal/domains/client/model"
	"cardex/internal/domains/client/model/dto"
	"cardex/shared/failure"
	"cardex/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestSubmitClientRequest_ToModel(t *testing.T) {
	req := dto.SubmitClientRequest{
		FullName:            "John Smith",
		Email:               "john@example.com",
		Phone:               "+1234567890",
		NumberOfTravelers:   2,
		GroupType:           "family",
		ArrivalDate:         "2025-10-01",
		DepartureDate:       "2025-10-08",
		DietaryRestrictions: []string{"vegetarian"},
		GDPRConsent:         true,
	}

	client := req.ToModel("https://cdn.example.com/doc.pdf")

	assert.NotEmpty(t, client.ID)
	assert.Equal(t, "John Smith", client.FullName)
	assert.Equal(t, 2, client.NumberOfTravelers)
	assert.Equal(t, model.StatusPending, client.Status)
	assert.Equal(t, model.PriorityNormal, client.Priority)
	assert.Equal(t, `["vegetarian"]`, client.DietaryRestrictions)
	assert.Equal(t, "[]", client.AccessibilityNeeds)
	assert.Equal(t, "https://cdn.example.com/doc.pdf", client.AttachedDocument)
	assert.True(t, client.GDPRConsent)
	assert.Nil(t, client.AssignedTo)
	assert.Nil(t, client.LastModified)

	if assert.NotNil(t, client.GroupType) {
		assert.Equal(t, "family", *client.GroupType)
	}

	if assert.NotNil(t, client.ArrivalDate) {
		assert.Equal(t, "2025-10-01", *client.ArrivalDate)
	}
}

func TestSubmitClientRequest_ToModel_Defaults(t *testing.T) {
	req := dto.SubmitClientRequest{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+1987654321",
		GDPRConsent: true,
	}

	client := req.ToModel("")

	assert.Equal(t, 1, client.NumberOfTravelers)
	assert.Nil(t, client.GroupType)
	assert.Nil(t, client.ArrivalDate)
	assert.Equal(t, "[]", client.DietaryRestrictions)
	assert.Empty(t, client.AttachedDocument)
}

func TestSubmitClientRequest_Validation(t *testing.T) {
	valid := dto.SubmitClientRequest{
		FullName:    "John Smith",
		Email:       "john@example.com",
		Phone:       "+1234567890",
		GDPRConsent: true,
	}

	t.Run("group type is an open string", func(t *testing.T) {
		for _, groupType := range []string{"Individual", "Family", "Group", "school trip"} {
			req := valid
			req.GroupType = groupType

			assert.NoError(t, validator.ValidateStruct(&req), groupType)
		}
	})

	t.Run("presence checks", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(req *dto.SubmitClientRequest)
		}{
			{"missing full name", func(req *dto.SubmitClientRequest) { req.FullName = "" }},
			{"missing email", func(req *dto.SubmitClientRequest) { req.Email = "" }},
			{"missing phone", func(req *dto.SubmitClientRequest) { req.Phone = "" }},
			{"consent not given", func(req *dto.SubmitClientRequest) { req.GDPRConsent = false }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := valid
				tt.mutate(&req)

				err := validator.ValidateStruct(&req)

				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			})
		}
	})
}

func TestUpdateClientRequest_Validation(t *testing.T) {
	t.Run("group type is an open string", func(t *testing.T) {
		groupType := "Group"
		req := dto.UpdateClientRequest{ModifiedBy: "admin", GroupType: &groupType}

		assert.NoError(t, validator.ValidateStruct(&req))
	})

	t.Run("status stays a closed set", func(t *testing.T) {
		status := "archived"
		req := dto.UpdateClientRequest{ModifiedBy: "admin", Status: &status}

		assert.Error(t, validator.ValidateStruct(&req))
	})
}

func TestTravelerRequest_ToModel(t *testing.T) {
	req := dto.TravelerRequest{
		TravelerNumber:      7,
		Name:                "Kid Smith",
		AgeGroup:            "child",
		Relationship:        "son",
		DietaryRestrictions: []string{"gluten_free"},
	}

	traveler := req.ToModel("client-1")

	assert.NotEmpty(t, traveler.ID)
	assert.Equal(t, "client-1", traveler.ClientID)
	assert.Equal(t, 7, traveler.TravelerNumber, "caller-assigned ordinal is stored verbatim")
	assert.Equal(t, `["gluten_free"]`, traveler.DietaryRestrictions)
}

func TestUpdateClientRequest_Changes(t *testing.T) {
	t.Run("empty request has no changes", func(t *testing.T) {
		req := dto.UpdateClientRequest{ModifiedBy: "admin"}

		assert.Empty(t, req.Changes())
	})

	t.Run("present fields only", func(t *testing.T) {
		status := "confirmed"
		travelers := 3

		req := dto.UpdateClientRequest{
			ModifiedBy:        "admin",
			Status:            &status,
			NumberOfTravelers: &travelers,
		}

		changes := req.Changes()

		assert.Len(t, changes, 2)
		assert.Equal(t, model.FieldNumberOfTravelers, changes[0].Column)
		assert.Equal(t, 3, changes[0].Value)
		assert.Equal(t, "3", changes[0].Text)
		assert.Equal(t, model.FieldStatus, changes[1].Column)
		assert.Equal(t, "confirmed", changes[1].Value)
	})

	t.Run("explicit empty string is a change", func(t *testing.T) {
		empty := ""

		req := dto.UpdateClientRequest{
			ModifiedBy:    "admin",
			InternalNotes: &empty,
		}

		changes := req.Changes()

		assert.Len(t, changes, 1)
		assert.Equal(t, model.FieldInternalNotes, changes[0].Column)
		assert.Equal(t, "", changes[0].Value)
	})
}

func TestClientResponse_FromModel(t *testing.T) {
	groupType := "family"
	arrival := "2025-10-01"
	modified := time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC)
	modifiedBy := "admin"

	client := model.Client{
		ID:                  "client-1",
		SubmissionDate:      time.Date(2025, 7, 15, 9, 0, 0, 0, time.UTC),
		FullName:            "John Smith",
		Email:               "john@example.com",
		Phone:               "+1234567890",
		NumberOfTravelers:   2,
		GroupType:           &groupType,
		ArrivalDate:         &arrival,
		DietaryRestrictions: `["vegetarian","halal"]`,
		AccessibilityNeeds:  "not json",
		Status:              model.StatusConfirmed,
		Priority:            model.PriorityHigh,
		LastModified:        &modified,
		ModifiedBy:          &modifiedBy,
	}

	res := dto.ClientResponse{}
	res.FromModel(client)

	assert.Equal(t, "client-1", res.ID)
	assert.Equal(t, "2025-07-15 09:00:00", res.SubmissionDate)
	assert.Equal(t, "family", res.GroupType)
	assert.Equal(t, "2025-10-01", res.ArrivalDate)
	assert.Equal(t, "", res.DepartureDate)
	assert.Equal(t, []string{"vegetarian", "halal"}, res.DietaryRestrictions)
	assert.Empty(t, res.AccessibilityNeeds, "malformed stored tags decode to an empty list")
	assert.Equal(t, "2025-08-01 10:30:00", res.LastModified)
	assert.Equal(t, "admin", res.ModifiedBy)
	assert.Equal(t, "", res.AssignedTo)
}

func TestGetClientsResponse_FromModels(t *testing.T) {
	models := []model.Client{
		{ID: "a", DietaryRestrictions: "[]", AccessibilityNeeds: "[]"},
		{ID: "b", DietaryRestrictions: "[]", AccessibilityNeeds: "[]"},
	}

	res := dto.GetClientsResponse{}
	res.FromModels(models, 120, 2, 50)

	assert.True(t, res.Success)
	assert.Len(t, res.Clients, 2)
	assert.Equal(t, 120, res.Total)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 3, res.TotalPages)
}
