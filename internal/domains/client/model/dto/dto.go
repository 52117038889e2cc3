package dto

import (
	"strconv"

	"cardex/internal/domains/client/model"
	"cardex/shared"
	"cardex/shared/constant"
	"cardex/shared/timezone"

	auditDto "cardex/internal/domains/audit/model/dto"
	noteDto "cardex/internal/domains/note/model/dto"

	"github.com/google/uuid"
)

// AttachmentPayload is an optional base64-encoded document sent with the
// intake form. Data may be raw base64 or a full data URL.
type AttachmentPayload struct {
	Name string `json:"name" validate:"required,max=255"`
	Data string `json:"data" validate:"required,maxfilesize=10"`
}

type TravelerRequest struct {
	TravelerNumber      int      `json:"traveler_number" validate:"omitempty,min=1"`
	Name                string   `json:"name"            validate:"required,max=200"`
	Email               string   `json:"email"           validate:"omitempty,email,max=200"`
	Phone               string   `json:"phone"           validate:"omitempty,max=50"`
	AgeGroup            string   `json:"age_group"       validate:"omitempty,max=50"`
	Relationship        string   `json:"relationship"    validate:"omitempty,max=100"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	SpecialNotes        string   `json:"special_notes"   validate:"omitempty"`
}

func (t *TravelerRequest) ToModel(clientID string) model.Traveler {
	return model.Traveler{
		ID:                  uuid.NewString(),
		ClientID:            clientID,
		TravelerNumber:      t.TravelerNumber,
		Name:                t.Name,
		Email:               t.Email,
		Phone:               t.Phone,
		AgeGroup:            t.AgeGroup,
		Relationship:        t.Relationship,
		DietaryRestrictions: model.EncodeTags(t.DietaryRestrictions),
		SpecialNotes:        t.SpecialNotes,
	}
}

type SubmitClientRequest struct {
	FullName            string             `json:"full_name"            validate:"required,max=200"`
	Email               string             `json:"email"                validate:"required,email,max=200"`
	Phone               string             `json:"phone"                validate:"required,max=50"`
	NumberOfTravelers   int                `json:"number_of_travelers"  validate:"omitempty,min=1"`
	GroupType           string             `json:"group_type"           validate:"omitempty,max=100"`
	ArrivalDate         string             `json:"arrival_date"         validate:"omitempty,datetime=2006-01-02"`
	DepartureDate       string             `json:"departure_date"       validate:"omitempty,datetime=2006-01-02"`
	AccommodationType   string             `json:"accommodation_type"   validate:"omitempty,max=100"`
	BudgetRange         string             `json:"budget_range"         validate:"omitempty,max=100"`
	DietaryRestrictions []string           `json:"dietary_restrictions"`
	AccessibilityNeeds  []string           `json:"accessibility_needs"`
	PreferredLanguage   string             `json:"preferred_language"   validate:"omitempty,max=100"`
	CustomActivities    string             `json:"custom_activities"    validate:"omitempty"`
	FoodPreferences     string             `json:"food_preferences"     validate:"omitempty"`
	AdditionalInquiries string             `json:"additional_inquiries" validate:"omitempty"`
	AttachedDocument    *AttachmentPayload `json:"attached_document"    validate:"omitempty"`
	GDPRConsent         bool               `json:"gdpr_consent"         validate:"eq=true"`
	AdditionalTravelers []TravelerRequest  `json:"additional_travelers" validate:"omitempty,dive"`
}

// ToModel builds the stored record. attachedDocument is the blob-store URL
// of the already uploaded file, or empty when there was none (or the upload
// failed).
func (c *SubmitClientRequest) ToModel(attachedDocument string) model.Client {
	travelers := c.NumberOfTravelers
	if travelers < 1 {
		travelers = 1
	}

	return model.Client{
		ID:                  uuid.NewString(),
		SubmissionDate:      timezone.Now(),
		FullName:            c.FullName,
		Email:               c.Email,
		Phone:               c.Phone,
		NumberOfTravelers:   travelers,
		GroupType:           optional(c.GroupType),
		ArrivalDate:         optional(c.ArrivalDate),
		DepartureDate:       optional(c.DepartureDate),
		AccommodationType:   c.AccommodationType,
		BudgetRange:         c.BudgetRange,
		DietaryRestrictions: model.EncodeTags(c.DietaryRestrictions),
		AccessibilityNeeds:  model.EncodeTags(c.AccessibilityNeeds),
		PreferredLanguage:   c.PreferredLanguage,
		CustomActivities:    c.CustomActivities,
		FoodPreferences:     c.FoodPreferences,
		AdditionalInquiries: c.AdditionalInquiries,
		AttachedDocument:    attachedDocument,
		GDPRConsent:         c.GDPRConsent,
		Status:              model.StatusPending,
		Priority:            model.PriorityNormal,
	}
}

// FieldChange is one whitelisted column an update request wants to set.
// Value is what gets written; Text is the rendition the audit diff compares
// against the currently stored value.
type FieldChange struct {
	Column string
	Value  any
	Text   string
}

// UpdateClientRequest carries partial updates from the dashboard. Absent
// fields (nil pointers) are left untouched; fields outside the whitelist are
// not representable at all.
type UpdateClientRequest struct {
	ModifiedBy          string  `json:"modified_by"          validate:"required,max=100"`
	FullName            *string `json:"full_name"            validate:"omitempty,max=200"`
	Email               *string `json:"email"                validate:"omitempty,email,max=200"`
	Phone               *string `json:"phone"                validate:"omitempty,max=50"`
	NumberOfTravelers   *int    `json:"number_of_travelers"  validate:"omitempty,min=1"`
	GroupType           *string `json:"group_type"           validate:"omitempty,max=100"`
	ArrivalDate         *string `json:"arrival_date"         validate:"omitempty,datetime=2006-01-02"`
	DepartureDate       *string `json:"departure_date"       validate:"omitempty,datetime=2006-01-02"`
	AccommodationType   *string `json:"accommodation_type"   validate:"omitempty,max=100"`
	BudgetRange         *string `json:"budget_range"         validate:"omitempty,max=100"`
	PreferredLanguage   *string `json:"preferred_language"   validate:"omitempty,max=100"`
	CustomActivities    *string `json:"custom_activities"    validate:"omitempty"`
	FoodPreferences     *string `json:"food_preferences"     validate:"omitempty"`
	AdditionalInquiries *string `json:"additional_inquiries" validate:"omitempty"`
	Status              *string `json:"status"               validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Priority            *string `json:"priority"             validate:"omitempty,oneof=normal high"`
	AssignedTo          *string `json:"assigned_to"          validate:"omitempty,max=100"`
	InternalNotes       *string `json:"internal_notes"       validate:"omitempty"`
}

// Changes lists the fields present in the request, in whitelist order.
func (u *UpdateClientRequest) Changes() []FieldChange {
	changes := []FieldChange{}

	appendString := func(column string, value *string) {
		if value != nil {
			changes = append(changes, FieldChange{Column: column, Value: *value, Text: *value})
		}
	}

	appendString(model.FieldFullName, u.FullName)
	appendString(model.FieldEmail, u.Email)
	appendString(model.FieldPhone, u.Phone)

	if u.NumberOfTravelers != nil {
		changes = append(changes, FieldChange{
			Column: model.FieldNumberOfTravelers,
			Value:  *u.NumberOfTravelers,
			Text:   strconv.Itoa(*u.NumberOfTravelers),
		})
	}

	appendString(model.FieldGroupType, u.GroupType)
	appendString(model.FieldArrivalDate, u.ArrivalDate)
	appendString(model.FieldDepartureDate, u.DepartureDate)
	appendString(model.FieldAccommodationType, u.AccommodationType)
	appendString(model.FieldBudgetRange, u.BudgetRange)
	appendString(model.FieldPreferredLanguage, u.PreferredLanguage)
	appendString(model.FieldCustomActivities, u.CustomActivities)
	appendString(model.FieldFoodPreferences, u.FoodPreferences)
	appendString(model.FieldAdditionalInquiries, u.AdditionalInquiries)
	appendString(model.FieldStatus, u.Status)
	appendString(model.FieldPriority, u.Priority)
	appendString(model.FieldAssignedTo, u.AssignedTo)
	appendString(model.FieldInternalNotes, u.InternalNotes)

	return changes
}

type SubmitClientResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ClientID string `json:"client_id"`
}

type ClientResponse struct {
	ID                  string   `json:"id"`
	SubmissionDate      string   `json:"submission_date"`
	FullName            string   `json:"full_name"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	NumberOfTravelers   int      `json:"number_of_travelers"`
	GroupType           string   `json:"group_type"`
	ArrivalDate         string   `json:"arrival_date"`
	DepartureDate       string   `json:"departure_date"`
	AccommodationType   string   `json:"accommodation_type"`
	BudgetRange         string   `json:"budget_range"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	AccessibilityNeeds  []string `json:"accessibility_needs"`
	PreferredLanguage   string   `json:"preferred_language"`
	CustomActivities    string   `json:"custom_activities"`
	FoodPreferences     string   `json:"food_preferences"`
	AdditionalInquiries string   `json:"additional_inquiries"`
	AttachedDocument    string   `json:"attached_document"`
	GDPRConsent         bool     `json:"gdpr_consent"`
	Status              string   `json:"status"`
	Priority            string   `json:"priority"`
	AssignedTo          string   `json:"assigned_to"`
	LastModified        string   `json:"last_modified"`
	ModifiedBy          string   `json:"modified_by"`
	InternalNotes       string   `json:"internal_notes"`
}

func (r *ClientResponse) FromModel(mod model.Client) {
	r.ID = mod.ID
	r.SubmissionDate = mod.SubmissionDate.Format(constant.DateTimeFormat)
	r.FullName = mod.FullName
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.NumberOfTravelers = mod.NumberOfTravelers
	r.GroupType = stringValue(mod.GroupType)
	r.ArrivalDate = stringValue(mod.ArrivalDate)
	r.DepartureDate = stringValue(mod.DepartureDate)
	r.AccommodationType = mod.AccommodationType
	r.BudgetRange = mod.BudgetRange
	r.DietaryRestrictions = model.DecodeTags(mod.DietaryRestrictions)
	r.AccessibilityNeeds = model.DecodeTags(mod.AccessibilityNeeds)
	r.PreferredLanguage = mod.PreferredLanguage
	r.CustomActivities = mod.CustomActivities
	r.FoodPreferences = mod.FoodPreferences
	r.AdditionalInquiries = mod.AdditionalInquiries
	r.AttachedDocument = mod.AttachedDocument
	r.GDPRConsent = mod.GDPRConsent
	r.Status = mod.Status
	r.Priority = mod.Priority
	r.AssignedTo = stringValue(mod.AssignedTo)
	r.ModifiedBy = stringValue(mod.ModifiedBy)
	r.InternalNotes = stringValue(mod.InternalNotes)

	if mod.LastModified != nil {
		r.LastModified = mod.LastModified.Format(constant.DateTimeFormat)
	}
}

type GetClientsResponse struct {
	Success    bool             `json:"success"`
	Clients    []ClientResponse `json:"clients"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

func (r *GetClientsResponse) FromModels(models []model.Client, total, page, limit int) {
	r.Success = true
	r.Total = total
	r.Page = page
	r.TotalPages = shared.CalculateTotalPage(total, limit)

	r.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i].FromModel(mod)
	}
}

// ClientDetailResponse bundles the record with its annotations (newest first)
// and the last twenty audit entries.
type ClientDetailResponse struct {
	Success bool                   `json:"success"`
	Client  ClientResponse         `json:"client"`
	Notes   []noteDto.NoteResponse `json:"notes"`
	History []auditDto.LogResponse `json:"modification_history"`
}

type TravelerResponse struct {
	ID                  string   `json:"id"`
	ClientID            string   `json:"client_id"`
	TravelerNumber      int      `json:"traveler_number"`
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	AgeGroup            string   `json:"age_group"`
	Relationship        string   `json:"relationship"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	SpecialNotes        string   `json:"special_notes"`
}

func (r *TravelerResponse) FromModel(mod model.Traveler) {
	r.ID = mod.ID
	r.ClientID = mod.ClientID
	r.TravelerNumber = mod.TravelerNumber
	r.Name = mod.Name
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.AgeGroup = mod.AgeGroup
	r.Relationship = mod.Relationship
	r.DietaryRestrictions = model.DecodeTags(mod.DietaryRestrictions)
	r.SpecialNotes = mod.SpecialNotes
}

type GetTravelersResponse struct {
	Success   bool               `json:"success"`
	Travelers []TravelerResponse `json:"travelers"`
}

func (r *GetTravelersResponse) FromModels(models []model.Traveler) {
	r.Success = true

	r.Travelers = make([]TravelerResponse, len(models))
	for i, mod := range models {
		r.Travelers[i].FromModel(mod)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
