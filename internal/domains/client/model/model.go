package model

import (
	"encoding/json"
	"strconv"
	"time"
)

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID                  = "id"
	FieldSubmissionDate      = "submission_date"
	FieldFullName            = "full_name"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldNumberOfTravelers   = "number_of_travelers"
	FieldGroupType           = "group_type"
	FieldArrivalDate         = "arrival_date"
	FieldDepartureDate       = "departure_date"
	FieldAccommodationType   = "accommodation_type"
	FieldBudgetRange         = "budget_range"
	FieldDietaryRestrictions = "dietary_restrictions"
	FieldAccessibilityNeeds  = "accessibility_needs"
	FieldPreferredLanguage   = "preferred_language"
	FieldCustomActivities    = "custom_activities"
	FieldFoodPreferences     = "food_preferences"
	FieldAdditionalInquiries = "additional_inquiries"
	FieldAttachedDocument    = "attached_document"
	FieldGDPRConsent         = "gdpr_consent"
	FieldStatus              = "status"
	FieldPriority            = "priority"
	FieldAssignedTo          = "assigned_to"
	FieldLastModified        = "last_modified"
	FieldModifiedBy          = "modified_by"
	FieldInternalNotes       = "internal_notes"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Client is one intake-form submission. Tag-set columns
// (dietary_restrictions, accessibility_needs) hold the JSON-serialized list
// text; arrival/departure dates stay ISO date strings so range filters
// compare lexicographically.
type Client struct {
	ID                  string     `db:"id"`
	SubmissionDate      time.Time  `db:"submission_date"`
	FullName            string     `db:"full_name"`
	Email               string     `db:"email"`
	Phone               string     `db:"phone"`
	NumberOfTravelers   int        `db:"number_of_travelers"`
	GroupType           *string    `db:"group_type"`
	ArrivalDate         *string    `db:"arrival_date"`
	DepartureDate       *string    `db:"departure_date"`
	AccommodationType   string     `db:"accommodation_type"`
	BudgetRange         string     `db:"budget_range"`
	DietaryRestrictions string     `db:"dietary_restrictions"`
	AccessibilityNeeds  string     `db:"accessibility_needs"`
	PreferredLanguage   string     `db:"preferred_language"`
	CustomActivities    string     `db:"custom_activities"`
	FoodPreferences     string     `db:"food_preferences"`
	AdditionalInquiries string     `db:"additional_inquiries"`
	AttachedDocument    string     `db:"attached_document"`
	GDPRConsent         bool       `db:"gdpr_consent"`
	Status              string     `db:"status"`
	Priority            string     `db:"priority"`
	AssignedTo          *string    `db:"assigned_to"`
	LastModified        *time.Time `db:"last_modified"`
	ModifiedBy          *string    `db:"modified_by"`
	InternalNotes       *string    `db:"internal_notes"`
}

// UpdatableFields is the whitelist of columns the dashboard update operation
// may touch. Identity, submission timestamp, consent, and the attachment
// reference are deliberately absent.
var UpdatableFields = []string{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldNumberOfTravelers,
	FieldGroupType,
	FieldArrivalDate,
	FieldDepartureDate,
	FieldAccommodationType,
	FieldBudgetRange,
	FieldPreferredLanguage,
	FieldCustomActivities,
	FieldFoodPreferences,
	FieldAdditionalInquiries,
	FieldStatus,
	FieldPriority,
	FieldAssignedTo,
	FieldInternalNotes,
}

// ValueText renders the stored value of a whitelisted column as text, the
// representation the modification log records and the update service diffs
// against.
func (c *Client) ValueText(column string) string {
	switch column {
	case FieldFullName:
		return c.FullName
	case FieldEmail:
		return c.Email
	case FieldPhone:
		return c.Phone
	case FieldNumberOfTravelers:
		return strconv.Itoa(c.NumberOfTravelers)
	case FieldGroupType:
		return derefString(c.GroupType)
	case FieldArrivalDate:
		return derefString(c.ArrivalDate)
	case FieldDepartureDate:
		return derefString(c.DepartureDate)
	case FieldAccommodationType:
		return c.AccommodationType
	case FieldBudgetRange:
		return c.BudgetRange
	case FieldPreferredLanguage:
		return c.PreferredLanguage
	case FieldCustomActivities:
		return c.CustomActivities
	case FieldFoodPreferences:
		return c.FoodPreferences
	case FieldAdditionalInquiries:
		return c.AdditionalInquiries
	case FieldStatus:
		return c.Status
	case FieldPriority:
		return c.Priority
	case FieldAssignedTo:
		return derefString(c.AssignedTo)
	case FieldInternalNotes:
		return derefString(c.InternalNotes)
	default:
		return ""
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// EncodeTags serializes a tag list to its stored JSON text form.
func EncodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}

	encoded, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}

	return string(encoded)
}

// DecodeTags deserializes a stored tag-set column. Malformed text degrades
// to an empty list instead of failing the read.
func DecodeTags(stored string) []string {
	if stored == "" {
		return []string{}
	}

	var tags []string
	if err := json.Unmarshal([]byte(stored), &tags); err != nil || tags == nil {
		return []string{}
	}

	return tags
}
