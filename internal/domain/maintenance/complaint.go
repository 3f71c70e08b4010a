package maintenance

import (
	"strings"

	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/shared"
)

// Category is the closed set of complaint categories. Keeping it a tagged
// enum with exhaustive mapping functions gives compile-time completeness
// checks instead of string-keyed lookups with a runtime fallback.
type Category string

const (
	CategoryPlumbing   Category = "plumbing"
	CategoryElectrical Category = "electrical"
	CategoryStructural Category = "structural"
	CategoryOther      Category = "other"
	CategoryMessage    Category = "message"
	CategoryAIRepair   Category = "ai_repair"
)

// Categories lists every valid category
func Categories() []Category {
	return []Category{
		CategoryPlumbing,
		CategoryElectrical,
		CategoryStructural,
		CategoryOther,
		CategoryMessage,
		CategoryAIRepair,
	}
}

// ParseCategory maps a raw string to a Category
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryPlumbing:
		return CategoryPlumbing, nil
	case CategoryElectrical:
		return CategoryElectrical, nil
	case CategoryStructural:
		return CategoryStructural, nil
	case CategoryOther:
		return CategoryOther, nil
	case CategoryMessage:
		return CategoryMessage, nil
	case CategoryAIRepair:
		return CategoryAIRepair, nil
	}
	return "", shared.NewDomainError("VALIDATION_ERROR", "Unknown complaint category")
}

// Icon returns the UI icon tag for a category. Exhaustive over the enum.
func (c Category) Icon() string {
	switch c {
	case CategoryPlumbing:
		return "wrench"
	case CategoryElectrical:
		return "zap"
	case CategoryStructural:
		return "home"
	case CategoryMessage:
		return "mail"
	case CategoryAIRepair:
		return "bot"
	case CategoryOther:
		return "alert-circle"
	}
	return "alert-circle"
}

// IsRepair reports whether the category describes a repair request rather
// than a plain message
func (c Category) IsRepair() bool {
	switch c {
	case CategoryPlumbing, CategoryElectrical, CategoryStructural, CategoryAIRepair:
		return true
	case CategoryMessage, CategoryOther:
		return false
	}
	return false
}

// Status tracks the handling state of a complaint
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// ParseStatus maps a raw string to a Status
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusNew:
		return StatusNew, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusResolved:
		return StatusResolved, nil
	}
	return "", shared.NewDomainError("VALIDATION_ERROR", "Unknown complaint status")
}

const maxDescriptionLength = 2000

// Complaint is a tenant-submitted maintenance request or message
type Complaint struct {
	shared.BaseAggregateRoot
	TenantID        uuid.UUID
	ApartmentNumber int
	Category        Category
	Description     string
	Status          Status
}

// NewComplaint creates a complaint in the new state
func NewComplaint(tenantID uuid.UUID, apartmentNumber int, category Category, description string) (*Complaint, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Tenant ID cannot be empty")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Description cannot be empty")
	}
	if len(description) > maxDescriptionLength {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Description cannot exceed 2000 characters")
	}
	return &Complaint{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TenantID:          tenantID,
		ApartmentNumber:   apartmentNumber,
		Category:          category,
		Description:       description,
		Status:            StatusNew,
	}, nil
}

// SetStatus moves the complaint to a new handling state. Only admins call
// this; transitions are free-form.
func (c *Complaint) SetStatus(status Status) error {
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}
	c.Status = status
	c.Touch()
	c.IncrementVersion()
	return nil
}
