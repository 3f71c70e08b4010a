package maintenance

import (
	"time"

	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/maintenance"
)

// CreateComplaintRequest is the tenant input for a new complaint
type CreateComplaintRequest struct {
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateStatusRequest is the admin input for a complaint status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// InboundComplaintRequest is the payload posted by the external phone
// automation. Field names follow the upstream integration contract.
type InboundComplaintRequest struct {
	Phone      string `json:"phone" binding:"required"`
	Categoria  string `json:"categoria"`
	Prioridade string `json:"prioridade"`
	Resumo     string `json:"resumo" binding:"required"`
	Resposta   string `json:"resposta"`
}

// ComplaintResponse is the API view of a complaint
type ComplaintResponse struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	ApartmentNumber int       `json:"apartment_number"`
	Category        string    `json:"category"`
	Icon            string    `json:"icon"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToComplaintResponse converts a domain Complaint
func ToComplaintResponse(complaint *maintenance.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:              complaint.ID,
		TenantID:        complaint.TenantID,
		ApartmentNumber: complaint.ApartmentNumber,
		Category:        string(complaint.Category),
		Icon:            complaint.Category.Icon(),
		Description:     complaint.Description,
		Status:          string(complaint.Status),
		CreatedAt:       complaint.CreatedAt,
	}
}

// RepairRequestedEvent is the outbound webhook payload for repair complaints
type RepairRequestedEvent struct {
	ComplaintID     uuid.UUID `json:"complaint_id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	ApartmentNumber int       `json:"apartment_number"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
}
