package messaging

import (
	"strings"
	"time"

	"github.com/predio/backend/internal/domain/shared"
)

// AnnouncementID is the fixed identifier of the building-wide notice.
// The announcement is a singleton row maintained by upsert.
const AnnouncementID = "building-announcement"

// Announcement is the single building-wide notice shown to all tenants
type Announcement struct {
	ID        string
	Content   string
	Active    bool
	UpdatedAt time.Time
}

// NewAnnouncement builds the singleton announcement with new content
func NewAnnouncement(content string, active bool) (*Announcement, error) {
	content = strings.TrimSpace(content)
	if len(content) > 5000 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Announcement cannot exceed 5000 characters")
	}
	return &Announcement{
		ID:        AnnouncementID,
		Content:   content,
		Active:    active,
		UpdatedAt: time.Now(),
	}, nil
}
