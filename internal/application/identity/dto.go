package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/residency"
)

// LoginRequest carries the credentials posted to the login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the minted access token and the profile view
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Profile     ProfileResponse `json:"profile"`
}

// UpdateProfileRequest is the self-service profile edit input
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// ProfileResponse is the API view of a profile
type ProfileResponse struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	FullName        string     `json:"full_name"`
	Phone           string     `json:"phone"`
	Role            string     `json:"role"`
	AvatarURL       string     `json:"avatar_url,omitempty"`
	ApartmentNumber *int       `json:"apartment_number,omitempty"`
	MoveInDate      *time.Time `json:"move_in_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ToProfileResponse converts a domain Profile. The avatar URL is presigned
// separately and may be empty.
func ToProfileResponse(profile *residency.Profile, avatarURL string) ProfileResponse {
	return ProfileResponse{
		ID:              profile.ID,
		Email:           profile.Email,
		FullName:        profile.FullName,
		Phone:           profile.Phone,
		Role:            string(profile.Role),
		AvatarURL:       avatarURL,
		ApartmentNumber: profile.ApartmentNumber,
		MoveInDate:      profile.MoveInDate,
		CreatedAt:       profile.CreatedAt,
	}
}
