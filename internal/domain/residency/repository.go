package residency

import (
	"context"

	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/shared"
)

// ProfileRepository defines persistence operations for profiles
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	// FindByPhoneSuffix returns the first tenant profile whose phone number,
	// reduced to digits, ends with the given suffix.
	FindByPhoneSuffix(ctx context.Context, suffix string) (*Profile, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Profile, error)
	FindByRole(ctx context.Context, role Role, filter shared.Filter) ([]Profile, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}
