package residency

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/predio/backend/internal/domain/shared"
)

// Role represents the access level of a profile
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleTenant Role = "tenant"
)

const bcryptCost = 12

// Profile is the identity record for every person in the building.
// Admins have no apartment binding; tenants hold at most one.
type Profile struct {
	shared.BaseAggregateRoot
	Email           string
	FullName        string
	Phone           string
	PasswordHash    string
	Role            Role
	AvatarKey       string // object-storage key, empty when unset
	ApartmentNumber *int   // nil for admins
	MoveInDate      *time.Time
}

// NewTenantProfile creates a tenant profile bound to an apartment.
func NewTenantProfile(email, password, fullName, phone string, apartmentNumber int) (*Profile, error) {
	p, err := newProfile(email, password, fullName, phone, RoleTenant)
	if err != nil {
		return nil, err
	}
	if apartmentNumber <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Apartment number must be positive")
	}
	now := time.Now()
	p.ApartmentNumber = &apartmentNumber
	p.MoveInDate = &now
	return p, nil
}

// NewAdminProfile creates an unbound admin profile.
func NewAdminProfile(email, password, fullName string) (*Profile, error) {
	return newProfile(email, password, fullName, "", RoleAdmin)
}

func newProfile(email, password, fullName, phone string, role Role) (*Profile, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateFullName(fullName); err != nil {
		return nil, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	return &Profile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		FullName:          strings.TrimSpace(fullName),
		Phone:             strings.TrimSpace(phone),
		PasswordHash:      hash,
		Role:              role,
	}, nil
}

// SetFullName updates the display name
func (p *Profile) SetFullName(fullName string) error {
	if err := validateFullName(fullName); err != nil {
		return err
	}
	p.FullName = strings.TrimSpace(fullName)
	p.Touch()
	p.IncrementVersion()
	return nil
}

// SetPhone updates the contact phone
func (p *Profile) SetPhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("VALIDATION_ERROR", "Phone cannot exceed 50 characters")
	}
	p.Phone = strings.TrimSpace(phone)
	p.Touch()
	p.IncrementVersion()
	return nil
}

// SetAvatarKey updates the avatar object key
func (p *Profile) SetAvatarKey(key string) error {
	if len(key) > 500 {
		return shared.NewDomainError("VALIDATION_ERROR", "Avatar key cannot exceed 500 characters")
	}
	p.AvatarKey = key
	p.Touch()
	p.IncrementVersion()
	return nil
}

// SetPassword sets a new password without checking the old one.
// Used by the privileged reset operation.
func (p *Profile) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	p.PasswordHash = hash
	p.Touch()
	p.IncrementVersion()
	return nil
}

// VerifyPassword reports whether the given password matches the stored hash
func (p *Profile) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil
}

// IsAdmin reports whether the profile has the admin role
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// PhoneSuffix returns the trailing n digits of the stored phone number,
// ignoring formatting characters. Used by the inbound complaint webhook
// to resolve a tenant from an external phone number.
func (p *Profile) PhoneSuffix(n int) string {
	digits := digitsOnly(p.Phone)
	if len(digits) <= n {
		return digits
	}
	return digits[len(digits)-n:]
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("VALIDATION_ERROR", "Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Password cannot be empty")
	}
	if len(password) < 6 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 6 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password cannot exceed 128 characters")
	}
	return nil
}

func validateFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Full name cannot be empty")
	}
	if len(fullName) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Full name cannot exceed 200 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
