// Package lifecycle implements the privileged tenant lifecycle orchestrations:
// onboarding (create-and-assign with compensation), offboarding cascade,
// password reset and payment requests.
package lifecycle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/predio/backend/internal/domain/audit"
	"github.com/predio/backend/internal/domain/finance"
	"github.com/predio/backend/internal/domain/maintenance"
	"github.com/predio/backend/internal/domain/messaging"
	"github.com/predio/backend/internal/domain/property"
	"github.com/predio/backend/internal/domain/residency"
	"github.com/predio/backend/internal/domain/shared"
)

// DocumentCleaner removes tenant files from object storage during offboarding
type DocumentCleaner interface {
	Delete(ctx context.Context, tenantID uuid.UUID, key string) error
	DeleteAllForTenant(ctx context.Context, tenantID uuid.UUID) error
	// RemoveAvatar deletes the avatar object, which lives outside the
	// tenant document namespace.
	RemoveAvatar(ctx context.Context, userID uuid.UUID) error
}

// WebhookNotifier delivers fire-and-forget event payloads to external automations
type WebhookNotifier interface {
	TenantCreated(ctx context.Context, payload interface{})
}

// Service orchestrates the tenant lifecycle across identity, property,
// messaging, finance and storage.
type Service struct {
	profileRepo        residency.ProfileRepository
	apartmentRepo      property.ApartmentRepository
	complaintRepo      maintenance.ComplaintRepository
	notificationRepo   messaging.NotificationRepository
	paymentRequestRepo finance.PaymentRequestRepository
	appLogRepo         audit.AppLogRepository
	documents          DocumentCleaner
	webhooks           WebhookNotifier
	publisher          shared.ChangePublisher
	logger             *zap.Logger
}

// NewService creates a lifecycle Service
func NewService(
	profileRepo residency.ProfileRepository,
	apartmentRepo property.ApartmentRepository,
	complaintRepo maintenance.ComplaintRepository,
	notificationRepo messaging.NotificationRepository,
	paymentRequestRepo finance.PaymentRequestRepository,
	appLogRepo audit.AppLogRepository,
	documents DocumentCleaner,
	webhooks WebhookNotifier,
	publisher shared.ChangePublisher,
	logger *zap.Logger,
) *Service {
	if publisher == nil {
		publisher = shared.NopChangePublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		profileRepo:        profileRepo,
		apartmentRepo:      apartmentRepo,
		complaintRepo:      complaintRepo,
		notificationRepo:   notificationRepo,
		paymentRequestRepo: paymentRequestRepo,
		appLogRepo:         appLogRepo,
		documents:          documents,
		webhooks:           webhooks,
		publisher:          publisher,
		logger:             logger,
	}
}

// Onboard runs the create-and-assign saga. On success the profile exists and
// the apartment is bound; any failure after the profile write deletes the
// profile again before returning, so no orphaned identity survives.
func (s *Service) Onboard(ctx context.Context, req OnboardTenantRequest) (*TenantResponse, error) {
	apartment, err := s.apartmentRepo.FindByNumber(ctx, req.ApartmentNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrApartmentUnavailable
		}
		return nil, err
	}
	if !apartment.IsAvailable() {
		return nil, shared.ErrApartmentUnavailable
	}

	if _, err := s.profileRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, shared.ErrDuplicateIdentity
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	profile, err := residency.NewTenantProfile(req.Email, req.Password, req.FullName, req.Phone, req.ApartmentNumber)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		if isDuplicateKey(err) {
			return nil, shared.ErrDuplicateIdentity
		}
		s.logger.Error("Failed to create tenant profile",
			zap.String("email", req.Email), zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	if err := apartment.Assign(profile.ID, firstOfNextMonth(time.Now())); err != nil {
		s.compensateProfile(ctx, profile)
		return nil, err
	}
	if err := s.apartmentRepo.Claim(ctx, apartment); err != nil {
		s.compensateProfile(ctx, profile)
		if errors.Is(err, shared.ErrApartmentUnavailable) {
			return nil, shared.ErrApartmentUnavailable
		}
		s.logger.Error("Failed to claim apartment",
			zap.Int("apartment", req.ApartmentNumber), zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	// Non-critical post-commit steps: each recovers on its own, none can
	// fail the onboarding.
	s.sendWelcome(ctx, profile)
	s.webhooks.TenantCreated(ctx, TenantCreatedEvent{
		TenantID:        profile.ID,
		Email:           profile.Email,
		FullName:        profile.FullName,
		Phone:           profile.Phone,
		ApartmentNumber: req.ApartmentNumber,
		CreatedAt:       profile.CreatedAt,
	})
	s.appendLog(ctx, audit.LevelInfo, "tenant onboarded", map[string]interface{}{
		"tenant_id": profile.ID.String(),
		"apartment": req.ApartmentNumber,
	})
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "profiles", Action: shared.ChangeInsert, RowID: profile.ID.String()})
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "apartments", Action: shared.ChangeUpdate, RowID: apartment.ID.String()})

	resp := ToTenantResponse(profile, apartment)
	return &resp, nil
}

// Offboard deletes a tenant and cascades across storage, dependent rows and
// the apartment binding. Storage and dependent-row cleanup is best-effort;
// the apartment release and profile delete abort the operation on failure.
func (s *Service) Offboard(ctx context.Context, tenantID uuid.UUID) error {
	profile, err := s.profileRepo.FindByID(ctx, tenantID)
	if err != nil {
		return err
	}

	if err := s.documents.DeleteAllForTenant(ctx, tenantID); err != nil {
		s.logger.Warn("Offboarding: document cleanup failed",
			zap.String("tenant_id", tenantID.String()), zap.Error(err))
	}
	if profile.AvatarKey != "" {
		if err := s.documents.RemoveAvatar(ctx, tenantID); err != nil {
			s.logger.Warn("Offboarding: avatar cleanup failed",
				zap.String("key", profile.AvatarKey), zap.Error(err))
		}
	}

	if err := s.complaintRepo.DeleteByTenantID(ctx, tenantID); err != nil {
		s.logger.Warn("Offboarding: complaint cleanup failed",
			zap.String("tenant_id", tenantID.String()), zap.Error(err))
	}
	if err := s.notificationRepo.DeleteByTenantID(ctx, tenantID); err != nil {
		s.logger.Warn("Offboarding: notification cleanup failed",
			zap.String("tenant_id", tenantID.String()), zap.Error(err))
	}
	if err := s.paymentRequestRepo.DeleteByTenantID(ctx, tenantID); err != nil {
		s.logger.Warn("Offboarding: payment request cleanup failed",
			zap.String("tenant_id", tenantID.String()), zap.Error(err))
	}

	// Resolve the bound apartment up front so the change event after the
	// release carries the apartment row id.
	apartment, err := s.apartmentRepo.FindByTenantID(ctx, tenantID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Offboarding: apartment lookup failed",
			zap.String("tenant_id", tenantID.String()), zap.Error(err))
		return shared.ErrStoreWrite
	}

	if err := s.apartmentRepo.Release(ctx, tenantID); err != nil {
		s.logger.Error("Offboarding: apartment release failed",
			zap.String("tenant_id", tenantID.String()), zap.Error(err))
		return shared.ErrStoreWrite
	}
	if err := s.profileRepo.Delete(ctx, tenantID); err != nil {
		s.logger.Error("Offboarding: profile delete failed",
			zap.String("tenant_id", tenantID.String()), zap.Error(err))
		return shared.ErrStoreWrite
	}

	s.appendLog(ctx, audit.LevelInfo, "tenant offboarded", map[string]interface{}{
		"tenant_id": tenantID.String(),
	})
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "profiles", Action: shared.ChangeDelete, RowID: tenantID.String()})
	if apartment != nil {
		s.publisher.Publish(ctx, shared.ChangeEvent{Table: "apartments", Action: shared.ChangeUpdate, RowID: apartment.ID.String()})
	}
	return nil
}

// ResetPassword re-hashes and stores a new password for the user
func (s *Service) ResetPassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := profile.SetPassword(newPassword); err != nil {
		return err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return shared.NewDomainError("IDENTITY_UPDATE_FAILED",
			fmt.Sprintf("Failed to update identity record: %v", err))
	}
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "profiles", Action: shared.ChangeUpdate, RowID: userID.String()})
	return nil
}

// RequestPayment flags the caller's apartment and records a payment request
// row. The caller must be the tenant bound to the apartment.
func (s *Service) RequestPayment(ctx context.Context, tenantID uuid.UUID, apartmentNumber int) (*PaymentRequestResponse, error) {
	apartment, err := s.apartmentRepo.FindByNumber(ctx, apartmentNumber)
	if err != nil {
		return nil, err
	}
	if !apartment.IsOccupiedBy(tenantID) {
		return nil, shared.ErrNotAuthorized
	}

	if err := apartment.RequestPayment(); err != nil {
		return nil, err
	}
	if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
		s.logger.Error("Failed to flag payment request",
			zap.Int("apartment", apartmentNumber), zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	request, err := finance.NewPaymentRequest(tenantID, apartmentNumber)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRequestRepo.Save(ctx, request); err != nil {
		s.logger.Error("Failed to record payment request",
			zap.Int("apartment", apartmentNumber), zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "apartments", Action: shared.ChangeUpdate, RowID: apartment.ID.String()})
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "payment_requests", Action: shared.ChangeInsert, RowID: request.ID.String()})

	resp := ToPaymentRequestResponse(request)
	return &resp, nil
}

// ListTenants returns every tenant with their bound apartment state
func (s *Service) ListTenants(ctx context.Context, filter shared.Filter) ([]TenantResponse, error) {
	profiles, err := s.profileRepo.FindByRole(ctx, residency.RoleTenant, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]TenantResponse, 0, len(profiles))
	for i := range profiles {
		profile := &profiles[i]
		apartment, err := s.apartmentRepo.FindByTenantID(ctx, profile.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		responses = append(responses, ToTenantResponse(profile, apartment))
	}
	return responses, nil
}

// GetTenant returns one tenant with their bound apartment state
func (s *Service) GetTenant(ctx context.Context, tenantID uuid.UUID) (*TenantResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	apartment, err := s.apartmentRepo.FindByTenantID(ctx, tenantID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	resp := ToTenantResponse(profile, apartment)
	return &resp, nil
}

// compensateProfile undoes the profile write of a failed onboarding.
// A failed compensation is loud: error log plus AppLog entry.
func (s *Service) compensateProfile(ctx context.Context, profile *residency.Profile) {
	if err := s.profileRepo.Delete(ctx, profile.ID); err != nil {
		s.logger.Error("Onboarding compensation failed, orphaned profile remains",
			zap.String("tenant_id", profile.ID.String()),
			zap.String("email", profile.Email),
			zap.Error(err))
		s.appendLog(ctx, audit.LevelError, "onboarding compensation failed", map[string]interface{}{
			"tenant_id": profile.ID.String(),
			"error":     err.Error(),
		})
	}
}

func (s *Service) sendWelcome(ctx context.Context, profile *residency.Profile) {
	notification, err := messaging.NewNotification(profile.ID,
		"Welcome to the building",
		"Your tenant account is ready. Check your rent details in the portal.",
		"home")
	if err == nil {
		err = s.notificationRepo.Save(ctx, notification)
	}
	if err != nil {
		s.logger.Warn("Failed to create welcome notification",
			zap.String("tenant_id", profile.ID.String()), zap.Error(err))
		return
	}
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "notifications", Action: shared.ChangeInsert, RowID: notification.ID.String()})
}

func (s *Service) appendLog(ctx context.Context, level audit.Level, message string, detail map[string]interface{}) {
	payload, err := json.Marshal(detail)
	if err != nil {
		payload = nil
	}
	entry, err := audit.NewAppLog(level, "lifecycle", message, payload)
	if err == nil {
		err = s.appLogRepo.Save(ctx, entry)
	}
	if err != nil {
		s.logger.Warn("Failed to append audit log", zap.String("message", message), zap.Error(err))
	}
}

// firstOfNextMonth returns the first day of the month after now
func firstOfNextMonth(now time.Time) time.Time {
	year, month, _ := now.Date()
	return time.Date(year, month+1, 1, 0, 0, 0, 0, now.Location())
}

// isDuplicateKey detects unique-index violations across drivers
func isDuplicateKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
