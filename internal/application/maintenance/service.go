// Package maintenance implements complaint handling: tenant submissions,
// admin triage, and the inbound phone-automation webhook that resolves a
// tenant by trailing phone digits.
package maintenance

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/predio/backend/internal/domain/maintenance"
	"github.com/predio/backend/internal/domain/residency"
	"github.com/predio/backend/internal/domain/shared"
)

// phoneSuffixLength is how many trailing digits identify a tenant phone.
// Matches the upstream phone automation contract.
const phoneSuffixLength = 8

// WebhookNotifier delivers repair events to the external automation
type WebhookNotifier interface {
	RepairRequested(ctx context.Context, payload interface{})
}

// Service manages complaints
type Service struct {
	complaintRepo maintenance.ComplaintRepository
	profileRepo   residency.ProfileRepository
	webhooks      WebhookNotifier
	publisher     shared.ChangePublisher
	logger        *zap.Logger
}

// NewService creates a maintenance Service
func NewService(
	complaintRepo maintenance.ComplaintRepository,
	profileRepo residency.ProfileRepository,
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
		complaintRepo: complaintRepo,
		profileRepo:   profileRepo,
		webhooks:      webhooks,
		publisher:     publisher,
		logger:        logger,
	}
}

// Create files a complaint for the calling tenant. Repair categories also
// fire the outbound repair webhook, best-effort.
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req CreateComplaintRequest) (*ComplaintResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if profile.ApartmentNumber == nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Profile has no apartment binding")
	}

	category, err := maintenance.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	complaint, err := maintenance.NewComplaint(tenantID, *profile.ApartmentNumber, category, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.complaintRepo.Save(ctx, complaint); err != nil {
		s.logger.Error("Failed to save complaint",
			zap.String("tenant_id", tenantID.String()), zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	if category.IsRepair() {
		s.webhooks.RepairRequested(ctx, RepairRequestedEvent{
			ComplaintID:     complaint.ID,
			TenantID:        complaint.TenantID,
			ApartmentNumber: complaint.ApartmentNumber,
			Category:        string(complaint.Category),
			Description:     complaint.Description,
			CreatedAt:       complaint.CreatedAt,
		})
	}
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "complaints", Action: shared.ChangeInsert, RowID: complaint.ID.String()})

	resp := ToComplaintResponse(complaint)
	return &resp, nil
}

// ResolveInbound files a complaint from the phone automation. The caller is
// identified by the trailing digits of the phone number; no match means the
// payload is dropped with NOT_FOUND.
func (s *Service) ResolveInbound(ctx context.Context, req InboundComplaintRequest) (*ComplaintResponse, error) {
	suffix := trailingDigits(req.Phone, phoneSuffixLength)
	if suffix == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Phone number carries no digits")
	}

	profile, err := s.profileRepo.FindByPhoneSuffix(ctx, suffix)
	if err != nil {
		return nil, err
	}
	if profile.ApartmentNumber == nil {
		return nil, shared.ErrNotFound
	}

	category, err := maintenance.ParseCategory(req.Categoria)
	if err != nil {
		category = maintenance.CategoryOther
	}

	complaint, err := maintenance.NewComplaint(profile.ID, *profile.ApartmentNumber, category, inboundDescription(req))
	if err != nil {
		return nil, err
	}
	if err := s.complaintRepo.Save(ctx, complaint); err != nil {
		s.logger.Error("Failed to save inbound complaint",
			zap.String("tenant_id", profile.ID.String()), zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "complaints", Action: shared.ChangeInsert, RowID: complaint.ID.String()})

	resp := ToComplaintResponse(complaint)
	return &resp, nil
}

// List returns all complaints for the admin dashboard
func (s *Service) List(ctx context.Context, filter shared.Filter) ([]ComplaintResponse, error) {
	complaints, err := s.complaintRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(complaints), nil
}

// ListByTenant returns the caller's own complaints
func (s *Service) ListByTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]ComplaintResponse, error) {
	complaints, err := s.complaintRepo.FindByTenantID(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(complaints), nil
}

// UpdateStatus applies an admin status transition
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*ComplaintResponse, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := complaint.SetStatus(maintenance.Status(req.Status)); err != nil {
		return nil, err
	}
	if err := s.complaintRepo.Save(ctx, complaint); err != nil {
		return nil, shared.ErrStoreWrite
	}

	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "complaints", Action: shared.ChangeUpdate, RowID: complaint.ID.String()})

	resp := ToComplaintResponse(complaint)
	return &resp, nil
}

// Delete removes a complaint
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.complaintRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "complaints", Action: shared.ChangeDelete, RowID: id.String()})
	return nil
}

// DeleteOwn removes a complaint on behalf of its author. Admin triage
// uses Delete directly; this path verifies ownership first.
func (s *Service) DeleteOwn(ctx context.Context, tenantID, id uuid.UUID) error {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if complaint.TenantID != tenantID {
		return shared.ErrNotAuthorized
	}
	return s.Delete(ctx, id)
}

func toResponses(complaints []maintenance.Complaint) []ComplaintResponse {
	responses := make([]ComplaintResponse, len(complaints))
	for i := range complaints {
		responses[i] = ToComplaintResponse(&complaints[i])
	}
	return responses
}

// inboundDescription folds the automation fields into one description
func inboundDescription(req InboundComplaintRequest) string {
	var parts []string
	if req.Resumo != "" {
		parts = append(parts, req.Resumo)
	}
	if req.Resposta != "" {
		parts = append(parts, "Resposta: "+req.Resposta)
	}
	if req.Prioridade != "" {
		parts = append(parts, "Prioridade: "+req.Prioridade)
	}
	return strings.Join(parts, "\n")
}

func trailingDigits(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) <= n {
		return digits
	}
	return digits[len(digits)-n:]
}
