package usecase

import (
	"context"
	"io"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateWorkshopInput carries optional workshop fields for the cobbler's own
// profile. Nil pointers are left untouched. Changing the address triggers a
// strict re-geocoding; an address that cannot be located is rejected.
type UpdateWorkshopInput struct {
	CompanyName *string
	Address     *string
	BankAccount *string
}

// UploadDocumentInput carries one vetting document to store.
type UploadDocumentInput struct {
	Kind        string // "id_card_front", "id_card_back", "registry_doc"
	ContentType string
	Content     io.Reader
}

// RejectCobblerInput carries the rejection reason shown to the applicant.
type RejectCobblerInput struct {
	Reason string
}

// --- Output DTOs ---

// DocumentOutput streams a stored vetting document back to an administrator.
type DocumentOutput struct {
	ContentType string
	Content     io.ReadCloser
}

// PartnerUsecase covers cobbler self-service and the admin vetting workflow.
type PartnerUsecase interface {
	// Cobbler self-service.
	UpdateWorkshop(ctx context.Context, cobblerID uuid.UUID, input UpdateWorkshopInput) (*entity.User, error)
	UploadDocument(ctx context.Context, cobblerID uuid.UUID, input UploadDocumentInput) error
	SignTerms(ctx context.Context, cobblerID uuid.UUID, ip string) error

	// Admin vetting.
	ListPendingCobblers(ctx context.Context) ([]*entity.User, error)
	ListCobblers(ctx context.Context, status entity.PartnerStatus) ([]*entity.User, error)
	GetCobbler(ctx context.Context, cobblerID uuid.UUID) (*entity.User, error)
	ApproveCobbler(ctx context.Context, cobblerID uuid.UUID) error
	RejectCobbler(ctx context.Context, cobblerID uuid.UUID, input RejectCobblerInput) error
	DownloadDocument(ctx context.Context, cobblerID uuid.UUID, kind string) (*DocumentOutput, error)
}
