package wizard

import (
	"context"
	"time"

	"bookflow/clients"
	"bookflow/models"
	"bookflow/services/form"
	"bookflow/services/places"

	"go.uber.org/zap"

	receiptRepo "bookflow/database/repository/receipt"
)

// WizardService defines the interface for driving a booking wizard session
// through its steps.
type WizardService interface {
	StartSession(ctx context.Context) (*SessionView, error)
	ResumeSession(ctx context.Context, sessionID string) (*SessionView, error)
	Advance(ctx context.Context, sessionID string) (*SessionView, error)
	Retreat(ctx context.Context, sessionID string) (*SessionView, error)
	SetAvailability(ctx context.Context, sessionID, zipcode string) (*SessionView, error)
	SetCategory(ctx context.Context, sessionID, categoryID string) (*SessionView, error)
	SetService(ctx context.Context, sessionID, serviceID string) (*SessionView, error)
	UpdateDraft(ctx context.Context, sessionID string, patch models.DraftPatch) (*SessionView, error)
	AddImages(ctx context.Context, sessionID string, images []models.DraftImage) (*SessionView, []error, error)
	ValidateForm(ctx context.Context, sessionID string, f *form.BookingForm) (form.FieldErrors, error)
	Submit(ctx context.Context, sessionID string, f *form.BookingForm) (*models.BookingReceipt, error)
	Abandon(ctx context.Context, sessionID string) error
	Suggest(ctx context.Context, sessionID string, field models.AddressField, input string) (places.SuggestResult, error)
	ResolveAddress(ctx context.Context, sessionID string, field models.AddressField, placeID string) (*models.ResolvedAddress, error)
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	API              clients.BookingAPI
	Steps            StepStore
	Receipts         receiptRepo.BookingReceiptRepository
	Suggester        *places.DebouncedSuggester
	PickupCategoryID string
	SessionTTL       time.Duration
	Logger           *zap.Logger

	sessions *sessionStore
}

// NewDefaultWizardService wires the wizard engine together.
func NewDefaultWizardService(
	api clients.BookingAPI,
	steps StepStore,
	receipts receiptRepo.BookingReceiptRepository,
	suggester *places.DebouncedSuggester,
	pickupCategoryID string,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *DefaultWizardService {
	return &DefaultWizardService{
		API:              api,
		Steps:            steps,
		Receipts:         receipts,
		Suggester:        suggester,
		PickupCategoryID: pickupCategoryID,
		SessionTTL:       sessionTTL,
		Logger:           logger,
		sessions:         newSessionStore(sessionTTL),
	}
}

// DeriveBranch maps a chosen category to the booking branch. Exactly the
// configured pickup category selects the pickup branch; everything else,
// including no selection at all, is the default branch.
func DeriveBranch(categoryID, pickupCategoryID string) models.BookingBranch {
	if categoryID != "" && categoryID == pickupCategoryID {
		return models.BranchPickup
	}
	return models.BranchOther
}
