package wizard

import (
	"context"
	"fmt"

	"bookflow/models"
	"bookflow/services/form"
	"bookflow/services/places"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a new wizard session at the first step.
func (s *DefaultWizardService) StartSession(ctx context.Context) (*SessionView, error) {
	session := newSession()
	if err := s.Steps.Save(ctx, session.ID, session.Step, s.SessionTTL); err != nil {
		return nil, fmt.Errorf("failed to persist wizard step: %w", err)
	}
	s.sessions.put(session)
	s.Logger.Info("wizard session started", zap.String("sessionID", session.ID))

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.view(), nil
}

// ResumeSession returns the live session if it is still in memory. After a
// restart only the persisted step pointer survives, so the caller lands on
// the saved step with an empty draft; a missing or invalid pointer falls
// back to the first step.
func (s *DefaultWizardService) ResumeSession(ctx context.Context, sessionID string) (*SessionView, error) {
	if session, ok := s.sessions.get(sessionID); ok {
		session.mu.Lock()
		defer session.mu.Unlock()
		return session.view(), nil
	}

	step, _, err := s.Steps.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard step: %w", err)
	}

	session := newSession()
	session.ID = sessionID
	session.Step = step
	if err := s.Steps.Save(ctx, session.ID, session.Step, s.SessionTTL); err != nil {
		return nil, fmt.Errorf("failed to persist wizard step: %w", err)
	}
	s.sessions.put(session)
	s.Logger.Info("wizard session resumed with empty draft",
		zap.String("sessionID", sessionID), zap.String("step", step.String()))

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.view(), nil
}

func (s *DefaultWizardService) locked(sessionID string) (*Session, error) {
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, NewSessionNotFoundError(sessionID)
	}
	session.mu.Lock()
	return session, nil
}

// persistStep writes a step pointer. Callers persist the target step before
// assigning it to the session, so a failed save leaves the in-memory step
// and the stored pointer still in agreement.
func (s *DefaultWizardService) persistStep(ctx context.Context, sessionID string, step models.WizardStep) error {
	if err := s.Steps.Save(ctx, sessionID, step, s.SessionTTL); err != nil {
		return fmt.Errorf("failed to persist wizard step: %w", err)
	}
	return nil
}

// Advance moves to the next step in wizard order, subject to the guard for
// the current step. At a terminal step it is a silent no-op.
func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.locked(sessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	next, ok := session.Step.Next()
	if !ok {
		return session.view(), nil
	}
	if err := s.guardAdvance(session); err != nil {
		return nil, err
	}

	if err := s.persistStep(ctx, session.ID, next); err != nil {
		return nil, err
	}
	session.Step = next
	if session.Step == models.StepBookingForm {
		session.Branch = DeriveBranch(session.Draft.CategoryID, s.PickupCategoryID)
	}
	return session.view(), nil
}

// guardAdvance enforces what each step must capture before the wizard can
// move on.
func (s *DefaultWizardService) guardAdvance(session *Session) error {
	switch session.Step {
	case models.StepZipEntry:
		if session.Availability == nil || !session.Availability.Available {
			return NewTransitionError("availability must be confirmed before leaving the ZIP step")
		}
	case models.StepCategorySelection:
		if session.Draft.CategoryID == "" {
			return NewTransitionError("a category must be selected before continuing")
		}
	case models.StepServiceSelection:
		if session.Draft.ServiceID == "" {
			return NewTransitionError("a service must be selected before continuing")
		}
	}
	return nil
}

// Retreat moves to the previous step. Going back is disallowed from the
// first step and from the unavailable dead end.
func (s *DefaultWizardService) Retreat(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.locked(sessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	prev, ok := session.Step.Prev()
	if !ok {
		return nil, NewTransitionError(fmt.Sprintf("cannot go back from step %s", session.Step))
	}
	if err := s.persistStep(ctx, session.ID, prev); err != nil {
		return nil, err
	}
	session.Step = prev
	return session.view(), nil
}

// SetAvailability checks upstream coverage for a ZIP code. No coverage
// forces the session onto the unavailable dead end regardless of its current
// step; coverage records the ZIP in the draft and moves to category
// selection.
func (s *DefaultWizardService) SetAvailability(ctx context.Context, sessionID, zipcode string) (*SessionView, error) {
	session, err := s.locked(sessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	availability, err := s.API.CheckAvailability(ctx, zipcode)
	if err != nil {
		s.Logger.Warn("availability check failed",
			zap.String("sessionID", sessionID), zap.String("zipcode", zipcode), zap.Error(err))
		return nil, err
	}
	if !availability.Available {
		if err := s.persistStep(ctx, session.ID, models.StepUnavailable); err != nil {
			return nil, err
		}
		session.Availability = availability
		session.Step = models.StepUnavailable
		return session.view(), nil
	}

	if err := s.persistStep(ctx, session.ID, models.StepCategorySelection); err != nil {
		return nil, err
	}
	session.Availability = availability
	zip := zipcode
	session.Draft.ApplyPatch(models.DraftPatch{Zipcode: &zip})
	session.Step = models.StepCategorySelection
	return session.view(), nil
}

// SetCategory records the chosen category, derives the booking branch from
// it, and moves to service selection.
func (s *DefaultWizardService) SetCategory(ctx context.Context, sessionID, categoryID string) (*SessionView, error) {
	session, err := s.locked(sessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	if session.Step != models.StepCategorySelection && session.Step != models.StepServiceSelection {
		return nil, NewTransitionError(fmt.Sprintf("cannot select a category at step %s", session.Step))
	}

	if err := s.persistStep(ctx, session.ID, models.StepServiceSelection); err != nil {
		return nil, err
	}
	session.Draft.ApplyPatch(models.DraftPatch{CategoryID: &categoryID})
	session.Branch = DeriveBranch(categoryID, s.PickupCategoryID)
	session.Step = models.StepServiceSelection
	return session.view(), nil
}

// SetService records the chosen service and enters the booking form. The
// branch is re-derived on entry and stays fixed for the remainder of the
// step.
func (s *DefaultWizardService) SetService(ctx context.Context, sessionID, serviceID string) (*SessionView, error) {
	session, err := s.locked(sessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	if session.Step != models.StepServiceSelection && session.Step != models.StepBookingForm {
		return nil, NewTransitionError(fmt.Sprintf("cannot select a service at step %s", session.Step))
	}

	if err := s.persistStep(ctx, session.ID, models.StepBookingForm); err != nil {
		return nil, err
	}
	session.Draft.ApplyPatch(models.DraftPatch{ServiceID: &serviceID})
	session.Branch = DeriveBranch(session.Draft.CategoryID, s.PickupCategoryID)
	session.Step = models.StepBookingForm
	return session.view(), nil
}

// UpdateDraft merges a partial update into the session draft.
func (s *DefaultWizardService) UpdateDraft(ctx context.Context, sessionID string, patch models.DraftPatch) (*SessionView, error) {
	session, err := s.locked(sessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	session.Draft.ApplyPatch(patch)
	return session.view(), nil
}

// AddImages appends accepted uploads to the draft. A rejected file only
// blocks itself; the rest of the batch is still added. Rejections come back
// one error per file.
func (s *DefaultWizardService) AddImages(ctx context.Context, sessionID string, images []models.DraftImage) (*SessionView, []error, error) {
	session, err := s.locked(sessionID)
	if err != nil {
		return nil, nil, err
	}
	defer session.mu.Unlock()

	var rejections []error
	for _, img := range images {
		if err := form.AcceptImage(img.Filename, img.ContentType, img.Size); err != nil {
			rejections = append(rejections, err)
			continue
		}
		session.Draft.Images = append(session.Draft.Images, img)
	}
	return session.view(), rejections, nil
}

// ValidateForm runs the full form check against the session's branch. Used
// for immediate feedback; a nil result means the form would be accepted.
func (s *DefaultWizardService) ValidateForm(ctx context.Context, sessionID string, f *form.BookingForm) (form.FieldErrors, error) {
	session, err := s.locked(sessionID)
	if err != nil {
		return nil, err
	}
	branch := session.Branch
	session.mu.Unlock()

	return form.Validate(f, branch), nil
}

// Submit validates the form, assembles the payload, transmits it upstream,
// and on confirmation resets the wizard: draft cleared, step pointer
// removed, receipt stored for the confirmation page. A session allows one
// in-flight submission at a time.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID string, f *form.BookingForm) (*models.BookingReceipt, error) {
	session, err := s.locked(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepBookingForm {
		session.mu.Unlock()
		return nil, NewTransitionError("the booking form step must be reached before submitting")
	}
	if session.submitting {
		session.mu.Unlock()
		return nil, NewSubmitInFlightError()
	}
	session.submitting = true
	branch := session.Branch
	draft := session.Draft
	session.mu.Unlock()

	defer func() {
		session.mu.Lock()
		session.submitting = false
		session.mu.Unlock()
	}()

	if errs := form.Validate(f, branch); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	payload := form.Assemble(draft, *f, branch)
	contentType, body, err := form.EncodeMultipart(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode booking payload: %w", err)
	}

	confirmation, err := s.API.SubmitAppointment(ctx, contentType, body)
	if err != nil {
		s.Logger.Warn("booking submission failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}

	receipt := models.BookingReceipt{
		SessionID:       sessionID,
		Message:         confirmation.Message,
		Name:            payload.Name,
		Email:           payload.Email,
		Zipcode:         payload.Zipcode,
		ServiceID:       payload.Service,
		Branch:          string(branch),
		AppointmentDate: payload.AppointmentDate,
		AppointmentTime: payload.AppointmentTime,
		ImageCount:      len(payload.Images),
	}
	receiptID, err := s.Receipts.Create(ctx, receipt)
	if err != nil {
		// The booking went through; a receipt failure must not undo it.
		s.Logger.Error("failed to store booking receipt",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	receipt.ID = receiptID

	session.mu.Lock()
	session.Draft.Reset()
	session.Step = models.StepZipEntry
	session.Availability = nil
	session.Branch = models.BranchOther
	session.mu.Unlock()

	if err := s.Steps.Clear(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to clear persisted wizard step",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("sessionID", sessionID), zap.String("receiptID", receipt.ID))
	return &receipt, nil
}

// Abandon discards a session entirely: draft gone, persisted step cleared.
func (s *DefaultWizardService) Abandon(ctx context.Context, sessionID string) error {
	if _, ok := s.sessions.get(sessionID); !ok {
		return NewSessionNotFoundError(sessionID)
	}
	s.sessions.delete(sessionID)
	if err := s.Steps.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear persisted wizard step: %w", err)
	}
	s.Logger.Info("wizard session abandoned", zap.String("sessionID", sessionID))
	return nil
}

// Suggest runs a debounced autocomplete lookup for one address field. Each
// field keeps its own provider session token, so picking a candidate for one
// field never disturbs the other's list.
func (s *DefaultWizardService) Suggest(ctx context.Context, sessionID string, field models.AddressField, input string) (places.SuggestResult, error) {
	session, err := s.locked(sessionID)
	if err != nil {
		return places.SuggestResult{}, err
	}
	token := session.PlaceTokens[field]
	session.mu.Unlock()

	key := sessionID + ":" + string(field)
	return s.Suggester.Fetch(ctx, key, input, token), nil
}

// ResolveAddress fetches the structured address for a chosen candidate. The
// field's provider token is rotated afterwards, closing the billing session,
// and its pending suggestion state is dropped.
func (s *DefaultWizardService) ResolveAddress(ctx context.Context, sessionID string, field models.AddressField, placeID string) (*models.ResolvedAddress, error) {
	session, err := s.locked(sessionID)
	if err != nil {
		return nil, err
	}
	token := session.PlaceTokens[field]
	session.mu.Unlock()

	resolved, err := s.Suggester.Provider.Resolve(ctx, placeID, token)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	session.PlaceTokens[field] = uuid.New().String()
	session.mu.Unlock()
	s.Suggester.Forget(sessionID + ":" + string(field))

	return resolved, nil
}
