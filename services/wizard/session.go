package wizard

import (
	"sync"
	"time"

	"bookflow/models"

	"github.com/google/uuid"
)

// Session is the per-wizard state: the step pointer, the accumulating draft,
// the availability result, and the branch derived from the chosen category.
// All mutation goes through DefaultWizardService under the session lock, so
// operations observe event-arrival order.
type Session struct {
	ID           string
	Step         models.WizardStep
	Draft        models.BookingDraft
	Availability *models.AvailabilityResponse
	Branch       models.BookingBranch
	PlaceTokens  map[models.AddressField]string

	mu         sync.Mutex
	submitting bool
}

func newSession() *Session {
	return &Session{
		ID:     uuid.New().String(),
		Step:   models.StepZipEntry,
		Draft:  models.NewBookingDraft(),
		Branch: models.BranchOther,
		PlaceTokens: map[models.AddressField]string{
			models.AddressFieldFrom: uuid.New().String(),
			models.AddressFieldTo:   uuid.New().String(),
		},
	}
}

// SessionView is the read-only snapshot handed to handlers and views.
type SessionView struct {
	ID           string                       `json:"id"`
	Step         models.WizardStep            `json:"step"`
	StepName     string                       `json:"stepName"`
	Progress     float64                      `json:"progress"`
	Branch       models.BookingBranch         `json:"branch"`
	Draft        models.BookingDraft          `json:"draft"`
	Availability *models.AvailabilityResponse `json:"availability,omitempty"`
	DateMin      time.Time                    `json:"dateMin"`
	DateMax      time.Time                    `json:"dateMax"`
}

// view snapshots the session. Callers must hold the session lock.
func (s *Session) view() *SessionView {
	now := time.Now()
	return &SessionView{
		ID:           s.ID,
		Step:         s.Step,
		StepName:     s.Step.String(),
		Progress:     s.Step.Progress(),
		Branch:       s.Branch,
		Draft:        s.Draft,
		Availability: s.Availability,
		// Selectable range is a presentation affordance, not a validation rule.
		DateMin: now,
		DateMax: now.AddDate(0, 6, 0),
	}
}

// sessionStore keeps live sessions in process memory. Entries carry the
// same sliding TTL as the persisted step pointer: each get or put pushes the
// expiry out, an untouched session falls out after the TTL. Expired entries
// are dropped lazily on access and swept in bulk on insertion, so the map
// size stays bounded by the set of sessions active within one TTL window.
type sessionStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	entries   map[string]*sessionEntry
	nextSweep time.Time
}

type sessionEntry struct {
	session   *Session
	expiresAt time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &sessionStore{
		ttl:     ttl,
		entries: make(map[string]*sessionEntry),
	}
}

func (st *sessionStore) put(s *Session) {
	now := time.Now()
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweepLocked(now)
	st.entries[s.ID] = &sessionEntry{session: s, expiresAt: now.Add(st.ttl)}
}

func (st *sessionStore) get(id string) (*Session, bool) {
	now := time.Now()
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.entries[id]
	if !ok {
		return nil, false
	}
	if now.After(e.expiresAt) {
		delete(st.entries, id)
		return nil, false
	}
	e.expiresAt = now.Add(st.ttl)
	return e.session, true
}

func (st *sessionStore) delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.entries, id)
}

// sweepLocked drops every expired entry. Runs at most once per half TTL;
// callers must hold the lock.
func (st *sessionStore) sweepLocked(now time.Time) {
	if now.Before(st.nextSweep) {
		return
	}
	st.nextSweep = now.Add(st.ttl / 2)
	for id, e := range st.entries {
		if now.After(e.expiresAt) {
			delete(st.entries, id)
		}
	}
}

func (st *sessionStore) count() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.entries)
}
