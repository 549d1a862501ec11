package models

import "time"

// DraftImage is an image attached to the booking draft, held in memory until
// submission.
type DraftImage struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}

// BookingDraft accumulates the booking across wizard steps. It lives only in
// the session store; a resumed session starts over with an empty draft.
type BookingDraft struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Zipcode    string       `json:"zipcode"`
	Notes      string       `json:"notes,omitempty"`
	Images     []DraftImage `json:"images"`
	Date       *time.Time   `json:"date,omitempty"`
	ServiceID  string       `json:"serviceId,omitempty"`
	CategoryID string       `json:"categoryId,omitempty"`
}

// DraftPatch is a partial update to a BookingDraft. Nil fields are left
// untouched; a non-nil Images replaces the whole slice.
type DraftPatch struct {
	Name       *string       `json:"name,omitempty"`
	Email      *string       `json:"email,omitempty"`
	Phone      *string       `json:"phone,omitempty"`
	Zipcode    *string       `json:"zipcode,omitempty"`
	Notes      *string       `json:"notes,omitempty"`
	Images     *[]DraftImage `json:"images,omitempty"`
	Date       *time.Time    `json:"date,omitempty"`
	ServiceID  *string       `json:"serviceId,omitempty"`
	CategoryID *string       `json:"categoryId,omitempty"`
}

// ApplyPatch merges the set fields of a patch into the draft.
func (d *BookingDraft) ApplyPatch(p DraftPatch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.Zipcode != nil {
		d.Zipcode = *p.Zipcode
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
	if p.Images != nil {
		d.Images = *p.Images
	}
	if p.Date != nil {
		d.Date = p.Date
	}
	if p.ServiceID != nil {
		d.ServiceID = *p.ServiceID
	}
	if p.CategoryID != nil {
		d.CategoryID = *p.CategoryID
	}
}

// Reset restores every field to its empty value.
func (d *BookingDraft) Reset() {
	*d = BookingDraft{Images: []DraftImage{}}
}

// NewBookingDraft returns an empty draft.
func NewBookingDraft() BookingDraft {
	return BookingDraft{Images: []DraftImage{}}
}
