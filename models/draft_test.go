package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestApplyPatchMergesOnlySetFields(t *testing.T) {
	draft := NewBookingDraft()
	draft.ApplyPatch(DraftPatch{
		Name:  strPtr("Ada Lovelace"),
		Email: strPtr("ada@example.com"),
	})

	draft.ApplyPatch(DraftPatch{Phone: strPtr("+15551234567")})

	assert.Equal(t, "Ada Lovelace", draft.Name)
	assert.Equal(t, "ada@example.com", draft.Email)
	assert.Equal(t, "+15551234567", draft.Phone)
	assert.Empty(t, draft.Zipcode)
}

func TestApplyPatchReplacesImagesWholesale(t *testing.T) {
	draft := NewBookingDraft()
	first := []DraftImage{{Filename: "a.png", ContentType: "image/png", Size: 10}}
	second := []DraftImage{{Filename: "b.jpg", ContentType: "image/jpeg", Size: 20}}

	draft.ApplyPatch(DraftPatch{Images: &first})
	draft.ApplyPatch(DraftPatch{Images: &second})

	assert.Len(t, draft.Images, 1)
	assert.Equal(t, "b.jpg", draft.Images[0].Filename)
}

func TestApplyPatchCanSetExplicitEmptyValues(t *testing.T) {
	draft := NewBookingDraft()
	draft.ApplyPatch(DraftPatch{Notes: strPtr("fragile, handle with care")})
	draft.ApplyPatch(DraftPatch{Notes: strPtr("")})

	assert.Empty(t, draft.Notes)
}

func TestResetClearsEveryField(t *testing.T) {
	date := time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)
	draft := BookingDraft{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Phone:      "+15551234567",
		Zipcode:    "30301",
		Notes:      "ring the bell",
		Images:     []DraftImage{{Filename: "a.png"}},
		Date:       &date,
		ServiceID:  "svc-7",
		CategoryID: "cat-2",
	}

	draft.Reset()

	assert.Empty(t, draft.Name)
	assert.Empty(t, draft.Email)
	assert.Empty(t, draft.Phone)
	assert.Empty(t, draft.Zipcode)
	assert.Empty(t, draft.Notes)
	assert.NotNil(t, draft.Images)
	assert.Len(t, draft.Images, 0)
	assert.Nil(t, draft.Date)
	assert.Empty(t, draft.ServiceID)
	assert.Empty(t, draft.CategoryID)
}
