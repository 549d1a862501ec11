package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookflow/models"
)

func validForm() BookingForm {
	date := time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)
	return BookingForm{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Phone:       "+15551234567",
		AddressFrom: "1 Main St, Atlanta, GA",
		Date:        &date,
	}
}

func TestValidFormPassesOtherBranch(t *testing.T) {
	f := validForm()
	assert.Nil(t, Validate(&f, models.BranchOther))
}

func TestPhoneRules(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		ok    bool
	}{
		{"too short", "12345", false},
		{"plus and digits", "+15551234567", true},
		{"separators rejected", "555-123-4567", false},
		{"bare digits", "5551234567", true},
		{"too long", "1234567890123456", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			f.Phone = tt.phone
			errs := Validate(&f, models.BranchOther)
			if tt.ok {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Equal(t, "Invalid phone number", errs["phone"])
			}
		})
	}
}

func TestEmailAndNameRules(t *testing.T) {
	f := validForm()
	f.Email = "not-an-email"
	errs := Validate(&f, models.BranchOther)
	require.NotNil(t, errs)
	assert.Equal(t, "Invalid email address", errs["email"])

	f = validForm()
	f.FirstName = "   "
	errs = Validate(&f, models.BranchOther)
	require.NotNil(t, errs)
	assert.Equal(t, "First name is required", errs["fname"])

	f = validForm()
	f.LastName = ""
	errs = Validate(&f, models.BranchOther)
	require.NotNil(t, errs)
	assert.Equal(t, "Last name is required", errs["lname"])
}

func TestDateRequired(t *testing.T) {
	f := validForm()
	f.Date = nil
	errs := Validate(&f, models.BranchOther)
	require.NotNil(t, errs)
	assert.Equal(t, "Date is required", errs["date"])
}

func TestPickupBranchRequiresDeliverySide(t *testing.T) {
	f := validForm()
	errs := Validate(&f, models.BranchPickup)
	require.NotNil(t, errs)
	assert.Equal(t, "Delivery address is required", errs["addressTo"])
	assert.Equal(t, "Receiver name is required", errs["receiverName"])
	assert.Equal(t, "Invalid phone number", errs["receiverPhone"])

	f = validForm()
	f.AddressTo = "2 Oak Ave, Decatur, GA"
	f.ReceiverName = "Grace Hopper"
	f.ReceiverPhone = "+15557654321"
	assert.Nil(t, Validate(&f, models.BranchPickup))
}

func TestOtherBranchIgnoresAndClearsDeliverySide(t *testing.T) {
	f := validForm()
	f.AddressTo = "should be dropped"
	f.ReceiverName = "should be dropped"
	f.ReceiverPhone = "nonsense"

	errs := Validate(&f, models.BranchOther)
	assert.Nil(t, errs)
	assert.Empty(t, f.AddressTo)
	assert.Empty(t, f.ReceiverName)
	assert.Empty(t, f.ReceiverPhone)
}

func TestPickupEmptyDeliveryAfterTrimBlocked(t *testing.T) {
	f := validForm()
	f.AddressTo = "   "
	f.ReceiverName = "Grace Hopper"
	f.ReceiverPhone = "+15557654321"

	errs := Validate(&f, models.BranchPickup)
	require.NotNil(t, errs)
	assert.Equal(t, "Delivery address is required", errs["addressTo"])
}

func TestValidateFieldReportsSingleField(t *testing.T) {
	f := validForm()
	f.Phone = "12"
	assert.Equal(t, "Invalid phone number", ValidateField(&f, models.BranchOther, "phone"))
	assert.Empty(t, ValidateField(&f, models.BranchOther, "email"))
}

func TestAcceptImage(t *testing.T) {
	assert.NoError(t, AcceptImage("a.png", "image/png", 1024))
	assert.NoError(t, AcceptImage("a.gif", "image/gif", MaxImageSize))

	err := AcceptImage("a.pdf", "application/pdf", 1024)
	require.Error(t, err)
	var rejection *FileRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Contains(t, rejection.Reason, "PNG, JPG, JPEG, and GIF")

	err = AcceptImage("big.png", "image/png", MaxImageSize+1)
	require.Error(t, err)
	require.ErrorAs(t, err, &rejection)
	assert.Contains(t, rejection.Reason, "smaller than 10MB")
}
