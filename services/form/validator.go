// Package form owns the booking form contract: the field schema, the
// branch-conditional rules, and assembly of the submission payload.
package form

import (
	"regexp"
	"strings"
	"time"

	"bookflow/models"

	"github.com/go-playground/validator/v10"
)

// BookingForm carries the raw values of the final wizard step. Branch
// dependent fields (delivery address, receiver identity) are validated by
// the cross-field pass, not the declarative tags, because their required-ness
// depends on the session's derived branch.
type BookingForm struct {
	FirstName     string     `json:"fname" validate:"required"`
	LastName      string     `json:"lname" validate:"required"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         string     `json:"phone" validate:"required,booking_phone"`
	AddressFrom   string     `json:"addressFrom" validate:"required"`
	AddressTo     string     `json:"addressTo"`
	ReceiverName  string     `json:"receiverName"`
	ReceiverPhone string     `json:"receiverPhone"`
	Date          *time.Time `json:"date" validate:"required"`
	Notes         string     `json:"notes"`
}

// FieldErrors maps a form field name to a human-readable message.
type FieldErrors map[string]string

var phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("booking_phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return v
}

var fieldMessages = map[string]string{
	"FirstName":     "First name is required",
	"LastName":      "Last name is required",
	"Email":         "Invalid email address",
	"Phone":         "Invalid phone number",
	"AddressFrom":   "Address is required",
	"AddressTo":     "Delivery address is required",
	"ReceiverName":  "Receiver name is required",
	"ReceiverPhone": "Invalid phone number",
	"Date":          "Date is required",
}

var fieldJSONNames = map[string]string{
	"FirstName":     "fname",
	"LastName":      "lname",
	"Email":         "email",
	"Phone":         "phone",
	"AddressFrom":   "addressFrom",
	"AddressTo":     "addressTo",
	"ReceiverName":  "receiverName",
	"ReceiverPhone": "receiverPhone",
	"Date":          "date",
	"Notes":         "notes",
}

// Normalize trims surrounding whitespace the way the form inputs do on blur.
func (f *BookingForm) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.AddressFrom = strings.TrimSpace(f.AddressFrom)
	f.AddressTo = strings.TrimSpace(f.AddressTo)
	f.ReceiverName = strings.TrimSpace(f.ReceiverName)
	f.ReceiverPhone = strings.TrimSpace(f.ReceiverPhone)
}

// Validate runs the declarative schema plus the branch cross-field rules and
// returns every failing field. A nil result means the form may be submitted.
// Outside the pickup branch the delivery-side fields are cleared, never
// validated.
func Validate(f *BookingForm, branch models.BookingBranch) FieldErrors {
	f.Normalize()

	if branch != models.BranchPickup {
		f.AddressTo = ""
		f.ReceiverName = ""
		f.ReceiverPhone = ""
	}

	errs := FieldErrors{}
	if err := validate.Struct(f); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				name := fieldJSONNames[fe.StructField()]
				if msg, ok := fieldMessages[fe.StructField()]; ok {
					errs[name] = msg
				} else {
					errs[name] = "Invalid value"
				}
			}
		} else {
			errs["form"] = "Invalid form"
		}
	}

	// The declarative layer cannot see the branch, so the pickup-only
	// rules run here, the single source of truth for branch logic.
	if branch == models.BranchPickup {
		if f.AddressTo == "" {
			errs["addressTo"] = fieldMessages["AddressTo"]
		}
		if f.ReceiverName == "" {
			errs["receiverName"] = fieldMessages["ReceiverName"]
		}
		if !phoneRe.MatchString(f.ReceiverPhone) {
			errs["receiverPhone"] = fieldMessages["ReceiverPhone"]
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateField re-runs validation and reports the message for a single
// field, used for immediate feedback while the user types. An empty string
// means the field is currently valid.
func ValidateField(f *BookingForm, branch models.BookingBranch, field string) string {
	errs := Validate(f, branch)
	if errs == nil {
		return ""
	}
	return errs[field]
}
