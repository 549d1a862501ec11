package form

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"bookflow/models"
)

// Assemble converts the validated form plus the session draft into the wire
// payload. Pure construction: inputs are already validated, so the only
// decisions left are conditional inclusion and the date/time split.
func Assemble(draft models.BookingDraft, f BookingForm, branch models.BookingBranch) models.BookingPayload {
	payload := models.BookingPayload{
		Email:       f.Email,
		Phone:       f.Phone,
		Name:        f.FirstName + " " + f.LastName,
		AddressFrom: f.AddressFrom,
		Images:      draft.Images,
	}

	if draft.Zipcode != "" {
		payload.Zipcode = draft.Zipcode
	}
	if draft.ServiceID != "" {
		payload.Service = draft.ServiceID
	}

	// Two separate fields, formatted in the zone the client transmitted.
	payload.AppointmentDate = f.Date.Format("2006-01-02")
	payload.AppointmentTime = f.Date.Format("15:04:05")

	if notes := strings.TrimSpace(f.Notes); notes != "" {
		payload.Message = notes
	}

	if branch == models.BranchPickup && f.AddressTo != "" {
		payload.AddressTo = f.AddressTo
	}

	return payload
}

// EncodeMultipart writes the payload as the multipart form body the
// appointments endpoint expects. Optional fields are omitted entirely when
// empty; images repeat under a shared field name in selection order.
func EncodeMultipart(payload models.BookingPayload) (string, *bytes.Buffer, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := []struct {
		name  string
		value string
	}{
		{"email", payload.Email},
		{"phone", payload.Phone},
		{"name", payload.Name},
		{"zipcode", payload.Zipcode},
		{"service", payload.Service},
		{"appointment_date", payload.AppointmentDate},
		{"appointment_time", payload.AppointmentTime},
		{"message", payload.Message},
		{"address_from", payload.AddressFrom},
		{"address_to", payload.AddressTo},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := w.WriteField(f.name, f.value); err != nil {
			return "", nil, fmt.Errorf("failed to write field %s: %w", f.name, err)
		}
	}

	for _, img := range payload.Images {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, escapeQuotes(img.Filename)))
		h.Set("Content-Type", img.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return "", nil, fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return "", nil, fmt.Errorf("failed to write image %s: %w", img.Filename, err)
		}
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return w.FormDataContentType(), body, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
