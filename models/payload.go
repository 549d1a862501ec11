package models

// BookingPayload is the wire-ready appointment request, assembled fresh for
// each submit attempt. Optional fields are omitted from the multipart body
// entirely when empty, never sent blank.
type BookingPayload struct {
	Email           string
	Phone           string
	Name            string
	Zipcode         string
	Service         string
	AppointmentDate string
	AppointmentTime string
	Images          []DraftImage
	Message         string
	AddressFrom     string
	AddressTo       string
}

// BookingConfirmation is the upstream answer to a successful submission.
type BookingConfirmation struct {
	Message string `json:"message"`
}
