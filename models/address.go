package models

// AddressField names one of the two address inputs on the booking form.
// Each field owns its own suggestion list and Places session token.
type AddressField string

const (
	AddressFieldFrom AddressField = "from"
	AddressFieldTo   AddressField = "to"
)

func (f AddressField) Valid() bool {
	return f == AddressFieldFrom || f == AddressFieldTo
}

// AddressSuggestion is one autocomplete candidate from the place provider.
type AddressSuggestion struct {
	PlaceID     string `json:"placeId"`
	Description string `json:"description"`
}

// ResolvedAddress is the full address for a chosen candidate, with locality
// and postal code extracted from the address components.
type ResolvedAddress struct {
	FormattedAddress string `json:"formattedAddress"`
	Locality         string `json:"locality"`
	PostalCode       string `json:"postalCode"`
}
