// Package places wraps the Google Places API behind the address-suggestion
// contract the booking form needs: debounced text lookups and resolution of
// a chosen candidate into a structured address.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookflow/models"
)

const googleMapsBaseURL = "https://maps.googleapis.com/maps/api"

// SuggestionProvider is the external place-suggestion capability.
type SuggestionProvider interface {
	Suggest(ctx context.Context, input, sessionToken string) ([]models.AddressSuggestion, error)
	Resolve(ctx context.Context, placeID, sessionToken string) (*models.ResolvedAddress, error)
}

// GoogleClient implements SuggestionProvider against the Places web API.
type GoogleClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewGoogleClient returns a Places client using the given API key.
func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{
		APIKey:     apiKey,
		BaseURL:    googleMapsBaseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// autocompleteResponse represents the structure of the response from the
// Places Autocomplete API.
type autocompleteResponse struct {
	Status      string `json:"status"`
	Predictions []struct {
		Description string `json:"description"`
		PlaceID     string `json:"place_id"`
	} `json:"predictions"`
}

// detailsResponse represents the structure of the response from the Place
// Details API.
type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"result"`
}

// Suggest fetches autocomplete candidates for a free-text input. A blank
// input resolves to an empty list without calling the provider.
func (c *GoogleClient) Suggest(ctx context.Context, input, sessionToken string) ([]models.AddressSuggestion, error) {
	if strings.TrimSpace(input) == "" {
		return []models.AddressSuggestion{}, nil
	}

	endpoint := fmt.Sprintf(
		"%s/place/autocomplete/json?input=%s&components=country:us&sessiontoken=%s&key=%s",
		c.BaseURL, url.QueryEscape(input), url.QueryEscape(sessionToken), c.APIKey,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build autocomplete request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("autocomplete request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload autocompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode autocomplete response: %w", err)
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("autocomplete returned status %s", payload.Status)
	}

	suggestions := make([]models.AddressSuggestion, 0, len(payload.Predictions))
	for _, p := range payload.Predictions {
		suggestions = append(suggestions, models.AddressSuggestion{
			PlaceID:     p.PlaceID,
			Description: p.Description,
		})
	}
	return suggestions, nil
}

// Resolve fetches the full address for a chosen candidate and extracts the
// locality and postal code from its components.
func (c *GoogleClient) Resolve(ctx context.Context, placeID, sessionToken string) (*models.ResolvedAddress, error) {
	endpoint := fmt.Sprintf(
		"%s/place/details/json?place_id=%s&fields=formatted_address,address_component&sessiontoken=%s&key=%s",
		c.BaseURL, url.QueryEscape(placeID), url.QueryEscape(sessionToken), c.APIKey,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build details request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("details request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode details response: %w", err)
	}
	if payload.Status != "OK" {
		return nil, fmt.Errorf("details returned status %s", payload.Status)
	}

	resolved := &models.ResolvedAddress{
		FormattedAddress: payload.Result.FormattedAddress,
	}
	for _, comp := range payload.Result.AddressComponents {
		for _, t := range comp.Types {
			if t == "locality" || t == "administrative_area_level_3" {
				resolved.Locality = comp.LongName
			}
			if t == "postal_code" {
				resolved.PostalCode = comp.LongName
			}
		}
	}
	return resolved, nil
}
