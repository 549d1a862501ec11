// Package clients wraps the upstream booking API consumed by the wizard:
// availability checks, the service catalogue, and appointment submission.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"bookflow/models"
)

// UpstreamError reports a non-success answer from the booking API. It maps
// to the transient network error class: the wizard state is untouched and
// the caller may retry the same action.
type UpstreamError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s failed with status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream %s failed: %s", e.Op, e.Message)
}

// BookingAPI is the contract the wizard needs from the upstream backend.
type BookingAPI interface {
	CheckAvailability(ctx context.Context, zipcode string) (*models.AvailabilityResponse, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryServices(ctx context.Context, categoryID string) (*models.Category, error)
	SubmitAppointment(ctx context.Context, contentType string, body io.Reader) (*models.BookingConfirmation, error)
}

// UpstreamClient talks to the booking backend over HTTP.
type UpstreamClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewUpstreamClient returns a BookingAPI bound to the given base URL.
func NewUpstreamClient(baseURL string) *UpstreamClient {
	return &UpstreamClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CheckAvailability asks whether the service area covers a ZIP code.
func (c *UpstreamClient) CheckAvailability(ctx context.Context, zipcode string) (*models.AvailabilityResponse, error) {
	endpoint := fmt.Sprintf("%s/availability?zipcode=%s", c.BaseURL, url.QueryEscape(zipcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build availability request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: "availability", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Op: "availability", StatusCode: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}

	var availability models.AvailabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&availability); err != nil {
		return nil, fmt.Errorf("failed to decode availability response: %w", err)
	}
	return &availability, nil
}

// GetCategories lists all service categories.
func (c *UpstreamClient) GetCategories(ctx context.Context) ([]models.Category, error) {
	endpoint := fmt.Sprintf("%s/services/categories", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build categories request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: "categories", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Op: "categories", StatusCode: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}

	var payload models.CategoriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode categories response: %w", err)
	}
	return payload.Categories, nil
}

// GetCategoryServices fetches one category with its services.
func (c *UpstreamClient) GetCategoryServices(ctx context.Context, categoryID string) (*models.Category, error) {
	endpoint := fmt.Sprintf("%s/services/category?category=%s", c.BaseURL, url.QueryEscape(categoryID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build category request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: "category", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Op: "category", StatusCode: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}

	var payload models.CategoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode category response: %w", err)
	}
	return &payload.Category, nil
}

// SubmitAppointment posts the assembled multipart booking payload.
func (c *UpstreamClient) SubmitAppointment(ctx context.Context, contentType string, body io.Reader) (*models.BookingConfirmation, error) {
	endpoint := fmt.Sprintf("%s/appointments", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build appointment request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: "appointments", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Op: "appointments", StatusCode: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}

	var confirmation models.BookingConfirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, fmt.Errorf("failed to decode appointment response: %w", err)
	}
	return &confirmation, nil
}

func readErrorBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil || len(data) == 0 {
		return "no response body"
	}
	return string(data)
}
