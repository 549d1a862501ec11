package models

// BookingBranch is derived from the selected category. Exactly one configured
// category maps to the pickup branch; everything else is the default branch.
type BookingBranch string

const (
	BranchPickup BookingBranch = "PICKUP"
	BranchOther  BookingBranch = "OTHER"
)

// Service is a bookable service within a category, as returned by the
// upstream services API.
type Service struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category groups services, as returned by the upstream services API.
type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	ImageURL string    `json:"image_url"`
	Services []Service `json:"services"`
}

// CategoriesResponse is the upstream payload for the category listing.
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// CategoryResponse is the upstream payload for a single category with its
// services.
type CategoryResponse struct {
	Category Category `json:"category"`
}
