package request

// PaginatedRequest addresses a zero-based page.
type PaginatedRequest struct {
	Page  int `json:"page" validate:"gte=0"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}
