package model

// ErrorResponse represents an error response
type ErrorResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageResponse carries a single human-readable message
type MessageResponse struct {
	Message string `json:"message"`
}

// ArchiveResponse is returned after an invoice PDF has been uploaded
type ArchiveResponse struct {
	URL string `json:"url"`
}

// HealthResponse is returned by the health probe
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
