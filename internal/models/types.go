package models

// ============================================
// REQUEST / RESPONSE TYPES
// ============================================

// AnalysisRequest is the payload accepted by the analyze endpoint. Pointer
// fields distinguish a missing or null key from an empty string: only a
// missing/null key is a client error.
type AnalysisRequest struct {
	BusinessName *string `json:"business_name"`
	GameData     *string `json:"game_data"`
}

// Validate checks the required fields in a stable order so error messages
// are deterministic.
func (r *AnalysisRequest) Validate() error {
	if r.BusinessName == nil {
		return &ValidationError{Field: "business_name"}
	}
	if r.GameData == nil {
		return &ValidationError{Field: "game_data"}
	}
	return nil
}

// AnalysisResponse wraps a completed analysis for the API response. None of
// it outlives the request; report_id is display-only and never looked up.
type AnalysisResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ReportID     string `json:"report_id"`
	BusinessName string `json:"business_name"`
	Analysis     string `json:"analysis"`
	GeneratedAt  string `json:"generated_at"`
}

// APIError represents an API error response body.
type APIError struct {
	Error string `json:"error"`
}
