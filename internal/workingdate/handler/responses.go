package handler

import "workdays/internal/workingdate"

// CalculateResponse is the HTTP response for GET /calculate.
type CalculateResponse struct {
	Success bool   `json:"success"`
	Date    string `json:"date"`
}

// FromResult converts a computation result to an HTTP response.
func FromResult(result *workingdate.Result) *CalculateResponse {
	return &CalculateResponse{
		Success: true,
		Date:    result.Formatted(),
	}
}
