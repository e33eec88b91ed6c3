package handler

import (
	"net/url"
	"strconv"
	"strings"

	"workdays/internal/workingdate"
	dErrors "workdays/pkg/domain-errors"
)

// CalculateRequest is the query of GET /calculate.
type CalculateRequest struct {
	Days  string
	Hours string
	Date  string

	// Parsed values (populated by Validate)
	parsedDays  int
	parsedHours float64
}

// CalculateRequestFromQuery reads the raw query parameters.
func CalculateRequestFromQuery(q url.Values) *CalculateRequest {
	return &CalculateRequest{
		Days:  strings.TrimSpace(q.Get("days")),
		Hours: strings.TrimSpace(q.Get("hours")),
		Date:  strings.TrimSpace(q.Get("date")),
	}
}

// Validate parses days and hours. Each must be a non-negative number (days an
// integer) and at least one of them must be positive.
func (r *CalculateRequest) Validate() error {
	if r.Days == "" && r.Hours == "" {
		return dErrors.New(dErrors.CodeInvalidParameters, "at least one of 'days' or 'hours' is required")
	}

	if r.Days != "" {
		days, err := strconv.Atoi(r.Days)
		if err != nil || days < 0 {
			return dErrors.New(dErrors.CodeInvalidParameters, "'days' must be a non-negative integer")
		}
		r.parsedDays = days
	}

	if r.Hours != "" {
		hours, err := strconv.ParseFloat(r.Hours, 64)
		if err != nil || hours < 0 {
			return dErrors.New(dErrors.CodeInvalidParameters, "'hours' must be a non-negative number")
		}
		r.parsedHours = hours
	}

	if r.parsedDays == 0 && r.parsedHours == 0 {
		return dErrors.New(dErrors.CodeInvalidParameters, "at least one of 'days' or 'hours' must be positive")
	}

	return nil
}

// ToServiceRequest builds the service request from a validated query.
func (r *CalculateRequest) ToServiceRequest() workingdate.Request {
	return workingdate.Request{
		Days:  r.parsedDays,
		Hours: r.parsedHours,
		Date:  r.Date,
	}
}
