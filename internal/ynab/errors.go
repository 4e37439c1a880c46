package ynab

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is an error response from the YNAB API.
type APIError struct {
	StatusCode int
	ID         string
	Name       string
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ynab: %s (%s): %s", e.Name, e.ID, e.Detail)
}

// IsAuthorization reports whether the API rejected the supplied token.
func (e *APIError) IsAuthorization() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Name:       http.StatusText(resp.StatusCode),
	}

	var envelope struct {
		Error struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Detail string `json:"detail"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.ID != "" {
		apiErr.ID = envelope.Error.ID
		apiErr.Name = envelope.Error.Name
		apiErr.Detail = envelope.Error.Detail
	}

	return apiErr
}
