package domain

import "time"

// RateStatus is the upstream API quota as last reported.
type RateStatus struct {
	// Limit is the number of requests allowed per window.
	Limit int `json:"limit"`

	// Remaining is the number of requests left in the current window.
	Remaining int `json:"remaining"`

	// Reset is when the window resets.
	Reset time.Time `json:"reset"`
}
