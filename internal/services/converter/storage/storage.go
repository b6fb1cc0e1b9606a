// Package storage defines persistence contracts for the converter service.
package storage

import (
	"context"
	"time"
)

// Conversion is one recorded converter call.
type Conversion struct {
	ID string
	// Direction is numeral.DirectionToNumber or numeral.DirectionToRoman.
	Direction string
	Input     string
	Output    string
	// Code is numeral.ResultOK or the failure's error code.
	Code      string
	RequestID string
	CreatedAt time.Time
}

// HistoryStore records and lists conversions.
type HistoryStore interface {
	Record(ctx context.Context, conversion Conversion) error
	ListRecent(ctx context.Context, limit int) ([]Conversion, error)
}

// Limits for ListRecent.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ClampLimit maps a requested page size onto [1, MaxListLimit], using
// DefaultListLimit for non-positive values.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
