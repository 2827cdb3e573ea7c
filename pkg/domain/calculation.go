package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CalculationID uniquely identifies an asynchronous calculation.
type CalculationID uuid.UUID

// String returns the canonical UUID text form.
func (id CalculationID) String() string { return uuid.UUID(id).String() }

// ParseCalculationID parses the canonical text form of a CalculationID.
func ParseCalculationID(s string) (CalculationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CalculationID{}, err //nolint: wrapcheck
	}

	return CalculationID(id), nil
}

// CalculationStatus represents the lifecycle state of a calculation.
type CalculationStatus string

const (
	// CalculationStatusPending indicates the calculation is waiting for a worker.
	CalculationStatusPending CalculationStatus = "PENDING"
	// CalculationStatusCompleted indicates Result holds the outcome.
	CalculationStatusCompleted CalculationStatus = "COMPLETED"
	// CalculationStatusFailed indicates the formula rejected its input or
	// evaluation gave up; ErrorCode and LastError describe why.
	CalculationStatusFailed CalculationStatus = "FAILED"
)

// Valid reports whether s is one of the known statuses.
func (s CalculationStatus) Valid() bool {
	switch s {
	case CalculationStatusPending, CalculationStatusCompleted, CalculationStatusFailed:
		return true
	}

	return false
}

// Calculation is a named operation submitted by a user together with its
// arguments, evaluated in the background.
type Calculation struct {
	ID     CalculationID `json:"id"`
	UserID UserID        `json:"userId"`

	// Operation is the registry name, e.g. "irr" or "big-mul".
	Operation string `json:"operation"`
	// Input is the JSON object of arguments as submitted.
	Input json.RawMessage `json:"input"`
	// Status is the current lifecycle state.
	Status CalculationStatus `json:"status"`
	// Result is the JSON encoded outcome once completed.
	Result json.RawMessage `json:"result,omitempty"`

	// ErrorCode is the kind of the computation error for failed calculations,
	// e.g. "NON_CONVERGENT".
	ErrorCode string `json:"errorCode,omitempty"`
	// LastError is the most recent error message.
	LastError string `json:"error,omitempty"`
	// Attempts counts processing attempts.
	Attempts uint `json:"attempts"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks a soft delete; zero means live.
	DeletedAt time.Time `json:"-"`
}
