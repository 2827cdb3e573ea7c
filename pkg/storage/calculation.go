package storage

import (
	"context"
	"encoding/json"
	"time"

	"toolbox/pkg/domain"
)

// CalculationUpdates describes the fields applied to a calculation by
// UpdateCalculationByID. Zero values leave the column unchanged.
type CalculationUpdates struct {
	// Status is the new status; empty keeps the current one.
	Status domain.CalculationStatus
	// Result replaces the stored result payload when non-nil.
	Result json.RawMessage
	// ErrorCode sets the error code; a pointer to "" clears it.
	ErrorCode *string
	// LastError sets the last error text; a pointer to "" clears it.
	LastError *string
	// IncrementAttempts bumps the attempts counter by one.
	IncrementAttempts bool
}

// UserCalculations is a page of a user's calculations.
type UserCalculations struct {
	Calculations []domain.Calculation
	// NextCursor is the creation time to continue from, nil on the last page.
	NextCursor *time.Time
}

// CalculationStorage persists calculations. Soft-deleted rows are invisible
// to every method.
type CalculationStorage interface {
	// StoreCalculations inserts calculations and returns them with generated
	// fields (ID, timestamps) filled in.
	StoreCalculations(ctx context.Context, calculations ...domain.Calculation) ([]domain.Calculation, error)
	// UpdateCalculationByID applies updates, sets updated_at and returns the
	// updated row, or nil when no live row has that ID.
	UpdateCalculationByID(ctx context.Context,
		id domain.CalculationID,
		updates CalculationUpdates) (*domain.Calculation, error)
	// DeleteCalculation soft-deletes a calculation of the user and returns it,
	// or nil when not found.
	DeleteCalculation(ctx context.Context, userID domain.UserID, id domain.CalculationID) (*domain.Calculation, error)
	// UserCalculations returns the user's calculations created before cursor
	// (zero means from the newest), newest first, optionally filtered by status.
	UserCalculations(ctx context.Context,
		userID domain.UserID,
		status domain.CalculationStatus,
		cursor time.Time,
		limit uint) (UserCalculations, error)
	// CalculationByID returns a calculation of the user, or nil when not found.
	CalculationByID(ctx context.Context, userID domain.UserID, id domain.CalculationID) (*domain.Calculation, error)
	// PendingCalculation returns the calculation with the ID if it is still
	// pending, regardless of owner, or nil otherwise. Inside a transaction
	// the row is locked until commit.
	PendingCalculation(ctx context.Context, id domain.CalculationID) (*domain.Calculation, error)
}
