package calculator

import (
	"context"
	"encoding/json"

	"toolbox/pkg/domain"
)

//go:generate mockgen -package mockcalculator -source=interface.go -destination=mock/mockcalculator.go *
type Calculator interface {
	// Operations lists the catalog ordered by group and name.
	Operations() []Operation
	// Evaluate runs an operation synchronously and returns its JSON result.
	Evaluate(ctx context.Context, op string, input []byte) (json.RawMessage, error)
	// Enqueue records a calculation for the user and schedules its evaluation.
	Enqueue(ctx context.Context, userID domain.UserID, op string, input []byte) (*domain.Calculation, error)
	UserCalculations(ctx context.Context,
		userID domain.UserID,
		status domain.CalculationStatus,
		cursor string,
		limit uint) ([]domain.Calculation, string, error)
	Result(ctx context.Context, userID domain.UserID, id domain.CalculationID) (*domain.Calculation, error)
	Delete(ctx context.Context, userID domain.UserID, id domain.CalculationID) error
	// Process evaluates a pending calculation on behalf of a background job.
	Process(ctx context.Context, id domain.CalculationID, lastAttempt bool) error
}
