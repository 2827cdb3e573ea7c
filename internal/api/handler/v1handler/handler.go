// Package v1handler implements the v1 HTTP API on top of the calculator.
package v1handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"toolbox/internal/calculator"
	"toolbox/pkg/formula"
	"toolbox/pkg/logger"
	"toolbox/pkg/serrors"
)

// MaxBodyBytes caps request bodies before they reach the calculator, which
// applies its own, usually smaller, argument limit.
const MaxBodyBytes = 1 << 20

type Deps struct {
	Calculator calculator.Calculator
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux under /v1. Calculation routes require
// a bearer token.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	auth := sec.Middleware(h)

	mux.HandleFunc("GET /v1/operations", h.ListOperations)
	mux.HandleFunc("POST /v1/operations/{name}/evaluate", h.Evaluate)

	mux.Handle("POST /v1/calculations", auth(http.HandlerFunc(h.CreateCalculation)))
	mux.Handle("GET /v1/calculations", auth(http.HandlerFunc(h.ListCalculations)))
	mux.Handle("GET /v1/calculations/{id}", auth(http.HandlerFunc(h.GetCalculation)))
	mux.Handle("DELETE /v1/calculations/{id}", auth(http.HandlerFunc(h.DeleteCalculation)))
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorMapping struct {
	kind    serrors.Kind
	status  int
	message string
}

var errorMappings = []errorMapping{ //nolint: gochecknoglobals
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{formula.ErrInvalidInput, http.StatusBadRequest, "invalid input"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{formula.ErrDivisionByZero, http.StatusUnprocessableEntity, "division by zero"},
	{formula.ErrZeroStdDev, http.StatusUnprocessableEntity, "standard deviation is zero"},
	{formula.ErrNonConvergent, http.StatusUnprocessableEntity, "calculation did not converge"},
	{formula.ErrNoRealResult, http.StatusUnprocessableEntity, "no real result"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "rate limited"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "timeout"},
}

// NewError maps err to a status and a client-facing body. Messages of
// internal errors are never exposed.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	for _, m := range errorMappings {
		if kind != m.kind {
			continue
		}

		message := m.message
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			message = se.Message()
		}
		logger.Debug(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: m.status,
			Response:   ErrorResponse{Code: kind.Error(), Message: message},
		}
	}

	logger.Error(ctx, err.Error())

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

// WriteError renders err as {"code", "message"}.
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("code", func(e *jx.Encoder) { e.Str(res.Response.Code) })
			e.Field("message", func(e *jx.Encoder) { e.Str(res.Response.Message) })
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, fn func(e *jx.Encoder)) {
	var e jx.Encoder
	fn(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// readBody reads at most MaxBodyBytes of the request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", MaxBodyBytes)
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	return body, nil
}
