package v1handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-faster/jx"

	"toolbox/pkg/domain"
	"toolbox/pkg/serrors"
)

// List limits.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

func encodeCalculation(e *jx.Encoder, c *domain.Calculation) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(c.ID.String()) })
		e.Field("operation", func(e *jx.Encoder) { e.Str(c.Operation) })
		e.Field("input", func(e *jx.Encoder) {
			if len(c.Input) == 0 {
				e.ObjEmpty()

				return
			}
			e.Raw(c.Input)
		})
		e.Field("status", func(e *jx.Encoder) { e.Str(string(c.Status)) })
		if len(c.Result) > 0 {
			e.Field("result", func(e *jx.Encoder) { e.Raw(c.Result) })
		}
		if c.ErrorCode != "" {
			e.Field("errorCode", func(e *jx.Encoder) { e.Str(c.ErrorCode) })
		}
		if c.LastError != "" {
			e.Field("error", func(e *jx.Encoder) { e.Str(c.LastError) })
		}
		e.Field("attempts", func(e *jx.Encoder) { e.UInt(c.Attempts) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(c.CreatedAt.UTC().Format(time.RFC3339Nano)) })
		if !c.UpdatedAt.IsZero() {
			e.Field("updatedAt", func(e *jx.Encoder) { e.Str(c.UpdatedAt.UTC().Format(time.RFC3339Nano)) })
		}
	})
}

type createCalculationRequest struct {
	Operation string
	Input     []byte
}

func decodeCreateCalculation(body []byte) (createCalculationRequest, error) {
	var req createCalculationRequest
	if err := jx.DecodeBytes(body).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "operation":
			s, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			req.Operation = s
		case "input":
			raw, err := d.Raw()
			if err != nil {
				return err //nolint: wrapcheck
			}
			req.Input = append([]byte(nil), raw...)
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	}); err != nil {
		return req, serrors.Wrap(serrors.ErrBadRequest, err, "malformed request body")
	}
	if req.Operation == "" {
		return req, serrors.With(serrors.ErrBadRequest, "operation is required")
	}

	return req, nil
}

// CreateCalculation enqueues an asynchronous calculation for the caller.
func (h *Handler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	req, err := decodeCreateCalculation(body)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	c, err := h.deps.Calculator.Enqueue(r.Context(), GetUserIDFromContext(r.Context()), req.Operation, req.Input)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	status := http.StatusAccepted
	if c.Status != domain.CalculationStatusPending {
		status = http.StatusCreated
	}
	writeJSON(w, status, func(e *jx.Encoder) { encodeCalculation(e, c) })
}

func parseLimit(s string) (uint, error) {
	if s == "" {
		return DefaultLimit, nil
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 || n > MaxLimit {
		return 0, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit)
	}

	return uint(n), nil
}

// ListCalculations returns a page of the caller's calculations.
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := parseLimit(q.Get("limit"))
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	calcs, next, err := h.deps.Calculator.UserCalculations(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.CalculationStatus(q.Get("status")),
		q.Get("cursor"),
		limit)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.ArrStart()
				for i := range calcs {
					encodeCalculation(e, &calcs[i])
				}
				e.ArrEnd()
			})
			e.Field("nextCursor", func(e *jx.Encoder) {
				if next == "" {
					e.Null()

					return
				}
				e.Str(next)
			})
		})
	})
}

func pathCalculationID(r *http.Request) (domain.CalculationID, error) {
	id, err := domain.ParseCalculationID(r.PathValue("id"))
	if err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "invalid calculation id")
	}

	return id, nil
}

// GetCalculation returns one of the caller's calculations.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id, err := pathCalculationID(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	c, err := h.deps.Calculator.Result(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCalculation(e, c) })
}

// DeleteCalculation removes one of the caller's calculations.
func (h *Handler) DeleteCalculation(w http.ResponseWriter, r *http.Request) {
	id, err := pathCalculationID(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	if err := h.deps.Calculator.Delete(r.Context(), GetUserIDFromContext(r.Context()), id); err != nil {
		h.WriteError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
