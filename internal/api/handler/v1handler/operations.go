package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"toolbox/internal/calculator"
)

func encodeOperation(e *jx.Encoder, op calculator.Operation) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(op.Name) })
		e.Field("group", func(e *jx.Encoder) { e.Str(string(op.Group)) })
		e.Field("summary", func(e *jx.Encoder) { e.Str(op.Summary) })
		e.Field("cacheable", func(e *jx.Encoder) { e.Bool(op.Cacheable) })
		e.Field("params", func(e *jx.Encoder) {
			e.ArrStart()
			for _, p := range op.Params {
				e.Obj(func(e *jx.Encoder) {
					e.Field("name", func(e *jx.Encoder) { e.Str(p.Name) })
					e.Field("type", func(e *jx.Encoder) { e.Str(p.Type) })
					e.Field("required", func(e *jx.Encoder) { e.Bool(p.Required) })
				})
			}
			e.ArrEnd()
		})
	})
}

// ListOperations returns the operation catalog.
func (h *Handler) ListOperations(w http.ResponseWriter, _ *http.Request) {
	ops := h.deps.Calculator.Operations()

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.ArrStart()
				for _, op := range ops {
					encodeOperation(e, op)
				}
				e.ArrEnd()
			})
		})
	})
}

// Evaluate runs an operation synchronously. The body is the JSON object of
// arguments.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	name := r.PathValue("name")
	res, err := h.deps.Calculator.Evaluate(r.Context(), name, body)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("operation", func(e *jx.Encoder) { e.Str(name) })
			e.Field("result", func(e *jx.Encoder) { e.Raw(res) })
		})
	})
}
