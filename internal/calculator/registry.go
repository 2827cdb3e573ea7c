package calculator

import (
	"context"
	"slices"
	"strings"

	"github.com/go-faster/jx"
)

// Group is a catalog section.
type Group string

// Catalog groups.
const (
	GroupFinance    Group = "finance"
	GroupStatistics Group = "statistics"
	GroupNumbers    Group = "numbers"
	GroupBigInt     Group = "bigint"
	GroupScience    Group = "science"
	GroupFun        Group = "fun"
	GroupText       Group = "text"
)

// Param documents one argument of an operation.
type Param struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// EvalFunc evaluates an operation and writes its result, a JSON object, to e.
// Errors carry a formula kind for bad arguments or failed computations.
type EvalFunc func(ctx context.Context, args Args, e *jx.Encoder) error

// Operation is a named entry of the catalog.
type Operation struct {
	Name    string
	Group   Group
	Summary string
	Params  []Param
	// Cacheable operations are deterministic in their arguments, so their
	// results may be reused.
	Cacheable bool
	Eval      EvalFunc
}

// Registry is an immutable-after-setup catalog of operations.
type Registry struct {
	ops map[string]Operation
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds op. It panics on a duplicate or unnamed operation, which is a
// programming error caught at startup.
func (r *Registry) Register(op Operation) {
	if op.Name == "" || op.Eval == nil {
		panic("calculator: operation needs a name and an eval function")
	}
	if _, ok := r.ops[op.Name]; ok {
		panic("calculator: duplicate operation " + op.Name)
	}
	r.ops[op.Name] = op
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (Operation, bool) {
	op, ok := r.ops[name]

	return op, ok
}

// List returns all operations ordered by group and name.
func (r *Registry) List() []Operation {
	out := make([]Operation, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, op)
	}
	slices.SortFunc(out, func(a, b Operation) int {
		if c := strings.Compare(string(a.Group), string(b.Group)); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	return out
}

func required(name, typ string) Param { return Param{Name: name, Type: typ, Required: true} }
func optional(name, typ string) Param { return Param{Name: name, Type: typ} }
