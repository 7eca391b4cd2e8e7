package sqlquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joblyhq/jobly/internal/apperrors"
)

// Operator selects the comparison semantics bound to a recognized filter
// parameter.
type Operator int

const (
	// OpContains matches a case-insensitive substring of the column.
	OpContains Operator = iota
	// OpGTE is an inclusive numeric lower bound on the column.
	OpGTE
	// OpLTE is an inclusive numeric upper bound on the column.
	OpLTE
	// OpPresence activates a fixed predicate when the key is present,
	// regardless of the value. It consumes no placeholder.
	OpPresence
)

// FilterField binds one query parameter name to an operator and its target.
// Column is the physical column for OpContains/OpGTE/OpLTE. For OpPresence,
// Predicate holds the complete SQL predicate and Column is unused.
type FilterField struct {
	Param     string
	Op        Operator
	Column    string
	Predicate string
}

// FilterSpec is the ordered list of filter parameters an entity recognizes.
// Specs are built once at startup and read concurrently; they are never
// mutated after construction. Predicates are emitted in spec order so the
// compiled clause is deterministic regardless of map iteration.
//
// GTE/LTE values are coerced with strconv.ParseFloat in base 10; any value
// ParseFloat rejects fails the compile.
type FilterSpec []FilterField

// BuildWhereClause compiles the supplied raw parameters into a WHERE
// fragment. An empty parameter mapping returns (nil, nil), meaning no
// filtering was requested; callers skip the WHERE clause entirely rather
// than emit one with no predicates.
//
// Unknown parameter names are hard errors so a typo'd filter is never
// silently ignored. Recognized value-bearing parameters with an empty value
// are likewise errors. Nothing is partially compiled: any failure discards
// the whole clause.
func (s FilterSpec) BuildWhereClause(params map[string]string) (*CompiledClause, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for key := range params {
		if !s.recognizes(key) {
			return nil, apperrors.InvalidFilterParameter(key)
		}
	}

	var parts []string
	var args []interface{}
	idx := 1
	for _, f := range s {
		raw, ok := params[f.Param]
		if !ok {
			continue
		}

		switch f.Op {
		case OpPresence:
			parts = append(parts, f.Predicate)
		case OpContains:
			if raw == "" {
				return nil, apperrors.MissingFilterValue(f.Param)
			}
			parts = append(parts, fmt.Sprintf(`"%s" ILIKE $%d`, f.Column, idx))
			args = append(args, "%"+raw+"%")
			idx++
		case OpGTE, OpLTE:
			if raw == "" {
				return nil, apperrors.MissingFilterValue(f.Param)
			}
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q must be numeric", apperrors.ErrInvalidInput, f.Param)
			}
			op := ">="
			if f.Op == OpLTE {
				op = "<="
			}
			parts = append(parts, fmt.Sprintf(`"%s" %s $%d`, f.Column, op, idx))
			args = append(args, n)
			idx++
		}
	}

	return &CompiledClause{
		Clause: strings.Join(parts, " AND "),
		Args:   args,
	}, nil
}

func (s FilterSpec) recognizes(param string) bool {
	for _, f := range s {
		if f.Param == param {
			return true
		}
	}
	return false
}
