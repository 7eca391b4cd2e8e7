// Package sqlquery compiles caller-supplied field and filter mappings into
// parameterized SQL fragments with 1-based, contiguous, order-sensitive
// placeholders, as required by lib/pq. Compiled clauses are request-local:
// they are built per call, executed once, and discarded.
package sqlquery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joblyhq/jobly/internal/apperrors"
)

// Field is one logical field supplied by the caller. Fields keep the order
// in which the caller supplied them; placeholder indices and the value list
// are aligned to that order.
type Field struct {
	Name  string
	Value interface{}
}

// Fields is an ordered partial-update payload.
type Fields []Field

// Get returns the value for name and whether it was supplied.
func (f Fields) Get(name string) (interface{}, bool) {
	for _, fld := range f {
		if fld.Name == name {
			return fld.Value, true
		}
	}
	return nil, false
}

// FieldsFromJSON decodes a top-level JSON object into Fields, preserving the
// key order of the document. A plain map would lose that order and with it
// the positional alignment between placeholders and values.
func FieldsFromJSON(body []byte) (Fields, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed request body", apperrors.ErrInvalidInput)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: request body must be a JSON object", apperrors.ErrInvalidInput)
	}

	var fields Fields
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed request body", apperrors.ErrInvalidInput)
		}
		key := keyTok.(string)

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: malformed value for %q", apperrors.ErrInvalidInput, key)
		}
		fields = append(fields, Field{Name: key, Value: normalize(value)})
	}

	return fields, nil
}

// normalize converts json.Number leaves to float64 so bound values carry the
// types the driver expects. Nested containers are normalized recursively.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	case []interface{}:
		for i := range t {
			t[i] = normalize(t[i])
		}
		return t
	case map[string]interface{}:
		for k := range t {
			t[k] = normalize(t[k])
		}
		return t
	default:
		return v
	}
}

// CompiledClause is the output of a compiler: clause text plus an ordered
// value list positionally aligned with the clause's placeholders.
type CompiledClause struct {
	Clause string
	Args   []interface{}
}

// BuildSetClause compiles a partial update into a SET fragment. Logical field
// names are translated through columns; names without a mapping pass through
// unchanged. Explicit nulls are bound as SQL nulls, not skipped. Placeholders
// start at firstArg and run contiguously in supplied order.
func BuildSetClause(fields Fields, columns map[string]string, firstArg int) (*CompiledClause, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no data supplied for update", apperrors.ErrInvalidInput)
	}

	parts := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields))
	for i, f := range fields {
		col, ok := columns[f.Name]
		if !ok {
			col = f.Name
		}
		parts = append(parts, fmt.Sprintf(`"%s" = $%d`, col, firstArg+i))
		args = append(args, f.Value)
	}

	return &CompiledClause{
		Clause: strings.Join(parts, ", "),
		Args:   args,
	}, nil
}
