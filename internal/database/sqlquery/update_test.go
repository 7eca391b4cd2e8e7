package sqlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joblyhq/jobly/internal/apperrors"
)

func TestBuildSetClause_EmptyFieldsFails(t *testing.T) {
	_, err := BuildSetClause(nil, map[string]string{"firstName": "first_name"}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = BuildSetClause(Fields{}, nil, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestBuildSetClause_PlaceholdersAlignWithSuppliedOrder(t *testing.T) {
	fields := Fields{
		{Name: "firstName", Value: "Ada"},
		{Name: "age", Value: float64(32)},
		{Name: "email", Value: "ada@example.com"},
	}

	compiled, err := BuildSetClause(fields, map[string]string{"firstName": "first_name"}, 1)
	require.NoError(t, err)

	assert.Equal(t, `"first_name" = $1, "age" = $2, "email" = $3`, compiled.Clause)
	assert.Equal(t, []interface{}{"Ada", float64(32), "ada@example.com"}, compiled.Args)
}

func TestBuildSetClause_UnmappedNamesPassThrough(t *testing.T) {
	fields := Fields{{Name: "logo_url", Value: "http://x/logo.png"}}

	compiled, err := BuildSetClause(fields, map[string]string{}, 1)
	require.NoError(t, err)
	assert.Equal(t, `"logo_url" = $1`, compiled.Clause)
}

func TestBuildSetClause_NullIsBoundNotSkipped(t *testing.T) {
	fields := Fields{
		{Name: "title", Value: "X"},
		{Name: "salary", Value: nil},
	}

	compiled, err := BuildSetClause(fields, map[string]string{"salary": "salary"}, 1)
	require.NoError(t, err)

	assert.Equal(t, `"title" = $1, "salary" = $2`, compiled.Clause)
	assert.Equal(t, []interface{}{"X", nil}, compiled.Args)
}

func TestBuildSetClause_FirstArgContinuesNumbering(t *testing.T) {
	fields := Fields{
		{Name: "name", Value: "Acme"},
		{Name: "numEmployees", Value: float64(10)},
	}

	compiled, err := BuildSetClause(fields, map[string]string{"numEmployees": "num_employees"}, 3)
	require.NoError(t, err)
	assert.Equal(t, `"name" = $3, "num_employees" = $4`, compiled.Clause)
}

func TestFieldsFromJSON_PreservesDocumentOrder(t *testing.T) {
	body := []byte(`{"title": "X", "salary": null, "equity": 0.05}`)

	fields, err := FieldsFromJSON(body)
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "title", fields[0].Name)
	assert.Equal(t, "X", fields[0].Value)
	assert.Equal(t, "salary", fields[1].Name)
	assert.Nil(t, fields[1].Value)
	assert.Equal(t, "equity", fields[2].Name)
	assert.Equal(t, 0.05, fields[2].Value)
}

func TestFieldsFromJSON_RejectsNonObjectBodies(t *testing.T) {
	for _, body := range []string{`[1, 2]`, `"text"`, `42`, `{"a": `} {
		_, err := FieldsFromJSON([]byte(body))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, "body: %s", body)
	}
}

func TestFieldsGet(t *testing.T) {
	fields := Fields{{Name: "password", Value: "secret"}}

	v, ok := fields.Get("password")
	assert.True(t, ok)
	assert.Equal(t, "secret", v)

	_, ok = fields.Get("email")
	assert.False(t, ok)
}
