package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-patient",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sex":  map[string]any{"type": "string", "enum": []any{"male", "female"}},
				"days": map[string]any{"type": "integer", "minimum": 0, "maximum": 185},
			},
			"required": []any{"sex"},
		},
	}
}

func TestJSON_Valid(t *testing.T) {
	require.NoError(t, JSON(testSchema(), []byte(`{"sex":"female","days":3}`)))
}

func TestJSON_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"days":3}`},
		{"wrong type", `{"sex":"male","days":"three"}`},
		{"out of range", `{"sex":"male","days":400}`},
		{"bad enum", `{"sex":"other"}`},
		{"malformed", `{not json}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := JSON(testSchema(), []byte(tt.raw))
			require.Error(t, err)

			var invErr *ErrInvalidDocument
			require.True(t, errors.As(err, &invErr), "expected ErrInvalidDocument, got %T", err)
			assert.Equal(t, "test-patient", invErr.Schema)
		})
	}
}

func TestJSON_NilSchema(t *testing.T) {
	assert.NoError(t, JSON(nil, []byte(`{"anything":"goes"}`)))
}

func TestValue_UsesCache(t *testing.T) {
	s := testSchema()
	require.NoError(t, Value(s, map[string]any{"sex": "male"}))

	_, ok := schemaCache.Load(s.Name)
	assert.True(t, ok, "compiled schema should be cached")
}
