package validation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestValidateRequired(t *testing.T) {
	schema := &Schema{
		Body: Section{Rules: []Rule{
			{Field: "name", Required: true},
			{Field: "description"},
		}},
	}

	violations := Validate(schema, Source{}, nil, nil)
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].Field)

	violations = Validate(schema, Source{"name": "Laptop"}, nil, nil)
	assert.Empty(t, violations)
}

func TestValidateNumberBounds(t *testing.T) {
	schema := &Schema{
		Body: Section{Rules: []Rule{
			{Field: "discount", Required: true, Type: Number, Min: floatPtr(0), Max: floatPtr(75)},
		}},
	}

	assert.Empty(t, Validate(schema, Source{"discount": 75.0}, nil, nil))
	assert.Empty(t, Validate(schema, Source{"discount": 0.0}, nil, nil))

	violations := Validate(schema, Source{"discount": 80.0}, nil, nil)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "less than or equal to 75")

	violations = Validate(schema, Source{"discount": -1.0}, nil, nil)
	require.Len(t, violations, 1)

	violations = Validate(schema, Source{"discount": "abc"}, nil, nil)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "must be a number")
}

func TestValidateNumberFromQueryString(t *testing.T) {
	// Query parameters arrive as strings and must still bound-check.
	schema := &Schema{
		Query: Section{Rules: []Rule{
			{Field: "limit", Type: Number, Min: floatPtr(0)},
		}},
	}

	assert.Empty(t, Validate(schema, nil, Source{"limit": "10"}, nil))
	assert.Len(t, Validate(schema, nil, Source{"limit": "-1"}, nil), 1)
	assert.Len(t, Validate(schema, nil, Source{"limit": "ten"}, nil), 1)
}

func TestValidateUUID(t *testing.T) {
	schema := &Schema{
		Params: Section{Rules: []Rule{
			{Field: "id", Required: true, Type: UUID},
		}},
	}

	assert.Empty(t, Validate(schema, nil, nil, Source{"id": "7b9f1c7e-26a5-4a3f-9c2c-9a8f26a3a111"}))

	violations := Validate(schema, nil, nil, Source{"id": "not-a-uuid"})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "not a valid identifier")
}

func TestValidatePattern(t *testing.T) {
	schema := &Schema{
		Body: Section{Rules: []Rule{
			{Field: "email", Required: true, Pattern: regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)},
		}},
	}

	assert.Empty(t, Validate(schema, Source{"email": "a@b.com"}, nil, nil))
	assert.Len(t, Validate(schema, Source{"email": "nope"}, nil, nil), 1)
}

func TestValidateStringLength(t *testing.T) {
	schema := &Schema{
		Body: Section{Rules: []Rule{
			{Field: "password", Required: true, MinLen: 3, MaxLen: 31},
		}},
	}

	assert.Empty(t, Validate(schema, Source{"password": "secret"}, nil, nil))
	assert.Len(t, Validate(schema, Source{"password": "ab"}, nil, nil), 1)
}

func TestRangePair(t *testing.T) {
	schema := &Schema{
		Query: Section{
			Rules: []Rule{
				{Field: "priceStart", Type: Number},
				{Field: "priceEnd", Type: Number},
			},
			Checks: []CrossCheck{RangePair("priceStart", "priceEnd")},
		},
	}

	assert.Empty(t, Validate(schema, nil, Source{"priceStart": "10", "priceEnd": "20"}, nil))
	// Open bounds are fine on either side.
	assert.Empty(t, Validate(schema, nil, Source{"priceStart": "10"}, nil))
	assert.Empty(t, Validate(schema, nil, Source{"priceEnd": "20"}, nil))

	violations := Validate(schema, nil, Source{"priceStart": "30", "priceEnd": "20"}, nil)
	require.Len(t, violations, 1)
	assert.Equal(t, "priceStart", violations[0].Field)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	schema := &Schema{
		Body: Section{Rules: []Rule{
			{Field: "name", Required: true},
			{Field: "price", Required: true, Type: Number},
			{Field: "img", Required: true},
		}},
	}

	violations := Validate(schema, Source{}, nil, nil)
	assert.Len(t, violations, 3)
}

func TestValidateAbortEarly(t *testing.T) {
	schema := &Schema{
		Body: Section{Rules: []Rule{
			{Field: "name", Required: true},
			{Field: "price", Required: true, Type: Number},
		}},
		AbortEarly: true,
	}

	violations := Validate(schema, Source{}, nil, nil)
	assert.Len(t, violations, 1)
}

func TestPartial(t *testing.T) {
	schema := &Schema{
		Body: Section{Rules: []Rule{
			{Field: "name", Required: true},
			{Field: "discount", Required: true, Type: Number, Max: floatPtr(75)},
		}},
	}
	partial := schema.Partial()

	// Absent fields are no longer required.
	assert.Empty(t, Validate(partial, Source{}, nil, nil))
	// Present fields keep their creation constraints.
	assert.Len(t, Validate(partial, Source{"discount": 80.0}, nil, nil), 1)
	// The original schema is untouched.
	assert.Len(t, Validate(schema, Source{}, nil, nil), 2)
}

func TestViolationsMessages(t *testing.T) {
	v := Violations{{Field: "a", Message: "first"}, {Field: "b", Message: "second"}}
	assert.Equal(t, []string{"first", "second"}, v.Messages())
	assert.Equal(t, "first", v.First())
	assert.Equal(t, "", Violations{}.First())
}
