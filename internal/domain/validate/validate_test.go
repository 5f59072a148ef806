package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

func (c color) Valid() bool { return c == "red" || c == "blue" }

type item struct {
	Qty int `json:"qty" validate:"gte=1"`
}

type sample struct {
	Name  string   `json:"name" validate:"required"`
	Email string   `json:"email" validate:"required,email"`
	Color color    `json:"color" validate:"required,enum"`
	Tint  *color   `json:"tint" validate:"omitempty,enum"`
	Price *float64 `json:"price" validate:"required,gte=0"`
	Items []item   `json:"items" validate:"required,min=1,dive"`
}

func ptr[T any](v T) *T { return &v }

func TestStructAcceptsValidInput(t *testing.T) {
	err := Struct(sample{
		Name:  "a",
		Email: "a@example.com",
		Color: "red",
		Price: ptr(0.0),
		Items: []item{{Qty: 1}},
	})
	assert.NoError(t, err)
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{
		Email: "not-an-email",
		Color: "green",
		Tint:  ptr(color("purple")),
		Price: ptr(-1.0),
		Items: []item{{Qty: 0}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))

	var verr *Error
	require.True(t, errors.As(err, &verr))
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "field required", fields["name"])
	assert.Equal(t, "value is not a valid email address", fields["email"])
	assert.Contains(t, fields["color"], `"green"`)
	assert.Contains(t, fields, "tint")
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "items[0].qty")
}

func TestStructRequiresPointerPresence(t *testing.T) {
	err := Struct(sample{Name: "a", Email: "a@example.com", Color: "blue", Items: []item{{Qty: 2}}})

	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "price", verr.Fields[0].Field)
}

func TestEnumeration(t *testing.T) {
	assert.NoError(t, Enumeration("color", color("blue")))

	err := Enumeration("color", color("teal"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "color")
}

func TestEmailLowercasesDomainOnly(t *testing.T) {
	cases := map[string]string{
		"fan@example.com":         "fan@example.com",
		"fan@EXAMPLE.com":         "fan@example.com",
		"  Fan.Club@Example.Org ": "Fan.Club@example.org",
		`"a@b"@Host.IO`:           `"a@b"@host.io`,
		"no-at-sign":              "no-at-sign",
	}
	for in, want := range cases {
		assert.Equal(t, want, Email(in), in)
	}
}
