package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string `json:"name" validate:"required,max=10"`
	Email  string `json:"email" validate:"omitempty,email"`
	Tag    string `json:"tag" validate:"omitempty,customer_tag"`
	Status string `json:"status" validate:"omitempty,task_status"`
	Slug   string `query:"slug" validate:"omitempty,product_slug"`
}

func TestValidator_CustomRules(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(sampleRequest{Name: "Acme", Tag: "vip", Status: "done", Slug: "blue-mug"}))

	err := v.Struct(sampleRequest{Name: "Acme", Tag: "gold", Status: "pending", Slug: "Blue Mug"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "must be one of: lead prospect customer vip", fields["tag"])
	assert.Equal(t, "must be open or done", fields["status"])
	assert.Contains(t, fields, "slug")
}

func TestFieldErrors_UsesJSONNames(t *testing.T) {
	err := NewValidator().Struct(sampleRequest{Email: "not-an-email"})

	fields := FieldErrors(err)

	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}

func TestGetValidator_Shared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
