package model

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func TestValidateContactRequest(t *testing.T) {
	err := Validate(CreateContactRequest{
		Name:    "Rahim",
		Email:   "not-an-email",
		Subject: "Visa processing",
		Message: "Need details on the Malaysia program.",
	})
	fields := fieldErrors(t, err)
	assert.Equal(t, "email", fields["email"])
	assert.Len(t, fields, 1)
}

func TestValidateUserRoleEnum(t *testing.T) {
	err := Validate(CreateUserRequest{
		Name:     "Ops",
		Email:    "ops@example.com",
		Password: "longenough",
		Role:     "owner",
	})
	fields := fieldErrors(t, err)
	assert.Equal(t, "oneof", fields["role"])
}

func TestValidateProductRequiredFields(t *testing.T) {
	err := Validate(CreateProductRequest{})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "description")
	assert.NotContains(t, fields, "origin")
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	// Multi-initial Go fields like JobID must surface under their wire
	// name, not a mangled casing of the struct field.
	err := Validate(JobApplication{Name: "Rahim", Email: "r@example.com", Phone: "0123"})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "jobId")
	assert.NotContains(t, fields, "JobID")
	assert.NotContains(t, fields, "jobID")
}

func TestValidateUpdateAllowsPartial(t *testing.T) {
	err := Validate(UpdateProductRequest{Name: "Jute bags"})
	assert.NoError(t, err)

	var verrs validator.ValidationErrors
	assert.False(t, errors.As(Validate(UpdateBlogRequest{}), &verrs))
}
