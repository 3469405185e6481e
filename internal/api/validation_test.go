package api

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentBody struct {
	MemberID    string `validate:"required"`
	AmountCents int64  `validate:"required,gt=0"`
	Method      string `validate:"required,oneof=cash gcash"`
}

func TestValidationErrors(t *testing.T) {
	err := validator.New().Struct(paymentBody{AmountCents: 100, Method: "card"})
	require.Error(t, err)

	details := ValidationErrors(err)
	require.Len(t, details, 2)

	assert.Equal(t, "MemberID", details[0].Field)
	assert.Equal(t, "required", details[0].Tag)
	assert.Equal(t, "MemberID is required", details[0].Message)

	assert.Equal(t, "Method", details[1].Field)
	assert.Equal(t, "oneof", details[1].Tag)
	assert.Equal(t, "Method must be one of: cash, gcash", details[1].Message)
}

func TestValidationErrors_NotValidation(t *testing.T) {
	assert.Nil(t, ValidationErrors(errors.New("unexpected EOF")))
	assert.Nil(t, ValidationErrors(nil))
}

func TestBindError(t *testing.T) {
	err := validator.New().Struct(paymentBody{MemberID: "m-1", AmountCents: -1, Method: "cash"})

	resp := BindError(err)
	assert.Equal(t, "validation failed", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "AmountCents must be greater than 0", resp.Details[0].Message)

	resp = BindError(errors.New("invalid character"))
	assert.Equal(t, "invalid request body", resp.Error)
	assert.Empty(t, resp.Details)
}
