package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateOneOf(t *testing.T) {
	allowed := []string{"income", "expense"}

	assert.NoError(t, validateOneOf("type", "income", allowed))
	assert.NoError(t, validateOneOf("type", "expense", allowed))

	err := validateOneOf("type", "transfer", allowed)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "type must be one of: income, expense", vErr.Error())

	assert.Error(t, validateOneOf("type", "", allowed))
	assert.Error(t, validateOneOf("type", "Income", allowed), "tokens are case sensitive")
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, validateRequired("category", "food"))

	err := validateRequired("category", "")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "category is required", vErr.Error())
}

func TestValidateNonNegative(t *testing.T) {
	assert.NoError(t, validateNonNegative("amount", decimal.Zero))
	assert.NoError(t, validateNonNegative("amount", decimal.RequireFromString("42.5")))

	err := validateNonNegative("amount", decimal.RequireFromString("-0.01"))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "amount must be non-negative", vErr.Error())
}
