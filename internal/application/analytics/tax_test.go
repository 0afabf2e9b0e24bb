package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTaxRate(t *testing.T) {
	assert.True(t, TaxRate(true).Equal(decimal.RequireFromString("0.11")),
		"régimen reducido (ACRE) debe aplicar 11%")
	assert.True(t, TaxRate(false).Equal(decimal.RequireFromString("0.22")),
		"régimen general debe aplicar 22%")
}
