package domain_test

import (
	"testing"

	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalCost(t *testing.T) {
	articles := []*domain.Article{
		{ID: 1, Name: "Coffee", Price: decimal.MustParse("3.99")},
		{ID: 2, Name: "Tea", Price: decimal.MustParse("4.99")},
		{ID: 3, Name: "Cookie", Price: decimal.MustParse("0.125")},
	}

	tests := []struct {
		name  string
		lines []domain.OrderLine
		exp   string
	}{
		{
			name: "two lines",
			lines: []domain.OrderLine{
				{ArticleID: 1, Quantity: 2},
				{ArticleID: 2, Quantity: 3},
			},
			exp: "22.95",
		},
		{
			name:  "no lines",
			lines: nil,
			exp:   "0",
		},
		{
			name: "zero quantity",
			lines: []domain.OrderLine{
				{ArticleID: 1, Quantity: 0},
			},
			exp: "0.00",
		},
		{
			name: "missing article is skipped",
			lines: []domain.OrderLine{
				{ArticleID: 1, Quantity: 1},
				{ArticleID: 42, Quantity: 10},
			},
			exp: "3.99",
		},
		{
			name: "rounded half to even",
			lines: []domain.OrderLine{
				{ArticleID: 3, Quantity: 1},
			},
			exp: "0.12",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			total, err := domain.TotalCost(test.lines, articles)
			require.NoError(t, err)
			assert.Zero(t, decimal.MustParse(test.exp).Cmp(total), "got %s, want %s", total, test.exp)
			assert.LessOrEqual(t, total.Scale(), 2)
		})
	}
}

func TestOrder_ArticleIDs(t *testing.T) {
	o := domain.Order{Lines: []domain.OrderLine{
		{ArticleID: 3}, {ArticleID: 1}, {ArticleID: 3},
	}}
	assert.Equal(t, []int64{3, 1}, o.ArticleIDs())

	empty := domain.Order{}
	assert.Empty(t, empty.ArticleIDs())
}

func TestStatuses_Valid(t *testing.T) {
	for _, s := range []domain.OrderStatus{
		domain.OrderStatusComplete, domain.OrderStatusFailed, domain.OrderStatusOpen,
		domain.OrderStatusActive, domain.OrderStatusCanceled,
	} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, domain.OrderStatus("").Valid())
	assert.False(t, domain.OrderStatus("open").Valid())

	for _, m := range []domain.PaymentMethod{
		domain.PaymentMethodCreditCard, domain.PaymentMethodDebitCard, domain.PaymentMethodCash,
		domain.PaymentMethodBankTransfer, domain.PaymentMethodApplePay, domain.PaymentMethodGooglePay,
	} {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, domain.PaymentMethod("Bitcoin").Valid())

	for _, s := range []domain.PaymentStatus{
		domain.PaymentStatusSuccess, domain.PaymentStatusPending,
		domain.PaymentStatusFailed, domain.PaymentStatusCanceled,
	} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, domain.PaymentStatus("").Valid())
}

func TestValidationError(t *testing.T) {
	err := &domain.ValidationError{
		Request: "IDRequest",
		Violations: []domain.Violation{
			{Field: "IDRequest.ID", Rule: "gt", Message: "The Id must be greater than zero."},
		},
	}
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Validation failed for IDRequest: The Id must be greater than zero.", err.Error())
}
