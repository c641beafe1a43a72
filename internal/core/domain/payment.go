package domain

import "github.com/govalues/decimal"

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CreditCard"
	PaymentMethodDebitCard    PaymentMethod = "DebitCard"
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodBankTransfer PaymentMethod = "BankTransfer"
	PaymentMethodApplePay     PaymentMethod = "ApplePay"
	PaymentMethodGooglePay    PaymentMethod = "GooglePay"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCash,
		PaymentMethodBankTransfer, PaymentMethodApplePay, PaymentMethodGooglePay:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusSuccess  PaymentStatus = "Success"
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusCanceled PaymentStatus = "Canceled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusSuccess, PaymentStatusPending, PaymentStatusFailed, PaymentStatusCanceled:
		return true
	}
	return false
}

// Payment references an order that existed when the payment was created.
// The reference is not re-checked afterwards.
type Payment struct {
	ID      int64
	OrderID int64
	Amount  decimal.Decimal
	Method  PaymentMethod
	Status  PaymentStatus
}
