package enums

import "fmt"

// PaymentMethod identifies how a renter settles an order.
type PaymentMethod string

const (
	PaymentMethodBankTransferManual PaymentMethod = "BANK_TRANSFER_MANUAL"
	PaymentMethodCashOnPickup       PaymentMethod = "CASH_ON_PICKUP"
	PaymentMethodEWallet            PaymentMethod = "E_WALLET"
	PaymentMethodQRIS               PaymentMethod = "QRIS"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodBankTransferManual,
	PaymentMethodCashOnPickup,
	PaymentMethodEWallet,
	PaymentMethodQRIS,
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
