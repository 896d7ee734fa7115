package payment

import (
	"strings"

	"commerce/internal/pkg/errs"
)

// Method is the payment instrument used for a payment.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	MethodCreditCard
	MethodBankTransfer
	MethodPaypal
	MethodCash
	MethodCheque
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:      "Unknown",
		MethodCreditCard:   "CreditCard",
		MethodBankTransfer: "BankTransfer",
		MethodPaypal:       "Paypal",
		MethodCash:         "Cash",
		MethodCheque:       "Cheque",
	}
}

// MethodFromString parses a payment method name case-insensitively.
func MethodFromString(s string) (Method, error) {
	for method, name := range getMethodStrings() {
		if method != MethodUnknown && strings.EqualFold(name, s) {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidError("method: " + s)
}

// Validate checks that the Method is one of the defined payment methods.
func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok || m == MethodUnknown {
		return errs.NewValueIsInvalidError("method")
	}
	return nil
}

// String returns the human-readable name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
