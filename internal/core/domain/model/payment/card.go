// Package payment contains the Payment record and its card instrument
// value object. Card details are captured and stored at checkout; no
// processor integration exists.
package payment

import (
	"errors"
	"fmt"
	"unicode"

	"dinedash/internal/pkg/errs"
	"dinedash/internal/pkg/guard"
)

// Method is the payment instrument kind.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// MethodCreditCard is a credit card payment.
	MethodCreditCard

	// MethodDebitCard is a debit card payment.
	MethodDebitCard
)

// ParseMethod maps the wire representation ("credit_card"/"debit_card") to
// a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "credit_card":
		return MethodCreditCard, nil
	case "debit_card":
		return MethodDebitCard, nil
	default:
		return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%q is not a known payment method", s))
	}
}

// Validate checks the Method is one of the defined instruments.
func (m Method) Validate() error {
	if m != MethodCreditCard && m != MethodDebitCard {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodCreditCard:
		return "credit_card"
	case MethodDebitCard:
		return "debit_card"
	default:
		return "unknown"
	}
}

const cardNumberLength = 16

// Expiration month and CVV length bounds.
const (
	expirationMonthMin = 1
	expirationMonthMax = 12
	cvvMinLength       = 3
	cvvMaxLength       = 4
)

// ErrCardIsNotConstructed is returned when validating a zero-value Card.
var ErrCardIsNotConstructed = errors.New("Card must be created via NewCard")

// Card is the stored payment instrument: method, cardholder, number,
// expiration, and CVV, with an optional billing address.
type Card struct { //nolint:recvcheck //pointer receivers used for construction-time setters
	method         Method
	cardholderName string
	billingAddress *string
	number         string
	expirationMonth int
	expirationYear  int
	cvv             string

	guard guard.ConstructorGuard
}

// NewCard creates a validated card instrument. The number must be exactly
// 16 digits, the expiration month within 1..12, and the CVV 3 or 4 digits.
func NewCard(
	method Method,
	cardholderName string,
	billingAddress *string,
	number string,
	expirationMonth, expirationYear int,
	cvv string,
) (Card, error) {
	card := Card{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		card.setMethod(method),
		card.setCardholderName(cardholderName),
		card.setNumber(number),
		card.setExpirationMonth(expirationMonth),
		card.setExpirationYear(expirationYear),
		card.setCVV(cvv),
	); err != nil {
		return Card{}, err
	}

	card.billingAddress = billingAddress
	return card, nil
}

// Validate reports whether the Card was created through NewCard.
func (c Card) Validate() error {
	return c.guard.Validate(ErrCardIsNotConstructed)
}

// Method returns the instrument kind.
func (c Card) Method() Method {
	return c.method
}

// CardholderName returns the full name on the card.
func (c Card) CardholderName() string {
	return c.cardholderName
}

// BillingAddress returns the optional billing address.
func (c Card) BillingAddress() *string {
	return c.billingAddress
}

// Number returns the card number.
func (c Card) Number() string {
	return c.number
}

// ExpirationMonth returns the expiration month (1-12).
func (c Card) ExpirationMonth() int {
	return c.expirationMonth
}

// ExpirationYear returns the expiration year.
func (c Card) ExpirationYear() int {
	return c.expirationYear
}

// CVV returns the card verification value.
func (c Card) CVV() string {
	return c.cvv
}

func (c *Card) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}

func (c *Card) setCardholderName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("cardholder name")
	}
	c.cardholderName = name
	return nil
}

func (c *Card) setNumber(number string) error {
	if len(number) != cardNumberLength || !isAllDigits(number) {
		return errs.NewValueIsInvalidErrorWithCause("card number",
			fmt.Errorf("card number must be %d digits", cardNumberLength))
	}
	c.number = number
	return nil
}

func (c *Card) setExpirationMonth(month int) error {
	if month < expirationMonthMin || month > expirationMonthMax {
		return errs.NewValueIsOutOfRangeError("expiration month", month, expirationMonthMin, expirationMonthMax)
	}
	c.expirationMonth = month
	return nil
}

func (c *Card) setExpirationYear(year int) error {
	if year <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("expiration year",
			fmt.Errorf("%d is not a valid year", year))
	}
	c.expirationYear = year
	return nil
}

func (c *Card) setCVV(cvv string) error {
	if len(cvv) < cvvMinLength || len(cvv) > cvvMaxLength || !isAllDigits(cvv) {
		return errs.NewValueIsInvalidErrorWithCause("cvv",
			fmt.Errorf("cvv must be %d or %d digits", cvvMinLength, cvvMaxLength))
	}
	c.cvv = cvv
	return nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
