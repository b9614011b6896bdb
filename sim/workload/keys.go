package workload

import (
	"fmt"
	"strconv"
	"strings"
)

// UnconfirmedTypeKey is the fixed status key the order-payment transaction
// writes: the payment row is persisted in an unconfirmed state before the
// gateway confirms it.
const UnconfirmedTypeKey = "unconfirmed type"

// key formats an entity key from a name and integer identifier: "cart(30)".
func key(name string, id int) string {
	return fmt.Sprintf("%s(%d)", name, id)
}

// qualifiedKey nests a qualifier under an entity key: "detail(57)/rating(3)".
func qualifiedKey(name string, id int, qualifier string, qualifierID int) string {
	return key(name, id) + "/" + key(qualifier, qualifierID)
}

// amountKey formats a monetary amount key: "amount(221.4)".
func amountKey(amount float64) string {
	return "amount(" + formatAmount(amount) + ")"
}

// formatAmount renders a cents-rounded amount with minimal digits, keeping a
// trailing ".0" on integral values ("221.4", "134.06", "200.0"). This is the
// number form downstream trace parsers expect inside amount keys.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// OrderPaymentKey identifies the join row linking an order to a customer
// payment. It renders as a parenthesized pair: "orderPayment((162, 457))".
type OrderPaymentKey struct {
	OrderID   int
	PaymentID int
}

func (k OrderPaymentKey) String() string {
	return fmt.Sprintf("orderPayment((%d, %d))", k.OrderID, k.PaymentID)
}
