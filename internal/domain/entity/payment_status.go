// Package entity contains the core business objects of the project.
package entity

// PaymentStatus represents the payment state of an order.
type PaymentStatus string

const (
	// PaymentStatusUnpaid means nothing has been paid; amount paid is 0.
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	// PaymentStatusPartiallyPaid means a user-supplied amount has been paid.
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	// PaymentStatusPaid means the order is settled; amount paid equals the final total.
	PaymentStatusPaid PaymentStatus = "paid"
)

// String returns the string representation of the PaymentStatus.
func (p PaymentStatus) String() string {
	return string(p)
}

// IsValid checks if the PaymentStatus is a valid value.
func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentStatusUnpaid, PaymentStatusPartiallyPaid, PaymentStatusPaid:
		return true
	default:
		return false
	}
}
