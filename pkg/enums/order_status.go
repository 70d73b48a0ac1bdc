package enums

import "fmt"

// OrderStatus tracks the lifecycle of a rental order.
type OrderStatus string

const (
	OrderStatusPendingReview OrderStatus = "PENDING_REVIEW"
	OrderStatusApproved      OrderStatus = "APPROVED"
	OrderStatusPaid          OrderStatus = "PAID"
	OrderStatusActive        OrderStatus = "ACTIVE"
	OrderStatusCompleted     OrderStatus = "COMPLETED"
	OrderStatusCanceled      OrderStatus = "CANCELED"
	OrderStatusRejected      OrderStatus = "REJECTED"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPendingReview,
	OrderStatusApproved,
	OrderStatusPaid,
	OrderStatusActive,
	OrderStatusCompleted,
	OrderStatusCanceled,
	OrderStatusRejected,
}

// NonBlockingOrderStatuses are the terminal statuses that release a vehicle's
// dates. Everything else, including a fresh PENDING_REVIEW, reserves the
// window: the first request to hold a slot wins it.
var NonBlockingOrderStatuses = []OrderStatus{
	OrderStatusCanceled,
	OrderStatusRejected,
	OrderStatusCompleted,
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// Blocks reports whether an order in this status keeps its vehicle
// unavailable for the order's date range.
func (s OrderStatus) Blocks() bool {
	for _, candidate := range NonBlockingOrderStatuses {
		if candidate == s {
			return false
		}
	}
	return true
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
