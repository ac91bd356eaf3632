package order

import (
	"time"

	"github.com/pixfil/onm-formation/internal/module/customerapp/formation"
)

const (
	StatusWaitingForPayment string = "WAITING_FOR_PAYMENT"
	StatusConfirmed         string = "CONFIRMED"
	StatusCompleted         string = "COMPLETED"
	StatusCancelled         string = "CANCELLED"
	StatusExpired           string = "EXPIRED"

	PaymentStatusWaiting string = "WAITING"
	PaymentStatusPaid    string = "PAID"
	PaymentStatusFailed  string = "FAILED"
)

type Order struct {
	ID            string
	Status        string
	PaymentStatus string
	TransactionID *string
	CustomerID    int64
	CustomerName  string
	CustomerEmail string
	Items         []Item
	Subtotal      float64
	TotalAmount   float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Item struct {
	ID             int64
	OrderID        string
	SessionID      string
	FormationTitle string
	Price          float64
	Quantity       int64
	CancelledAt    *time.Time
	// Session is nil when the referenced session row could not be resolved,
	// such items are skipped by the occurrence aggregation.
	Session *formation.Session
}
