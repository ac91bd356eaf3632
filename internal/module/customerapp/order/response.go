package order

import "time"

type GetManyOrderResponse []OrderResponse

type OrderResponse struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"payment_status"`
	TransactionID *string        `json:"transaction_id"`
	CustomerID    int64          `json:"customer_id"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	Items         []ItemResponse `json:"items"`
	Subtotal      float64        `json:"subtotal"`
	TotalAmount   float64        `json:"total_amount"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type ItemResponse struct {
	ID             int64      `json:"id"`
	OrderID        string     `json:"order_id"`
	SessionID      string     `json:"session_id"`
	FormationTitle string     `json:"formation_title"`
	Price          float64    `json:"price"`
	Quantity       int64      `json:"quantity"`
	CancelledAt    *time.Time `json:"cancelled_at"`
}

func (r *OrderResponse) PopulateFromEntity(o Order) {
	r.ID = o.ID
	r.Status = o.Status
	r.PaymentStatus = o.PaymentStatus
	r.TransactionID = o.TransactionID
	r.CustomerID = o.CustomerID
	r.CustomerName = o.CustomerName
	r.CustomerEmail = o.CustomerEmail
	r.Subtotal = o.Subtotal
	r.TotalAmount = o.TotalAmount
	r.CreatedAt = o.CreatedAt
	r.UpdatedAt = o.UpdatedAt

	itemsResponse := make([]ItemResponse, len(o.Items))
	for k, v := range o.Items {
		itemsResponse[k] = ItemResponse{
			ID:             v.ID,
			OrderID:        v.OrderID,
			SessionID:      v.SessionID,
			FormationTitle: v.FormationTitle,
			Price:          v.Price,
			Quantity:       v.Quantity,
			CancelledAt:    v.CancelledAt,
		}
	}
	r.Items = itemsResponse
}
