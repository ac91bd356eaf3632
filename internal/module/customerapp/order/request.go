package order

type GetManyOrderRequest struct {
	CustomerID int64 `validate:"required"`
}
