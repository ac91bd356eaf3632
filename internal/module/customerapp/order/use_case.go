package order

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pixfil/onm-formation/pkg/pubsub"
)

type OrderUseCase interface {
	OnPaymentNotification(ctx context.Context, e PaymentNotificationEvent) error
	GetManyOrder(ctx context.Context, req GetManyOrderRequest) (GetManyOrderResponse, error)
}

type orderUseCase struct {
	logger          *logrus.Logger
	timeout         time.Duration
	orderRepository OrderRepository
	itemRepository  ItemRepository
	publisher       pubsub.Publisher
}

type OrderUseCaseProperty struct {
	Logger          *logrus.Logger
	Timeout         time.Duration
	OrderRepository OrderRepository
	ItemRepository  ItemRepository
	Publisher       pubsub.Publisher
}

func NewOrderUseCase(props OrderUseCaseProperty) OrderUseCase {
	return &orderUseCase{
		logger:          props.Logger,
		timeout:         props.Timeout,
		orderRepository: props.OrderRepository,
		itemRepository:  props.ItemRepository,
		publisher:       props.Publisher,
	}
}

// OnPaymentNotification implements OrderUseCase. It is the only writer of
// payment_status, the gateway webhook drives it.
func (u *orderUseCase) OnPaymentNotification(ctx context.Context, e PaymentNotificationEvent) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	if e.TransactionStatus != "settlement" {
		return nil
	}

	tx, err := u.orderRepository.BeginTx(ctx)
	if err != nil {
		return err
	}

	order, err := u.orderRepository.FindByID(ctx, e.OrderID, tx)
	if err != nil {
		u.orderRepository.Rollback(ctx, tx)
		return err
	}

	if order.PaymentStatus == PaymentStatusPaid {
		u.orderRepository.Rollback(ctx, tx)
		return nil
	}

	items, err := u.itemRepository.FindManyByOrderID(ctx, e.OrderID, tx)
	if err != nil {
		u.orderRepository.Rollback(ctx, tx)
		return err
	}

	order.Items = items
	order.Status = StatusConfirmed
	order.PaymentStatus = PaymentStatusPaid
	order.TransactionID = &e.TransactionID
	order.UpdatedAt = time.Now()

	if err := u.orderRepository.Update(ctx, order.ID, order, tx); err != nil {
		u.orderRepository.Rollback(ctx, tx)
		return err
	}

	if err := u.orderRepository.CommitTx(ctx, tx); err != nil {
		return err
	}

	orderBuff, _ := json.Marshal(order)
	u.publisher.Publish(ctx, "order-paid", order.ID, nil, orderBuff)

	return nil
}

// GetManyOrder implements OrderUseCase.
func (u *orderUseCase) GetManyOrder(ctx context.Context, req GetManyOrderRequest) (GetManyOrderResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	orders, err := u.orderRepository.FindManyByCustomerID(ctx, req.CustomerID, nil)
	if err != nil {
		return nil, err
	}

	for k := range orders {
		items, err := u.itemRepository.FindManyByOrderID(ctx, orders[k].ID, nil)
		if err != nil {
			return nil, err
		}
		orders[k].Items = items
	}

	resp := make(GetManyOrderResponse, len(orders))
	for k, o := range orders {
		resp[k].PopulateFromEntity(o)
	}

	return resp, nil
}
