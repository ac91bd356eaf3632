package training

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pixfil/onm-formation/internal/module/customerapp/order"
	"github.com/pixfil/onm-formation/internal/pkg/session"
)

type TrainingUseCase interface {
	GetManyOccurrence(ctx context.Context) (GetManyOccurrenceResponse, error)
	GetBadge(ctx context.Context) (GetBadgeResponse, error)
}

type trainingUseCase struct {
	logger          *logrus.Logger
	timeout         time.Duration
	badgePhrases    []string
	orderRepository order.OrderRepository
	itemRepository  order.ItemRepository
}

type TrainingUseCaseProperty struct {
	Logger          *logrus.Logger
	Timeout         time.Duration
	BadgePhrases    []string
	OrderRepository order.OrderRepository
	ItemRepository  order.ItemRepository
}

func NewTrainingUseCase(props TrainingUseCaseProperty) TrainingUseCase {
	badgePhrases := props.BadgePhrases
	if len(badgePhrases) == 0 {
		badgePhrases = FoundationalLevelPhrases
	}

	return &trainingUseCase{
		logger:          props.Logger,
		timeout:         props.Timeout,
		badgePhrases:    badgePhrases,
		orderRepository: props.OrderRepository,
		itemRepository:  props.ItemRepository,
	}
}

func (u *trainingUseCase) listOccurrencesForCustomer(ctx context.Context, customerID int64) ([]Occurrence, error) {
	orders, err := u.orderRepository.FindManyByCustomerID(ctx, customerID, nil)
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

	return ListOccurrences(orders, time.Now())
}

// GetManyOccurrence implements TrainingUseCase.
func (u *trainingUseCase) GetManyOccurrence(ctx context.Context) (GetManyOccurrenceResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	acc, err := session.GetAccountFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	occurrences, err := u.listOccurrencesForCustomer(ctx, acc.ID)
	if err != nil {
		return nil, err
	}

	resp := make(GetManyOccurrenceResponse, len(occurrences))
	for k, occ := range occurrences {
		resp[k].PopulateFromEntity(occ)
	}

	return resp, nil
}

// GetBadge implements TrainingUseCase.
func (u *trainingUseCase) GetBadge(ctx context.Context) (GetBadgeResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	acc, err := session.GetAccountFromCtx(ctx)
	if err != nil {
		return GetBadgeResponse{}, err
	}

	occurrences, err := u.listOccurrencesForCustomer(ctx, acc.ID)
	if err != nil {
		return GetBadgeResponse{}, err
	}

	return GetBadgeResponse{
		Qualified: QualifiesForBadgeWithPhrases(occurrences, u.badgePhrases),
	}, nil
}
