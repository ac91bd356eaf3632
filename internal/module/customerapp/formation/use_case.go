package formation

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type FormationUseCase interface {
	GetFormation(ctx context.Context, ID string) (GetFormationResponse, error)
}

type formationUseCase struct {
	logger              *logrus.Logger
	timeout             time.Duration
	formationRepository FormationRepository
	sessionRepository   SessionRepository
}

type FormationUseCaseProperty struct {
	Logger              *logrus.Logger
	Timeout             time.Duration
	FormationRepository FormationRepository
	SessionRepository   SessionRepository
}

func NewFormationUseCase(props FormationUseCaseProperty) FormationUseCase {
	return &formationUseCase{
		logger:              props.Logger,
		timeout:             props.Timeout,
		formationRepository: props.FormationRepository,
		sessionRepository:   props.SessionRepository,
	}
}

// GetFormation implements FormationUseCase. It returns the formation with its
// scheduled sessions, the catalog page consumes it.
func (u *formationUseCase) GetFormation(ctx context.Context, ID string) (GetFormationResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	f, err := u.formationRepository.FindByID(ctx, ID, nil)
	if err != nil {
		return GetFormationResponse{}, err
	}

	sessions, err := u.sessionRepository.FindManyByFormationID(ctx, ID, nil)
	if err != nil {
		return GetFormationResponse{}, err
	}

	resp := GetFormationResponse{}
	resp.PopulateFromEntity(f, sessions)

	return resp, nil
}
