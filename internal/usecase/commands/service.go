package commands

import (
	"context"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/domain/service"
	reqdto "stable-booking-api/internal/handler/dto/request"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/pkg/errs"
	"stable-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceCommands interface {
	Create(ctx context.Context, req reqdto.CreateServiceRequest, adminID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, serviceID uuid.UUID, req reqdto.UpdateServiceRequest) error
	SetActive(ctx context.Context, serviceID uuid.UUID, active bool) error
}

type serviceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewServiceCommands(uow shared.UnitOfWork) ServiceCommands {
	return &serviceCommandsImpl{uow: uow}
}

func (s *serviceCommandsImpl) Create(ctx context.Context, req reqdto.CreateServiceRequest, adminID uuid.UUID) (uuid.UUID, error) {
	svc, err := service.New(req.Name, req.Description, req.PricePence, req.Duration, adminID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().Create(ctx, svc)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return svc.ID(), nil
}

func (s *serviceCommandsImpl) Update(ctx context.Context, serviceID uuid.UUID, req reqdto.UpdateServiceRequest) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().ServiceByID(ctx, serviceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrServiceNotFound)
			}
			return err
		}

		price, err := booking.NewMoney(snapshot.PricePence)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		svc := service.Reconstruct(
			snapshot.ID, snapshot.Name, snapshot.Description, price,
			snapshot.DurationMinutes, snapshot.Active, snapshot.CreatedBy, snapshot.CreatedAt,
		)

		if err := svc.Rename(req.Name, req.Description, req.PricePence, req.Duration); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		updated, err := tx.Services().Update(ctx, svc)
		if err != nil {
			return err
		}
		if !updated {
			return ErrServiceNotFound
		}
		return nil
	})
}

func (s *serviceCommandsImpl) SetActive(ctx context.Context, serviceID uuid.UUID, active bool) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, err := tx.Services().SetActive(ctx, serviceID, active)
		if err != nil {
			return err
		}
		if !updated {
			return ErrServiceNotFound
		}
		return nil
	})
}
