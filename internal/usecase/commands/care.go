package commands

import (
	"context"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/domain/care"
	"stable-booking-api/internal/domain/service"
	reqdto "stable-booking-api/internal/handler/dto/request"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/pkg/errs"
	"stable-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.New("service not found")

type CareCommands interface {
	Submit(ctx context.Context, req reqdto.CreateCareBookingRequest, userID uuid.UUID) (uuid.UUID, error)
	SubmitProxy(ctx context.Context, req reqdto.ProxyCareBookingRequest, adminID uuid.UUID) (uuid.UUID, error)
}

type careCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *care.Factory
}

func NewCareCommands(uow shared.UnitOfWork, factory *care.Factory) CareCommands {
	return &careCommandsImpl{
		uow:     uow,
		factory: factory,
	}
}

func (c *careCommandsImpl) Submit(ctx context.Context, req reqdto.CreateCareBookingRequest, userID uuid.UUID) (uuid.UUID, error) {
	snapshot, err := c.uow.Reads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrUserNotFound)
		}
		return uuid.Nil, err
	}
	if !snapshot.CanBook() {
		return uuid.Nil, ErrAccountNotActive
	}

	return c.create(ctx, req.ServiceID, req.HorseName, req.Date,
		booking.NewAccountRequester(userID), nil)
}

func (c *careCommandsImpl) SubmitProxy(ctx context.Context, req reqdto.ProxyCareBookingRequest, adminID uuid.UUID) (uuid.UUID, error) {
	requester, err := resolveRequester(ctx, c.uow.Reads(), req.UserID, req.CustomerName, req.CustomerPhone)
	if err != nil {
		return uuid.Nil, err
	}

	return c.create(ctx, req.ServiceID, req.HorseName, req.Date, requester, &adminID)
}

func (c *careCommandsImpl) create(ctx context.Context, serviceID uuid.UUID, horseName, dateStr string, requester booking.Requester, adminID *uuid.UUID) (uuid.UUID, error) {
	svc, err := c.loadService(ctx, serviceID)
	if err != nil {
		return uuid.Nil, err
	}

	date, err := booking.ParseDate(dateStr)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var b *care.Booking
	if adminID != nil {
		b, err = c.factory.NewApproved(svc, horseName, date, requester, *adminID)
	} else {
		b, err = c.factory.NewRequest(svc, horseName, date, requester)
	}
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CareBookings().Create(ctx, b)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

func (c *careCommandsImpl) loadService(ctx context.Context, serviceID uuid.UUID) (*service.Service, error) {
	snapshot, err := c.uow.Reads().ServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrServiceNotFound)
		}
		return nil, err
	}

	price, err := booking.NewMoney(snapshot.PricePence)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return service.Reconstruct(
		snapshot.ID, snapshot.Name, snapshot.Description, price,
		snapshot.DurationMinutes, snapshot.Active, snapshot.CreatedBy, snapshot.CreatedAt,
	), nil
}
