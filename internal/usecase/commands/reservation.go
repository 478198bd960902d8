package commands

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"braceria-backend/internal/domain/customer"
	"braceria-backend/internal/domain/reservation"
	"braceria-backend/internal/infra"
	"braceria-backend/internal/pkg/clock"
	"braceria-backend/internal/pkg/errs"
	"braceria-backend/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

var (
	ErrDateUnavailable     = errs.Mark(errors.New("date unavailable"), errs.ErrConflict)
	ErrTimeUnavailable     = errs.Mark(errors.New("time unavailable"), errs.ErrConflict)
	ErrReservationNotFound = errs.Mark(errors.New("reservation not found"), errs.ErrNotFound)
)

// ReservationPolicy is the booking configuration resolved at startup.
type ReservationPolicy struct {
	Domain              reservation.Policy
	ExclusiveSlots      bool
	CustomerUpsert      customer.UpsertPolicy
	CancelTokenRequired bool
}

type CreateReservationResult struct {
	Reservation *reservation.Reservation
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in reservation.Input) (*CreateReservationResult, error)
	CancelReservation(ctx context.Context, rawID, token string) (*reservation.Cancelled, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier Notifier
	recorder Recorder
	policy   ReservationPolicy
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	notifier Notifier,
	recorder Recorder,
	policy ReservationPolicy,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		clock:    clk,
		notifier: notifier,
		recorder: recorder,
		policy:   policy,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, in reservation.Input) (*CreateReservationResult, error) {
	services := &reservation.Services{
		Clock:  uc.clock,
		Policy: uc.policy.Domain,
	}

	res, err := reservation.NewReservation(services, in)
	if err != nil {
		uc.recorder.ReservationRejected(RejectValidation)
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		checker := NewAvailabilityChecker(tx)

		blocked, err := checker.IsDateBlocked(ctx, res.Date())
		if err != nil {
			return err
		}
		if blocked {
			return ErrDateUnavailable
		}

		blocked, slot, err := checker.IsSlotBlocked(ctx, res.Date(), res.Time())
		if err != nil {
			return err
		}
		if blocked {
			slog.Debug("reservation time falls in a disabled slot",
				"date", res.Date().String(),
				"time", res.Time().String(),
				"slot_start", slot.Range.Start.String(),
				"slot_end", slot.Range.End.String())
			return ErrTimeUnavailable
		}

		if uc.policy.ExclusiveSlots {
			taken, err := checker.IsSlotTaken(ctx, res.RestaurantID(), res.Date(), res.Time())
			if err != nil {
				return err
			}
			if taken {
				return errs.Mark(ErrTimeUnavailable, errSlotTaken)
			}
		}

		id, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			return err
		}
		res.AssignID(id)

		if c, ok := customer.FromReservation(res); ok {
			if err := tx.Customers().Upsert(ctx, tx.DB(), c, uc.policy.CustomerUpsert); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.recorder.ReservationRejected(rejectReason(err))
		if errs.Is(err, errs.ErrConflict) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.recorder.ReservationCreated()
	uc.notifier.NotifyCustomer(res)
	uc.notifier.NotifyRestaurant(res)

	return &CreateReservationResult{Reservation: res}, nil
}

func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, rawID, token string) (*reservation.Cancelled, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		uc.recorder.ReservationCancelled(CancelOutcomeNotFound)
		return nil, ErrReservationNotFound
	}

	var tokenHash *string
	if uc.policy.CancelTokenRequired {
		token = strings.TrimSpace(token)
		if token == "" {
			uc.recorder.ReservationCancelled(CancelOutcomeNotFound)
			return nil, ErrReservationNotFound
		}
		h := reservation.HashCancelToken(token)
		tokenHash = &h
	}

	var cancelled *reservation.Cancelled
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		cancelled, err = tx.Reservations().Delete(ctx, tx.DB(), id, uc.policy.Domain.RestaurantID, tokenHash)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			uc.recorder.ReservationCancelled(CancelOutcomeNotFound)
			return nil, ErrReservationNotFound
		}
		uc.recorder.ReservationCancelled(CancelOutcomeError)
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.recorder.ReservationCancelled(CancelOutcomeCancelled)
	uc.notifier.NotifyCancellation(cancelled)
	return cancelled, nil
}

var errSlotTaken = errors.New("slot already booked")

func rejectReason(err error) string {
	switch {
	case errs.Is(err, errSlotTaken):
		return RejectSlotTaken
	case errs.Is(err, ErrDateUnavailable):
		return RejectDateUnavailable
	case errs.Is(err, ErrTimeUnavailable):
		return RejectTimeUnavailable
	default:
		return RejectStorage
	}
}
