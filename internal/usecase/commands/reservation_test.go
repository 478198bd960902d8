//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"braceria-backend/internal/domain/customer"
	"braceria-backend/internal/domain/reservation"
	"braceria-backend/internal/domain/schedule"
	"braceria-backend/internal/infra"
	"braceria-backend/internal/pkg/clock"
	"braceria-backend/internal/pkg/errs"
	"braceria-backend/internal/usecase/commands"
	"braceria-backend/internal/usecase/shared"
	"braceria-backend/tests/common/builder"
	commandsmock "braceria-backend/tests/mock/commands"
	sharedmock "braceria-backend/tests/mock/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	availability *sharedmock.MockAvailabilityRepository
	reservations *sharedmock.MockReservationRepository
	customers    *sharedmock.MockCustomerRepository
	notifier     *commandsmock.MockNotifier
	recorder     *commandsmock.MockRecorder
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		availability: sharedmock.NewMockAvailabilityRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		customers:    sharedmock.NewMockCustomerRepository(ctrl),
		notifier:     commandsmock.NewMockNotifier(ctrl),
		recorder:     commandsmock.NewMockRecorder(ctrl),
	}
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Availability().Return(f.availability).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Customers().Return(f.customers).AnyTimes()
	return f
}

func (f *fixture) expectTx() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func (f *fixture) useCase(policy commands.ReservationPolicy) commands.ReservationCommands {
	return commands.NewReservationUseCase(
		f.uow,
		clock.NewMockClock(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)),
		f.notifier,
		f.recorder,
		policy,
	)
}

func defaultPolicy() commands.ReservationPolicy {
	return commands.ReservationPolicy{
		Domain:              reservation.Policy{RestaurantID: "BRACERIA", PhoneRegion: "IT"},
		CustomerUpsert:      customer.RefreshNames,
		CancelTokenRequired: true,
	}
}

func slot(start, end string) schedule.DisabledTimeSlot {
	return schedule.DisabledTimeSlot{
		Date:  schedule.NewDate(2030, time.June, 15),
		Range: schedule.TimeRange{Start: schedule.MustTimeOfDay(start), End: schedule.MustTimeOfDay(end)},
	}
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()
	day := schedule.NewDate(2030, time.June, 15)

	t.Run("success: inserts, skips customer without profiling, notifies after commit", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.availability.EXPECT().IsDateDisabled(gomock.Any(), gomock.Any(), day).Return(false, nil)
		f.availability.EXPECT().DisabledTimeSlots(gomock.Any(), gomock.Any(), day).Return(nil, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(17), nil)
		f.recorder.EXPECT().ReservationCreated()
		f.notifier.EXPECT().NotifyCustomer(gomock.Any())
		f.notifier.EXPECT().NotifyRestaurant(gomock.Any())

		got, err := f.useCase(defaultPolicy()).CreateReservation(ctx, builder.NewReservationBuilder().BuildInput())
		require.NoError(t, err)
		assert.Equal(t, int64(17), got.Reservation.ID())
		assert.Equal(t, "Anna Rossi", got.Reservation.FullName())
	})

	t.Run("success: profiling consent upserts the customer with the configured policy", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.availability.EXPECT().IsDateDisabled(gomock.Any(), gomock.Any(), day).Return(false, nil)
		f.availability.EXPECT().DisabledTimeSlots(gomock.Any(), gomock.Any(), day).Return(nil, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(18), nil)
		f.customers.EXPECT().Upsert(gomock.Any(), gomock.Any(), customer.Customer{
			PhoneNumber: "+393331234567",
			FirstName:   "Anna",
			LastName:    "Rossi",
		}, customer.KeepNames).Return(nil)
		f.recorder.EXPECT().ReservationCreated()
		f.notifier.EXPECT().NotifyCustomer(gomock.Any())
		f.notifier.EXPECT().NotifyRestaurant(gomock.Any())

		policy := defaultPolicy()
		policy.CustomerUpsert = customer.KeepNames
		_, err := f.useCase(policy).CreateReservation(ctx, builder.NewReservationBuilder().WithProfiling(true).BuildInput())
		require.NoError(t, err)
	})

	t.Run("success: slot ending at the requested time does not block", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.availability.EXPECT().IsDateDisabled(gomock.Any(), gomock.Any(), day).Return(false, nil)
		f.availability.EXPECT().DisabledTimeSlots(gomock.Any(), gomock.Any(), day).
			Return([]schedule.DisabledTimeSlot{slot("18:00", "20:00")}, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(19), nil)
		f.recorder.EXPECT().ReservationCreated()
		f.notifier.EXPECT().NotifyCustomer(gomock.Any())
		f.notifier.EXPECT().NotifyRestaurant(gomock.Any())

		_, err := f.useCase(defaultPolicy()).CreateReservation(ctx, builder.NewReservationBuilder().BuildInput())
		require.NoError(t, err)
	})

	t.Run("error: validation failures never open a transaction", func(t *testing.T) {
		f := newFixture(t)
		f.recorder.EXPECT().ReservationRejected(commands.RejectValidation)

		in := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Cookie = false }).BuildInput()
		_, err := f.useCase(defaultPolicy()).CreateReservation(ctx, in)
		assert.ErrorIs(t, err, reservation.ErrConsentRequired)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("error: disabled date short-circuits the slot check", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.availability.EXPECT().IsDateDisabled(gomock.Any(), gomock.Any(), day).Return(true, nil)
		f.recorder.EXPECT().ReservationRejected(commands.RejectDateUnavailable)

		_, err := f.useCase(defaultPolicy()).CreateReservation(ctx, builder.NewReservationBuilder().BuildInput())
		assert.True(t, errs.Is(err, commands.ErrDateUnavailable))
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("error: slot starting at the requested time blocks", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.availability.EXPECT().IsDateDisabled(gomock.Any(), gomock.Any(), day).Return(false, nil)
		f.availability.EXPECT().DisabledTimeSlots(gomock.Any(), gomock.Any(), day).
			Return([]schedule.DisabledTimeSlot{slot("20:00", "22:00")}, nil)
		f.recorder.EXPECT().ReservationRejected(commands.RejectTimeUnavailable)

		_, err := f.useCase(defaultPolicy()).CreateReservation(ctx, builder.NewReservationBuilder().BuildInput())
		assert.True(t, errs.Is(err, commands.ErrTimeUnavailable))
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("error: exclusive slots reject an already booked time", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.availability.EXPECT().IsDateDisabled(gomock.Any(), gomock.Any(), day).Return(false, nil)
		f.availability.EXPECT().DisabledTimeSlots(gomock.Any(), gomock.Any(), day).Return(nil, nil)
		f.availability.EXPECT().ReservationExistsAt(gomock.Any(), gomock.Any(), "BRACERIA", day, schedule.MustTimeOfDay("20:00")).Return(true, nil)
		f.recorder.EXPECT().ReservationRejected(commands.RejectSlotTaken)

		policy := defaultPolicy()
		policy.ExclusiveSlots = true
		_, err := f.useCase(policy).CreateReservation(ctx, builder.NewReservationBuilder().BuildInput())
		assert.True(t, errs.Is(err, commands.ErrTimeUnavailable))
	})

	t.Run("error: customer upsert failure rolls back the whole booking", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.availability.EXPECT().IsDateDisabled(gomock.Any(), gomock.Any(), day).Return(false, nil)
		f.availability.EXPECT().DisabledTimeSlots(gomock.Any(), gomock.Any(), day).Return(nil, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(20), nil)
		f.customers.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), customer.RefreshNames).
			Return(infra.WrapRepoErr("failed to upsert customer", &pgconn.PgError{Code: "08006"}))
		f.recorder.EXPECT().ReservationRejected(commands.RejectStorage)

		_, err := f.useCase(defaultPolicy()).CreateReservation(ctx, builder.NewReservationBuilder().WithProfiling(true).BuildInput())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.False(t, errs.Is(err, errs.ErrConflict))
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()
	cancelled := &reservation.Cancelled{ID: 17, FirstName: "Anna", LastName: "Rossi"}

	t.Run("success: token hash is matched", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		wantHash := reservation.HashCancelToken("tok-123")
		f.reservations.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(17), "BRACERIA", &wantHash).Return(cancelled, nil)
		f.recorder.EXPECT().ReservationCancelled(commands.CancelOutcomeCancelled)
		f.notifier.EXPECT().NotifyCancellation(cancelled)

		got, err := f.useCase(defaultPolicy()).CancelReservation(ctx, "17", "tok-123")
		require.NoError(t, err)
		assert.Equal(t, cancelled, got)
	})

	t.Run("success: token check disabled passes a nil hash", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.reservations.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(17), "BRACERIA", (*string)(nil)).Return(cancelled, nil)
		f.recorder.EXPECT().ReservationCancelled(commands.CancelOutcomeCancelled)
		f.notifier.EXPECT().NotifyCancellation(cancelled)

		policy := defaultPolicy()
		policy.CancelTokenRequired = false
		_, err := f.useCase(policy).CancelReservation(ctx, "17", "")
		require.NoError(t, err)
	})

	t.Run("not found: malformed ids and blank tokens", func(t *testing.T) {
		for _, tc := range []struct{ id, token string }{
			{"abc", "tok"},
			{"-3", "tok"},
			{"0", "tok"},
			{"17", " "},
		} {
			f := newFixture(t)
			f.recorder.EXPECT().ReservationCancelled(commands.CancelOutcomeNotFound)

			_, err := f.useCase(defaultPolicy()).CancelReservation(ctx, tc.id, tc.token)
			assert.ErrorIs(t, err, commands.ErrReservationNotFound, "id=%q token=%q", tc.id, tc.token)
			assert.True(t, errs.Is(err, errs.ErrNotFound))
		}
	})

	t.Run("not found: no matching row", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.reservations.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(99), "BRACERIA", gomock.Any()).
			Return(nil, infra.WrapRepoErr("reservation not found", assert.AnError, infra.KindNotFound))
		f.recorder.EXPECT().ReservationCancelled(commands.CancelOutcomeNotFound)

		_, err := f.useCase(defaultPolicy()).CancelReservation(ctx, "99", "tok")
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("error: storage failure", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.reservations.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(17), "BRACERIA", gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to delete reservation", assert.AnError))
		f.recorder.EXPECT().ReservationCancelled(commands.CancelOutcomeError)

		_, err := f.useCase(defaultPolicy()).CancelReservation(ctx, "17", "tok")
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.False(t, errs.Is(err, errs.ErrNotFound))
	})
}
