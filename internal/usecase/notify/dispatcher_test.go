//go:build unit

package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"braceria-backend/internal/domain/reservation"
	"braceria-backend/internal/usecase/notify"
	"braceria-backend/tests/common/builder"
	notifymock "braceria-backend/tests/mock/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingMailer stores every message and can be held to fill the queue.
type recordingMailer struct {
	mu      sync.Mutex
	sent    []notify.Message
	failFor notify.Kind
	gate    chan struct{}
}

func (m *recordingMailer) Send(ctx context.Context, msg notify.Message) error {
	if m.gate != nil {
		select {
		case <-m.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if msg.Kind == m.failFor {
		return errors.New("smtp: 554 rejected")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) kinds() []notify.Kind {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]notify.Kind, len(m.sent))
	for i, s := range m.sent {
		out[i] = s.Kind
	}
	return out
}

type nopRecorder struct{}

func (nopRecorder) NotificationSent(string)    {}
func (nopRecorder) NotificationFailed(string)  {}
func (nopRecorder) NotificationDropped(string) {}

type staticComposer struct{}

func (staticComposer) CustomerConfirmation(*reservation.Reservation) (notify.Message, error) {
	return notify.Message{Kind: notify.KindCustomerConfirmation}, nil
}

func (staticComposer) RestaurantAlert(*reservation.Reservation) (notify.Message, error) {
	return notify.Message{Kind: notify.KindRestaurantAlert}, nil
}

func (staticComposer) CancellationAlert(*reservation.Cancelled) (notify.Message, error) {
	return notify.Message{Kind: notify.KindCancellationAlert}, nil
}

func composerFor(ctrl *gomock.Controller) *notifymock.MockComposer {
	c := notifymock.NewMockComposer(ctrl)
	c.EXPECT().CustomerConfirmation(gomock.Any()).Return(notify.Message{Kind: notify.KindCustomerConfirmation, To: "anna.rossi@example.com"}, nil).AnyTimes()
	c.EXPECT().RestaurantAlert(gomock.Any()).Return(notify.Message{Kind: notify.KindRestaurantAlert, To: "prenotazioni@example.com"}, nil).AnyTimes()
	c.EXPECT().CancellationAlert(gomock.Any()).Return(notify.Message{Kind: notify.KindCancellationAlert, To: "prenotazioni@example.com"}, nil).AnyTimes()
	return c
}

func booked(t *testing.T) *reservation.Reservation {
	t.Helper()
	r, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)
	r.AssignID(7)
	return r
}

func TestDispatcher(t *testing.T) {
	opts := notify.Options{QueueSize: 4, Workers: 2, SendTimeout: time.Second}

	t.Run("delivers every job before Stop returns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := &recordingMailer{}
		rec := notifymock.NewMockRecorder(ctrl)
		rec.EXPECT().NotificationSent(gomock.Any()).Times(3)

		d := notify.NewDispatcher(mailer, composerFor(ctrl), rec, opts)
		d.Start()
		r := booked(t)
		d.NotifyCustomer(r)
		d.NotifyRestaurant(r)
		d.NotifyCancellation(&reservation.Cancelled{ID: 7})

		require.NoError(t, d.Stop(context.Background()))
		assert.ElementsMatch(t, []notify.Kind{
			notify.KindCustomerConfirmation,
			notify.KindRestaurantAlert,
			notify.KindCancellationAlert,
		}, mailer.kinds())
	})

	t.Run("send failures go to the error channel and never panic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := &recordingMailer{failFor: notify.KindRestaurantAlert}
		rec := notifymock.NewMockRecorder(ctrl)
		rec.EXPECT().NotificationSent(string(notify.KindCustomerConfirmation))
		rec.EXPECT().NotificationFailed(string(notify.KindRestaurantAlert))

		d := notify.NewDispatcher(mailer, composerFor(ctrl), rec, opts)
		d.Start()
		r := booked(t)
		d.NotifyCustomer(r)
		d.NotifyRestaurant(r)
		require.NoError(t, d.Stop(context.Background()))
	})

	t.Run("missing recipient is skipped without a failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		composer := notifymock.NewMockComposer(ctrl)
		composer.EXPECT().RestaurantAlert(gomock.Any()).Return(notify.Message{}, notify.ErrNoRecipient)
		rec := notifymock.NewMockRecorder(ctrl)

		d := notify.NewDispatcher(&recordingMailer{}, composer, rec, opts)
		d.Start()
		d.NotifyRestaurant(booked(t))
		require.NoError(t, d.Stop(context.Background()))
	})

	t.Run("full queue drops without blocking the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := &recordingMailer{gate: make(chan struct{})}
		rec := notifymock.NewMockRecorder(ctrl)
		rec.EXPECT().NotificationDropped(string(notify.KindCustomerConfirmation)).MinTimes(1)
		rec.EXPECT().NotificationSent(gomock.Any()).AnyTimes()

		d := notify.NewDispatcher(mailer, composerFor(ctrl), rec, notify.Options{QueueSize: 1, Workers: 1, SendTimeout: time.Second})
		d.Start()
		r := booked(t)

		done := make(chan struct{})
		go func() {
			for i := 0; i < 5; i++ {
				d.NotifyCustomer(r)
			}
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("enqueue blocked on a full queue")
		}

		close(mailer.gate)
		require.NoError(t, d.Stop(context.Background()))
	})

	t.Run("jobs after Stop are dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rec := notifymock.NewMockRecorder(ctrl)
		rec.EXPECT().NotificationDropped(string(notify.KindCancellationAlert))

		d := notify.NewDispatcher(&recordingMailer{}, composerFor(ctrl), rec, opts)
		d.Start()
		require.NoError(t, d.Stop(context.Background()))
		d.NotifyCancellation(&reservation.Cancelled{ID: 1})
	})

	t.Run("Stop gives up when the deadline passes", func(t *testing.T) {
		mailer := &recordingMailer{gate: make(chan struct{})}

		// the worker outlives the test, so no gomock expectations here
		d := notify.NewDispatcher(mailer, staticComposer{}, nopRecorder{}, notify.Options{QueueSize: 2, Workers: 1, SendTimeout: time.Second})
		d.Start()
		d.NotifyCustomer(booked(t))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := d.Stop(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		close(mailer.gate)
	})
}
