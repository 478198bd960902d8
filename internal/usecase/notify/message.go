package notify

import (
	"context"
	"errors"
	"fmt"

	"braceria-backend/internal/domain/reservation"
)

//go:generate mockgen -source=message.go -destination=../../../tests/mock/notify/message.go -package=notifymock

type Kind string

const (
	KindCustomerConfirmation Kind = "customer_confirmation"
	KindRestaurantAlert      Kind = "restaurant_alert"
	KindCancellationAlert    Kind = "cancellation_alert"
)

// ErrNoRecipient is returned by a Composer when the message has nobody to go to.
// The dispatcher skips such jobs silently.
var ErrNoRecipient = errors.New("no recipient configured")

type Message struct {
	Kind    Kind
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type Composer interface {
	CustomerConfirmation(r *reservation.Reservation) (Message, error)
	RestaurantAlert(r *reservation.Reservation) (Message, error)
	CancellationAlert(c *reservation.Cancelled) (Message, error)
}

type Recorder interface {
	NotificationSent(kind string)
	NotificationFailed(kind string)
	NotificationDropped(kind string)
}

// Failure is reported on the dispatcher's error channel.
type Failure struct {
	Kind          Kind
	ReservationID int64
	Err           error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s for reservation %d: %v", f.Kind, f.ReservationID, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }
