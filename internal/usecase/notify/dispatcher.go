package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"braceria-backend/internal/domain/reservation"
	"braceria-backend/internal/pkg/errs"
)

type Options struct {
	QueueSize   int
	Workers     int
	SendTimeout time.Duration
}

type job struct {
	kind          Kind
	reservationID int64
	compose       func() (Message, error)
}

// Dispatcher delivers emails on a bounded in-process queue. Enqueueing never
// blocks: when the queue is full the job is dropped with a warning.
type Dispatcher struct {
	mailer   Mailer
	composer Composer
	recorder Recorder
	opts     Options

	jobs     chan job
	failures chan Failure

	mu     sync.RWMutex
	closed bool

	workers   sync.WaitGroup
	reporter  sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
	stopErr   error
}

func NewDispatcher(mailer Mailer, composer Composer, recorder Recorder, opts Options) *Dispatcher {
	if opts.QueueSize < 1 {
		opts.QueueSize = 1
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 15 * time.Second
	}
	return &Dispatcher{
		mailer:   mailer,
		composer: composer,
		recorder: recorder,
		opts:     opts,
		jobs:     make(chan job, opts.QueueSize),
		failures: make(chan Failure, opts.QueueSize),
	}
}

func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		d.reporter.Add(1)
		go d.report()

		for i := 0; i < d.opts.Workers; i++ {
			d.workers.Add(1)
			go d.work()
		}
		slog.Info("notification dispatcher started", "workers", d.opts.Workers, "queue_size", d.opts.QueueSize)
	})
}

// Stop refuses new jobs and waits for queued ones until ctx expires.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.jobs)
		d.mu.Unlock()

		done := make(chan struct{})
		go func() {
			d.workers.Wait()
			close(done)
		}()

		select {
		case <-done:
			close(d.failures)
			d.reporter.Wait()
			slog.Info("notification dispatcher drained")
		case <-ctx.Done():
			d.stopErr = errs.Wrap(ctx.Err(), "notification queue not drained before shutdown")
		}
	})
	return d.stopErr
}

func (d *Dispatcher) NotifyCustomer(r *reservation.Reservation) {
	d.enqueue(job{
		kind:          KindCustomerConfirmation,
		reservationID: r.ID(),
		compose:       func() (Message, error) { return d.composer.CustomerConfirmation(r) },
	})
}

func (d *Dispatcher) NotifyRestaurant(r *reservation.Reservation) {
	d.enqueue(job{
		kind:          KindRestaurantAlert,
		reservationID: r.ID(),
		compose:       func() (Message, error) { return d.composer.RestaurantAlert(r) },
	})
}

func (d *Dispatcher) NotifyCancellation(c *reservation.Cancelled) {
	d.enqueue(job{
		kind:          KindCancellationAlert,
		reservationID: c.ID,
		compose:       func() (Message, error) { return d.composer.CancellationAlert(c) },
	})
}

func (d *Dispatcher) enqueue(j job) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		slog.Warn("notification dropped after shutdown", "kind", j.kind, "reservation_id", j.reservationID)
		d.recorder.NotificationDropped(string(j.kind))
		return
	}

	select {
	case d.jobs <- j:
	default:
		slog.Warn("notification queue full, dropping job", "kind", j.kind, "reservation_id", j.reservationID)
		d.recorder.NotificationDropped(string(j.kind))
	}
}

func (d *Dispatcher) work() {
	defer d.workers.Done()
	for j := range d.jobs {
		d.deliver(j)
	}
}

func (d *Dispatcher) deliver(j job) {
	msg, err := j.compose()
	if err != nil {
		if errs.Is(err, ErrNoRecipient) {
			slog.Debug("notification skipped, no recipient", "kind", j.kind, "reservation_id", j.reservationID)
			return
		}
		d.failures <- Failure{Kind: j.kind, ReservationID: j.reservationID, Err: err}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.opts.SendTimeout)
	defer cancel()

	if err := d.mailer.Send(ctx, msg); err != nil {
		d.failures <- Failure{Kind: j.kind, ReservationID: j.reservationID, Err: err}
		return
	}
	d.recorder.NotificationSent(string(j.kind))
}

// report is the only consumer of the error channel.
func (d *Dispatcher) report() {
	defer d.reporter.Done()
	for f := range d.failures {
		slog.Warn("notification failed",
			"kind", f.Kind,
			"reservation_id", f.ReservationID,
			"error", f.Err.Error())
		d.recorder.NotificationFailed(string(f.Kind))
	}
}
