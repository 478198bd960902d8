//go:build e2e

package e2e

import (
	"context"
	"sync"
	"time"

	"braceria-backend/internal/usecase/notify"
)

// Outbox is a notify.Mailer that keeps every message in memory.
type Outbox struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (o *Outbox) Send(_ context.Context, msg notify.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, msg)
	return nil
}

func (o *Outbox) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = nil
}

func (o *Outbox) Messages() []notify.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]notify.Message(nil), o.sent...)
}

// WaitFor polls until n messages of kind arrived or the deadline passes.
func (o *Outbox) WaitFor(kind notify.Kind, n int, within time.Duration) []notify.Message {
	deadline := time.Now().Add(within)
	for {
		var got []notify.Message
		for _, m := range o.Messages() {
			if m.Kind == kind {
				got = append(got, m)
			}
		}
		if len(got) >= n || time.Now().After(deadline) {
			return got
		}
		time.Sleep(20 * time.Millisecond)
	}
}
