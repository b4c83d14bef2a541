// Package delivery simulates the send lifecycle of an outbound message.
// Three independent timers advance a message through sent, delivered and
// read; nothing chains them beyond their ascending delays.
package delivery

import (
	"time"

	"sparkchats-gateway/internal/logging"
	"sparkchats-gateway/internal/store"
)

// steps pairs each lifecycle status with its position in the delay list.
var steps = []string{"sent", "delivered", "read"}

// StatusPublisher is notified after a transition is applied. A nil
// publisher disables notifications.
type StatusPublisher interface {
	MessageStatusChanged(conversationID, messageID, status string)
}

type Simulator struct {
	store  *store.Store
	delays []time.Duration
	pub    StatusPublisher
	log    *logging.Logger
}

// New builds a simulator firing the lifecycle steps at the given ascending
// delays. Fewer than three delays fall back to the defaults.
func New(st *store.Store, delays []time.Duration, pub StatusPublisher, log *logging.Logger) *Simulator {
	if len(delays) < len(steps) {
		delays = []time.Duration{500 * time.Millisecond, 1500 * time.Millisecond, 3000 * time.Millisecond}
	}
	return &Simulator{store: st, delays: delays, pub: pub, log: log.Sub("delivery")}
}

// Arm schedules all three transitions immediately. The timers hold only the
// conversation and message ids, never the records: each step re-resolves
// both at fire time and quietly does nothing if either has gone away. Once
// armed a step always fires; there is no cancellation.
func (s *Simulator) Arm(conversationID, messageID string) {
	for i, status := range steps {
		status := status
		time.AfterFunc(s.delays[i], func() {
			s.fire(conversationID, messageID, status)
		})
	}
}

func (s *Simulator) fire(conversationID, messageID, status string) {
	applied, err := s.store.AdvanceMessageStatus(conversationID, messageID, status)
	if err != nil {
		// Delivery steps are fire-and-forget; surface nothing to callers.
		s.log.Error().Err(err).Str("message", messageID).Msg("delivery step failed")
		return
	}
	if !applied {
		return
	}
	s.log.Debug().Str("message", messageID).Str("status", status).Msg("delivery step applied")
	if s.pub != nil {
		s.pub.MessageStatusChanged(conversationID, messageID, status)
	}
}
