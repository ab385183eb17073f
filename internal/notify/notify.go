// Package notify decides when a risk result warrants an emergency
// notification and hands the payload to an external delivery channel.
// Delivery is best-effort and side-channel to the risk computation.
package notify

import (
	"log"

	"github.com/google/uuid"

	"harvest-guard/internal/model"
)

// Deliverer is the external notification channel (console, SMS gateway,
// push). The engine defines only the payload shape, not the transport.
type Deliverer interface {
	Deliver(payload model.NotificationPayload) error
}

// LogDeliverer writes payloads to the process log.
type LogDeliverer struct{}

func (LogDeliverer) Deliver(p model.NotificationPayload) error {
	log.Printf("[notify] EMERGENCY batch=%s %s/%s etcl=%dh: %s",
		p.BatchID, p.Division, p.District, p.ETCLHours, p.Advisory)
	return nil
}

// Trigger emits a notification if and only if the summary is Critical.
type Trigger struct {
	deliverer Deliverer
}

func NewTrigger(d Deliverer) *Trigger {
	return &Trigger{deliverer: d}
}

// MaybeNotify returns the payload it produced, or nil for non-Critical
// summaries. Delivery failures (errors or panics in the channel) are logged
// and swallowed; they never reach the pipeline caller.
func (t *Trigger) MaybeNotify(s model.RiskSummary) *model.NotificationPayload {
	if s.RiskLevel != model.RiskCritical {
		return nil
	}

	payload := model.NotificationPayload{
		ID:        uuid.NewString(),
		BatchID:   s.BatchID,
		Division:  s.Division,
		District:  s.District,
		RiskLevel: s.RiskLevel,
		ETCLHours: s.ETCLHours,
		Advisory:  s.AdvisoryMessage,
	}

	if t.deliverer != nil {
		t.deliver(payload)
	}
	return &payload
}

func (t *Trigger) deliver(payload model.NotificationPayload) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[notify] delivery panic for batch %s: %v", payload.BatchID, r)
		}
	}()
	if err := t.deliverer.Deliver(payload); err != nil {
		log.Printf("[notify] delivery failed for batch %s: %v", payload.BatchID, err)
	}
}
