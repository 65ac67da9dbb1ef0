package service

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"exusiai.dev/trialstats/internal/constant"
	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/pkg/observability"
)

// TrialCompletedEvent is published once a trial reaches the completed status.
type TrialCompletedEvent struct {
	Kind       model.TrialKind `json:"kind"`
	TrialID    int             `json:"trialId"`
	AccountID  int             `json:"accountId"`
	Subtype    string          `json:"subtype,omitempty"`
	Trial      any             `json:"trial"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// Subject is the JetStream subject the event is published on.
func (e *TrialCompletedEvent) Subject() string {
	return constant.TrialEventsSubjectPrefix + "." + string(e.Kind) + ".completed"
}

func (e *TrialCompletedEvent) msgID() string {
	return string(e.Kind) + ":" + strconv.Itoa(e.TrialID)
}

type TrialEvents struct {
	JetStream nats.JetStreamContext
}

// NewTrialEvents accepts a nil JetStream, in which case events are dropped.
func NewTrialEvents(js nats.JetStreamContext) *TrialEvents {
	return &TrialEvents{
		JetStream: js,
	}
}

// Enabled reports whether events are published anywhere.
func (s *TrialEvents) Enabled() bool {
	return s != nil && s.JetStream != nil
}

// PublishCompleted publishes e. Failures are logged and counted but never
// returned: a completed trial stays completed whether or not anyone hears about it.
func (s *TrialEvents) PublishCompleted(ctx context.Context, e *TrialCompletedEvent) {
	if !s.Enabled() {
		observability.TrialEventsPublished.WithLabelValues(string(e.Kind), "disabled").Inc()
		return
	}

	data, err := json.Marshal(e)
	if err != nil {
		log.Error().
			Str("evt.name", "trial.event.marshal").
			Err(err).
			Int("trialId", e.TrialID).
			Msg("failed to marshal trial completed event")
		observability.TrialEventsPublished.WithLabelValues(string(e.Kind), "error").Inc()
		return
	}

	_, err = s.JetStream.Publish(e.Subject(), data, nats.Context(ctx), nats.MsgId(e.msgID()))
	if err != nil {
		log.Warn().
			Str("evt.name", "trial.event.publish").
			Err(err).
			Str("subject", e.Subject()).
			Int("trialId", e.TrialID).
			Msg("failed to publish trial completed event")
		observability.TrialEventsPublished.WithLabelValues(string(e.Kind), "error").Inc()
		return
	}

	observability.TrialEventsPublished.WithLabelValues(string(e.Kind), "ok").Inc()
}
