package events

import (
	"context"

	"bookwell/pkg/kafka"
	kafka_config "bookwell/pkg/kafka/config"
	"bookwell/pkg/logger"
	"bookwell/pkg/model"
)

const (
	Topic    = "appointment-events"
	DLQTopic = "appointment-events-dlq"

	TypeCreated       = "appointment.created"
	TypeRescheduled   = "appointment.rescheduled"
	TypeStatusChanged = "appointment.status_changed"

	schemaVersion = "1"
	sourceService = "appointments"
)

// Publisher emits appointment lifecycle events. Publishing is best effort:
// a broker outage must never fail the booking that triggered the event.
type Publisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

type payload struct {
	AppointmentID string       `json:"appointment_id"`
	BusinessID    string       `json:"business_id"`
	StaffID       string       `json:"staff_id"`
	Date          string       `json:"date"`
	StartTime     string       `json:"start_time"`
	DurationMin   int          `json:"duration_min"`
	Status        model.Status `json:"status"`
	PrevStatus    model.Status `json:"prev_status,omitempty"`
}

func NewPublisher(cfg *kafka_config.Config, log *logger.Logger) (*Publisher, error) {
	producer, err := kafka.NewProducer(cfg, Topic, DLQTopic)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		producer: producer,
		log:      log,
	}, nil
}

func (p *Publisher) Created(ctx context.Context, appt *model.Appointment) {
	p.publish(ctx, TypeCreated, appt, "")
}

func (p *Publisher) Rescheduled(ctx context.Context, appt *model.Appointment) {
	p.publish(ctx, TypeRescheduled, appt, "")
}

func (p *Publisher) StatusChanged(ctx context.Context, appt *model.Appointment, prev model.Status) {
	p.publish(ctx, TypeStatusChanged, appt, prev)
}

func (p *Publisher) publish(ctx context.Context, eventType string, appt *model.Appointment, prev model.Status) {
	if p == nil || p.producer == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(appt.ID).
		WithEventType(eventType).
		WithSchemaVersion(schemaVersion).
		WithSource(sourceService).
		WithValue(payload{
			AppointmentID: appt.ID,
			BusinessID:    appt.BusinessID,
			StaffID:       appt.StaffID,
			Date:          appt.Date,
			StartTime:     appt.StartTime,
			DurationMin:   appt.DurationMin,
			Status:        appt.Status,
			PrevStatus:    prev,
		}).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("Failed to publish appointment event",
			"event_type", eventType,
			"appointment_id", appt.ID,
			"error", err,
		)
	}
}

func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
