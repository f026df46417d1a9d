package events

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the part of *amqp091.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type eventPublisher struct {
	Log     *zap.Logger
	Channel amqpChannel
	Queue   string
	mu      sync.Mutex
}

// NewEventPublisher opens a channel on conn and declares the durable queue
// the reminder pipeline consumes.
func NewEventPublisher(logger *zap.Logger, conn *amqp091.Connection, queue string) (contracts.EventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}
	return newEventPublisher(logger, channel, queue), nil
}

func newEventPublisher(logger *zap.Logger, channel amqpChannel, queue string) *eventPublisher {
	return &eventPublisher{
		Log:     logger,
		Channel: channel,
		Queue:   queue,
	}
}

func (p *eventPublisher) PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
		"event_type":   event.EventType,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Type:         event.EventType,
		Headers:      headers,
	}

	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Debug("eventPublisher.PublishAppointmentEvent succeeded",
		zap.String(constvars.LoggingQueueNameKey, p.Queue),
		zap.String(constvars.LoggingEventTypeKey, event.EventType),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}

func (p *eventPublisher) Close() error {
	return p.Channel.Close()
}

// noopPublisher stands in when the broker is unreachable at start up; events
// are logged and dropped.
type noopPublisher struct {
	Log *zap.Logger
}

func NewNoopEventPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentEvent) error {
	p.Log.Info("noopPublisher dropped appointment event",
		zap.String(constvars.LoggingEventTypeKey, event.EventType),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
