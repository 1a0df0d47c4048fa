package events

import (
	"context"
	"omerald-service/internal/app/contracts"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type reportEventPublisher struct {
	connection *amqp091.Connection
	queueName  string
	log        *zap.Logger
}

// NewReportEventPublisher declares the notification queue and returns a
// publisher for report share events. Downstream notification services
// consume the queue; this service never does.
func NewReportEventPublisher(connection *amqp091.Connection, queueName string, log *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublish(err)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublish(err)
	}

	return &reportEventPublisher{
		connection: connection,
		queueName:  queueName,
		log:        log,
	}, nil
}

func (p *reportEventPublisher) PublishReportEvent(ctx context.Context, event *contracts.ReportEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}
	defer channel.Close()

	err = channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	p.log.Debug("published report event",
		zap.String("event_type", event.EventType),
		zap.String("report_id", event.ReportID),
	)
	return nil
}
