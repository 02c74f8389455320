package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher публикует события в RabbitMQ.
// Соединение открывается на каждую публикацию: события редкие, а сервис не должен
// зависеть от доступности брокера при старте.
type AMQPPublisher struct {
	url   string
	queue string
	log   Logger
}

// NewAMQPPublisher создает publisher. Пустое имя очереди заменяется на BookingCreatedQueue.
func NewAMQPPublisher(url, queue string, log Logger) *AMQPPublisher {
	if queue == "" {
		queue = BookingCreatedQueue
	}
	return &AMQPPublisher{url: url, queue: queue, log: log}
}

// PublishBookingCreated публикует событие в durable очередь как persistent сообщение
func (p *AMQPPublisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrPublish, err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", ErrPublish, err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("%w: declare queue %s: %v", ErrPublish, p.queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    event.BookingID,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("%w: publish: %v", ErrPublish, err)
	}

	p.log.Info("PublishBookingCreated: booking=%s published to %s", event.BookingID, p.queue)
	return nil
}

// NopPublisher publisher для запуска без брокера
type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(context.Context, BookingCreatedEvent) error {
	return nil
}
