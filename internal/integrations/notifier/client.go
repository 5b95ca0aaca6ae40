package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client публикует задания на уведомления в topic exchange RabbitMQ.
// Доставка писем/SMS — зона ответственности внешнего потребителя очереди;
// ядро только кладет задание и забывает о нем.
type Client struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	exchange   string
	routingKey string
	timeout    time.Duration
	log        Logger
}

// NewClient подключается к брокеру и объявляет exchange
func NewClient(url, exchange, routingKey string, timeout time.Duration, log Logger) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	return &Client{
		conn:       conn,
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
		timeout:    timeout,
		log:        log,
	}, nil
}

// Dispatch публикует задание в exchange как JSON
func (c *Client) Dispatch(ctx context.Context, job Job) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("%w: marshal job: %v", ErrPublish, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err = c.ch.PublishWithContext(pubCtx, c.exchange, c.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: reservation_id=%d: %v", ErrPublish, job.ReservationID, err)
	}

	c.log.Info("Notification job published: reservation_id=%d, routing_key=%s", job.ReservationID, c.routingKey)
	return nil
}

// Close закрывает канал и соединение с брокером
func (c *Client) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// NoopDispatcher заглушка на случай выключенных уведомлений:
// задание только логируется
type NoopDispatcher struct {
	log Logger
}

// NewNoopDispatcher создает диспетчер-заглушку
func NewNoopDispatcher(log Logger) *NoopDispatcher {
	return &NoopDispatcher{log: log}
}

// Dispatch логирует задание и ничего не отправляет
func (d *NoopDispatcher) Dispatch(_ context.Context, job Job) error {
	d.log.Info("Notification dispatch disabled, dropping job: reservation_id=%d", job.ReservationID)
	return nil
}
