package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"hi-platform/pkg/config"
	"hi-platform/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventQueueName = "engagement_events"
	EventExchange  = "events"
	EventKey       = "engagement"

	PostQueueName = "post_events"
	PostEventKey  = "post"
)

// Client publishes platform activity events for offline analytics consumers.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

type EngagementEvent struct {
	Action   string `json:"action"` // created, removed
	Type     string `json:"type"`
	PostID   string `json:"post_id"`
	AuthorID string `json:"author_id"`
}

type PostEvent struct {
	Action   string `json:"action"` // created, deleted
	Type     string `json:"type"`
	PostID   string `json:"post_id"`
	AuthorID string `json:"author_id"`
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		EventExchange, // name
		"direct",      // type
		true,          // durable
		false,         // auto-deleted
		false,         // internal
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	queues := map[string]string{
		EventQueueName: EventKey,
		PostQueueName:  PostEventKey,
	}
	for name, key := range queues {
		_, err = channel.QueueDeclare(
			name,  // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", name, err)
		}

		if err = channel.QueueBind(name, key, EventExchange, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to bind queue %s: %w", name, err)
		}
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishEngagementEvent publishes a single engagement activity event.
func (c *Client) PublishEngagementEvent(event EngagementEvent) error {
	return c.publish(EventKey, event)
}

// PublishPostEvent publishes a post lifecycle event.
func (c *Client) PublishPostEvent(event PostEvent) error {
	return c.publish(PostEventKey, event)
}

func (c *Client) publish(key string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.Publish(
		EventExchange, // exchange
		key,           // routing key
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
