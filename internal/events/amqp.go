package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends events to a topic exchange keyed by entity.action.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	mu       sync.Mutex
}

// DialAMQP connects to the broker and declares the durable topic exchange.
func DialAMQP(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(e Event) {
	body, err := json.Marshal(e)
	if err != nil {
		log.Printf("Failed to encode event %s: %v", e.RoutingKey(), err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, e.RoutingKey(), false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   uuid.New().String(),
		Timestamp:   e.At,
		Body:        body,
	})
	if err != nil {
		log.Printf("Failed to publish event %s: %v", e.RoutingKey(), err)
	}
}

func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		log.Printf("Error closing RabbitMQ channel: %s", err)
	}
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
