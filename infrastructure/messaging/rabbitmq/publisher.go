package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/vfg2006/mail-insights-api/internal/config"
	"github.com/vfg2006/mail-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	routingKeyCompleted = "sync.completed"
	routingKeyFailed    = "sync.failed"
)

type SyncEventPublisher interface {
	PublishSyncFinished(ctx context.Context, event domain.SyncEvent) error
	Close() error
}

// NewPublisher devolve o publicador configurado; com RabbitMQ desabilitado os eventos são descartados
func NewPublisher(cfg config.RabbitMQ) (SyncEventPublisher, error) {
	if !cfg.Enabled {
		return NoopPublisher{}, nil
	}
	p, err := Dial(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, err
	}
	return p, nil
}

type connection interface {
	IsClosed() bool
	Close() error
}

type publishChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type dialFunc func(url, exchange string) (connection, publishChannel, error)

// Publisher envia eventos de sincronização para uma exchange topic
type Publisher struct {
	url      string
	exchange string
	dial     dialFunc

	mu      sync.Mutex
	conn    connection
	channel publishChannel
}

func Dial(url, exchange string) (*Publisher, error) {
	return newPublisher(url, exchange, dialAMQP)
}

func newPublisher(url, exchange string, dial dialFunc) (*Publisher, error) {
	p := &Publisher{url: url, exchange: exchange, dial: dial}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func dialAMQP(url, exchange string) (connection, publishChannel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao conectar no RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("falha ao abrir canal: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("falha ao declarar exchange %s: %w", exchange, err)
	}

	return conn, ch, nil
}

func (p *Publisher) connect() error {
	conn, ch, err := p.dial(p.url, p.exchange)
	if err != nil {
		return err
	}
	p.conn = conn
	p.channel = ch
	return nil
}

// reconnect descarta canal e conexão atuais antes de discar de novo
func (p *Publisher) reconnect() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		_ = p.conn.Close()
	}
	p.conn, p.channel = nil, nil
	return p.connect()
}

// PublishSyncFinished tenta de novo uma única vez após reconectar, cobrindo canal fechado com conexão viva
func (p *Publisher) PublishSyncFinished(ctx context.Context, event domain.SyncEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.JobID,
		Timestamp:    time.Now(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		logrus.Info("Conexão com RabbitMQ perdida, reconectando")
		if err := p.reconnect(); err != nil {
			return err
		}
	}

	err = p.channel.Publish(p.exchange, RoutingKey(event), false, false, msg)
	if err == nil {
		return nil
	}

	logrus.WithError(err).WithField("job_id", event.JobID).Warn("Falha ao publicar evento, reconectando ao RabbitMQ")
	if rerr := p.reconnect(); rerr != nil {
		return fmt.Errorf("falha ao publicar evento: %w (reconexão: %v)", err, rerr)
	}
	return p.channel.Publish(p.exchange, RoutingKey(event), false, false, msg)
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn.Close()
	}
	return nil
}

func RoutingKey(event domain.SyncEvent) string {
	if event.Success {
		return routingKeyCompleted
	}
	return routingKeyFailed
}

type NoopPublisher struct{}

func (NoopPublisher) PublishSyncFinished(context.Context, domain.SyncEvent) error { return nil }
func (NoopPublisher) Close() error                                             { return nil }
