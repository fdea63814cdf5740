package messaging

import (
	"context"
	"log/slog"
	"time"

	"hof-drops/internal/pkg/config"
	"hof-drops/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

var ErrPublisherUnavailable = errs.New("notification publisher unavailable")

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Event struct {
	Key       string
	EventType string
	Payload   []byte
}

type KafkaPublisher struct {
	writer  MessageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.NotificationTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
	}
	return NewPublisher(w, DefaultBreakerSettings())
}

func NewPublisher(writer MessageWriter, settings gobreaker.Settings) *KafkaPublisher {
	return &KafkaPublisher{
		writer:  writer,
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

// DefaultBreakerSettings opens after five consecutive failures and probes again after 30s.
func DefaultBreakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        "kafka-notifications",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev Event) error {
	_, err := p.breaker.Execute(func() (struct{}, error) {
		msg := kafka.Message{
			Key:   []byte(ev.Key),
			Value: ev.Payload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(ev.EventType)},
			},
		}
		return struct{}{}, p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		if errs.Is(err, gobreaker.ErrOpenState) || errs.Is(err, gobreaker.ErrTooManyRequests) {
			return errs.Mark(err, ErrPublisherUnavailable)
		}
		return errs.Wrap(err, "publish notification")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
