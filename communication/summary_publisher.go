package communication

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	dataErrors "bikeshare/domain/errors"
)

const (
	publisherName   = "summary-publisher"
	contentTypeJson = "application/json"
)

// QueuePublisher publishes a message in a queue. RabbitMQ implements it.
type QueuePublisher interface {
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
}

// SummaryPublisher sends the summary of each run as JSON to a queue.
// Publishing goes through a circuit breaker so an unreachable broker is not retried on every run.
type SummaryPublisher struct {
	publisher QueuePublisher
	config    PublishingConfig
	breaker   *gobreaker.CircuitBreaker
}

func NewSummaryPublisher(publisher QueuePublisher, config PublishingConfig) *SummaryPublisher {
	if config.ContentType == "" {
		config.ContentType = contentTypeJson
	}
	maxFailures := config.MaxFailures
	if maxFailures == 0 {
		maxFailures = 3
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        publisherName,
		MaxRequests: 1,
		Timeout:     config.BreakerTimeout(),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warnf("[component: %s][status: %s] circuit breaker changed from %s", name, to, from)
		},
	})

	return &SummaryPublisher{
		publisher: publisher,
		config:    config,
		breaker:   breaker,
	}
}

// Publish marshals summary and publishes it in the configured queue
func (sp *SummaryPublisher) Publish(ctx context.Context, summary interface{}) error {
	summaryBytes, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("error marshalling summary: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, sp.config.Timeout())
	defer cancel()

	_, err = sp.breaker.Execute(func() (interface{}, error) {
		return nil, sp.publisher.PublishMessageInQueue(ctx, sp.config.Queue.Name, summaryBytes, sp.config.ContentType)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s", dataErrors.ErrPublisherUnavailable, err)
	}
	if err != nil {
		return fmt.Errorf("error publishing summary in queue %s: %w", sp.config.Queue.Name, err)
	}

	log.Debugf("[component: %s][status: OK] summary published in %s", publisherName, sp.config.Queue.Name)
	return nil
}

// State returns the state of the circuit breaker
func (sp *SummaryPublisher) State() gobreaker.State {
	return sp.breaker.State()
}
