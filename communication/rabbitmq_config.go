package communication

import "time"

// QueueDeclarationConfig contains the parameters to declare a RabbitMQ queue
type QueueDeclarationConfig struct {
	Name             string `yaml:"name"`
	Durable          bool   `yaml:"durable"`
	DeleteWhenUnused bool   `yaml:"delete_when_unused"`
	Exclusive        bool   `yaml:"exclusive"`
	NoWait           bool   `yaml:"no_wait"`
}

// PublishingConfig config use it for publishing run summaries in a RabbitMQ queue
// + URL: comes from the RABBIT_URL environment variable, never from the config file
// + MaxFailures: consecutive failures that open the circuit breaker
// + BreakerTimeoutSeconds: time the breaker stays open before trying again
type PublishingConfig struct {
	Enabled               bool                   `yaml:"enabled"`
	Queue                 QueueDeclarationConfig `yaml:"queue"`
	ContentType           string                 `yaml:"content_type"`
	TimeoutSeconds        int                    `yaml:"timeout_seconds" validate:"min=0"`
	MaxFailures           uint32                 `yaml:"max_failures"`
	BreakerTimeoutSeconds int                    `yaml:"breaker_timeout_seconds" validate:"min=0"`
	URL                   string                 `yaml:"-"`
}

func (pc PublishingConfig) Timeout() time.Duration {
	if pc.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(pc.TimeoutSeconds) * time.Second
}

func (pc PublishingConfig) BreakerTimeout() time.Duration {
	if pc.BreakerTimeoutSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(pc.BreakerTimeoutSeconds) * time.Second
}
