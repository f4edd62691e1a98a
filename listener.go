package camo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitSettings struct {
	Host  string `envconfig:"RABBITMQ_HOST" required:"true" default:"localhost"`
	Port  string `envconfig:"RABBITMQ_PORT" required:"true" default:"5672"`
	User  string `envconfig:"RABBITMQ_USER" required:"true" default:"admin"`
	Pass  string `envconfig:"RABBITMQ_PASS" required:"true" default:"admin"`
	Queue string `envconfig:"RABBITMQ_QUEUE" default:"camo-render"`
}

func LoadRabbitSettings() (RabbitSettings, error) {
	var s RabbitSettings
	err := envconfig.Process("", &s)
	return s, err
}

func (s RabbitSettings) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", s.User, s.Pass, s.Host, s.Port)
}

func DialRabbitMQ(s RabbitSettings) (*amqp.Connection, error) {
	return amqp.Dial(s.URL())
}

// Job is a render request read from the queue. Colors, when present, is
// an export document and wins over Preset.
type Job struct {
	Source string          `json:"source"`
	Preset string          `json:"preset,omitempty"`
	Colors json.RawMessage `json:"colors,omitempty"`
}

func ParseJob(body []byte) (Job, error) {
	var j Job
	if err := json.Unmarshal(body, &j); err != nil {
		return Job{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if j.Source == "" {
		return Job{}, fmt.Errorf("job without source: %w", ErrMissingTexture)
	}
	return j, nil
}

func (j Job) Palette() (Palette, error) {
	switch {
	case len(j.Colors) > 0:
		return Deserialize(j.Colors)
	case j.Preset != "":
		return Preset(j.Preset)
	}
	return DefaultPalette(), nil
}

// Requeue reports whether a failed job should go back to the queue. Jobs
// interrupted by a worker shutdown are retried; every other failure is
// dropped so a bad job cannot loop.
func Requeue(err error) bool {
	return errors.Is(err, context.Canceled)
}
