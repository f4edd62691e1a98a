package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/brandquad/camo"
	"github.com/brandquad/camo/logger"
	"github.com/davidbyttow/govips/v2/vips"
	"github.com/kelseyhightower/envconfig"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Config struct {
	OutputRoot  string `envconfig:"CAMO_OUTPUT"`
	S3Host      string `envconfig:"CAMO_S3_HOST"`
	S3Key       string `envconfig:"CAMO_S3_KEY"`
	S3Secret    string `envconfig:"CAMO_S3_SECRET"`
	S3Bucket    string `envconfig:"CAMO_BUCKET" default:"camo"`
	CoverHeight int    `envconfig:"CAMO_COVER_H" default:"300"`
	MaxCpuCount int    `envconfig:"MAX_CPU_COUNT" default:"4"`
	LogLevel    string `envconfig:"CAMO_LOG_LEVEL" default:"info"`
	LogFile     string `envconfig:"CAMO_LOG_FILE" default:"camo-worker.log"`
}

func main() {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init(c.LogLevel, c.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	settings, err := camo.LoadRabbitSettings()
	if err != nil {
		logger.Log.Fatal("RabbitMQ settings", zap.Error(err))
	}

	vips.LoggingSettings(func(messageDomain string, verbosity vips.LogLevel, message string) {}, vips.LogLevelInfo)
	vips.Startup(&vips.Config{
		ConcurrencyLevel: c.MaxCpuCount,
	})
	defer vips.Shutdown()

	conn, err := camo.DialRabbitMQ(settings)
	if err != nil {
		logger.Log.Fatal("RabbitMQ dial", zap.String("host", settings.Host), zap.Error(err))
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Log.Fatal("RabbitMQ channel", zap.Error(err))
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		settings.Queue, // name
		true,           // durable
		false,          // delete when unused
		false,          // exclusive
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		logger.Log.Fatal("Queue declare", zap.String("queue", settings.Queue), zap.Error(err))
	}

	// One job at a time, a job already uses every configured CPU.
	if err = ch.Qos(1, 0, false); err != nil {
		logger.Log.Fatal("Qos", zap.Error(err))
	}

	msgs, err := ch.Consume(
		q.Name, // queue
		"",     // consumer
		false,  // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		logger.Log.Fatal("Consume", zap.String("queue", q.Name), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	camoConfig := camo.Config{
		S3Host:      c.S3Host,
		S3Key:       c.S3Key,
		S3Secret:    c.S3Secret,
		S3Bucket:    c.S3Bucket,
		OutputRoot:  c.OutputRoot,
		CoverHeight: c.CoverHeight,
		MaxCpuCount: c.MaxCpuCount,
	}

	logger.Log.Info("[*] Waiting for jobs", zap.String("queue", q.Name))
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("[*] Shutting down")
			return
		case d, ok := <-msgs:
			if !ok {
				logger.Log.Warn("Delivery channel closed")
				return
			}
			handle(ctx, d, camoConfig)
		}
	}
}

func handle(ctx context.Context, d amqp.Delivery, c camo.Config) {
	job, err := camo.ParseJob(d.Body)
	if err != nil {
		logger.Log.Error("Rejecting job", zap.Error(err))
		_ = d.Reject(false)
		return
	}

	palette, err := job.Palette()
	if err != nil {
		logger.Log.Error("Rejecting job", zap.String("source", job.Source), zap.Error(err))
		_ = d.Reject(false)
		return
	}

	logger.Log.Info("[>] Job", zap.String("source", job.Source), zap.String("preset", job.Preset))
	manifest, err := camo.Processing(ctx, job.Source, palette, c)
	if err != nil {
		requeue := camo.Requeue(err)
		logger.Log.Error("[<] Job failed", zap.String("source", job.Source), zap.Bool("requeue", requeue), zap.Error(err))
		_ = d.Nack(false, requeue)
		return
	}

	logger.Log.Info("[<] Job done", zap.String("id", manifest.ID), zap.String("preview", manifest.Preview))
	_ = d.Ack(false)
}
