package config

import (
	"context"
	"log"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Location       *time.Location
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// RefcacheWorkerStop is called during Shutdown to stop the reference list refresher.
	RefcacheWorkerStop func()
	// PublisherStop closes the event publisher channel.
	PublisherStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.RefcacheWorkerStop != nil {
		b.RefcacheWorkerStop()
		log.Println("Successfully stopped reference cache worker")
	}

	if b.PublisherStop != nil {
		b.PublisherStop()
		log.Println("Successfully stopped event publisher")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if b.RabbitMQ != nil {
		err = b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
