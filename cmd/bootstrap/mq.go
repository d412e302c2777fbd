package bootstrap

import (
	"context"

	"stable-booking-api/internal/infra/mq"
	"stable-booking-api/internal/pkg/config"
	"stable-booking-api/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewMQConnection,
		fx.Annotate(
			NewPublisher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

func NewMQConnection(lc fx.Lifecycle, cfg config.Config) (*amqp.Connection, error) {
	conn, cleanup, err := mq.Connect(cfg.MQ)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return conn, nil
}

func NewPublisher(lc fx.Lifecycle, conn *amqp.Connection) (*mq.Publisher, error) {
	publisher, cleanup, err := mq.NewPublisher(conn)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
