package integration

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
)

// InitTestContainers starts the MongoDB and RabbitMQ containers the app
// depends on and points the app at them through environment variables.
type InitTestContainers struct {
	mongo  *mongodb.MongoDBContainer
	rabbit *rabbitmq.RabbitMQContainer
}

func (i *InitTestContainers) Initialize(ctx context.Context) (context.Context, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return ctx, err
	}
	i.mongo = mongoContainer

	mongoURL, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		return ctx, err
	}
	os.Setenv("MONGO_URL", mongoURL) //nolint:errcheck

	rabbitContainer, err := rabbitmq.Run(ctx, "rabbitmq:3.13-management-alpine")
	if err != nil {
		return ctx, err
	}
	i.rabbit = rabbitContainer

	amqpURL, err := rabbitContainer.AmqpURL(ctx)
	if err != nil {
		return ctx, err
	}
	os.Setenv("AMQP_URL", amqpURL) //nolint:errcheck

	return ctx, nil
}

func (i InitTestContainers) Close() {
	cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	if i.rabbit != nil {
		if err := testcontainers.TerminateContainer(i.rabbit, testcontainers.StopContext(cancelCtx)); err != nil {
			log.Printf("failed to terminate rabbitmq container: %v", err)
		}
	}
	if i.mongo != nil {
		if err := testcontainers.TerminateContainer(i.mongo, testcontainers.StopContext(cancelCtx)); err != nil {
			log.Printf("failed to terminate mongodb container: %v", err)
		}
	}

	os.Unsetenv("MONGO_URL") //nolint:errcheck
	os.Unsetenv("AMQP_URL")  //nolint:errcheck
}
