package mongodb

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// InitClient initializes the MongoDB connection and registers the database
// handle in the dependency container.
type InitClient struct {
	Logger   *log.Logger `resolve:""`
	URL      string      `config:"MONGO_URL" default:"mongodb://localhost:27017"`
	Database string      `config:"MONGO_DB" default:"joy"`
	client   *mongo.Client
}

// Initialize connects to MongoDB and verifies the connection with a ping.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(i.URL))
		if err != nil {
			return ctx, fmt.Errorf("failed to create mongo client: %w", err)
		}
		if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
			return ctx, fmt.Errorf("failed to ping mongo: %w", err)
		}
		i.client = client
	}

	depend.Register(i.client.Database(i.Database))

	return ctx, nil
}

func (i *InitClient) Close() {
	disconnectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := i.client.Disconnect(disconnectCtx); err != nil {
		i.Logger.Printf("InitClient: failed to disconnect from mongo: %v", err)
	}
}
