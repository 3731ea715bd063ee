// Package mongo implements the repository interfaces on top of MongoDB.
package mongo

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"backoffice/config"
)

// Collection names.
const (
	usersCollection     = "users"
	customersCollection = "customers"
	productsCollection  = "products"
	ordersCollection    = "orders"
)

// DatabaseParams holds dependencies for the database handle, injected by Fx.
type DatabaseParams struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDatabase connects to MongoDB, verifies the connection with a ping and
// registers a lifecycle hook that disconnects on shutdown.
func NewDatabase(params DatabaseParams) (*mongo.Database, error) {
	if params.Config.Mongo == nil {
		return nil, errors.New("mongo config is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), params.Config.Mongo.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	params.Logger.Info("Connected to MongoDB", slog.String("database", params.Config.Mongo.Database))

	params.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Disconnecting from MongoDB")

			return client.Disconnect(ctx)
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}
