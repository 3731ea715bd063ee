package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"
)

// orderRepository implements repository.OrderRepository using MongoDB.
type orderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{collection: db.Collection(ordersCollection)}
}

func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(repository.ErrOrderNotFound, "invalid order id")
	}

	var doc model.OrderDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return doc.ToEntity(), nil
}

func (repo *orderRepository) FindAll(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	orderDate := bson.M{}
	if filter.From != nil {
		orderDate["$gte"] = *filter.From
	}
	if filter.To != nil {
		orderDate["$lte"] = *filter.To
	}
	if len(orderDate) > 0 {
		query["order_date"] = orderDate
	}

	opts := options.Find().SetSort(bson.D{{Key: "order_date", Value: 1}})

	cursor, err := repo.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	defer cursor.Close(ctx)

	var docs []model.OrderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, 0, len(docs))
	for i := range docs {
		orders = append(orders, docs[i].ToEntity())
	}

	return orders, nil
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	doc := model.OrderDocumentFromEntity(order)
	doc.ID = primitive.NewObjectID()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert order")
	}

	order.ID = doc.ID.Hex()

	return nil
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	oid, err := primitive.ObjectIDFromHex(order.ID)
	if err != nil {
		return errors.Wrap(repository.ErrOrderNotFound, "invalid order id")
	}

	doc := model.OrderDocumentFromEntity(order)

	result, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}
	if result.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(repository.ErrOrderNotFound, "invalid order id")
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order")
	}
	if result.DeletedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}
