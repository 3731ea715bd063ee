package mongo

import (
	"context"
	"time"

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

// customerRepository implements repository.CustomerRepository using MongoDB.
type customerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *mongo.Database) repository.CustomerRepository {
	return &customerRepository{collection: db.Collection(customersCollection)}
}

// containsInsensitive builds a case-insensitive substring match.
func containsInsensitive(value string) bson.M {
	return bson.M{"$regex": value, "$options": "i"}
}

func (repo *customerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(repository.ErrCustomerNotFound, "invalid customer id")
	}

	var doc model.CustomerDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return doc.ToEntity(), nil
}

func (repo *customerRepository) FindAll(ctx context.Context, filter repository.CustomerFilter) ([]*entity.Customer, error) {
	query := bson.M{}
	if filter.FirstName != "" {
		query["first_name"] = containsInsensitive(filter.FirstName)
	}
	if filter.LastName != "" {
		query["last_name"] = containsInsensitive(filter.LastName)
	}
	if filter.Email != "" {
		query["email"] = containsInsensitive(filter.Email)
	}

	opts := options.Find().SetSort(bson.D{{Key: "first_name", Value: 1}})

	cursor, err := repo.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}
	defer cursor.Close(ctx)

	var docs []model.CustomerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode customers")
	}

	customers := make([]*entity.Customer, 0, len(docs))
	for i := range docs {
		customers = append(customers, docs[i].ToEntity())
	}

	return customers, nil
}

func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	doc := model.CustomerDocumentFromEntity(customer)
	doc.ID = primitive.NewObjectID()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert customer")
	}

	customer.ID = doc.ID.Hex()

	return nil
}

func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	oid, err := primitive.ObjectIDFromHex(customer.ID)
	if err != nil {
		return errors.Wrap(repository.ErrCustomerNotFound, "invalid customer id")
	}

	customer.UpdatedAt = time.Now()
	doc := model.CustomerDocumentFromEntity(customer)

	result, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update customer")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func (repo *customerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(repository.ErrCustomerNotFound, "invalid customer id")
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete customer")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}
