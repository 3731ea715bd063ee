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

// productRepository implements repository.ProductRepository using MongoDB.
type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{collection: db.Collection(productsCollection)}
}

func buildProductQuery(filter repository.ProductFilter) bson.M {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = containsInsensitive(filter.Name)
	}
	if filter.Brand != "" {
		query["brand"] = containsInsensitive(filter.Brand)
	}
	if filter.MinPrice != "" {
		// Prices are currency strings; $gte on them is lexicographic, which
		// holds for same-width amounts with a shared "$" prefix.
		query["price"] = bson.M{"$gte": filter.MinPrice}
	}

	createdAt := bson.M{}
	if filter.From != nil {
		createdAt["$gte"] = *filter.From
	}
	if filter.To != nil {
		createdAt["$lte"] = *filter.To
	}
	if len(createdAt) > 0 {
		query["createdAt"] = createdAt
	}

	return query
}

func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(repository.ErrProductNotFound, "invalid product id")
	}

	var doc model.ProductDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return doc.ToEntity(), nil
}

func (repo *productRepository) FindAll(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "brand", Value: 1}})

	cursor, err := repo.collection.Find(ctx, buildProductQuery(filter), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	defer cursor.Close(ctx)

	var docs []model.ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		products = append(products, docs[i].ToEntity())
	}

	return products, nil
}

func (repo *productRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	count, err := repo.collection.CountDocuments(ctx, buildProductQuery(filter))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	doc := model.ProductDocumentFromEntity(product)
	doc.ID = primitive.NewObjectID()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert product")
	}

	product.ID = doc.ID.Hex()

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return errors.Wrap(repository.ErrProductNotFound, "invalid product id")
	}

	product.UpdatedAt = time.Now()
	doc := model.ProductDocumentFromEntity(product)

	result, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(repository.ErrProductNotFound, "invalid product id")
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}
	if result.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}
