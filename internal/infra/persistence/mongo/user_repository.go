package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"
)

// userRepository implements repository.UserRepository using MongoDB.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{collection: db.Collection(usersCollection)}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(repository.ErrUserNotFound, "invalid user id")
	}

	var doc model.UserDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return doc.ToEntity(), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc model.UserDocument
	if err := repo.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return doc.ToEntity(), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := model.UserDocumentFromEntity(user)
	doc.ID = primitive.NewObjectID()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert user")
	}

	user.ID = doc.ID.Hex()

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return errors.Wrap(repository.ErrUserNotFound, "invalid user id")
	}

	doc := model.UserDocumentFromEntity(user)

	// Full replace so cleared OTP fields actually disappear from the document.
	result, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
