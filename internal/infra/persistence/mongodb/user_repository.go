package mongodb

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements the repository.UserRepository interface on top
// of the users collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface,
// adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(usersCollection),
	}
}

func (repo *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	var user entity.User
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return &user, nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return &user, nil
}

// FindByEmailAndAnswer matches both fields in a single query so a wrong
// email and a wrong answer are indistinguishable to the caller.
func (repo *userRepository) FindByEmailAndAnswer(ctx context.Context, email, answer string) (*entity.User, error) {
	var user entity.User
	err := repo.coll.FindOne(ctx, bson.M{"email": email, "answer": answer}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email and answer")
	}

	return &user, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashed string) error {
	update := bson.M{"$set": bson.M{
		"password":  hashed,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return errors.Wrap(err, "failed to update password")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateProfile applies only the provided fields and returns the document
// as written, mirroring findByIdAndUpdate with the new-document option.
func (repo *userRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, update *entity.ProfileUpdate) (*entity.User, error) {
	fields := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != "" {
		fields["name"] = update.Name
	}
	if update.Password != "" {
		fields["password"] = update.Password
	}
	if update.Phone != "" {
		fields["phone"] = update.Phone
	}
	if update.Address != "" {
		fields["address"] = update.Address
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user entity.User
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return &user, nil
}

func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	return users, nil
}
