package mongodb

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// categoryRepository implements the repository.CategoryRepository interface
// on top of the categories collection.
type categoryRepository struct {
	coll *mongo.Collection
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &categoryRepository{
		coll: db.Collection(categoriesCollection),
	}
}

func (repo *categoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Category, error) {
	var category entity.Category
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return &category, nil
}

func (repo *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var category entity.Category
	err := repo.coll.FindOne(ctx, bson.M{"name": name}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by name")
	}

	return &category, nil
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var category entity.Category
	err := repo.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	return &category, nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, category); err != nil {
		return errors.Wrap(err, "failed to create category")
	}

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, id primitive.ObjectID, name, slug string) (*entity.Category, error) {
	update := bson.M{"$set": bson.M{"name": name, "slug": slug}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var category entity.Category
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return &category, nil
}

func (repo *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	var categories []*entity.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, errors.Wrap(err, "failed to decode categories")
	}

	return categories, nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}
