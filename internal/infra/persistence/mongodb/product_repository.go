package mongodb

import (
	"context"
	"regexp"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// withoutPhoto trims the photo blob from listing queries so a page of
// products does not drag megabytes of image data through the cursor.
var withoutPhoto = bson.M{"photo": 0}

// productRepository implements the repository.ProductRepository interface
// on top of the products collection.
type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{
		coll: db.Collection(productsCollection),
	}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, product); err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

// Update replaces the core fields and, when the blob is present, the photo.
// The photo survives an update that carries none.
func (repo *productRepository) Update(ctx context.Context, id primitive.ObjectID, product *entity.Product) (*entity.Product, error) {
	fields := bson.M{
		"name":        product.Name,
		"slug":        product.Slug,
		"description": product.Description,
		"price":       product.Price,
		"category":    product.Category,
		"quantity":    product.Quantity,
		"shipping":    product.Shipping,
		"updatedAt":   time.Now().UTC(),
	}
	if len(product.Photo.Data) > 0 {
		fields["photo"] = product.Photo
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.Product
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return &updated, nil
}

func (repo *productRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	opts := options.FindOneAndDelete().SetProjection(withoutPhoto)

	var deleted entity.Product
	err := repo.coll.FindOneAndDelete(ctx, bson.M{"_id": id}, opts).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to delete product")
	}

	return &deleted, nil
}

func (repo *productRepository) FindLatest(ctx context.Context, limit int) ([]*entity.Product, error) {
	opts := options.Find().
		SetProjection(withoutPhoto).
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(int64(limit))

	return repo.findProducts(ctx, bson.M{}, opts)
}

func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	opts := options.FindOne().SetProjection(withoutPhoto)

	var product entity.Product
	err := repo.coll.FindOne(ctx, bson.M{"slug": slug}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return &product, nil
}

func (repo *productRepository) FindPhoto(ctx context.Context, id primitive.ObjectID) (*entity.Photo, error) {
	opts := options.FindOne().SetProjection(bson.M{"photo": 1})

	var product entity.Product
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product photo")
	}

	return &product.Photo, nil
}

func (repo *productRepository) FindFiltered(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := bson.M{}
	if len(filter.Categories) > 0 {
		query["category"] = bson.M{"$in": filter.Categories}
	}
	if filter.Price != nil {
		query["price"] = bson.M{"$gte": filter.Price.Min, "$lte": filter.Price.Max}
	}

	opts := options.Find().SetProjection(withoutPhoto)

	return repo.findProducts(ctx, query, opts)
}

func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	total, err := repo.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return total, nil
}

func (repo *productRepository) FindPage(ctx context.Context, page, perPage int) ([]*entity.Product, error) {
	if page < 1 {
		page = 1
	}

	opts := options.Find().
		SetProjection(withoutPhoto).
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))

	return repo.findProducts(ctx, bson.M{}, opts)
}

func (repo *productRepository) Search(ctx context.Context, keyword string) ([]*entity.Product, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	query := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
	}}

	opts := options.Find().SetProjection(withoutPhoto)

	return repo.findProducts(ctx, query, opts)
}

func (repo *productRepository) FindRelated(ctx context.Context, categoryID, excludeID primitive.ObjectID, limit int) ([]*entity.Product, error) {
	query := bson.M{
		"category": categoryID,
		"_id":      bson.M{"$ne": excludeID},
	}

	opts := options.Find().
		SetProjection(withoutPhoto).
		SetLimit(int64(limit))

	return repo.findProducts(ctx, query, opts)
}

func (repo *productRepository) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]*entity.Product, error) {
	opts := options.Find().SetProjection(withoutPhoto)

	return repo.findProducts(ctx, bson.M{"category": categoryID}, opts)
}

func (repo *productRepository) findProducts(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*entity.Product, error) {
	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := []*entity.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	return products, nil
}
