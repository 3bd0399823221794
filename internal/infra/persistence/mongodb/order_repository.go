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

// orderRepository implements the repository.OrderRepository interface. Read
// paths resolve product and buyer references with follow-up queries, the
// document-store equivalent of populate.
type orderRepository struct {
	orders   *mongo.Collection
	products *mongo.Collection
	users    *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{
		orders:   db.Collection(ordersCollection),
		products: db.Collection(productsCollection),
		users:    db.Collection(usersCollection),
	}
}

func (repo *orderRepository) FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]*entity.OrderView, error) {
	return repo.findOrders(ctx, bson.M{"buyer": buyerID}, nil)
}

func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.OrderView, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	return repo.findOrders(ctx, bson.M{}, opts)
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.OrderStatus) (*entity.Order, error) {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order entity.Order
	err := repo.orders.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	return &order, nil
}

func (repo *orderRepository) findOrders(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*entity.OrderView, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = repo.orders.Find(ctx, query, opts)
	} else {
		cursor, err = repo.orders.Find(ctx, query)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	var orders []*entity.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	views := make([]*entity.OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := repo.resolve(ctx, order)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// resolve swaps the raw references for the documents the client consumes:
// products without photos and the buyer trimmed to its display name.
// Dangling references are dropped rather than failing the whole listing.
func (repo *orderRepository) resolve(ctx context.Context, order *entity.Order) (*entity.OrderView, error) {
	view := &entity.OrderView{
		ID:        order.ID,
		Products:  []*entity.Product{},
		Payment:   order.Payment,
		Buyer:     entity.OrderBuyer{ID: order.Buyer},
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}

	if len(order.Products) > 0 {
		opts := options.Find().SetProjection(withoutPhoto)
		cursor, err := repo.products.Find(ctx, bson.M{"_id": bson.M{"$in": order.Products}}, opts)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve order products")
		}

		var products []*entity.Product
		if err := cursor.All(ctx, &products); err != nil {
			return nil, errors.Wrap(err, "failed to decode order products")
		}

		byID := make(map[primitive.ObjectID]*entity.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}

		// Preserve the order the products were purchased in.
		for _, id := range order.Products {
			if product, ok := byID[id]; ok {
				view.Products = append(view.Products, product)
			}
		}
	}

	var buyer entity.User
	opts := options.FindOne().SetProjection(bson.M{"name": 1})
	err := repo.users.FindOne(ctx, bson.M{"_id": order.Buyer}, opts).Decode(&buyer)
	if err == nil {
		view.Buyer.Name = buyer.Name
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(err, "failed to resolve order buyer")
	}

	return view, nil
}
