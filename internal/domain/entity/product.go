package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxPhotoBytes caps the stored product photo size. Larger uploads are
// rejected at the boundary.
const MaxPhotoBytes = 1 << 20

// Photo is an opaque image blob stored inline with its product.
type Photo struct {
	Data        []byte `bson:"data,omitempty" json:"-"`
	ContentType string `bson:"contentType,omitempty" json:"-"`
}

// Product is a purchasable item. All core fields are required at creation
// and update; the photo content type is preserved alongside the bytes.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    primitive.ObjectID `bson:"category" json:"category"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Photo       Photo              `bson:"photo" json:"-"`
	Shipping    bool               `bson:"shipping" json:"shipping"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductView is a product with its category reference resolved for API
// responses. The outer Category field shadows the embedded reference when
// marshaled, so the client sees the full category document. A dangling
// reference resolves to null.
type ProductView struct {
	Product
	Category *Category `json:"category"`
}

// PriceRange is an inclusive price filter.
type PriceRange struct {
	Min float64
	Max float64
}
