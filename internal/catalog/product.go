package catalog

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog entry. Office stationery documents carry productName,
// IT service documents carry name; DisplayName hides the difference.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category      string             `bson:"category" json:"category"`
	SubCategory   string             `bson:"subCategory" json:"subCategory"`
	ProductName   string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	StockQuantity int                `bson:"stockQuantity" json:"stockQuantity"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Offers        string             `bson:"offers,omitempty" json:"offers,omitempty"`
	Review        string             `bson:"review,omitempty" json:"review,omitempty"`
	Rating        float64            `bson:"rating" json:"rating"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

func (p Product) DisplayName() string {
	if p.ProductName != "" {
		return p.ProductName
	}
	return p.Name
}
