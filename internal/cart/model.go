package cart

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LineItem references a product in one of the catalog collections. Price is
// the unit price when the line was first added; totals always use the live
// catalog price.
type LineItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Category  string             `bson:"category" json:"category"`
	Price     float64            `bson:"price" json:"price"`
}

// Cart holds at most one line per (product, category) pair.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId,omitempty" json:"userId,omitempty"`
	Items     []LineItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// indexOf matches the raw id string, so a differently cased id finds nothing.
func (c *Cart) indexOf(productID, category string) int {
	for i, item := range c.Items {
		if item.ProductID.Hex() == productID && item.Category == category {
			return i
		}
	}
	return -1
}

func (c *Cart) indexOfID(id primitive.ObjectID, category string) int {
	for i, item := range c.Items {
		if item.ProductID == id && item.Category == category {
			return i
		}
	}
	return -1
}

// ViewItem is a line item joined with its live catalog record.
type ViewItem struct {
	ProductID     primitive.ObjectID `json:"_id"`
	ProductName   string             `json:"productName"`
	Price         float64            `json:"price"`
	Quantity      int                `json:"quantity"`
	StockQuantity int                `json:"stockQuantity"`
	Image         string             `json:"image"`
	Category      string             `json:"category"`
}
