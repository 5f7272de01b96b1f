package catalog

import (
	"errors"
	"fmt"
)

var ErrUnknownCategory = errors.New("invalid category")

// Category is the storefront partition a product belongs to. Each category
// lives in its own MongoDB collection.
type Category string

const (
	OfficeStationaries Category = "Office Stationaries"
	ITServices         Category = "IT Services and Repair"
	PrintDemands       Category = "Print and Demands"
)

// Collection names a MongoDB collection holding one category of products.
type Collection string

const (
	ProductsCollection     Collection = "products"
	ITServicesCollection   Collection = "itservices"
	PrintDemandsCollection Collection = "printdemands"
)

var collections = map[Category]Collection{
	OfficeStationaries: ProductsCollection,
	ITServices:         ITServicesCollection,
	PrintDemands:       PrintDemandsCollection,
}

// Resolve maps a category label to the collection that stores it.
func Resolve(label string) (Collection, error) {
	c, ok := collections[Category(label)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}
	return c, nil
}

// Categories lists the known categories in display order.
func Categories() []Category {
	return []Category{OfficeStationaries, ITServices, PrintDemands}
}
