package cart

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"boldserve-backend/internal/catalog"
)

// Repository persists whole cart documents. FindByUser returns
// ErrCartNotFound when the user has no cart yet; Save inserts or replaces.
type Repository interface {
	FindByUser(ctx context.Context, userID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
}

// ProductFinder loads a product from a category collection and returns
// catalog.ErrProductNotFound for ids that are gone.
type ProductFinder interface {
	FindProduct(ctx context.Context, coll catalog.Collection, id primitive.ObjectID) (catalog.Product, error)
}

type Service struct {
	carts    Repository
	products ProductFinder
	log      *zap.Logger
}

func NewService(carts Repository, products ProductFinder, log *zap.Logger) *Service {
	return &Service{carts: carts, products: products, log: log}
}

type resolvedLine struct {
	item    LineItem
	product catalog.Product
}

// resolve joins every line with its live product. Lines whose category or
// product no longer resolves are dropped; the stored cart is left as is.
func (s *Service) resolve(ctx context.Context, items []LineItem) ([]resolvedLine, error) {
	found := make([]*resolvedLine, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			coll, err := catalog.Resolve(item.Category)
			if err != nil {
				return nil
			}
			p, err := s.products.FindProduct(gctx, coll, item.ProductID)
			if errors.Is(err, catalog.ErrProductNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("find product %s: %w", item.ProductID.Hex(), err)
			}
			found[i] = &resolvedLine{item: item, product: p}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lines := make([]resolvedLine, 0, len(items))
	for _, l := range found {
		if l != nil {
			lines = append(lines, *l)
		}
	}
	if dropped := len(items) - len(lines); dropped > 0 {
		s.log.Debug("dropped dangling cart lines", zap.Int("count", dropped))
	}
	return lines, nil
}

// loadLines returns the resolved lines of the user's cart, or none when the
// user has no cart.
func (s *Service) loadLines(ctx context.Context, userID string) ([]resolvedLine, error) {
	c, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, ErrCartNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return s.resolve(ctx, c.Items)
}

// Items returns the materialized view of the user's cart in stored order.
func (s *Service) Items(ctx context.Context, userID string) ([]ViewItem, error) {
	lines, err := s.loadLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := make([]ViewItem, 0, len(lines))
	for _, l := range lines {
		view = append(view, ViewItem{
			ProductID:     l.item.ProductID,
			ProductName:   l.product.DisplayName(),
			Price:         l.product.Price,
			Quantity:      l.item.Quantity,
			StockQuantity: l.product.StockQuantity,
			Image:         l.product.Image,
			Category:      l.item.Category,
		})
	}
	return view, nil
}

// Summary prices the user's cart at live catalog prices.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	lines, err := s.loadLines(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	priced := make([]PricedLine, 0, len(lines))
	for _, l := range lines {
		priced = append(priced, PricedLine{Price: l.product.Price, Quantity: l.item.Quantity})
	}
	return Summarize(priced), nil
}

// AddItem puts quantity units of a product into the user's cart, creating the
// cart on first use. An existing (product, category) line is incremented.
func (s *Service) AddItem(ctx context.Context, userID, productID string, quantity int, category string) error {
	coll, err := catalog.Resolve(category)
	if err != nil {
		return err
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return ErrProductNotFound
	}
	product, err := s.products.FindProduct(ctx, coll, oid)
	if err != nil {
		return err
	}

	c, err := s.carts.FindByUser(ctx, userID)
	switch {
	case errors.Is(err, ErrCartNotFound):
		c = &Cart{UserID: userID}
	case err != nil:
		return fmt.Errorf("load cart: %w", err)
	}

	if i := c.indexOfID(oid, category); i >= 0 {
		c.Items[i].Quantity += quantity
	} else {
		c.Items = append(c.Items, LineItem{
			ProductID: oid,
			Quantity:  quantity,
			Category:  category,
			Price:     product.Price,
		})
	}

	if err := s.carts.Save(ctx, c); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	s.log.Info("item added to cart",
		zap.String("user_id", userID),
		zap.String("product_id", productID),
		zap.String("category", category),
		zap.Int("quantity", quantity))
	return nil
}

// UpdateQuantity overwrites the quantity of an existing (product, category)
// line. A missing cart or line is reported before a bad quantity.
func (s *Service) UpdateQuantity(ctx context.Context, userID, productID, category string, quantity int) error {
	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return err
		}
		return fmt.Errorf("load cart: %w", err)
	}

	i := c.indexOf(productID, category)
	if i < 0 {
		return ErrItemNotFound
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	c.Items[i].Quantity = quantity

	if err := s.carts.Save(ctx, c); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	s.log.Info("cart quantity updated",
		zap.String("user_id", userID),
		zap.String("product_id", productID),
		zap.Int("quantity", quantity))
	return nil
}

// RemoveItem drops every line for productID whatever its category.
func (s *Service) RemoveItem(ctx context.Context, userID, productID string) error {
	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return err
		}
		return fmt.Errorf("load cart: %w", err)
	}

	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID.Hex() != productID {
			kept = append(kept, item)
		}
	}
	removed := len(c.Items) - len(kept)
	c.Items = kept

	if err := s.carts.Save(ctx, c); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	s.log.Info("cart item removed",
		zap.String("user_id", userID),
		zap.String("product_id", productID),
		zap.Int("lines", removed))
	return nil
}
