package cart

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"boldserve-backend/internal/catalog"
)

// memoryCarts keeps deep copies so the service never shares state with the
// stored document, the same way a round trip through MongoDB behaves.
type memoryCarts struct {
	mu        sync.Mutex
	carts     map[string]Cart
	saveCalls int
	findErr   error
	saveErr   error
}

func newMemoryCarts() *memoryCarts {
	return &memoryCarts{carts: make(map[string]Cart)}
}

func (m *memoryCarts) FindByUser(_ context.Context, userID string) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	c, ok := m.carts[userID]
	if !ok {
		return nil, ErrCartNotFound
	}
	c.Items = append([]LineItem(nil), c.Items...)
	return &c, nil
}

func (m *memoryCarts) Save(_ context.Context, c *Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	stored := *c
	stored.Items = append([]LineItem(nil), c.Items...)
	m.carts[c.UserID] = stored
	return nil
}

func (m *memoryCarts) put(c Cart) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[c.UserID] = c
}

func (m *memoryCarts) get(userID string) (Cart, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[userID]
	return c, ok
}

type mockProducts struct {
	mock.Mock
}

func (m *mockProducts) FindProduct(ctx context.Context, coll catalog.Collection, id primitive.ObjectID) (catalog.Product, error) {
	args := m.Called(ctx, coll, id)
	return args.Get(0).(catalog.Product), args.Error(1)
}
