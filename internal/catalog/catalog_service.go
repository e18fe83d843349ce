package catalog

import (
	"context"
	"strings"
	"sync"

	catalogerrors "go-inventory-api/internal/catalog/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a product in the inventory catalog. ImageRef is an opaque key
// into an external asset store; the catalog never loads or decodes it.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Count       int
	ImageRef    string
}

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) []Item
	Search(ctx context.Context, query string) []Item
	Get(ctx context.Context, itemID string) (Item, error)
}

// service keeps the catalog in memory, insertion-ordered. Catalog state
// does not survive a restart; it is re-seeded on startup.
type service struct {
	mu    sync.RWMutex
	items []Item
	byID  map[string]int
}

func NewService(seed []Item) Service {
	s := &service{byID: make(map[string]int)}
	for _, item := range seed {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		s.byID[item.ID] = len(s.items)
		s.items = append(s.items, item)
	}
	return s
}

func (s *service) List(ctx context.Context) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Search filters by substring match on the item name. An empty query
// returns the full catalog.
func (s *service) Search(ctx context.Context, query string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if query == "" {
		out := make([]Item, len(s.items))
		copy(out, s.items)
		return out
	}

	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if strings.Contains(item.Name, query) {
			out = append(out, item)
		}
	}
	return out
}

func (s *service) Get(ctx context.Context, itemID string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[itemID]
	if !ok {
		return Item{}, catalogerrors.ErrItemNotFound
	}
	return s.items[idx], nil
}

// DefaultSeed is the demo inventory loaded when no other source is wired.
func DefaultSeed() []Item {
	return []Item{
		{Name: "Apple", Description: "Fresh red apple", Price: decimal.RequireFromString("0.99"), Count: 120, ImageRef: "assets/apple"},
		{Name: "Bread", Description: "Whole grain loaf", Price: decimal.RequireFromString("2.50"), Count: 40, ImageRef: "assets/bread"},
		{Name: "Milk", Description: "Whole milk, 1 gallon", Price: decimal.RequireFromString("1.50"), Count: 60, ImageRef: "assets/milk"},
	}
}
