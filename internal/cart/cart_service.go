package cart

import (
	"context"
	"sync"

	carterrors "go-inventory-api/internal/cart/errors"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	AddItem(ctx context.Context, userID string, req AddItemRequest) error
	RemoveItem(ctx context.Context, userID, itemID string) error
	Detail(ctx context.Context, userID string) (CartDetailResponse, error)
	Count(ctx context.Context, userID string) (int, error)
	Finalize(ctx context.Context, userID string) error
}

// ItemSource supplies catalog items to the cart. Fields on the returned
// LineItem are the catalog's current values; the ledger freezes them at
// first insertion.
type ItemSource interface {
	LineItem(ctx context.Context, itemID string) (LineItem, error)
}

type service struct {
	mu       sync.Mutex
	ledgers  map[string]*Ledger
	source   ItemSource
	validate *validator.Validate
}

func NewService(source ItemSource) Service {
	return &service{
		ledgers:  make(map[string]*Ledger),
		source:   source,
		validate: validator.New(),
	}
}

// ledger returns the user's session ledger, creating it on first use.
// Caller must hold s.mu.
func (s *service) ledger(userID string) *Ledger {
	l, ok := s.ledgers[userID]
	if !ok {
		l = NewLedger()
		s.ledgers[userID] = l
	}
	return l
}

func (s *service) AddItem(ctx context.Context, userID string, req AddItemRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return carterrors.MapValidationError(err)
	}

	item, err := s.source.LineItem(ctx, req.ItemID)
	if err != nil {
		return carterrors.ErrItemNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// qty 0 means "not specified": the ledger clamps it to 1,
	// matching the tap-to-add behavior.
	s.ledger(userID).AddItem(item, req.Qty)
	return nil
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// removing an unknown item is a no-op, never an error
	s.ledger(userID).RemoveItem(itemID)
	return nil
}

func (s *service) Detail(ctx context.Context, userID string) (CartDetailResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.ledger(userID)
	lines := l.Lines()

	items := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, CartLineResponse{
			ID:          line.ID,
			Name:        line.Name,
			Description: line.Description,
			UnitPrice:   line.UnitPrice.StringFixed(2),
			Qty:         line.Quantity,
			ImageRef:    line.ImageRef,
		})
	}

	return CartDetailResponse{
		Items: items,
		Total: l.Total().StringFixed(2),
	}, nil
}

func (s *service) Count(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger(userID).Len(), nil
}

func (s *service) Finalize(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger(userID).FinalizePurchase()
	return nil
}
