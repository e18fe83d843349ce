package adapters

import (
	"context"

	"go-inventory-api/internal/cart"
	"go-inventory-api/internal/catalog"
)

// CartItemSource adapts the catalog to the cart's ItemSource port.
type CartItemSource struct {
	catalog catalog.Service
}

func NewCartItemSource(c catalog.Service) *CartItemSource {
	return &CartItemSource{catalog: c}
}

func (a *CartItemSource) LineItem(ctx context.Context, itemID string) (cart.LineItem, error) {
	item, err := a.catalog.Get(ctx, itemID)
	if err != nil {
		return cart.LineItem{}, err
	}

	return cart.LineItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		UnitPrice:   item.Price,
		ImageRef:    item.ImageRef,
	}, nil
}
