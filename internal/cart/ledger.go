package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is a single cart entry. Fields other than Quantity are frozen
// at the moment the item is first added; later catalog changes do not
// retroactively affect a line already in a ledger.
type LineItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	ImageRef    string          `json:"imageRef"`
}

func NewLineItem(name, description string, unitPrice decimal.Decimal, imageRef string) LineItem {
	return LineItem{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		UnitPrice:   unitPrice,
		ImageRef:    imageRef,
	}
}

// Ledger tracks the items of one shopping session and their aggregate
// price. Lines keep insertion order for display. The total is folded from
// scratch after every mutation rather than delta-tracked, so it can never
// drift from the lines; at tens of items the refold cost is irrelevant.
//
// A Ledger has no internal locking. It assumes a single writer, one
// active shopping session; callers invoking it from concurrent contexts
// must serialize access themselves (the cart service does).
type Ledger struct {
	lines map[string]*LineItem
	order []string
	total decimal.Decimal
}

func NewLedger() *Ledger {
	return &Ledger{
		lines: make(map[string]*LineItem),
		total: decimal.Zero,
	}
}

// AddItem inserts the item with the given quantity, or increments the
// stored quantity when a line with the same ID already exists. A
// non-positive quantity is clamped to 1.
func (l *Ledger) AddItem(item LineItem, qty int) {
	if qty < 1 {
		qty = 1
	}

	if line, ok := l.lines[item.ID]; ok {
		line.Quantity += qty
	} else {
		item.Quantity = qty
		l.lines[item.ID] = &item
		l.order = append(l.order, item.ID)
	}

	l.recompute()
}

// RemoveItem decrements the line's quantity by one, deleting the line
// entirely when it would reach zero. An unknown ID is a no-op.
func (l *Ledger) RemoveItem(id string) {
	line, ok := l.lines[id]
	if !ok {
		return
	}

	if line.Quantity > 1 {
		line.Quantity--
	} else {
		delete(l.lines, id)
		for i, lid := range l.order {
			if lid == id {
				l.order = append(l.order[:i], l.order[i+1:]...)
				break
			}
		}
	}

	l.recompute()
}

// FinalizePurchase clears all lines and resets the total, unconditionally.
// Payment, receipts and stock adjustments happen elsewhere, if at all.
func (l *Ledger) FinalizePurchase() {
	l.lines = make(map[string]*LineItem)
	l.order = nil
	l.total = decimal.Zero
}

// Total returns the cached aggregate. Reads never refold.
func (l *Ledger) Total() decimal.Decimal {
	return l.total
}

// Lines returns a snapshot of the current lines in insertion order.
func (l *Ledger) Lines() []LineItem {
	out := make([]LineItem, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.lines[id])
	}
	return out
}

// Len reports the number of distinct lines.
func (l *Ledger) Len() int {
	return len(l.lines)
}

func (l *Ledger) recompute() {
	total := decimal.Zero
	for _, line := range l.lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	l.total = total
}
