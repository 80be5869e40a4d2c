package model

import (
	"time"

	"destiny/internal/xdecimal"
)

// Order is a single resting or just-created order. Filled and cancelled
// orders are removed from their symbol's OrderIndex rather than kept around
// with a terminal status.
type Order struct {
	ID         string
	Symbol     string
	Type       OrderType
	Side       TradeSide
	ReduceOnly bool
	Status     OrderStatus
	Price      xdecimal.Decimal // 0 for market orders
	Size       xdecimal.Decimal
	DealPrice  xdecimal.Decimal
	DealSize   xdecimal.Decimal
	DealFee    xdecimal.Decimal
	CreateTime time.Time
}

// Clone returns a value copy. Order holds only plain values and immutable
// decimals, so this is the same as a plain assignment — it exists so callers reading through
// OrderIndex never get a pointer into the live store.
func (o Order) Clone() Order { return o }

// Margin is the frozen margin an order holds against available cash.
// Reduce-only orders freeze no cash margin: they freeze position size
// instead, tracked separately by LongSizeFrozen/ShortSizeFrozen.
func (o Order) Margin(mark xdecimal.Decimal, leverage uint32) xdecimal.Decimal {
	if o.ReduceOnly {
		return xdecimal.Zero
	}
	remaining := o.Size.Sub(o.DealSize)
	amount := remaining.Mul(mark)
	return amount.Div(xdecimal.NewFromInt(int64(leverage)))
}

// OrderIndex is an insertion-ordered map from order ID to *Order. The
// kernel relies on insertion-order iteration for reproducibility:
// crossing, filtering and listing all walk orders in the order they were
// created in, never in map hash order.
type OrderIndex struct {
	ids []string
	byID map[string]*Order
}

// NewOrderIndex returns an empty index.
func NewOrderIndex() *OrderIndex {
	return &OrderIndex{byID: make(map[string]*Order)}
}

// Insert adds or replaces an order. A replace (same ID) keeps its original
// position in iteration order.
func (idx *OrderIndex) Insert(o *Order) {
	if _, exists := idx.byID[o.ID]; !exists {
		idx.ids = append(idx.ids, o.ID)
	}
	idx.byID[o.ID] = o
}

// Delete removes an order by ID. Absent IDs are silently ignored.
func (idx *OrderIndex) Delete(id string) {
	if _, ok := idx.byID[id]; !ok {
		return
	}
	delete(idx.byID, id)
	for i, existing := range idx.ids {
		if existing == id {
			idx.ids = append(idx.ids[:i], idx.ids[i+1:]...)
			break
		}
	}
}

// Get returns the order for id, if live.
func (idx *OrderIndex) Get(id string) (*Order, bool) {
	o, ok := idx.byID[id]
	return o, ok
}

// Len returns the number of live orders.
func (idx *OrderIndex) Len() int { return len(idx.ids) }

// All returns cloned orders in insertion order.
func (idx *OrderIndex) All() []Order {
	out := make([]Order, 0, len(idx.ids))
	for _, id := range idx.ids {
		out = append(out, idx.byID[id].Clone())
	}
	return out
}

// Filter returns cloned orders in insertion order matching pred.
func (idx *OrderIndex) Filter(pred func(*Order) bool) []Order {
	out := make([]Order, 0)
	for _, id := range idx.ids {
		o := idx.byID[id]
		if pred(o) {
			out = append(out, o.Clone())
		}
	}
	return out
}

// Live returns the *Order pointers in insertion order, for internal
// mutation during crossing. Callers outside the store package must never
// retain or mutate these directly — they exist for the matcher only.
func (idx *OrderIndex) Live() []*Order {
	out := make([]*Order, 0, len(idx.ids))
	for _, id := range idx.ids {
		out = append(out, idx.byID[id])
	}
	return out
}
