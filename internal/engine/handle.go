package engine

import (
	"time"

	"destiny/internal/model"
	"destiny/internal/store"
	"destiny/internal/xdecimal"
)

// Handle is the read/write facade a strategy callback uses to observe and
// act on the store. It is only valid for the duration of the callback that
// received it.
type Handle interface {
	Time() time.Time

	PriceMark(symbol string) (xdecimal.Decimal, error)
	PriceLast(symbol string) (xdecimal.Decimal, error)
	PriceIndex(symbol string) (xdecimal.Decimal, error)
	PriceSettlement(symbol string) (xdecimal.Decimal, error)
	TimeSettlement(symbol string) (time.Time, error)
	Rule(symbol string) (model.SymbolRule, error)

	Cash() xdecimal.Decimal
	CashAvailable() xdecimal.Decimal
	CashFrozen() xdecimal.Decimal
	Margin() xdecimal.Decimal
	PnL() xdecimal.Decimal

	LongSize(symbol string) (xdecimal.Decimal, error)
	LongPrice(symbol string) (xdecimal.Decimal, error)
	LongMargin(symbol string) (xdecimal.Decimal, error)
	LongPnL(symbol string) (xdecimal.Decimal, error)
	LongSizeAvailable(symbol string) (xdecimal.Decimal, error)
	LongSizeFrozen(symbol string) (xdecimal.Decimal, error)

	ShortSize(symbol string) (xdecimal.Decimal, error)
	ShortPrice(symbol string) (xdecimal.Decimal, error)
	ShortMargin(symbol string) (xdecimal.Decimal, error)
	ShortPnL(symbol string) (xdecimal.Decimal, error)
	ShortSizeAvailable(symbol string) (xdecimal.Decimal, error)
	ShortSizeFrozen(symbol string) (xdecimal.Decimal, error)

	Order(symbol, id string) (model.Order, error)
	Orders(symbol string) ([]model.Order, error)
	OrdersLongOpen(symbol string) ([]model.Order, error)
	OrdersLongClose(symbol string) ([]model.Order, error)
	OrdersShortOpen(symbol string) ([]model.Order, error)
	OrdersShortClose(symbol string) ([]model.Order, error)

	Leverage(symbol string) (uint32, error)
	LeverageSet(symbol string, leverage uint32) error

	SymbolInit(symbol string, rule model.SymbolRule) error

	OpenLongLimit(symbol string, price, size xdecimal.Decimal) (string, error)
	OpenLongMarket(symbol string, size xdecimal.Decimal) (string, error)
	OpenShortLimit(symbol string, price, size xdecimal.Decimal) (string, error)
	OpenShortMarket(symbol string, size xdecimal.Decimal) (string, error)
	CloseLongLimit(symbol string, price, size xdecimal.Decimal) (string, error)
	CloseLongMarket(symbol string, size xdecimal.Decimal) (string, error)
	CloseShortLimit(symbol string, price, size xdecimal.Decimal) (string, error)
	CloseShortMarket(symbol string, size xdecimal.Decimal) (string, error)

	OrderClose(symbol, id string) error
	OrderCancelMany(symbol string, ids []string) error
}

// storeHandle is the concrete Handle backed by a *store.Store.
type storeHandle struct {
	store *store.Store
}

func newHandle(s *store.Store) Handle { return &storeHandle{store: s} }

func (h *storeHandle) Time() time.Time { return h.store.Time() }

func (h *storeHandle) PriceMark(symbol string) (xdecimal.Decimal, error)  { return h.store.PriceMark(symbol) }
func (h *storeHandle) PriceLast(symbol string) (xdecimal.Decimal, error)  { return h.store.PriceLast(symbol) }
func (h *storeHandle) PriceIndex(symbol string) (xdecimal.Decimal, error) { return h.store.PriceIndex(symbol) }
func (h *storeHandle) PriceSettlement(symbol string) (xdecimal.Decimal, error) {
	return h.store.PriceSettlement(symbol)
}
func (h *storeHandle) TimeSettlement(symbol string) (time.Time, error) {
	return h.store.TimeSettlement(symbol)
}
func (h *storeHandle) Rule(symbol string) (model.SymbolRule, error) { return h.store.Rule(symbol) }

func (h *storeHandle) Cash() xdecimal.Decimal          { return h.store.Cash() }
func (h *storeHandle) CashAvailable() xdecimal.Decimal { return h.store.CashAvailable() }
func (h *storeHandle) CashFrozen() xdecimal.Decimal    { return h.store.CashFrozen() }
func (h *storeHandle) Margin() xdecimal.Decimal        { return h.store.Margin() }
func (h *storeHandle) PnL() xdecimal.Decimal           { return h.store.PnL() }

func (h *storeHandle) LongSize(symbol string) (xdecimal.Decimal, error)  { return h.store.LongSize(symbol) }
func (h *storeHandle) LongPrice(symbol string) (xdecimal.Decimal, error) { return h.store.LongPrice(symbol) }
func (h *storeHandle) LongMargin(symbol string) (xdecimal.Decimal, error) {
	return h.store.LongMargin(symbol)
}
func (h *storeHandle) LongPnL(symbol string) (xdecimal.Decimal, error) { return h.store.LongPnL(symbol) }
func (h *storeHandle) LongSizeAvailable(symbol string) (xdecimal.Decimal, error) {
	return h.store.LongSizeAvailable(symbol)
}
func (h *storeHandle) LongSizeFrozen(symbol string) (xdecimal.Decimal, error) {
	return h.store.LongSizeFrozen(symbol)
}

func (h *storeHandle) ShortSize(symbol string) (xdecimal.Decimal, error) {
	return h.store.ShortSize(symbol)
}
func (h *storeHandle) ShortPrice(symbol string) (xdecimal.Decimal, error) {
	return h.store.ShortPrice(symbol)
}
func (h *storeHandle) ShortMargin(symbol string) (xdecimal.Decimal, error) {
	return h.store.ShortMargin(symbol)
}
func (h *storeHandle) ShortPnL(symbol string) (xdecimal.Decimal, error) { return h.store.ShortPnL(symbol) }
func (h *storeHandle) ShortSizeAvailable(symbol string) (xdecimal.Decimal, error) {
	return h.store.ShortSizeAvailable(symbol)
}
func (h *storeHandle) ShortSizeFrozen(symbol string) (xdecimal.Decimal, error) {
	return h.store.ShortSizeFrozen(symbol)
}

func (h *storeHandle) Order(symbol, id string) (model.Order, error) { return h.store.Order(symbol, id) }
func (h *storeHandle) Orders(symbol string) ([]model.Order, error)  { return h.store.Orders(symbol) }
func (h *storeHandle) OrdersLongOpen(symbol string) ([]model.Order, error) {
	return h.store.OrdersLongOpen(symbol)
}
func (h *storeHandle) OrdersLongClose(symbol string) ([]model.Order, error) {
	return h.store.OrdersLongClose(symbol)
}
func (h *storeHandle) OrdersShortOpen(symbol string) ([]model.Order, error) {
	return h.store.OrdersShortOpen(symbol)
}
func (h *storeHandle) OrdersShortClose(symbol string) ([]model.Order, error) {
	return h.store.OrdersShortClose(symbol)
}

func (h *storeHandle) Leverage(symbol string) (uint32, error) { return h.store.Leverage(symbol) }
func (h *storeHandle) LeverageSet(symbol string, leverage uint32) error {
	return h.store.LeverageSet(symbol, leverage)
}

func (h *storeHandle) SymbolInit(symbol string, rule model.SymbolRule) error {
	return h.store.SymbolInit(symbol, rule)
}

func (h *storeHandle) OpenLongLimit(symbol string, price, size xdecimal.Decimal) (string, error) {
	return h.store.Open(symbol, model.SideLong, model.OrderTypeLimit, price, size, h.store.Time())
}
func (h *storeHandle) OpenLongMarket(symbol string, size xdecimal.Decimal) (string, error) {
	return h.store.Open(symbol, model.SideLong, model.OrderTypeMarket, xdecimal.Zero, size, h.store.Time())
}
func (h *storeHandle) OpenShortLimit(symbol string, price, size xdecimal.Decimal) (string, error) {
	return h.store.Open(symbol, model.SideShort, model.OrderTypeLimit, price, size, h.store.Time())
}
func (h *storeHandle) OpenShortMarket(symbol string, size xdecimal.Decimal) (string, error) {
	return h.store.Open(symbol, model.SideShort, model.OrderTypeMarket, xdecimal.Zero, size, h.store.Time())
}
func (h *storeHandle) CloseLongLimit(symbol string, price, size xdecimal.Decimal) (string, error) {
	return h.store.Close(symbol, model.SideLong, model.OrderTypeLimit, price, size, h.store.Time())
}
func (h *storeHandle) CloseLongMarket(symbol string, size xdecimal.Decimal) (string, error) {
	return h.store.Close(symbol, model.SideLong, model.OrderTypeMarket, xdecimal.Zero, size, h.store.Time())
}
func (h *storeHandle) CloseShortLimit(symbol string, price, size xdecimal.Decimal) (string, error) {
	return h.store.Close(symbol, model.SideShort, model.OrderTypeLimit, price, size, h.store.Time())
}
func (h *storeHandle) CloseShortMarket(symbol string, size xdecimal.Decimal) (string, error) {
	return h.store.Close(symbol, model.SideShort, model.OrderTypeMarket, xdecimal.Zero, size, h.store.Time())
}

func (h *storeHandle) OrderClose(symbol, id string) error { return h.store.OrderClose(symbol, id) }
func (h *storeHandle) OrderCancelMany(symbol string, ids []string) error {
	return h.store.OrderCancelMany(symbol, ids)
}
