package model

import (
	"testing"

	"destiny/internal/xdecimal"
)

func TestDefaultSymbolRuleIsPermissive(t *testing.T) {
	r := DefaultSymbolRule()
	if r.OrderMax != 200 {
		t.Errorf("OrderMax = %d, want 200", r.OrderMax)
	}
	if !r.PriceMin.GreaterThan(xdecimal.Zero) {
		t.Error("PriceMin should be a small positive tick, not zero")
	}
	if !r.PriceMax.GreaterThan(r.PriceMin) {
		t.Error("PriceMax should be far larger than PriceMin")
	}
	if !r.SizeTick.Equal(r.PriceTick) {
		t.Error("SizeTick and PriceTick should both default to the same tiny tick")
	}
}

func TestTradeSideOpposite(t *testing.T) {
	if SideLong.Opposite() != SideShort {
		t.Error("SideLong.Opposite() != SideShort")
	}
	if SideShort.Opposite() != SideLong {
		t.Error("SideShort.Opposite() != SideLong")
	}
}

func TestTradeSideSign(t *testing.T) {
	if SideLong.Sign() != 1 {
		t.Errorf("SideLong.Sign() = %d, want 1", SideLong.Sign())
	}
	if SideShort.Sign() != -1 {
		t.Errorf("SideShort.Sign() = %d, want -1", SideShort.Sign())
	}
}

func TestOrderStatusIsLive(t *testing.T) {
	live := []OrderStatus{OrderStatusCreated, OrderStatusSubmitted}
	for _, s := range live {
		if !s.IsLive() {
			t.Errorf("%s.IsLive() = false, want true", s)
		}
	}
	dead := []OrderStatus{OrderStatusFilled, OrderStatusCanceled, OrderStatusRejected, OrderStatusPartialFilled, OrderStatusCanceling}
	for _, s := range dead {
		if s.IsLive() {
			t.Errorf("%s.IsLive() = true, want false", s)
		}
	}
}
