package model

import (
	"testing"

	"destiny/internal/xdecimal"
)

func TestOrderIndexInsertionOrderAndDelete(t *testing.T) {
	idx := NewOrderIndex()
	idx.Insert(&Order{ID: "a", Symbol: "ETHUSDT"})
	idx.Insert(&Order{ID: "b", Symbol: "ETHUSDT"})
	idx.Insert(&Order{ID: "c", Symbol: "ETHUSDT"})

	idx.Delete("b")

	got := idx.All()
	if len(got) != 2 {
		t.Fatalf("All() len = %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("All() = %v, want [a c]", got)
	}
	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
	if _, ok := idx.Get("b"); ok {
		t.Error("Get(b) = ok after delete")
	}
}

func TestOrderIndexDeleteAbsentIDIsNoop(t *testing.T) {
	idx := NewOrderIndex()
	idx.Insert(&Order{ID: "a"})
	idx.Delete("missing")
	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1", idx.Len())
	}
}

func TestOrderIndexReinsertKeepsOriginalPosition(t *testing.T) {
	idx := NewOrderIndex()
	idx.Insert(&Order{ID: "a", Status: OrderStatusCreated})
	idx.Insert(&Order{ID: "b", Status: OrderStatusCreated})
	idx.Insert(&Order{ID: "a", Status: OrderStatusFilled})

	got := idx.All()
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("All() = %v, want [a b]", got)
	}
	if got[0].Status != OrderStatusFilled {
		t.Errorf("reinserted order status = %s, want filled", got[0].Status)
	}
}

func TestOrderIndexFilter(t *testing.T) {
	idx := NewOrderIndex()
	idx.Insert(&Order{ID: "a", Side: SideLong})
	idx.Insert(&Order{ID: "b", Side: SideShort})
	idx.Insert(&Order{ID: "c", Side: SideLong})

	got := idx.Filter(func(o *Order) bool { return o.Side == SideLong })
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("Filter(long) = %v, want [a c]", got)
	}
}

func TestOrderIndexLiveReturnsMutablePointers(t *testing.T) {
	idx := NewOrderIndex()
	idx.Insert(&Order{ID: "a", DealSize: xdecimal.Zero})

	live := idx.Live()
	if len(live) != 1 {
		t.Fatalf("Live() len = %d, want 1", len(live))
	}
	live[0].Status = OrderStatusFilled

	o, _ := idx.Get("a")
	if o.Status != OrderStatusFilled {
		t.Error("mutation through Live() pointer did not propagate")
	}
}

func TestOrderMarginReduceOnlyIsZero(t *testing.T) {
	o := Order{ReduceOnly: true, Size: dec(t, "1"), DealSize: xdecimal.Zero}
	if m := o.Margin(dec(t, "2000"), 1); !m.IsZero() {
		t.Errorf("Margin() = %s, want 0 for reduce-only order", m)
	}
}

func TestOrderMarginAccountsForPartialFill(t *testing.T) {
	o := Order{Size: dec(t, "2"), DealSize: dec(t, "0.5")}
	// remaining = 1.5, notional = 1.5*2000 = 3000, margin at leverage 2 = 1500
	got := o.Margin(dec(t, "2000"), 2)
	want := dec(t, "1500")
	if !got.Equal(want) {
		t.Errorf("Margin() = %s, want %s", got, want)
	}
}

func TestOrderClone(t *testing.T) {
	o := Order{ID: "a", Symbol: "ETHUSDT"}
	c := o.Clone()
	if c != o {
		t.Errorf("Clone() = %+v, want %+v", c, o)
	}
}
