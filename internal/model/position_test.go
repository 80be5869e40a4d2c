package model

import "testing"

func TestPositionMarginZeroWhenFlat(t *testing.T) {
	p := Position{Side: SideLong}
	if m := p.Margin(5); !m.IsZero() {
		t.Errorf("Margin() = %s, want 0 for flat position", m)
	}
}

func TestPositionMargin(t *testing.T) {
	p := Position{Side: SideLong, Price: dec(t, "2000"), Size: dec(t, "2")}
	// notional = 4000, leverage 4 -> margin 1000
	got := p.Margin(4)
	want := dec(t, "1000")
	if !got.Equal(want) {
		t.Errorf("Margin() = %s, want %s", got, want)
	}
}

func TestPositionPnLLong(t *testing.T) {
	p := Position{Side: SideLong, Price: dec(t, "2000"), Size: dec(t, "2")}
	got := p.PnL(dec(t, "2100"))
	want := dec(t, "200")
	if !got.Equal(want) {
		t.Errorf("PnL() = %s, want %s", got, want)
	}
}

func TestPositionPnLShort(t *testing.T) {
	p := Position{Side: SideShort, Price: dec(t, "2000"), Size: dec(t, "2")}
	got := p.PnL(dec(t, "2100"))
	want := dec(t, "-200")
	if !got.Equal(want) {
		t.Errorf("PnL() = %s, want %s", got, want)
	}
}

func TestPositionPnLFlatIsZero(t *testing.T) {
	p := Position{Side: SideLong}
	if pnl := p.PnL(dec(t, "2100")); !pnl.IsZero() {
		t.Errorf("PnL() = %s, want 0 for flat position", pnl)
	}
}

func TestPositionApplyOpenFillWeightedAverage(t *testing.T) {
	p := Position{Side: SideLong, Price: dec(t, "2000"), Size: dec(t, "1")}
	p.ApplyOpenFill(dec(t, "2200"), dec(t, "1"))
	// (2000*1 + 2200*1) / 2 = 2100
	if want := dec(t, "2100"); !p.Price.Equal(want) {
		t.Errorf("Price = %s, want %s", p.Price, want)
	}
	if want := dec(t, "2"); !p.Size.Equal(want) {
		t.Errorf("Size = %s, want %s", p.Size, want)
	}
}

func TestPositionApplyOpenFillFromFlat(t *testing.T) {
	p := Position{Side: SideLong}
	p.ApplyOpenFill(dec(t, "2000"), dec(t, "1"))
	if !p.Price.Equal(dec(t, "2000")) {
		t.Errorf("Price = %s, want 2000", p.Price)
	}
	if !p.Size.Equal(dec(t, "1")) {
		t.Errorf("Size = %s, want 1", p.Size)
	}
}

func TestPositionApplyCloseFillResetsPriceWhenFlat(t *testing.T) {
	p := Position{Side: SideLong, Price: dec(t, "2000"), Size: dec(t, "1")}
	p.ApplyCloseFill(dec(t, "1"))
	if !p.Size.IsZero() {
		t.Errorf("Size = %s, want 0", p.Size)
	}
	if !p.Price.IsZero() {
		t.Errorf("Price = %s, want 0 once flat (invariant I4)", p.Price)
	}
}

func TestPositionApplyCloseFillPartial(t *testing.T) {
	p := Position{Side: SideLong, Price: dec(t, "2000"), Size: dec(t, "2")}
	p.ApplyCloseFill(dec(t, "1"))
	if !p.Size.Equal(dec(t, "1")) {
		t.Errorf("Size = %s, want 1", p.Size)
	}
	if !p.Price.Equal(dec(t, "2000")) {
		t.Errorf("Price = %s, want unchanged 2000", p.Price)
	}
}
