package xdecimal

import "testing"

func d(t *testing.T, s string) Decimal {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestParseTruncatesToScale(t *testing.T) {
	v := d(t, "1.123456789123")
	if want := d(t, "1.12345678"); !v.Equal(want) {
		t.Errorf("Parse = %s, want %s", v, want)
	}
}

func TestArithmeticTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		op   func(a, b Decimal) Decimal
		want string
	}{
		{"add", "1.000000001", "1.000000001", func(a, b Decimal) Decimal { return a.Add(b) }, "2.00000000"},
		{"sub negative truncates toward zero", "1", "1.000000009", func(a, b Decimal) Decimal { return a.Sub(b) }, "-0.00000000"},
		{"mul", "0.00000003", "2", func(a, b Decimal) Decimal { return a.Mul(b) }, "0.00000006"},
		{"div", "1", "3", func(a, b Decimal) Decimal { return a.Div(b) }, "0.33333333"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(d(t, tt.a), d(t, tt.b))
			if want := d(t, tt.want); !got.Equal(want) {
				t.Errorf("got %s, want %s", got, want)
			}
		})
	}
}

func TestQuantizeTick(t *testing.T) {
	tests := []struct {
		name string
		v    string
		tick string
		want string
	}{
		{"exact multiple unchanged", "2000.00", "0.01", "2000.00"},
		{"truncates down to tick", "2000.017", "0.01", "2000.01"},
		{"zero tick is unconstrained", "2000.017", "0", "2000.017"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d(t, tt.v).QuantizeTick(d(t, tt.tick))
			if want := d(t, tt.want); !got.Equal(want) {
				t.Errorf("QuantizeTick(%s, %s) = %s, want %s", tt.v, tt.tick, got, want)
			}
		})
	}
}

func TestSignAndIsZero(t *testing.T) {
	if !Zero.IsZero() {
		t.Error("Zero.IsZero() = false")
	}
	if d(t, "-1").Sign() != -1 {
		t.Error("Sign(-1) != -1")
	}
	if d(t, "1").Sign() != 1 {
		t.Error("Sign(1) != 1")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	v := d(t, "123.456")
	data, err := v.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got Decimal
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if !got.Equal(v) {
		t.Errorf("round trip = %s, want %s", got, v)
	}
}

func TestParseInvalidString(t *testing.T) {
	if _, err := Parse("not-a-number"); err == nil {
		t.Fatal("Parse: want error for invalid input")
	}
}
