package playerfolio

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3, the whole point of decimal backing.
	if got := USD(0.1).Add(USD(0.2)); !got.Equal(USD(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want exactly 0.3", got)
	}
	if got := USD(0.03).Mul(Q(500)); !got.Equal(USD(15)) {
		t.Errorf("0.03 * 500 = %s, want 15", got)
	}
	if got := USD(15).Div(Q(2000)); !got.Equal(USD(0.0075)) {
		t.Errorf("15 / 2000 = %s, want 0.0075", got)
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	// A decoded amount has no currency until it is stamped; arithmetic and
	// comparisons against stamped amounts still work.
	var decoded Money
	if err := json.Unmarshal([]byte("1.5"), &decoded); err != nil {
		t.Fatal(err)
	}
	if got := decoded.Add(USD(1)); got.Currency() != "USD" || !got.Equal(USD(2.5)) {
		t.Errorf("weak + USD = %s (%s), want $2.5", got, got.Currency())
	}
	if !decoded.Equal(M(1.5, "")) || !decoded.Equal(USD(1.5)) {
		t.Error("weak currency must compare equal across currencies")
	}
	if USD(1).Equal(M(1, "EUR")) {
		t.Error("distinct currencies must not compare equal")
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(USD(0.0123))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0.0123" {
		t.Errorf("Marshal = %s, want the bare number 0.0123", data)
	}
	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(USD(0.0123)) {
		t.Errorf("round trip = %s, want 0.0123", back)
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := (Money{}).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want \"-\"", got)
	}
	if got := USD(1.5).SignedString(); got[0] != '+' {
		t.Errorf("positive SignedString = %q, want a leading +", got)
	}
}

func TestDate_ParseAndFormat(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"2026-08-01", "2026-08-01"},
		{"2026-8-1", "2026-08-01"},
		{"2026-08-01T15:04:05Z", "2026-08-01"},
	}
	for _, tc := range testCases {
		d, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if d.String() != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, d, tc.want)
		}
	}
	if _, err := ParseDate("yesterday"); err == nil {
		t.Error("ParseDate accepted garbage")
	}
	if d, err := ParseDate(""); err != nil || d != Today() {
		t.Errorf("ParseDate(\"\") = %v, %v, want today", d, err)
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(MustParse("2026-08-01"), MustParse("2026-08-31"))
	for _, tc := range []struct {
		day  string
		want bool
	}{
		{"2026-07-31", false},
		{"2026-08-01", true},
		{"2026-08-15", true},
		{"2026-08-31", true},
		{"2026-09-01", false},
	} {
		if got := r.Contains(MustParse(tc.day)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.day, got, tc.want)
		}
	}
}
