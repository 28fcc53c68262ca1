package playerfolio

import "testing"

func TestHistory_Append(t *testing.T) {
	h := NewHistory()
	h.Append(Snapshot{Date: MustParse("2026-08-10"), Value: USD(100)})
	h.Append(Snapshot{Date: MustParse("2026-08-01"), Value: USD(80)})
	h.Append(Snapshot{Date: MustParse("2026-08-20"), Value: USD(120)})

	var got []string
	for s := range h.Snapshots() {
		got = append(got, s.Date.String())
	}
	want := []string{"2026-08-01", "2026-08-10", "2026-08-20"}
	if len(got) != len(want) {
		t.Fatalf("Snapshots yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Snapshots order = %v, want %v", got, want)
		}
	}
}

func TestHistory_Append_SameDayReplaces(t *testing.T) {
	h := NewHistory()
	day := MustParse("2026-08-10")
	h.Append(Snapshot{Date: day, Value: USD(100)})
	h.Append(Snapshot{Date: day, Value: USD(110)})

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	s, ok := h.On(day)
	if !ok || !s.Value.Equal(USD(110)) {
		t.Errorf("On(%s) = %+v, want the replacement value 110", day, s)
	}
}

func TestHistory_Last(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Last(); ok {
		t.Error("Last() on empty history reported ok")
	}
	h.Append(Snapshot{Date: MustParse("2026-08-20"), Value: USD(120)})
	h.Append(Snapshot{Date: MustParse("2026-08-10"), Value: USD(100)})
	last, ok := h.Last()
	if !ok || last.Date.String() != "2026-08-20" {
		t.Errorf("Last() = %+v, want the 2026-08-20 snapshot", last)
	}
}
