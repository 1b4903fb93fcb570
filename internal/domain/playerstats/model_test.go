package playerstats

import "testing"

func TestTotalsCombined(t *testing.T) {
	totals := Totals{
		Manual:   Counts{Goals: 40, Assists: 12},
		Computed: Counts{Goals: 3, Assists: 4},
	}

	got := totals.Combined()
	if got != (Counts{Goals: 43, Assists: 16}) {
		t.Fatalf("unexpected combined counts: %+v", got)
	}
	if got.Points() != 59 {
		t.Fatalf("unexpected points: %d", got.Points())
	}
}
