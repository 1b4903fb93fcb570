package match

import "testing"

func TestCountersSideOf(t *testing.T) {
	counters := Counters{MatchID: "m-1", HomeTeamID: "home", AwayTeamID: "away", HomeUnidentified: 2, AwayUnidentified: 5}

	tests := []struct {
		teamID string
		want   Side
		ok     bool
	}{
		{teamID: "home", want: SideHome, ok: true},
		{teamID: " away ", want: SideAway, ok: true},
		{teamID: "other"},
		{teamID: ""},
	}
	for _, tt := range tests {
		side, ok := counters.SideOf(tt.teamID)
		if side != tt.want || ok != tt.ok {
			t.Fatalf("team %q: got side=%q ok=%t", tt.teamID, side, ok)
		}
	}

	if counters.Unidentified(SideHome) != 2 || counters.Unidentified(SideAway) != 5 {
		t.Fatalf("unexpected unidentified counters")
	}
}

func TestSideScoreTotal(t *testing.T) {
	if got := (SideScore{Identified: 3, Unidentified: 2}).Total(); got != 5 {
		t.Fatalf("unexpected total: %d", got)
	}
}

func TestStatus(t *testing.T) {
	if got := NormalizeStatus("  In_Progress "); got != StatusInProgress {
		t.Fatalf("unexpected normalized status: %q", got)
	}
	if got := NormalizeStatus(""); got != StatusScheduled {
		t.Fatalf("blank status must default to scheduled, got %q", got)
	}
	if !IsValidStatus("FINISHED") || IsValidStatus("abandoned") {
		t.Fatalf("unexpected status validation")
	}
}
