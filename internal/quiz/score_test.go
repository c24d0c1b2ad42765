package quiz

import "testing"

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{4, 5, 80},
		{0, 5, 0},
		{5, 5, 100},
		{2, 3, 67},
		{10, 15, 67},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestPassed(t *testing.T) {
	tests := []struct {
		score, total int
		want         bool
	}{
		{4, 5, true},
		{3, 5, false},
		{7, 10, true},
		{139, 200, false}, // 69.5% rounds to 70 but is below the bar
		{11, 15, true},
		{10, 15, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := Passed(tt.score, tt.total); got != tt.want {
			t.Errorf("Passed(%d, %d) = %v, want %v", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestPercentagePassed(t *testing.T) {
	// 16/23 is 69.6%, which fails the exact check but rounds to 70.
	if Passed(16, 23) {
		t.Error("Passed(16, 23) should be false")
	}
	if !PercentagePassed(Percentage(16, 23)) {
		t.Error("rounded 16/23 should pass")
	}
	if PercentagePassed(69) {
		t.Error("69% should not pass")
	}
}

func TestRankFor(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "Elite Hacker"},
		{95, "Elite Hacker"},
		{94, "Security Expert"},
		{85, "Security Expert"},
		{84, "Cyber Warrior"},
		{70, "Cyber Warrior"},
		{69, "Apprentice"},
		{0, "Apprentice"},
	}
	for _, tt := range tests {
		if got := RankFor(tt.pct).Title; got != tt.want {
			t.Errorf("RankFor(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}
