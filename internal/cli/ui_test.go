package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/ghstats/pkg/stats"
)

func TestPrintSummary(t *testing.T) {
	s := stats.Stats{
		TotalStars:   1500,
		TotalCommits: 42,
		Streak:       stats.StreakSummary{Current: 7, Max: 9},
		Languages:    []stats.LanguageShare{{Name: "Go", Percentage: "60.0", Count: 3}},
	}
	out := captureStdout(t, func() { printSummary(s) })

	for _, want := range []string{"1.5K stars", "42 commits", "7 day streak", "top language Go"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary %q is missing %q", out, want)
		}
	}
}

func TestPrintSummaryNoLanguages(t *testing.T) {
	out := captureStdout(t, func() { printSummary(stats.Stats{}) })
	if strings.Contains(out, "top language") {
		t.Errorf("summary without languages mentions one: %q", out)
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 days"},
		{1, "1 day"},
		{1200, "1,200 days"},
	}
	for _, tt := range tests {
		if got := days(tt.n); got != tt.want {
			t.Errorf("days(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
