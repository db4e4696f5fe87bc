package card

import (
	"bytes"
	"encoding/xml"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/ghstats/pkg/render/theme"
	"github.com/matzehuels/ghstats/pkg/stats"
)

var fetched = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func sampleStats() stats.Stats {
	var days []stats.ContributionDay
	for i := range 45 {
		days = append(days, stats.ContributionDay{
			Date:  time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Count: i % 4,
		})
	}
	return stats.Stats{
		Username:     "octo<cat>",
		Followers:    1500,
		Following:    12,
		PublicRepos:  42,
		TotalStars:   2_500_000,
		TotalForks:   999,
		TotalIssues:  7,
		TotalPRs:     31,
		TotalCommits: 1234,
		Streak:       stats.StreakSummary{Current: 3, Max: 9},
		Days:         days,
		Languages: stats.RankLanguages([]string{
			"Go", "Go", "Go", "Rust", "Python", "Haskell",
		}),
		FetchedAt: fetched,
	}
}

func TestRenderWellFormed(t *testing.T) {
	for _, name := range []theme.Name{theme.Light, theme.Dark, "unknown"} {
		t.Run(string(name), func(t *testing.T) {
			out := Render(sampleStats(), name)
			dec := xml.NewDecoder(bytes.NewReader(out))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("invalid XML: %v", err)
				}
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := Render(sampleStats(), theme.Dark)
	b := Render(sampleStats(), theme.Dark)
	if !bytes.Equal(a, b) {
		t.Error("Render() is not deterministic")
	}
}

func TestRenderContent(t *testing.T) {
	out := string(Render(sampleStats(), theme.Light))

	want := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`width="900" height="600"`,
		`id="` + DocumentID("octo<cat>") + `"`,
		"octo&lt;cat&gt;'s GitHub Stats",
		"Last updated: Jun 15, 2024",
		"1.5K", "2.5M", "999", "1.2K", "3 days", "9 days",
		"Issues Created", "Pull Requests", "Max Streak", "Following",
		"Top Languages", "Last 30 Days Activity",
		"@media (prefers-color-scheme: light)",
		"@media (prefers-color-scheme: dark)",
		"@keyframes fadeIn",
		`class="animated"`,
		theme.LanguageColor("Go"),
		theme.LanguageFallback,
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q", w)
		}
	}
	if strings.Contains(out, "octo<cat>") {
		t.Error("username must be escaped")
	}
}

func TestRenderActivePaletteFirst(t *testing.T) {
	for _, tt := range []struct {
		name theme.Name
		bg   string
	}{
		{theme.Light, "#ffffff"},
		{theme.Dark, "#0d1117"},
		{"bogus", "#0d1117"},
	} {
		out := string(Render(sampleStats(), tt.name))
		first := strings.Index(out, "--bg: ")
		if first < 0 || !strings.HasPrefix(out[first+len("--bg: "):], tt.bg) {
			t.Errorf("theme %q: first --bg should be %s", tt.name, tt.bg)
		}
		if media := strings.Index(out, "@media"); media < first {
			t.Errorf("theme %q: active palette must precede media blocks", tt.name)
		}
	}
}

func TestRenderEmptySections(t *testing.T) {
	s := sampleStats()
	s.Languages = nil
	s.Days = nil
	out := string(Render(s, theme.Dark))

	for _, absent := range []string{"Top Languages", "Last 30 Days Activity", "<path"} {
		if strings.Contains(out, absent) {
			t.Errorf("output should not contain %q", absent)
		}
	}
	for _, present := range []string{"Additional Stats", "GitHub Stats", "Followers"} {
		if !strings.Contains(out, present) {
			t.Errorf("output missing %q", present)
		}
	}
}

func TestDocumentID(t *testing.T) {
	a := DocumentID("octocat")
	if a != DocumentID("OctoCat") {
		t.Error("DocumentID should ignore case like GitHub logins do")
	}
	if a == DocumentID("hubot") {
		t.Error("DocumentID should differ per user")
	}
	if !strings.HasPrefix(a, "ghstats-") {
		t.Errorf("DocumentID() = %q", a)
	}
}

func TestBadgeGrid(t *testing.T) {
	tests := []struct {
		i, x, y int
	}{
		{0, 20, 20}, {1, 180, 20}, {2, 340, 20},
		{3, 20, 100}, {4, 180, 100}, {5, 340, 100},
	}
	for _, tt := range tests {
		x, y := badgeOrigin(tt.i)
		if x != tt.x || y != tt.y {
			t.Errorf("badgeOrigin(%d) = (%d, %d), want (%d, %d)", tt.i, x, y, tt.x, tt.y)
		}
	}

	bs := badges(sampleStats())
	labels := []string{"Followers", "Total Stars", "Total Forks", "Repositories", "Streak", "Commits"}
	for i, l := range labels {
		if bs[i].Label != l {
			t.Errorf("badge %d = %q, want %q", i, bs[i].Label, l)
		}
	}
	if bs[4].Value != "3 days" {
		t.Errorf("streak badge = %q", bs[4].Value)
	}
}

func TestDonutSectors(t *testing.T) {
	tests := []struct {
		name string
		tags []string
	}{
		{"single", []string{"Go"}},
		{"two", []string{"Go", "Go", "Rust"}},
		{"thirds", []string{"A", "B", "C"}},
		{"five", []string{"A", "A", "A", "A", "B", "B", "B", "C", "C", "D", "E", "F"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sectors := donutSectors(stats.RankLanguages(tt.tags), donutX, donutY, donutRadius)
			if sectors[0].Start != donutStart {
				t.Errorf("first sector starts at %v, want %v", sectors[0].Start, donutStart)
			}
			total := 0.0
			for i, s := range sectors {
				if i > 0 {
					prev := sectors[i-1]
					if math.Abs(s.Start-(prev.Start+prev.Sweep)) > 1e-9 {
						t.Errorf("sector %d starts at %v, previous ended at %v", i, s.Start, prev.Start+prev.Sweep)
					}
				}
				if s.LargeArc != (s.Sweep > 180) {
					t.Errorf("sector %d large-arc flag %v for sweep %v", i, s.LargeArc, s.Sweep)
				}
				if !strings.HasPrefix(s.Path, "M ") || !strings.HasSuffix(s.Path, " Z") {
					t.Errorf("sector %d path %q", i, s.Path)
				}
				total += s.Sweep
			}
			// Percentages carry one decimal, so the ring may miss 360 by the
			// accumulated rounding.
			if math.Abs(total-360) > 1 {
				t.Errorf("sweeps sum to %v, want about 360", total)
			}
		})
	}
}

func TestDonutSectorsExactSplit(t *testing.T) {
	tags := []string{"A", "A", "A", "A", "A", "B", "B", "B", "C", "C"}
	sectors := donutSectors(stats.RankLanguages(tags), donutX, donutY, donutRadius)
	if len(sectors) != 3 {
		t.Fatalf("got %d sectors, want 3", len(sectors))
	}

	wantStart := []float64{-90, 90, 198}
	wantSweep := []float64{180, 108, 72}
	total := 0.0
	for i, s := range sectors {
		if math.Abs(s.Start-wantStart[i]) > 1e-9 {
			t.Errorf("sector %d starts at %v, want %v", i, s.Start, wantStart[i])
		}
		if math.Abs(s.Sweep-wantSweep[i]) > 1e-9 {
			t.Errorf("sector %d sweeps %v, want %v", i, s.Sweep, wantSweep[i])
		}
		total += s.Sweep
	}
	if math.Abs(total-360) > 1e-9 {
		t.Errorf("sweeps sum to %v, want 360", total)
	}
	if sectors[0].LargeArc {
		t.Error("a half ring must not set the large-arc flag")
	}
}

func TestDonutFullRing(t *testing.T) {
	sectors := donutSectors([]stats.LanguageShare{{Name: "Go", Percentage: "100.0", Count: 3}}, 0, 0, 10)
	if got := strings.Count(sectors[0].Path, "A "); got != 4 {
		t.Errorf("full ring should be drawn with 4 arcs, got %d in %q", got, sectors[0].Path)
	}
}

func TestActivityBars(t *testing.T) {
	s := sampleStats()
	window := s.RecentDays(activityDays)
	bars := activityBars(window)

	if len(bars) != activityDays {
		t.Fatalf("got %d bars, want %d", len(bars), activityDays)
	}
	for i, b := range bars {
		if b.H > activityHeight-20+1e-9 {
			t.Errorf("bar %d height %v exceeds chart", i, b.H)
		}
		if window[i].Count == 0 && b.Opacity != 0.2 {
			t.Errorf("zero day %d opacity %v, want 0.2", i, b.Opacity)
		}
		if window[i].Count > 0 && b.Opacity != 0.8 {
			t.Errorf("active day %d opacity %v, want 0.8", i, b.Opacity)
		}
		if i > 0 && b.X <= bars[i-1].X {
			t.Errorf("bars must advance left to right")
		}
	}
	last := window[len(window)-1]
	if !strings.HasPrefix(bars[len(bars)-1].Title, last.Date.Format("2006-01-02")) {
		t.Errorf("rightmost bar should be the most recent day, got %q", bars[len(bars)-1].Title)
	}
}

func TestActivityBarsAllZero(t *testing.T) {
	window := []stats.ContributionDay{{Date: fetched, Count: 0}, {Date: fetched.AddDate(0, 0, 1), Count: 0}}
	for i, b := range activityBars(window) {
		if b.H != 0 || math.IsNaN(b.H) {
			t.Errorf("bar %d height %v, want 0", i, b.H)
		}
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{20, "20"},
		{10.5, "10.5"},
		{1.0 / 3, "0.33"},
		{-0.001, "0"},
		{-12.5, "-12.5"},
	}
	for _, tt := range tests {
		if got := num(tt.v); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
