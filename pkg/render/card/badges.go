package card

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/ghstats/pkg/stats"
)

const (
	badgeOriginX = 20
	badgeOriginY = 20
	badgePitchX  = 160
	badgePitchY  = 80
	badgeColumns = 3
	badgeWidth   = 140
	badgeHeight  = 60
)

type badge struct {
	Icon, Label, Value string
}

func badges(s stats.Stats) []badge {
	return []badge{
		{"👥", "Followers", stats.FormatNumber(s.Followers)},
		{"⭐", "Total Stars", stats.FormatNumber(s.TotalStars)},
		{"🔀", "Total Forks", stats.FormatNumber(s.TotalForks)},
		{"📦", "Repositories", stats.FormatNumber(s.PublicRepos)},
		{"🔥", "Streak", days(s.Streak.Current)},
		{"💻", "Commits", stats.FormatNumber(s.TotalCommits)},
	}
}

// badgeOrigin returns the top-left corner of grid cell i.
func badgeOrigin(i int) (x, y int) {
	return badgeOriginX + (i%badgeColumns)*badgePitchX, badgeOriginY + (i/badgeColumns)*badgePitchY
}

func renderBadges(buf *bytes.Buffer, bs []badge) {
	for i, b := range bs {
		x, y := badgeOrigin(i)
		fmt.Fprintf(buf, `  <g transform="translate(%d, %d)" class="animated">`+"\n", x, y)
		fmt.Fprintf(buf, `    <rect class="card" width="%d" height="%d" rx="8"/>`+"\n", badgeWidth, badgeHeight)
		fmt.Fprintf(buf, `    <text class="badge-icon" x="20" y="28">%s</text>`+"\n", b.Icon)
		fmt.Fprintf(buf, `    <text class="stat-label" x="20" y="48">%s</text>`+"\n", esc(b.Label))
		fmt.Fprintf(buf, `    <text class="stat-value" x="%d" y="33" text-anchor="end">%s</text>`+"\n", badgeWidth-25, esc(b.Value))
		buf.WriteString("  </g>\n")
	}
}

func days(n int) string { return strconv.Itoa(n) + " days" }
