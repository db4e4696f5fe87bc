package card

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/ghstats/pkg/stats"
)

const (
	summaryX      = 500
	summaryY      = 350
	summaryWidth  = 380
	summaryHeight = 220
)

type row struct {
	Label, Value string
}

func summaryRows(s stats.Stats) []row {
	return []row{
		{"Issues Created", stats.FormatNumber(s.TotalIssues)},
		{"Pull Requests", stats.FormatNumber(s.TotalPRs)},
		{"Max Streak", days(s.Streak.Max)},
		{"Following", stats.FormatNumber(s.Following)},
	}
}

func renderSummary(buf *bytes.Buffer, rows []row) {
	fmt.Fprintf(buf, `  <g transform="translate(%d, %d)" class="animated">`+"\n", summaryX, summaryY)
	fmt.Fprintf(buf, `    <rect class="card" width="%d" height="%d" rx="10"/>`+"\n", summaryWidth, summaryHeight)
	buf.WriteString(`    <text class="title" x="20" y="35">📊 Additional Stats</text>` + "\n")
	for i, r := range rows {
		y := 60 + i*35
		fmt.Fprintf(buf, `    <text class="stat-label" x="20" y="%d">%s</text>`+"\n", y, esc(r.Label))
		fmt.Fprintf(buf, `    <text class="stat-value" x="%d" y="%d" text-anchor="end">%s</text>`+"\n", summaryWidth-20, y, esc(r.Value))
	}
	buf.WriteString("  </g>\n")
}
