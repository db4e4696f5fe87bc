package card

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/ghstats/pkg/render/theme"
	"github.com/matzehuels/ghstats/pkg/stats"
)

const (
	Width  = 900
	Height = 600
)

// Render draws s with the named palette. Unknown names fall back to the
// default palette.
func Render(s stats.Stats, name theme.Name) []byte {
	id := DocumentID(s.Username)

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&buf, `<svg id="%s" width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		id, Width, Height, Width, Height)

	renderStyle(&buf, id, theme.Resolve(name))
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="var(--bg)" rx="10"/>`+"\n", Width, Height)

	renderBadges(&buf, badges(s))
	renderTitle(&buf, s)
	if len(s.Languages) > 0 {
		renderLanguages(&buf, s.Languages)
	}
	if len(s.Days) > 0 {
		renderActivity(&buf, s.RecentDays(activityDays))
	}
	renderSummary(&buf, summaryRows(s))

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// DocumentID returns the root element id for username. It is stable across
// runs and distinct per user, so several cards can be inlined in one page.
func DocumentID(username string) string {
	u := uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/"+strings.ToLower(username)))
	return "ghstats-" + u.String()
}

func renderTitle(buf *bytes.Buffer, s stats.Stats) {
	fmt.Fprintf(buf, `  <g transform="translate(20, 200)">`+"\n")
	fmt.Fprintf(buf, `    <text class="title" x="0" y="0">🎯 %s's GitHub Stats</text>`+"\n", esc(s.Username))
	fmt.Fprintf(buf, `    <text class="stat-label" x="0" y="25">Last updated: %s</text>`+"\n",
		s.FetchedAt.UTC().Format("Jan 2, 2006"))
	buf.WriteString("  </g>\n")
}

func esc(s string) string { return html.EscapeString(s) }

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
