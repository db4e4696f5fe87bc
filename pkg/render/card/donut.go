package card

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/ghstats/pkg/render/theme"
	"github.com/matzehuels/ghstats/pkg/stats"
)

const (
	donutX      = 120
	donutY      = 350
	donutRadius = 80
	donutInner  = 0.6
	donutStart  = -90.0
	legendPitch = 25
)

type sector struct {
	Name       string
	Percentage string
	Color      string
	Start      float64 // degrees
	Sweep      float64 // degrees
	LargeArc   bool
	Path       string
}

// donutSectors lays out one ring sector per language, clockwise from the
// top, each sweeping its share of 360 degrees.
func donutSectors(langs []stats.LanguageShare, cx, cy, r float64) []sector {
	ri := r * donutInner
	angle := donutStart
	out := make([]sector, len(langs))
	for i, l := range langs {
		pct, _ := strconv.ParseFloat(l.Percentage, 64)
		sweep := pct / 100 * 360
		out[i] = sector{
			Name:       l.Name,
			Percentage: l.Percentage,
			Color:      theme.LanguageColor(l.Name),
			Start:      angle,
			Sweep:      sweep,
			LargeArc:   sweep > 180,
			Path:       ringPath(cx, cy, r, ri, angle, sweep),
		}
		angle += sweep
	}
	return out
}

// ringPath returns the outline of a ring sector. A (near) full ring is split
// at its midpoint because an arc whose endpoints coincide draws nothing.
func ringPath(cx, cy, r, ri, start, sweep float64) string {
	end := start + sweep
	var b strings.Builder
	if sweep >= 359.9 {
		mid := start + sweep/2
		fmt.Fprintf(&b, "M %s A %s %s 0 0 1 %s A %s %s 0 0 1 %s L %s A %s %s 0 0 0 %s A %s %s 0 0 0 %s Z",
			point(cx, cy, r, start),
			num(r), num(r), point(cx, cy, r, mid),
			num(r), num(r), point(cx, cy, r, end),
			point(cx, cy, ri, end),
			num(ri), num(ri), point(cx, cy, ri, mid),
			num(ri), num(ri), point(cx, cy, ri, start))
		return b.String()
	}
	large := 0
	if sweep > 180 {
		large = 1
	}
	fmt.Fprintf(&b, "M %s A %s %s 0 %d 1 %s L %s A %s %s 0 %d 0 %s Z",
		point(cx, cy, r, start),
		num(r), num(r), large, point(cx, cy, r, end),
		point(cx, cy, ri, end),
		num(ri), num(ri), large, point(cx, cy, ri, start))
	return b.String()
}

func point(cx, cy, r, deg float64) string {
	rad := deg * math.Pi / 180
	return num(cx+r*math.Cos(rad)) + " " + num(cy+r*math.Sin(rad))
}

func renderLanguages(buf *bytes.Buffer, langs []stats.LanguageShare) {
	buf.WriteString(`  <g transform="translate(20, 240)">` + "\n")
	buf.WriteString(`    <text class="title" x="0" y="0">💻 Top Languages</text>` + "\n")
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="animated">` + "\n")
	for _, s := range donutSectors(langs, donutX, donutY, donutRadius) {
		fmt.Fprintf(buf, `    <path d="%s" fill="%s" opacity="0.9" class="animated"><title>%s: %s%%</title></path>`+"\n",
			s.Path, s.Color, esc(s.Name), esc(s.Percentage))
	}
	for i, l := range langs {
		y := donutY - 60 + i*legendPitch
		fmt.Fprintf(buf, `    <circle cx="%d" cy="%d" r="6" fill="%s"/>`+"\n", donutX+donutRadius+40, y, theme.LanguageColor(l.Name))
		fmt.Fprintf(buf, `    <text x="%d" y="%d" class="stat-label">%s</text>`+"\n", donutX+donutRadius+55, y+5, esc(l.Name))
		fmt.Fprintf(buf, `    <text x="%d" y="%d" class="stat-value" text-anchor="end">%s%%</text>`+"\n", donutX+donutRadius+180, y+5, esc(l.Percentage))
	}
	buf.WriteString("  </g>\n")
}
