package card

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/ghstats/pkg/stats"
)

const (
	activityDays   = 30
	activityX      = 500
	activityY      = 230
	activityWidth  = 360
	activityHeight = 100
	barGap         = 2
)

type bar struct {
	X, Y, W, H float64
	Opacity    float64
	Title      string
}

// activityBars lays out one bar per day, left to right in the given order.
// Heights are relative to the window maximum; an all-zero window uses 1.
func activityBars(window []stats.ContributionDay) []bar {
	peak := 1
	for _, d := range window {
		peak = max(peak, d.Count)
	}

	w := float64(activityWidth)/activityDays - barGap
	bars := make([]bar, len(window))
	for i, d := range window {
		h := float64(d.Count) / float64(peak) * (activityHeight - 20)
		opacity := 0.8
		if d.Count <= 0 {
			opacity = 0.2
		}
		bars[i] = bar{
			X:       activityX + float64(i)*(w+barGap),
			Y:       activityY + activityHeight - h,
			W:       w,
			H:       h,
			Opacity: opacity,
			Title:   fmt.Sprintf("%s: %d contributions", d.Date.Format("2006-01-02"), d.Count),
		}
	}
	return bars
}

func renderActivity(buf *bytes.Buffer, window []stats.ContributionDay) {
	buf.WriteString("  <g>\n")
	fmt.Fprintf(buf, `    <text class="stat-label" x="%d" y="%d">Last 30 Days Activity</text>`+"\n", activityX, activityY-10)
	for _, b := range activityBars(window) {
		fmt.Fprintf(buf, `    <rect x="%s" y="%s" width="%s" height="%s" fill="var(--accent)" opacity="%s" rx="2" class="animated"><title>%s</title></rect>`+"\n",
			num(b.X), num(b.Y), num(b.W), num(b.H), num(b.Opacity), esc(b.Title))
	}
	buf.WriteString("  </g>\n")
}
