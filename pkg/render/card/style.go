package card

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/ghstats/pkg/render/theme"
)

const fontFamily = `-apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif`

// renderStyle writes the palette variables scoped to the root element,
// followed by the media-query palettes and the shared classes.
func renderStyle(buf *bytes.Buffer, id string, active theme.Name) {
	buf.WriteString("  <style>\n")
	writeVars(buf, "    ", "#"+id, theme.Lookup(active))
	for _, n := range theme.Names() {
		fmt.Fprintf(buf, "    @media (prefers-color-scheme: %s) {\n", n)
		writeVars(buf, "      ", "#"+id, theme.Lookup(n))
		buf.WriteString("    }\n")
	}
	fmt.Fprintf(buf, `    #%[1]s * { font-family: %[2]s; }
    #%[1]s .card { fill: var(--card); stroke: var(--border); stroke-width: 1; filter: drop-shadow(0 4px 6px var(--shadow)); }
    #%[1]s .title { fill: var(--text); font-size: 18px; font-weight: 600; }
    #%[1]s .stat-label { fill: var(--text-secondary); font-size: 12px; }
    #%[1]s .stat-value { fill: var(--text); font-size: 20px; font-weight: 700; }
    #%[1]s .badge-icon { fill: var(--primary); }
    @keyframes fadeIn { from { opacity: 0; } to { opacity: 1; } }
    #%[1]s .animated { animation: fadeIn 0.8s ease-in; }
`, id, fontFamily)
	buf.WriteString("  </style>\n")
}

func writeVars(buf *bytes.Buffer, indent, selector string, p theme.Palette) {
	fmt.Fprintf(buf, "%s%s {\n", indent, selector)
	vars := [][2]string{
		{"bg", p.Background},
		{"fg", p.Foreground},
		{"card", p.Card},
		{"border", p.Border},
		{"text", p.Text},
		{"text-secondary", p.TextSecondary},
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"shadow", p.Shadow},
	}
	for _, v := range vars {
		fmt.Fprintf(buf, "%s  --%s: %s;\n", indent, v[0], v[1])
	}
	buf.WriteString(indent + "}\n")
}
