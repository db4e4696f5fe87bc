// Package theme holds the static color palettes of the stats card.
package theme

import (
	"strings"

	"github.com/matzehuels/ghstats/pkg/errors"
)

// Name identifies a palette.
type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"
)

// Default is the palette used when none is requested or the name is unknown.
const Default = Dark

// Palette is the set of colors a document is drawn with.
type Palette struct {
	Background    string
	Foreground    string
	Card          string
	Border        string
	Primary       string
	Secondary     string
	Accent        string
	Text          string
	TextSecondary string
	ChartColors   [5]string
	Shadow        string
}

var palettes = map[Name]Palette{
	Light: {
		Background:    "#ffffff",
		Foreground:    "#1f2937",
		Card:          "#f9fafb",
		Border:        "#e5e7eb",
		Primary:       "#3b82f6",
		Secondary:     "#8b5cf6",
		Accent:        "#10b981",
		Text:          "#374151",
		TextSecondary: "#6b7280",
		ChartColors:   [5]string{"#3b82f6", "#8b5cf6", "#10b981", "#f59e0b", "#ef4444"},
		Shadow:        "rgba(0, 0, 0, 0.1)",
	},
	Dark: {
		Background:    "#0d1117",
		Foreground:    "#e6edf3",
		Card:          "#161b22",
		Border:        "#30363d",
		Primary:       "#58a6ff",
		Secondary:     "#a371f7",
		Accent:        "#3fb950",
		Text:          "#c9d1d9",
		TextSecondary: "#8b949e",
		ChartColors:   [5]string{"#58a6ff", "#a371f7", "#3fb950", "#f0883e", "#f85149"},
		Shadow:        "rgba(0, 0, 0, 0.4)",
	},
}

// Names lists the known palettes in display order.
func Names() []Name { return []Name{Light, Dark} }

// Lookup returns the palette for n, falling back to the default palette.
func Lookup(n Name) Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[Default]
}

// Resolve returns the effective name for n: n itself when known, Default
// otherwise.
func Resolve(n Name) Name {
	if _, ok := palettes[n]; ok {
		return n
	}
	return Default
}

// Parse validates a user-supplied theme name. The empty string selects the
// default.
func Parse(s string) (Name, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default, nil
	}
	n := Name(s)
	if _, ok := palettes[n]; !ok {
		return "", errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q: use light or dark", s)
	}
	return n, nil
}

// LanguageFallback is the color of languages missing from the table.
const LanguageFallback = "#8b949e"

var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"C#":         "#178600",
	"PHP":        "#4F5D95",
	"Ruby":       "#701516",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Swift":      "#ffac45",
	"Kotlin":     "#A97BFF",
	"Dart":       "#00B4AB",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Shell":      "#89e051",
	"Vue":        "#41b883",
	"React":      "#61dafb",
}

// LanguageColor returns the display color of a language.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return LanguageFallback
}
