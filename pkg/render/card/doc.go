// Package card renders a [stats.Stats] aggregate as a self-contained SVG
// document.
//
// # Layout
//
// The document is a fixed 900x600 canvas:
//
//   - a 3x2 badge grid (followers, stars, forks, repositories, streak, commits)
//   - a title block with the username and the fetch date
//   - a donut chart of the ranked languages with a legend
//   - a bar chart of the 30 most recent contribution days
//   - a summary card (issues, pull requests, max streak, following)
//
// The donut chart is omitted when there are no languages and the bar chart
// when there are no contribution days. Everything else is always drawn.
//
// # Themes
//
// The requested [theme.Palette] is embedded as CSS variables scoped to the
// root element. Both palettes follow in prefers-color-scheme media blocks, so
// viewers that report a color scheme get the matching palette regardless of
// the requested one.
//
// # Determinism
//
// [Render] is pure: the same aggregate and theme always produce the same
// bytes. The root element id is a name-based UUID of the username.
//
// [stats.Stats]: github.com/matzehuels/ghstats/pkg/stats.Stats
// [theme.Palette]: github.com/matzehuels/ghstats/pkg/render/theme.Palette
package card
