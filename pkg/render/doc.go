// Package render converts rendered SVG documents to other formats.
//
// The stats card itself is drawn by the [card] subpackage with palettes from
// [theme]. [ToPNG] and [ToPDF] shell out to the external rsvg-convert tool
// (from librsvg):
//
//	svg := card.Render(s, theme.Dark)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [card]: github.com/matzehuels/ghstats/pkg/render/card
// [theme]: github.com/matzehuels/ghstats/pkg/render/theme
package render
