package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghstats/pkg/config"
	"github.com/matzehuels/ghstats/pkg/io"
	"github.com/matzehuels/ghstats/pkg/pipeline"
	"github.com/matzehuels/ghstats/pkg/render"
	"github.com/matzehuels/ghstats/pkg/render/theme"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // card path
	theme  string // palette name
	png    bool   // also rasterize the card
	pdf    bool   // also convert the card to PDF
	scale  float64
}

// renderCommand creates the render command, which draws a card from an
// exported snapshot without touching the network.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{output: config.DefaultOutput, scale: 2}

	cmd := &cobra.Command{
		Use:   "render [snapshot]",
		Short: "Render an exported snapshot to an SVG card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output path")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", config.DefaultTheme, "card theme: dark, light")
	cmd.Flags().BoolVar(&opts.png, "png", false, "also write a PNG next to the SVG (requires rsvg-convert)")
	cmd.Flags().BoolVar(&opts.pdf, "pdf", false, "also write a PDF next to the SVG (requires rsvg-convert)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	ctx := cmd.Context()
	name, err := theme.Parse(opts.theme)
	if err != nil {
		return err
	}
	s, err := io.ImportStats(path)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, c.Logger)
	doc := runner.Render(ctx, s, name)
	if err := io.WriteDocument(opts.output, doc); err != nil {
		return err
	}
	printSuccess("Rendered %s card for %s", name, s.Username)
	printFile(opts.output)

	if opts.png {
		png, err := render.ToPNG(ctx, doc, opts.scale)
		if err != nil {
			return err
		}
		out := pipeline.PNGPath(opts.output)
		if err := io.WriteDocument(out, png); err != nil {
			return err
		}
		printFile(out)
	}

	if opts.pdf {
		pdf, err := render.ToPDF(ctx, doc)
		if err != nil {
			return err
		}
		out := pipeline.PDFPath(opts.output)
		if err := io.WriteDocument(out, pdf); err != nil {
			return err
		}
		printFile(out)
	}
	return nil
}
