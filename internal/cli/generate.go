package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ghstats/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	configFlags
	refresh bool // bypass the response cache
	png     bool // also rasterize the card
}

// generateCommand creates the generate command: fetch, aggregate, render
// and write the card in one run.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch stats and write the SVG card",
		Long: `Fetch the account's stats from the GitHub API and write the rendered card.

The account and token come from GITHUB_USERNAME and GITHUB_TOKEN (environment,
.env file or config file). The card is written to assets/github-stats.svg
unless --output is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	opts.bind(cmd, true)
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached API responses")
	cmd.Flags().BoolVar(&opts.png, "png", false, "also write a PNG next to the SVG (requires rsvg-convert)")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()
	cfg, err := c.loadConfig(cmd, &opts.configFlags)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runner, ch, err := c.newRunner(cfg)
	if err != nil {
		return err
	}
	defer ch.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching stats for %s...", cfg.Username))
	spinner.Start()

	res, err := runner.Generate(ctx, cfg, pipeline.Options{Refresh: opts.refresh, PNG: opts.png})
	if err != nil {
		spinner.Stop()
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Generated card for %s", StyleHighlight.Render(res.Stats.Username)))
	printSummary(res.Stats)

	printNewline()
	printKeyValue("Theme", string(res.Theme))
	printFile(res.Output)
	if res.PNG != "" {
		printFile(res.PNG)
	}
	printDetail("fetched in %s, rendered in %s", res.Timing.Collect.Round(time.Millisecond), res.Timing.Render)

	printNewline()
	printInfo("Embed in your README with:")
	fmt.Println(embedSnippet(res.Stats.Username, res.Output, res.PNG))
	return nil
}

// embedSnippet returns the <picture> element that selects the card by the
// reader's color scheme. It assumes the card is committed to a repository
// named github-stats on the main branch.
func embedSnippet(username, svgPath, pngPath string) string {
	base := "https://raw.githubusercontent.com/" + username + "/github-stats/main/"
	svg := base + repoPath(svgPath)
	img := svg
	if pngPath != "" {
		img = base + repoPath(pngPath)
	}

	var b strings.Builder
	b.WriteString("<picture>\n")
	fmt.Fprintf(&b, "  <source media=\"(prefers-color-scheme: dark)\" srcset=\"%s?theme=dark\">\n", svg)
	fmt.Fprintf(&b, "  <source media=\"(prefers-color-scheme: light)\" srcset=\"%s?theme=light\">\n", svg)
	fmt.Fprintf(&b, "  <img alt=\"GitHub Stats\" src=\"%s\" />\n", img)
	b.WriteString("</picture>")
	return b.String()
}

// repoPath turns an output path into a slash-separated, repository-relative
// path.
func repoPath(p string) string {
	p = filepath.ToSlash(filepath.Clean(p))
	return strings.TrimPrefix(p, "./")
}
