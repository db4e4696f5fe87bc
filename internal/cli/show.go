package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghstats/pkg/io"
	"github.com/matzehuels/ghstats/pkg/stats"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	configFlags
	from    string // snapshot to read instead of fetching
	refresh bool
}

// showCommand creates the show command, which prints the aggregate as a
// terminal table.
func (c *CLI) showCommand() *cobra.Command {
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stats as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadStats(cmd, &opts)
			if err != nil {
				return err
			}
			fmt.Println(statsTable(s))
			if len(s.Languages) > 0 {
				printNewline()
				fmt.Println(languagesTable(s.Languages))
			}
			return nil
		},
	}

	opts.bind(cmd, false)
	cmd.Flags().StringVar(&opts.from, "from", "", "read an exported snapshot instead of fetching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached API responses")

	return cmd
}

func (c *CLI) loadStats(cmd *cobra.Command, opts *showOpts) (stats.Stats, error) {
	if opts.from != "" {
		return io.ImportStats(opts.from)
	}

	cfg, err := c.loadConfig(cmd, &opts.configFlags)
	if err != nil {
		return stats.Stats{}, err
	}
	if err := cfg.Validate(); err != nil {
		return stats.Stats{}, err
	}
	runner, ch, err := c.newRunner(cfg)
	if err != nil {
		return stats.Stats{}, err
	}
	defer ch.Close()

	spinner := newSpinnerWithContext(cmd.Context(), "Fetching stats for "+cfg.Username+"...")
	spinner.Start()
	defer spinner.Stop()
	return runner.Collect(cmd.Context(), cfg.Username, opts.refresh)
}

var (
	styleTableHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleTableCell   = lipgloss.NewStyle().Padding(0, 1)
	styleTableNumber = styleTableCell.Foreground(colorWhite).Align(lipgloss.Right)
)

func cellStyle(row, col int) lipgloss.Style {
	switch {
	case row == table.HeaderRow:
		return styleTableHeader
	case col == 1:
		return styleTableNumber
	default:
		return styleTableCell
	}
}

// statsTable lays out the headline counters with thousands separators.
func statsTable(s stats.Stats) string {
	rows := [][]string{
		{"Followers", humanize.Comma(int64(s.Followers))},
		{"Following", humanize.Comma(int64(s.Following))},
		{"Repositories", humanize.Comma(int64(s.PublicRepos))},
		{"Stars", humanize.Comma(int64(s.TotalStars))},
		{"Forks", humanize.Comma(int64(s.TotalForks))},
		{"Commits", humanize.Comma(int64(s.TotalCommits))},
		{"Issues", humanize.Comma(int64(s.TotalIssues))},
		{"Pull requests", humanize.Comma(int64(s.TotalPRs))},
		{"Contributions", humanize.Comma(int64(s.TotalContributions))},
		{"Current streak", days(s.Streak.Current)},
		{"Max streak", days(s.Streak.Max)},
		{"Fetched", humanize.Time(s.FetchedAt)},
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(s.Username, "").
		Rows(rows...).
		StyleFunc(cellStyle).
		String()
}

func languagesTable(langs []stats.LanguageShare) string {
	rows := make([][]string, len(langs))
	for i, l := range langs {
		rows[i] = []string{l.Name, l.Percentage + "%", strconv.Itoa(l.Count)}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Language", "Share", "Repos").
		Rows(rows...).
		StyleFunc(cellStyle).
		String()
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return humanize.Comma(int64(n)) + " days"
}
