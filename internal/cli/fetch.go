package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghstats/pkg/io"
)

// fetchOpts holds the command-line flags for the fetch command.
type fetchOpts struct {
	configFlags
	output  string // snapshot path; .json, .yaml or .yml
	refresh bool
}

// fetchCommand creates the fetch command: collect and aggregate, then
// export the snapshot without rendering.
func (c *CLI) fetchCommand() *cobra.Command {
	var opts fetchOpts

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch stats and export them as a JSON or YAML snapshot",
		Long: `Fetch the account's stats and write the aggregate to a snapshot file.

The format follows the file extension: .json (default), .yaml or .yml.
Render the snapshot later, offline, with "ghstats render".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFetch(cmd, &opts)
		},
	}

	opts.bind(cmd, false)
	cmd.Flags().StringVarP(&opts.output, "output", "o", defaultSnapshot, "snapshot path (.json, .yaml)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached API responses")

	return cmd
}

func (c *CLI) runFetch(cmd *cobra.Command, opts *fetchOpts) error {
	ctx := cmd.Context()
	cfg, err := c.loadConfig(cmd, &opts.configFlags)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := io.FormatFromPath(opts.output); err != nil {
		return err
	}

	runner, ch, err := c.newRunner(cfg)
	if err != nil {
		return err
	}
	defer ch.Close()

	prog := newProgress(loggerFromContext(ctx))
	s, err := runner.Collect(ctx, cfg.Username, opts.refresh)
	if err != nil {
		return err
	}
	prog.done("Fetched stats for " + s.Username)

	if err := io.ExportStats(s, opts.output); err != nil {
		return err
	}
	printSuccess("Exported snapshot")
	printFile(opts.output)
	printNextStep("Render it with", "ghstats render "+opts.output)
	return nil
}
