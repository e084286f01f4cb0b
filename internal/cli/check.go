package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"vk-helpers-generator/internal/driver"
)

func newCheckCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the generated regions are up to date",
		Long: `Regenerate every region in memory and compare with the files on disk.

Nothing is written. A unified diff is printed for every stale file.

Exit codes:
  0 - Regions are up to date
  1 - Regions are out of date, or the check failed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := a.jobs()
			if err != nil {
				return err
			}

			report, err := a.driver().Check(jobs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			stale := report.Changed()
			if len(stale) == 0 {
				fmt.Fprintln(out, "✓ Generated regions are up to date")
				return nil
			}

			fmt.Fprintln(out, "✗ Generated regions are out of date:")
			for _, f := range stale {
				fmt.Fprintf(out, "  - %s\n", f.Path)
			}

			if !quiet {
				for _, f := range stale {
					fmt.Fprintf(out, "\n%s", f.Diff)
				}
			}

			return errors.WithHint(driver.ErrStale, "run vk-helpers-generator to update them")
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only list stale files, without diffs")

	return cmd
}
