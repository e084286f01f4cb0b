package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Rewrite the generated regions in place",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd)
		},
	}
}

func (a *app) runGenerate(cmd *cobra.Command) error {
	jobs, err := a.jobs()
	if err != nil {
		return err
	}

	report, err := a.driver().Run(jobs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range report.Files {
		if f.Changed {
			fmt.Fprintf(out, "✓ Updated %s (%d regions)\n", f.Path, f.Regions)
		} else {
			fmt.Fprintf(out, "✓ %s is up to date\n", f.Path)
		}
	}

	return nil
}
