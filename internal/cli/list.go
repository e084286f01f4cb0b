package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vk-helpers-generator/internal/guard"
	"vk-helpers-generator/internal/table"
)

func newListCmd(a *app) *cobra.Command {
	var (
		asYAML bool
		dump   bool
	)

	cmd := &cobra.Command{
		Use:   "list [table...]",
		Short: "Print entry tables grouped into guard blocks",
		Long: `Print entry tables with the guard expression each entry compiles to and
the block it lands in. Without arguments all tables are listed.

--yaml prints the tables in the format accepted by --tables, which is a
convenient starting point for an override file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = []string{table.InstanceName, table.DeviceName, table.ExtensionsName}
			}

			tables := make([]table.Table, 0, len(names))
			for _, name := range names {
				t, err := a.tables.Lookup(name)
				if err != nil {
					return err
				}

				tables = append(tables, t)
			}

			out := cmd.OutOrStdout()

			switch {
			case dump:
				spew.Fdump(out, tables)
			case asYAML:
				data, err := table.Marshal(tables...)
				if err != nil {
					return err
				}

				_, err = out.Write(data)

				return err
			default:
				for _, t := range tables {
					renderTable(out, t)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print tables as YAML")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the raw table structures")

	return cmd
}

// renderTable prints one table; blank markers are omitted and the BLOCK
// column numbers each #if block.
func renderTable(w io.Writer, t table.Table) {
	fmt.Fprintf(w, "%s (%d entries)\n", t.Name, len(t.Names()))

	var (
		data    [][]string
		current = guard.None
		block   int
	)

	for _, e := range t.Entries {
		if e.IsBlank() {
			continue
		}

		expr := guard.Compile(e.Guards)
		if expr != current {
			current = expr
			if !expr.IsNone() {
				block++
			}
		}

		blockCol := "-"
		if !expr.IsNone() {
			blockCol = strconv.Itoa(block)
		}

		data = append(data, []string{e.Name, blockCol, expr.String()})
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"NAME", "BLOCK", "GUARD"})
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)
	tw.SetHeaderLine(false)
	tw.SetBorder(false)
	tw.SetNoWhiteSpace(true)
	tw.SetTablePadding("    ")
	tw.AppendBulk(data)
	tw.Render()

	fmt.Fprintln(w)
}
