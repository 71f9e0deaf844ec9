package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/tower"
)

func NewCmdTowerTypes() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tower-types",
		Short: "List tower configuration codes and their complexity factors.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTowerTypes(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	return cmd
}

func printTowerTypes(_ context.Context, out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tWEIGHTS\tCOMPLEXITY FACTOR")
	for _, t := range tower.Types() {
		f := t.Factors()
		weights := make([]string, 0, len(f))
		for _, v := range f {
			weights = append(weights, fmt.Sprintf("%g", v))
		}
		fmt.Fprintf(w, "%s\t[%s]\t%.1f\n", t, strings.Join(weights, " "), t.ComplexityFactor())
	}
	return w.Flush()
}
