package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/types"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/session"
)

const shellHelp = `Commands:
  field=value     set a parameter field (empty value restores the default)
  show            print the full analysis
  fields          list the fields set in this session
  reset           restore every field to its default
  export [FORMAT] write the analysis to the export directory (default csv)
  help            print this help
  quit            leave the shell
`

type ShellOptions struct {
	ExportOptions

	in io.Reader
}

func DefaultShellOptions() *ShellOptions {
	return &ShellOptions{
		ExportOptions: *DefaultExportOptions(),
	}
}

func NewCmdShell() *cobra.Command {
	o := DefaultShellOptions()
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Edit tower parameters interactively and watch the estimate update.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ShellOptions) Bind(fs *pflag.FlagSet) {
	o.ExportOptions.Bind(fs)
}

func (o *ShellOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.ExportOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.in = cmd.InOrStdin()
	return nil
}

func (o *ShellOptions) Run(ctx context.Context, args []string) error {
	reports := service.NewReportService()
	s := session.New(ctx, o.RetrievalService())
	if initial := o.Raw(); len(initial) > 0 {
		s.Apply(ctx, initial)
	}

	fmt.Fprintf(o.out, "Tower planner shell (%s model). Type \"help\" for commands.\n", o.HeightModel())
	printSummary(o.out, s.Result())

	scanner := bufio.NewScanner(o.in)
	for {
		fmt.Fprint(o.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(o.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if field, value, ok := strings.Cut(line, "="); ok {
			field = strings.TrimSpace(field)
			if !params.IsField(field) {
				fmt.Fprintf(o.out, "error: %v\n", service.NewErrInvalidField(field))
				continue
			}
			printSummary(o.out, s.Set(ctx, field, strings.TrimSpace(value)))
			continue
		}

		command, arg, _ := strings.Cut(line, " ")
		switch command {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(o.out, shellHelp)
		case "show":
			if err := printTable(o.out, s.Result()); err != nil {
				return err
			}
		case "fields":
			printFields(o.out, s.Fields())
		case "reset":
			printSummary(o.out, s.Reset(ctx))
		case "export":
			format := strings.TrimSpace(arg)
			if format == "" {
				format = o.Format
			}
			if !funk.Contains(exportFormats(), format) {
				fmt.Fprintf(o.out, "error: %v\n", service.NewErrUnsupportedFormat(format))
				continue
			}
			path, err := writeReport(ctx, reports, s.Result(), types.ReportFormat(format), o.Dir)
			if err != nil {
				fmt.Fprintf(o.out, "error: %v\n", err)
				continue
			}
			fmt.Fprintf(o.out, "Wrote %s\n", path)
		default:
			fmt.Fprintf(o.out, "unknown command %q, type \"help\"\n", command)
		}
	}
}

func printFields(w io.Writer, fields params.Raw) {
	if len(fields) == 0 {
		fmt.Fprintln(w, "all fields at their defaults")
		return
	}
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(w, "%s=%v\n", k, fields[k])
	}
}
