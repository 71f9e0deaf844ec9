package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/types"
)

type ExportOptions struct {
	GlobalOptions

	Format string
	Dir    string
}

func DefaultExportOptions() *ExportOptions {
	return &ExportOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Format:        string(types.ReportFormatCSV),
	}
}

func NewCmdExport() *cobra.Command {
	o := DefaultExportOptions()
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the retrieval analysis to a timestamped file.",
		Example: `  tower-planner export --set levelsAbove=10
  tower-planner export --format xlsx --dir ./reports`,
		Args: cobra.NoArgs,
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

func (o *ExportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Format, "format", o.Format, fmt.Sprintf("Export format. One of: (%s).", strings.Join(exportFormats(), ", ")))
	fs.StringVar(&o.Dir, "dir", o.Dir, "Output directory. Defaults to TOWER_PLANNER_EXPORT_DIR.")
}

func (o *ExportOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	if o.Dir == "" {
		o.Dir = o.cfg.Planner.ExportDir
	}
	return nil
}

func (o *ExportOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if !funk.Contains(exportFormats(), o.Format) {
		return service.NewErrUnsupportedFormat(o.Format)
	}

	return nil
}

func (o *ExportOptions) Run(ctx context.Context, args []string) error {
	result := o.RetrievalService().Calculate(ctx, o.Raw())
	path, err := writeReport(ctx, service.NewReportService(), result, types.ReportFormat(o.Format), o.Dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(o.out, "Wrote %s\n", path)
	return nil
}

// writeReport renders result and saves it under dir using the report's file name.
func writeReport(ctx context.Context, reports *service.ReportService, result *retrieval.Result, format types.ReportFormat, dir string) (string, error) {
	report, err := reports.Export(ctx, result, format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, report.FileName)
	if err := os.WriteFile(path, report.Content, 0o644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}

func exportFormats() []string {
	out := make([]string, 0, len(types.Formats()))
	for _, f := range types.Formats() {
		out = append(out, string(f))
	}
	return out
}
