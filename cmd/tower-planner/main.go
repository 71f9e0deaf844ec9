package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/cli"
)

func main() {
	command := NewTowerPlannerCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewTowerPlannerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tower-planner [flags] [options]",
		Short: "tower-planner estimates car retrieval times and throughput of tower parking systems.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdCalculate())
	cmd.AddCommand(cli.NewCmdExport())
	cmd.AddCommand(cli.NewCmdShell())
	cmd.AddCommand(cli.NewCmdTowerTypes())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
