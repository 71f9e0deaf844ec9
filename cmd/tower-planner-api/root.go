package main

import "github.com/spf13/cobra"

var (
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "tower-planner-api",
	Short: "HTTP API of the tower parking retrieval planner",
}

func init() {
	rootCmd.AddCommand(runCmd)

	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", "", "Path to a .env file loaded before the environment")
}
