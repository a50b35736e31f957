package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dkv2_import",
	Short: "Import Direktkredit CSV/XLSX exports into a DKV2 database",
	Long: `dkv2_import reads a German-locale Direktkredit export and appends
creditors, contracts and bookings to a copy of an existing DKV2
database. The template database is never touched: the output path
receives a byte-for-byte copy first and all inserts go into the copy.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
