package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bst [command] (flags)",
	Short: "binary search tree playground",
	Long:  ``,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log every operation on the tree")
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
