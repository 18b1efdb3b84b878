package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "oersearch",
	Short: "oersearch indexes university course listings and serves textbook aware course search",
	Long: `oersearch takes course listings with their textbooks, indexes them
into a document store and serves a multi-field search over them`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
