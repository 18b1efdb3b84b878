/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oersearch/oersearch/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the search api",
	Long:  `Runs the search api`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := api.Serve(); err != nil {
			log.Error("Server stopped: ", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
