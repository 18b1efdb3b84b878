/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oersearch/oersearch/store"
)

var mappingPath string

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Creates the course index and installs its mapping",
	Long: `Creates the course index in the document store if it does not
exist yet and installs the field mapping from the schema file. Safe to
run again when the index is already there`,
	Run: func(cmd *cobra.Command, args []string) {
		client, err := store.NewClient()
		if err != nil {
			log.Error("Could not connect to the document store: ", err)
			return
		}
		name := store.IndexName()
		if err := store.EnsureIndex(context.Background(), client, name, mappingPath); err != nil {
			log.Error("Could not set up index: ", err)
			return
		}
		log.Infof("Index %s is ready", name)
	},
}

func init() {
	setupCmd.Flags().StringVar(&mappingPath, "mapping", "course.json", "path to the field mapping schema")
	rootCmd.AddCommand(setupCmd)
}
