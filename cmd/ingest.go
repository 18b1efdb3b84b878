/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oersearch/oersearch/books"
	"github.com/oersearch/oersearch/collection"
	"github.com/oersearch/oersearch/store"
)

var skipBookLookup bool

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest [listings file]",
	Short: "Indexes a course listings file",
	Long: `Reads a JSON file of course listings, looks open access copies of
their textbooks up and indexes everything into the document store.
Re-ingesting the same listings overwrites them in place`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		courses, err := collection.ReadListings(args[0])
		if err != nil {
			log.Error("Could not read listings: ", err)
			return
		}

		client, err := store.NewClient()
		if err != nil {
			log.Error("Could not connect to the document store: ", err)
			return
		}
		courseStore := store.NewCourseStore(client, store.IndexName())

		var lookup books.Lookup
		if !skipBookLookup {
			lookup = books.NewCatalogLookup()
		}

		ing := collection.NewIngestor(courseStore, lookup)
		summary, err := ing.IngestAll(context.Background(), courses)
		if err != nil {
			log.Error("Ingest failed: ", err)
			return
		}
		log.Infof("Indexed %d courses, skipped %d", summary.Indexed, summary.Skipped)
	},
}

func init() {
	ingestCmd.Flags().BoolVar(&skipBookLookup, "no-books", false, "skip the open access book lookup")
	rootCmd.AddCommand(ingestCmd)
}
