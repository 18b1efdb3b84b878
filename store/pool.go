package store

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	elastic "github.com/olivere/elastic/v7"
)

var (
	esClient *elastic.Client
	esOnce   sync.Once
)

func init() {
	if err := godotenv.Load(); err != nil {
		// fine when the config comes from real env vars instead
		log.Debug("No .env file loaded: ", err)
	}
}

// NewClient hands out the process wide elasticsearch client. The
// client pools connections itself and is safe to share between
// concurrent callers.
func NewClient() (*elastic.Client, error) {
	connURL := os.Getenv("ELASTICSEARCH_URL")
	if connURL == "" {
		connURL = elastic.DefaultURL
	}

	var clientErr error
	esOnce.Do(func() {
		client, err := elastic.NewClient(
			elastic.SetURL(connURL),
			elastic.SetSniff(false),
		)
		if err != nil {
			log.Error("Unable to create elasticsearch client: ", err)
			clientErr = err
		}
		esClient = client
	})
	if clientErr != nil {
		return nil, clientErr
	}

	return esClient, nil
}

// IndexName is the index searches and writes go against, overridable
// for tests through OERSEARCH_INDEX.
func IndexName() string {
	if name := os.Getenv("OERSEARCH_INDEX"); name != "" {
		return name
	}
	return "oersearch"
}
