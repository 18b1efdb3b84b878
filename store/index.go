package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	elastic "github.com/olivere/elastic/v7"

	"github.com/oersearch/oersearch/search"
)

// EnsureIndex creates the course index if it is missing and installs
// the field mapping read from mappingPath.
//
// An index that already exists is not an error, everything else during
// setup is fatal and wrapped as search.ErrIndexSetup. Runs once at
// setup time, never on the request path.
func EnsureIndex(ctx context.Context, client *elastic.Client, name string, mappingPath string) error {
	exists, err := client.IndexExists(name).Do(ctx)
	if err != nil {
		return errors.Join(search.ErrIndexSetup, err)
	}

	if !exists {
		_, err := client.CreateIndex(name).Do(ctx)
		if err != nil && !elastic.IsConflict(err) {
			// conflict means somebody else created it between the
			// exists check and now which is fine
			return errors.Join(search.ErrIndexSetup, err)
		}
	}

	mapping, err := os.ReadFile(mappingPath)
	if err != nil {
		return errors.Join(search.ErrIndexSetup, fmt.Errorf("reading mapping %s: %w", mappingPath, err))
	}

	_, err = client.PutMapping().
		Index(name).
		BodyString(string(mapping)).
		Do(ctx)
	if err != nil {
		return errors.Join(search.ErrIndexSetup, err)
	}
	return nil
}
