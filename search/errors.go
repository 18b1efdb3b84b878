package search

// errors that cross the package boundary are sentinels so that callers
//    can errors.Is on them
// the store and api layers wrap these rather than inventing their own

import "errors"

var (
	// the course has neither a code nor a title so there is nothing
	// stable to derive an id from
	ErrUnindexable = errors.New("course is unindexable")

	// index or mapping creation failed for a reason other than the
	// index already existing
	ErrIndexSetup = errors.New("index setup failure")

	// the store rejected or could not run the query, no partial results
	ErrSearchExecution = errors.New("search execution failure")

	// the store round trip ran past the caller's deadline, retrying
	// with backoff could work
	ErrSearchTimeout = errors.New("search timed out")
)
