package search

import (
	"crypto/sha1"
	"fmt"
	"math/big"
	"strconv"
)

const idDigits = 12

// ComputeID derives the stable document id for a course.
//
// The id is the first 12 decimal digits of the sha1 of
// code + title + first section's semester. Two courses that agree on
// all three collide on purpose so that re-indexing the same listing
// overwrites instead of duplicating.
func ComputeID(c Course) (int64, error) {
	if c.Code == "" && c.Title == "" {
		return 0, fmt.Errorf("%w: no code or title for %q", ErrUnindexable, c.Dept)
	}

	// a course with no sections hashes as if it had one empty one
	sem := ""
	if len(c.Sections) > 0 {
		sem = c.Sections[0].Sem
	}

	digest := sha1.Sum([]byte(c.Code + c.Title + sem))
	return truncateID(new(big.Int).SetBytes(digest[:])), nil
}

// truncateID keeps the first 12 digits of the decimal form of the full
// digest integer
func truncateID(n *big.Int) int64 {
	dec := n.String()
	if len(dec) > idDigits {
		dec = dec[:idDigits]
	}
	id, err := strconv.ParseInt(dec, 10, 64)
	if err != nil {
		// cannot happen, 12 decimal digits always fit in an int64
		panic(err)
	}
	return id
}
