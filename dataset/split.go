// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math/rand/v2"
)

// permStream is the fixed PCG stream selector; only the seed varies.
const permStream = 0x9e3779b97f4a7c15

// Permutation returns a deterministic permutation of 0..n-1 for seed.
func Permutation(n int, seed uint64) []int {
	rng := rand.New(rand.NewPCG(seed, permStream))

	return rng.Perm(n)
}

// Split shuffles the rows with Permutation(ds.Len(), seed) and cuts the
// first floor(trainRatio·n) of them into train, the rest into test.
// Identical (ds, trainRatio, seed) always give identical partitions.
// Errors: ErrInvalidRatio for trainRatio outside (0,1).
func Split(ds *Dataset, trainRatio float64, seed uint64) (train, test *Dataset, err error) {
	if !(trainRatio > 0 && trainRatio < 1) {
		return nil, nil, fmt.Errorf("Split(%g): %w", trainRatio, ErrInvalidRatio)
	}
	n := ds.Len()
	perm := Permutation(n, seed)
	cut := int(trainRatio * float64(n))

	if train, err = ds.Subset(perm[:cut]); err != nil {
		return nil, nil, fmt.Errorf("Split: %w", err)
	}
	if test, err = ds.Subset(perm[cut:]); err != nil {
		return nil, nil, fmt.Errorf("Split: %w", err)
	}

	return train, test, nil
}
