// SPDX-License-Identifier: MIT

package mixture

import (
	"sync"

	"github.com/katalvlaran/poisbin/matrix"
)

// fillParallel fills every row of out using numWorkers goroutines.
// If numWorkers <= 1 or there is a single row, it runs fillRows on the
// calling goroutine.
//
// Rows are split into contiguous ranges, one per worker. Since ranges don't
// overlap, no synchronization is needed for writes. The first error by
// worker order is returned.
func fillParallel(out *matrix.Dense, pois []float64, p float64, numWorkers int) error {
	n := out.Rows()
	if numWorkers <= 1 || n <= 1 {
		return fillRows(out, pois, p, 0, n)
	}

	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers
	errs := make([]error, numWorkers)

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		if startRow >= n {
			break
		}
		endRow := min(startRow+rowsPerWorker, n)

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			errs[w] = fillRows(out, pois, p, start, end)
		}(w, startRow, endRow)
	}

	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
