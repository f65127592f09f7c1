package stats

import (
	"github.com/pkg/errors"
)

var ErrEmptyPartition = errors.New("statistic is undefined for an empty partition")

const p99Ratio = 0.99

// Mean returns the arithmetic mean of sizes.
func Mean(sizes []uint64) (float64, error) {
	if len(sizes) == 0 {
		return 0, errors.Wrap(ErrEmptyPartition, "mean")
	}

	var sum uint64
	for _, size := range sizes {
		sum += size
	}

	return float64(sum) / float64(len(sizes)), nil
}

// Median returns the element at index len/2 of an ascending slice. For an
// even length that is the upper of the two middle values.
func Median(sorted []uint64) (float64, error) {
	if len(sorted) == 0 {
		return 0, errors.Wrap(ErrEmptyPartition, "median")
	}

	return float64(sorted[len(sorted)/2]), nil
}

// P99 returns the element at index floor(len*0.99) of an ascending slice,
// clamped to the last element.
func P99(sorted []uint64) (float64, error) {
	if len(sorted) == 0 {
		return 0, errors.Wrap(ErrEmptyPartition, "p99")
	}

	idx := min(int(float64(len(sorted))*p99Ratio), len(sorted)-1)

	return float64(sorted[idx]), nil
}
