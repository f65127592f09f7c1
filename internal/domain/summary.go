package domain

import "math"

// SizeStats holds response size statistics for one group of requests.
// All fields are NaN when the group is empty.
type SizeStats struct {
	Count  int
	Mean   float64
	Median float64
	P99    float64
}

func NewSizeStats(count int, mean, median, p99 float64) SizeStats {
	return SizeStats{
		Count:  count,
		Mean:   mean,
		Median: median,
		P99:    p99,
	}
}

// UndefinedSizeStats is the value used for a group with no requests.
func UndefinedSizeStats() SizeStats {
	return SizeStats{
		Count:  0,
		Mean:   math.NaN(),
		Median: math.NaN(),
		P99:    math.NaN(),
	}
}

func (s SizeStats) Defined() bool {
	return s.Count > 0
}

type StatusCount struct {
	Code     uint16
	Quantity int
}

func NewStatusCount(code uint16, quantity int) StatusCount {
	return StatusCount{
		Code:     code,
		Quantity: quantity,
	}
}

// LogSummary is the digest of a whole log.
type LogSummary struct {
	// StatusCounts is sorted by ascending status code.
	StatusCounts       []StatusCount
	TotalRequests      int
	TotalBytes         uint64
	All                SizeStats
	Successful         SizeStats
	Failed             SizeStats
	LargestEndpoint    string
	FailingestEndpoint string
}

func NewLogSummary(
	statusCounts []StatusCount,
	totalRequests int,
	totalBytes uint64,
	all, successful, failed SizeStats,
	largestEndpoint, failingestEndpoint string,
) LogSummary {
	return LogSummary{
		StatusCounts:       statusCounts,
		TotalRequests:      totalRequests,
		TotalBytes:         totalBytes,
		All:                all,
		Successful:         successful,
		Failed:             failed,
		LargestEndpoint:    largestEndpoint,
		FailingestEndpoint: failingestEndpoint,
	}
}
