package stats

import (
	"slices"

	"github.com/es-debug/nginx-json-stats/internal/domain"
)

const noFailuresEndpoint = "/"

type partitions struct {
	all        []uint64
	successful []uint64
	failed     []uint64
}

func (p *partitions) add(record *domain.LogRecord) {
	p.all = append(p.all, record.BytesSent)

	if record.Failed() {
		p.failed = append(p.failed, record.BytesSent)
	} else {
		p.successful = append(p.successful, record.BytesSent)
	}
}

func (p *partitions) sort() {
	slices.Sort(p.all)
	slices.Sort(p.successful)
	slices.Sort(p.failed)
}

// Compute builds the summary of records. The input is only read.
//
// Statistics of an empty group (for example the failed requests of a log
// without errors) are NaN, see domain.UndefinedSizeStats.
func Compute(records []domain.LogRecord) domain.LogSummary {
	statuses := make(map[uint16]int)
	failures := make(map[string]int)
	parts := partitions{
		all: make([]uint64, 0, len(records)),
	}

	var (
		totalBytes   uint64
		largest      string
		largestBytes uint64
	)

	for i := range records {
		record := &records[i]
		endpoint := record.Endpoint()

		statuses[record.StatusCode]++
		totalBytes += record.BytesSent
		parts.add(record)

		if record.Failed() {
			failures[endpoint]++
		}

		// Strictly greater, so the first record with the maximum wins.
		if record.BytesSent > largestBytes {
			largest, largestBytes = endpoint, record.BytesSent
		}
	}

	parts.sort()

	return domain.NewLogSummary(
		statusCounts(statuses),
		len(records),
		totalBytes,
		sizeStats(parts.all),
		sizeStats(parts.successful),
		sizeStats(parts.failed),
		largest,
		failingest(failures),
	)
}

func sizeStats(sorted []uint64) domain.SizeStats {
	if len(sorted) == 0 {
		return domain.UndefinedSizeStats()
	}

	// The partition is non-empty, so none of these can fail.
	mean, _ := Mean(sorted)
	median, _ := Median(sorted)
	p99, _ := P99(sorted)

	return domain.NewSizeStats(len(sorted), mean, median, p99)
}

func statusCounts(statuses map[uint16]int) []domain.StatusCount {
	counts := make([]domain.StatusCount, 0, len(statuses))
	for code, quantity := range statuses {
		counts = append(counts, domain.NewStatusCount(code, quantity))
	}

	slices.SortFunc(counts, func(a, b domain.StatusCount) int {
		return int(a.Code) - int(b.Code)
	})

	return counts
}

// failingest returns the endpoint with the most failures. Endpoints are
// scanned in ascending order and only a strictly greater count replaces the
// current best, so ties go to the lexicographically smallest endpoint.
func failingest(failures map[string]int) string {
	if len(failures) == 0 {
		return noFailuresEndpoint
	}

	endpoints := make([]string, 0, len(failures))
	for endpoint := range failures {
		endpoints = append(endpoints, endpoint)
	}

	slices.Sort(endpoints)

	best, bestCount := endpoints[0], failures[endpoints[0]]
	for _, endpoint := range endpoints[1:] {
		if failures[endpoint] > bestCount {
			best, bestCount = endpoint, failures[endpoint]
		}
	}

	return best
}
