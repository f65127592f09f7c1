package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/es-debug/nginx-json-stats/internal/domain"
	"github.com/pkg/errors"
)

// WriteText renders summary as plain text. Sections appear in the order:
// status codes, mean, median, 99th percentile, largest endpoint, failingest
// endpoint, followed by totals. Undefined statistics are printed as NaN.
func WriteText(w io.Writer, summary domain.LogSummary) error {
	out := bufio.NewWriter(w)

	fmt.Fprintln(out, "Status Codes:")

	for _, status := range summary.StatusCounts {
		fmt.Fprintf(out, "  %d: %d\n", status.Code, status.Quantity)
	}

	writeSection(out, "Mean Bytes:", summary, func(s domain.SizeStats) string {
		return strconv.FormatFloat(s.Mean, 'f', 2, 64)
	})
	writeSection(out, "Median Bytes:", summary, func(s domain.SizeStats) string {
		return plain(s.Median)
	})
	writeSection(out, "99th Percentile Bytes:", summary, func(s domain.SizeStats) string {
		return plain(s.P99)
	})

	fmt.Fprintf(out, "Largest Endpoint: %s\n", summary.LargestEndpoint)
	fmt.Fprintf(out, "Failingest Endpoint: %s\n", summary.FailingestEndpoint)

	fmt.Fprintf(out, "Total Requests: %s\n", humanize.Comma(int64(summary.TotalRequests)))
	fmt.Fprintf(out, "Total Bytes Sent: %s\n", humanize.IBytes(summary.TotalBytes))

	return errors.Wrap(out.Flush(), "write summary")
}

func writeSection(
	out io.Writer,
	title string,
	summary domain.LogSummary,
	value func(domain.SizeStats) string,
) {
	fmt.Fprintln(out, title)
	fmt.Fprintf(out, "  All Requests: %s\n", value(summary.All))
	fmt.Fprintf(out, "  Successful Requests: %s\n", value(summary.Successful))
	fmt.Fprintf(out, "  Failed Requests: %s\n", value(summary.Failed))
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
