package domain

import "strings"

const (
	defaultEndpoint = "/"
	failedStatus    = 400
)

// LogRecord is a single access log entry. It is never modified after load.
type LogRecord struct {
	Timestamp     string
	RemoteAddress string
	RemoteUser    string
	RequestLine   string
	StatusCode    uint16
	BytesSent     uint64
	Referrer      string
	UserAgent     string
}

func NewLogRecord(
	timestamp, remoteAddress, remoteUser, requestLine string,
	statusCode uint16,
	bytesSent uint64,
	referrer, userAgent string,
) LogRecord {
	return LogRecord{
		Timestamp:     timestamp,
		RemoteAddress: remoteAddress,
		RemoteUser:    remoteUser,
		RequestLine:   requestLine,
		StatusCode:    statusCode,
		BytesSent:     bytesSent,
		Referrer:      referrer,
		UserAgent:     userAgent,
	}
}

// Endpoint returns the path token of the request line, or "/" when the
// line has fewer than two whitespace separated tokens.
func (r LogRecord) Endpoint() string {
	fields := strings.Fields(r.RequestLine)
	if len(fields) < 2 {
		return defaultEndpoint
	}

	return fields[1]
}

// Failed reports whether the response status is 400 or above.
func (r LogRecord) Failed() bool {
	return r.StatusCode >= failedStatus
}
