package parser

import (
	"github.com/es-debug/nginx-json-stats/internal/domain"
	jsoniter "github.com/json-iterator/go"
)

var recordFields = map[string]struct{}{
	"time":        {},
	"remote_ip":   {},
	"remote_user": {},
	"request":     {},
	"response":    {},
	"bytes":       {},
	"referrer":    {},
	"agent":       {},
}

// log is the on-disk shape of a record. Pointers tell a missing key apart
// from a zero value.
type log struct {
	Time       *string `json:"time"`
	RemoteIP   *string `json:"remote_ip"`
	RemoteUser *string `json:"remote_user"`
	Request    *string `json:"request"`
	Response   *uint16 `json:"response"`
	Bytes      *uint64 `json:"bytes"`
	Referrer   *string `json:"referrer"`
	Agent      *string `json:"agent"`
}

func (l *log) toRecord() (domain.LogRecord, error) {
	required := []struct {
		name    string
		present bool
	}{
		{"time", l.Time != nil},
		{"remote_ip", l.RemoteIP != nil},
		{"remote_user", l.RemoteUser != nil},
		{"request", l.Request != nil},
		{"response", l.Response != nil},
		{"bytes", l.Bytes != nil},
		{"referrer", l.Referrer != nil},
		{"agent", l.Agent != nil},
	}

	for _, field := range required {
		if !field.present {
			return domain.LogRecord{}, ErrMissingField{Field: field.name}
		}
	}

	return domain.NewLogRecord(
		*l.Time,
		*l.RemoteIP,
		*l.RemoteUser,
		*l.Request,
		*l.Response,
		*l.Bytes,
		*l.Referrer,
		*l.Agent,
	), nil
}

// duplicateField reports the first record key that occurs more than once in
// the object. Unknown keys may repeat. text must already be valid JSON.
func duplicateField(text []byte) (string, bool) {
	iter := json.BorrowIterator(text)
	defer json.ReturnIterator(iter)

	seen := make(map[string]bool, len(recordFields))
	duplicate := ""

	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		if _, known := recordFields[key]; known {
			if seen[key] {
				duplicate = key

				return false
			}

			seen[key] = true
		}

		it.Skip()

		return true
	})

	return duplicate, duplicate != ""
}
