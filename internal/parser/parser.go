package parser

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"unicode/utf8"

	"github.com/es-debug/nginx-json-stats/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

const (
	minChunkSize   = 256
	defaultWorkers = 1
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrEmptyLine   = errors.New("empty line")
	ErrInvalidUTF8 = errors.New("line is not valid UTF-8")
)

// Loader reads a line delimited JSON access log into memory. Lines are
// decoded by up to workers goroutines; record order always matches the
// input.
type Loader struct {
	workers int
}

func NewLoader(workers int) *Loader {
	if workers < 1 {
		workers = defaultWorkers
	}

	return &Loader{
		workers: workers,
	}
}

// LoadFile opens path and loads every record in it.
func (l *Loader) LoadFile(ctx context.Context, path string) (records []domain.LogRecord, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewFileAccessError(path, err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = multierr.Append(err, NewFileAccessError(path, closeErr))
		}
	}()

	records, err = l.Load(ctx, f)
	if err != nil {
		var decodeErr DecodeError
		if errors.As(err, &decodeErr) || ctx.Err() != nil {
			return nil, err
		}

		return nil, NewFileAccessError(path, err)
	}

	return records, nil
}

// Load decodes one record per line of in. The first line that fails to
// decode aborts the whole load; no partial result is returned.
func (l *Loader) Load(ctx context.Context, in io.Reader) ([]domain.LogRecord, error) {
	lines, err := l.read(in)
	if err != nil {
		return nil, err
	}

	records := make([]domain.LogRecord, len(lines))
	if len(lines) == 0 {
		return records, nil
	}

	chunkSize := max(minChunkSize, (len(lines)+l.workers-1)/l.workers)
	chunkErrs := make([]error, (len(lines)+chunkSize-1)/chunkSize)

	// Chunks are not cancelled on failure, so every chunk stops at its own
	// first bad line and the earliest one can be reported.
	eg := errgroup.Group{}
	eg.SetLimit(l.workers)

	for chunk := range chunkErrs {
		from := chunk * chunkSize
		to := min(from+chunkSize, len(lines))

		eg.Go(func() error {
			chunkErrs[chunk] = l.decodeLines(ctx, lines[from:to], records[from:to])

			return chunkErrs[chunk]
		})
	}

	if err := eg.Wait(); err != nil {
		for _, chunkErr := range chunkErrs {
			if chunkErr != nil {
				return nil, chunkErr
			}
		}

		return nil, errors.Wrap(err, "eg.Wait()")
	}

	return records, nil
}

func (l *Loader) decodeLines(ctx context.Context, lines []line, out []domain.LogRecord) error {
	for i, curLine := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := l.lineToRecord(curLine.text)
		if err != nil {
			return NewDecodeError(curLine.number, err)
		}

		out[i] = record
	}

	return nil
}

func (l *Loader) lineToRecord(text []byte) (domain.LogRecord, error) {
	if len(bytes.TrimSpace(text)) == 0 {
		return domain.LogRecord{}, ErrEmptyLine
	}

	if !utf8.Valid(text) {
		return domain.LogRecord{}, ErrInvalidUTF8
	}

	var entry log
	if err := json.Unmarshal(text, &entry); err != nil {
		return domain.LogRecord{}, err
	}

	if field, ok := duplicateField(text); ok {
		return domain.LogRecord{}, ErrDuplicateField{Field: field}
	}

	return entry.toRecord()
}

// read splits in on '\n', dropping a trailing "\r". A final newline does
// not start another line. Lines have no length limit.
func (l *Loader) read(in io.Reader) ([]line, error) {
	lineNumber := 1
	reader := bufio.NewReader(in)

	var lines []line

	for {
		text, err := reader.ReadBytes('\n')
		if len(text) > 0 {
			if bytes.HasSuffix(text, []byte("\n")) {
				text = bytes.TrimSuffix(text[:len(text)-1], []byte("\r"))
			}

			lines = append(lines, newLine(text, lineNumber))

			lineNumber++
		}

		if errors.Is(err, io.EOF) {
			return lines, nil
		}

		if err != nil {
			return nil, errors.Wrapf(err, "read line #%d", lineNumber)
		}
	}
}
