package parser

import "fmt"

// FileAccessError is returned when the log file cannot be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func NewFileAccessError(path string, err error) error {
	return FileAccessError{
		Path: path,
		Err:  err,
	}
}

func (e FileAccessError) Error() string {
	return e.Err.Error()
}

func (e FileAccessError) Unwrap() error {
	return e.Err
}

// DecodeError is returned for a line that is not a valid log record.
// Line is 1-based.
type DecodeError struct {
	Line int
	Err  error
}

func NewDecodeError(number int, err error) error {
	return DecodeError{
		Line: number,
		Err:  err,
	}
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

type ErrMissingField struct {
	Field string
}

func (e ErrMissingField) Error() string {
	return fmt.Sprintf("missing field `%s`", e.Field)
}

type ErrDuplicateField struct {
	Field string
}

func (e ErrDuplicateField) Error() string {
	return fmt.Sprintf("duplicate field `%s`", e.Field)
}
