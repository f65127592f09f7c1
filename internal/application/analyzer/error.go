package analyzer

import "fmt"

type ErrEmptyLogPath struct{}

func (e ErrEmptyLogPath) Error() string {
	return "log path is empty"
}

// ErrReadLog wraps any failure to load the log file.
type ErrReadLog struct {
	err error
}

func NewErrReadLog(err error) error {
	return ErrReadLog{
		err: err,
	}
}

func (e ErrReadLog) Error() string {
	return fmt.Sprintf("Error reading log file: %s", e.err)
}

func (e ErrReadLog) Unwrap() error {
	return e.err
}
