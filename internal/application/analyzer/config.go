package analyzer

import "runtime"

// Config is everything one run needs. It is built from the command line
// and passed to Start explicitly.
type Config struct {
	Path    string
	Workers int
}

func NewConfig(path string) Config {
	return Config{
		Path:    path,
		Workers: runtime.NumCPU(),
	}
}

func (c Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyLogPath{}
	}

	return nil
}
