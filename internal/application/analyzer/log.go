package analyzer

import (
	"io"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const defaultLogLevel = log.WarnLevel

func newLogger(out io.Writer) *log.Entry {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:    true,
		TimestampFormat:  time.RFC3339,
		QuoteEmptyFields: true,
	})
	logger.SetLevel(defaultLogLevel)

	return logger.WithField("run", uuid.NewString())
}
