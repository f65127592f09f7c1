package analyzer_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/es-debug/nginx-json-stats/internal/application/analyzer"
	"github.com/es-debug/nginx-json-stats/internal/parser"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "access.log")

	err := os.WriteFile(fileName, []byte(content), 0o600)
	require.NoError(t, err, "file must be written")

	return fileName
}

func logLine(request string, response, bytes int) string {
	return fmt.Sprintf(
		`{"time": "17/May/2015:08:05:32 +0000", "remote_ip": "93.180.71.3", "remote_user": "-", `+
			`"request": %q, "response": %d, "bytes": %d, "referrer": "-", "agent": "curl/8.0"}`,
		request, response, bytes,
	)
}

func discardLogger() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)

	return log.NewEntry(logger)
}

func TestRun(t *testing.T) {
	fileName := createTestFile(t, strings.Join([]string{
		logLine("GET /downloads/product_1 HTTP/1.1", 200, 100),
		logLine("GET /downloads/product_2 HTTP/1.1", 404, 50),
		logLine("GET /downloads/product_3 HTTP/1.1", 200, 300),
	}, "\n")+"\n")

	var stdout, stderr bytes.Buffer

	err := analyzer.Run([]string{fileName}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "Status Codes:\n"+
		"  200: 2\n"+
		"  404: 1\n"+
		"Mean Bytes:\n"+
		"  All Requests: 150.00\n"+
		"  Successful Requests: 200.00\n"+
		"  Failed Requests: 50.00\n"+
		"Median Bytes:\n"+
		"  All Requests: 100\n"+
		"  Successful Requests: 300\n"+
		"  Failed Requests: 50\n"+
		"99th Percentile Bytes:\n"+
		"  All Requests: 300\n"+
		"  Successful Requests: 300\n"+
		"  Failed Requests: 50\n"+
		"Largest Endpoint: /downloads/product_3\n"+
		"Failingest Endpoint: /downloads/product_2\n"+
		"Total Requests: 3\n"+
		"Total Bytes Sent: 450 B\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunMalformedLine(t *testing.T) {
	fileName := createTestFile(t, strings.Join([]string{
		logLine("GET /a HTTP/1.1", 200, 100),
		`{"time": `,
		logLine("GET /c HTTP/1.1", 200, 300),
	}, "\n"))

	var stdout, stderr bytes.Buffer

	err := analyzer.Run([]string{fileName}, &stdout, &stderr)
	require.Error(t, err)

	var decodeErr parser.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 2, decodeErr.Line)

	assert.Empty(t, stdout.String(), "no partial summary")
	assert.True(t, strings.HasPrefix(stderr.String(), "Error reading log file: line 2: "), stderr.String())
}

func TestRunMissingFile(t *testing.T) {
	fileName := filepath.Join(os.TempDir(), fmt.Sprintf("missing_%d.log", time.Now().UnixNano()))

	var stdout, stderr bytes.Buffer

	err := analyzer.Run([]string{fileName}, &stdout, &stderr)
	require.Error(t, err)

	var readErr analyzer.ErrReadLog
	require.True(t, errors.As(err, &readErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Error reading log file: ")
	assert.Contains(t, stderr.String(), fileName)
}

func TestRunArgs(t *testing.T) {
	tt := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{}},
		{name: "two arguments", args: []string{"a.log", "b.log"}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			err := analyzer.Run(tc.args, &stdout, &stderr)
			require.Error(t, err)
			assert.Empty(t, stdout.String())
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestStartEmptyLog(t *testing.T) {
	fileName := createTestFile(t, "")

	var stdout bytes.Buffer

	err := analyzer.Start(context.Background(), analyzer.NewConfig(fileName), &stdout, discardLogger())
	require.NoError(t, err)

	text := stdout.String()
	assert.Contains(t, text, "Status Codes:\nMean Bytes:\n  All Requests: NaN\n")
	assert.Contains(t, text, "Largest Endpoint: \n")
	assert.Contains(t, text, "Failingest Endpoint: /\n")
}

func TestStartEmptyPath(t *testing.T) {
	err := analyzer.Start(context.Background(), analyzer.Config{}, io.Discard, discardLogger())
	require.ErrorIs(t, err, analyzer.ErrEmptyLogPath{})
}

func TestStartWarnsOnUndefinedGroup(t *testing.T) {
	fileName := createTestFile(t, logLine("GET / HTTP/1.1", 200, 1))

	var logs bytes.Buffer

	logger := log.New()
	logger.SetOutput(&logs)
	logger.SetLevel(log.WarnLevel)

	err := analyzer.Start(context.Background(), analyzer.NewConfig(fileName), io.Discard, log.NewEntry(logger))
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "group=failed")
	assert.NotContains(t, logs.String(), "group=successful")
}

func TestRunTreatsDashArgumentsAsPaths(t *testing.T) {
	tt := []struct {
		name string
		arg  string
	}{
		{name: "long help", arg: "--help"},
		{name: "short help", arg: "-h"},
		{name: "dash prefixed file", arg: "-access.log"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			err := analyzer.Run([]string{tc.arg}, &stdout, &stderr)
			require.Error(t, err)

			var readErr analyzer.ErrReadLog
			require.True(t, errors.As(err, &readErr))

			var accessErr parser.FileAccessError
			require.True(t, errors.As(err, &accessErr))
			assert.Equal(t, tc.arg, accessErr.Path)

			assert.Empty(t, stdout.String(), "no usage text")
			assert.True(t, strings.HasPrefix(stderr.String(), "Error reading log file: "), stderr.String())
		})
	}
}

func TestRunDashPrefixedFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "-access.log")

	err := os.WriteFile(fileName, []byte(logLine("GET /a HTTP/1.1", 200, 10)), 0o600)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})

	var stdout, stderr bytes.Buffer

	err = analyzer.Run([]string{"-access.log"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Largest Endpoint: /a\n")
}
