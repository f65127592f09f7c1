package parser_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, content string) string {
	dir, err := os.MkdirTemp("", "test_*")
	require.NoError(t, err, "dir should be created")

	fileName := filepath.Join(dir, "access.log")

	f, err := os.Create(fileName)
	require.NoError(t, err, "file must be created")

	fmt.Fprint(f, content)

	err = f.Close()
	require.NoError(t, err, "file must be closed")

	return fileName
}

func deleteTestFile(t *testing.T, path string) {
	err := os.RemoveAll(filepath.Dir(path))
	require.NoError(t, err, "path should be removed")
}

func logLine(request string, response int, bytes int) string {
	return fmt.Sprintf(
		`{"time": "17/May/2015:08:05:32 +0000", "remote_ip": "93.180.71.3", "remote_user": "-", `+
			`"request": %q, "response": %d, "bytes": %d, "referrer": "-", `+
			`"agent": "Debian APT-HTTP/1.3 (0.8.16~exp12ubuntu10.21)"}`,
		request, response, bytes,
	)
}

func logLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
