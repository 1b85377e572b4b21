package gridconv

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quietLogger = log.New(io.Discard)

func TestAuditLogSingleFile(t *testing.T) {
	var fname = filepath.Join(t.TempDir(), "audit.csv")

	var l = OpenAuditLog(false, fname, quietLogger)
	l.now = func() time.Time { return time.Unix(1700000000, 0) }

	require.NoError(t, l.Write("DD", "MGRS", "9.1977,12.6543", "33P TL 42247 17553", nil))
	require.NoError(t, l.Write("DD", "DMG", "9.1977,12.6543", "", errors.New("Unsupported conversion: DD to DMG")))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(fname)
	require.NoError(t, err)

	assert.Equal(t, "utime,isotime,from,to,input,output,error\n"+
		"1700000000,2023-11-14T22:13:20Z,DD,MGRS,\"9.1977,12.6543\",33P TL 42247 17553,\n"+
		"1700000000,2023-11-14T22:13:20Z,DD,DMG,\"9.1977,12.6543\",,Unsupported conversion: DD to DMG\n",
		string(data))

	// Reopening appends without a second header.
	l = OpenAuditLog(false, fname, quietLogger)
	require.NoError(t, l.Write("DD", "DD", "1,2", "1,2", nil))
	require.NoError(t, l.Close())

	data, err = os.ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "utime,isotime"))
	assert.Equal(t, 4, strings.Count(string(data), "\n"))
}

func TestAuditLogDailyNames(t *testing.T) {
	var dir = filepath.Join(t.TempDir(), "logs")

	var l = OpenAuditLog(true, dir, quietLogger)

	var now = time.Date(2024, 2, 28, 23, 59, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	require.NoError(t, l.Write("DD", "DMS", "1,2", "01°00′00″N, 002°00′00″E", nil))

	now = now.Add(2 * time.Minute)
	require.NoError(t, l.Write("DD", "DMS", "1,2", "01°00′00″N, 002°00′00″E", nil))
	require.NoError(t, l.Close())

	for _, name := range []string{"2024-02-28.log", "2024-02-29.log"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), "utime,isotime,from,to,input,output,error\n"), name)
		assert.Equal(t, 2, strings.Count(string(data), "\n"), name)
	}
}

func TestAuditLogNotADirectory(t *testing.T) {
	var fname = filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(fname, nil, 0600))

	var l = OpenAuditLog(true, fname, quietLogger)
	assert.Equal(t, ".", l.path)
}

func TestAuditLogDisabled(t *testing.T) {
	var l = OpenAuditLog(false, "", quietLogger)
	require.NoError(t, l.Write("DD", "DD", "1,2", "1,2", nil))
	require.NoError(t, l.Close())

	var none *AuditLog
	require.NoError(t, none.Write("DD", "DD", "1,2", "1,2", nil))
	require.NoError(t, none.Close())
}
