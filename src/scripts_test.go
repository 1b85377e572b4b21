package gridconv

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pflag (not unreasonably) assumes it only ever gets called once. But lots of
// test infrastructure was built around "call this command then this command".
// Running it in Go tests (for coverage analysis and convenience etc.) means
// doing some slight bodges.
func setupPflag(args []string) {
	os.Args = args
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}

func newTestBatch(from, to string) *batch {
	return &batch{
		conv:   NewConverter(WithLogger(quietLogger)),
		from:   from,
		to:     to,
		logger: quietLogger,
		now:    func() time.Time { return time.Date(2024, 7, 1, 12, 30, 45, 0, time.UTC) },
	}
}

func TestBatchRun(t *testing.T) {
	var b = newTestBatch("dd", "mgrs")

	var out bytes.Buffer
	var failures = b.run(&out, strings.NewReader("9.1977,12.6543\n\n  \n91,0\n-9.1977,12.6543\n"))

	assert.Equal(t, 1, failures)
	assert.Equal(t, "33P TL 42247 17553\n"+
		"error: Degrees of latitude must be a decimal number between 90 and -90\n"+
		"33L TK 42247 82446\n", out.String())
}

func TestBatchTimestamps(t *testing.T) {
	var b = newTestBatch("MGRS", "DD")
	b.timestampFormat = "[%H:%M:%S]"

	var out bytes.Buffer
	assert.True(t, b.convert(&out, "33P TL 42247 17553"))
	assert.False(t, b.convert(&out, "33P"))

	assert.Equal(t, "[12:30:45] 9.1977°, 12.6543°\n"+
		"[12:30:45] error: MGRSPoint min length not met: 33P\n", out.String())
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestBatchReadError(t *testing.T) {
	var b = newTestBatch("DD", "DMS")

	var out bytes.Buffer
	assert.Equal(t, 1, b.run(&out, brokenReader{}))
	assert.Empty(t, out.String())
}

func Test_ConvertThenAudit(t *testing.T) {
	var tmpdir = t.TempDir()
	var logDir = filepath.Join(tmpdir, "audit")

	var cfg = filepath.Join(tmpdir, "gridconv.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("ellipsoid: NAD83\nlog_level: warn\n"), 0600))

	setupPflag([]string{"gridconv", "-c", cfg, "-l", logDir, "-f", "DD", "-t", "MGRS", "9.1977,12.6543"})
	AssertOutputContains(t, GridconvMain, "33P TL 42247 17553\n")

	setupPflag([]string{"gridconv", "-c", cfg, "-l", logDir, "-f", "MGRS", "-t", "DMS", "33P TL 42247 17553"})
	AssertOutputContains(t, GridconvMain, "09°11′52″N, 012°39′15″E\n")

	var logs, err = filepath.Glob(filepath.Join(logDir, "*.log"))
	require.NoError(t, err)
	require.NotEmpty(t, logs)

	var all []byte
	for _, l := range logs {
		var data, readErr = os.ReadFile(l)
		require.NoError(t, readErr)
		all = append(all, data...)
	}

	assert.Contains(t, string(all), `,DD,MGRS,"9.1977,12.6543",33P TL 42247 17553,`)
	assert.Contains(t, string(all), `,MGRS,DMS,33P TL 42247 17553,"09°11′52″N, 012°39′15″E",`)
}

func TestNegativeValuesAsArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{"none", []string{"-f", "DD", "9.1977,12.6543"}, []string{"-f", "DD", "9.1977,12.6543"}},
		{"negative first", []string{"-9.1977,12.6543"}, []string{"--", "-9.1977,12.6543"}},
		{"after flags", []string{"-t", "DMS", "1,2", "-.5,-0.25"}, []string{"-t", "DMS", "1,2", "--", "-.5,-0.25"}},
		{"already separated", []string{"--", "-9,1"}, []string{"--", "-9,1"}},
		{"lone dash", []string{"-"}, []string{"-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, negativeValuesAsArgs(tt.args))
		})
	}
}

func Test_NegativeDD(t *testing.T) {
	setupPflag([]string{"gridconv", "-f", "DD", "-t", "MGRS", "-9.1977,12.6543"})
	AssertOutputContains(t, GridconvMain, "33L TK 42247 82446\n")
}
